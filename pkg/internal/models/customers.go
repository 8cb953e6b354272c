package models

type Customer struct {
	BaseModel

	Name  string  `json:"name" gorm:"size:100;not null"`
	Email string  `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Phone *string `json:"phone" gorm:"size:15"`

	Orders []Order `json:"orders,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
