package models

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel

	Name  string          `json:"name" gorm:"size:100;not null"`
	Price decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock int             `json:"stock" gorm:"default:0"`

	Orders []Order `json:"orders,omitempty" gorm:"many2many:order_products"`
}
