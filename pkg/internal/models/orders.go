package models

import "github.com/shopspring/decimal"

const OrderStatusPending = "pending"

type Order struct {
	BaseModel

	Uuid        string          `json:"uuid" gorm:"uniqueIndex"`
	TotalAmount decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2);default:0"`
	Status      string          `json:"status" gorm:"size:50;default:'pending'"`

	Products []Product `json:"products,omitempty" gorm:"many2many:order_products;constraint:OnDelete:CASCADE"`

	Customer   Customer `json:"customer"`
	CustomerID uint     `json:"customer_id" gorm:"index;not null"`
}
