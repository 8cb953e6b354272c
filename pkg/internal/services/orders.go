package services

import (
	"fmt"

	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func ListOrder() ([]models.Order, error) {
	var orders []models.Order
	if err := database.C.Preload("Customer").Preload("Products").Find(&orders).Error; err != nil {
		return orders, err
	}
	return orders, nil
}

// NewOrder places an order for an existing customer over one or more existing
// products; the total is the sum of the product prices at order time.
func NewOrder(customerID uint, productIDs []uint) (models.Order, error) {
	var order models.Order

	if len(productIDs) == 0 {
		return order, fmt.Errorf("at least one product must be selected")
	}

	customer, err := GetCustomer(customerID)
	if err != nil {
		return order, fmt.Errorf("customer with id %d does not exist", customerID)
	}

	var products []models.Product
	if err := database.C.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return order, err
	}
	if len(products) != len(productIDs) {
		return order, fmt.Errorf("one or more product ids are invalid")
	}

	total := decimal.Zero
	for _, product := range products {
		total = total.Add(product.Price)
	}

	order = models.Order{
		Uuid:        uuid.NewString(),
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		Products:    products,
		CustomerID:  customer.ID,
	}

	if err := database.C.Save(&order).Error; err != nil {
		return order, err
	}
	return order, nil
}
