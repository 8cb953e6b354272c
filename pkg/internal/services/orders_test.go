package services

import (
	"testing"

	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, name string, price string, stock int) models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	require.NoError(t, database.C.Create(&product).Error)
	return product
}

func TestNewOrder(t *testing.T) {
	resetTables(t)

	customer := seedCustomer(t, "Ada", "ada@example.com")
	coffee := seedProduct(t, "Coffee", "99.95", 5)
	beans := seedProduct(t, "Beans", "149.50", 8)

	order, err := NewOrder(customer.ID, []uint{coffee.ID, beans.ID})
	require.NoError(t, err)

	assert.NotEmpty(t, order.Uuid)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("249.45")),
		"got total %s", order.TotalAmount)

	orders, err := ListOrder()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, customer.ID, orders[0].Customer.ID)
	assert.Len(t, orders[0].Products, 2)
}

func TestNewOrderValidation(t *testing.T) {
	resetTables(t)

	customer := seedCustomer(t, "Ada", "ada@example.com")
	coffee := seedProduct(t, "Coffee", "99.95", 5)

	_, err := NewOrder(customer.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one product")

	_, err = NewOrder(customer.ID+1000, []uint{coffee.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = NewOrder(customer.ID, []uint{coffee.ID, coffee.ID + 1000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}
