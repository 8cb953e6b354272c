package services

import (
	"testing"

	"clientele/pkg/internal/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	resetTables(t)

	created, err := NewCustomer(models.Customer{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: lo.ToPtr("+1234567890"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = NewCustomer(models.Customer{Name: "Imposter", Email: "ada@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestValidateCustomerPhone(t *testing.T) {
	assert.NoError(t, ValidateCustomerPhone(nil))
	assert.NoError(t, ValidateCustomerPhone(lo.ToPtr("")))
	assert.NoError(t, ValidateCustomerPhone(lo.ToPtr("+1234567890")))
	assert.NoError(t, ValidateCustomerPhone(lo.ToPtr("123-456-7890")))
	assert.Error(t, ValidateCustomerPhone(lo.ToPtr("not-a-phone")))
	assert.Error(t, ValidateCustomerPhone(lo.ToPtr("12345")))
}

func TestBulkNewCustomersPartialFailure(t *testing.T) {
	resetTables(t)

	seedCustomer(t, "Ben", "ben@example.com")

	created, errs := BulkNewCustomers([]models.Customer{
		{Name: "Ada", Email: "ada@example.com"},
		{Name: "Dup", Email: "ben@example.com"},
		{Name: "Badphone", Email: "bad@example.com", Phone: lo.ToPtr("oops")},
		{Name: "Cleo", Email: "cleo@example.com", Phone: lo.ToPtr("123-456-7890")},
	})

	require.Len(t, created, 2)
	assert.Equal(t, "ada@example.com", created[0].Email)
	assert.Equal(t, "cleo@example.com", created[1].Email)

	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "email already exists")
	assert.Contains(t, errs[1].Error(), "invalid phone format")

	customers, err := ListCustomer()
	require.NoError(t, err)
	assert.Len(t, customers, 3)
}

func TestGetCustomer(t *testing.T) {
	resetTables(t)

	seeded := seedCustomer(t, "Ada", "ada@example.com")

	found, err := GetCustomer(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Email, found.Email)

	_, err = GetCustomer(seeded.ID + 1000)
	assert.Error(t, err)
}
