package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"clientele/pkg/internal/cache"
	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm"
)

// Accepts international numbers like +1234567890 or the dashed 123-456-7890.
var phoneRegexp = regexp.MustCompile(`^(\+?\d{7,15}|\d{3}-\d{3}-\d{4})$`)

func ValidateCustomerPhone(phone *string) error {
	if phone == nil || *phone == "" {
		return nil
	}
	if !phoneRegexp.MatchString(*phone) {
		return fmt.Errorf("invalid phone format: use +1234567890 or 123-456-7890")
	}
	return nil
}

func customerCacheKey(id uint) string {
	return fmt.Sprintf("customer#%d", id)
}

func ListCustomer() ([]models.Customer, error) {
	var customers []models.Customer
	if err := database.C.Find(&customers).Error; err != nil {
		return customers, err
	}
	return customers, nil
}

func GetCustomer(id uint) (models.Customer, error) {
	if val, err := cache.S.Get(context.Background(), customerCacheKey(id)); err == nil {
		if customer, ok := val.(models.Customer); ok {
			return customer, nil
		}
	}

	var customer models.Customer
	if err := database.C.Where("id = ?", id).First(&customer).Error; err != nil {
		return customer, err
	}

	_ = cache.S.Set(context.Background(), customerCacheKey(id), customer,
		store.WithCost(1), store.WithExpiration(time.Minute))

	return customer, nil
}

func NewCustomer(customer models.Customer) (models.Customer, error) {
	if err := ValidateCustomerPhone(customer.Phone); err != nil {
		return customer, err
	}

	var count int64
	if err := database.C.Model(&models.Customer{}).
		Where("email = ?", customer.Email).
		Count(&count).Error; err != nil {
		return customer, err
	} else if count > 0 {
		return customer, fmt.Errorf("email already exists: %s", customer.Email)
	}

	if err := database.C.Save(&customer).Error; err != nil {
		return customer, err
	}
	return customer, nil
}

// BulkNewCustomers inserts the valid rows and collects an error per rejected
// one, so a single bad row does not sink the whole batch.
func BulkNewCustomers(customers []models.Customer) ([]models.Customer, []error) {
	var created []models.Customer
	var errs []error

	_ = database.C.Transaction(func(tx *gorm.DB) error {
		for _, customer := range customers {
			if err := ValidateCustomerPhone(customer.Phone); err != nil {
				errs = append(errs, err)
				continue
			}

			var count int64
			if err := tx.Model(&models.Customer{}).
				Where("email = ?", customer.Email).
				Count(&count).Error; err != nil {
				errs = append(errs, err)
				continue
			} else if count > 0 {
				errs = append(errs, fmt.Errorf("email already exists: %s", customer.Email))
				continue
			}

			if err := tx.Save(&customer).Error; err != nil {
				errs = append(errs, err)
				continue
			}
			created = append(created, customer)
		}

		return nil
	})

	return created, errs
}
