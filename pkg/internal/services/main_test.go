package services

import (
	"os"
	"testing"
	"time"

	"clientele/pkg/internal/cache"
	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	database.C = db
	if err := database.RunMigration(database.C); err != nil {
		panic(err)
	}
	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func resetTables(t *testing.T) {
	t.Helper()

	require.NoError(t, database.C.Exec("DELETE FROM order_products").Error)
	require.NoError(t, database.C.Unscoped().Where("1 = 1").Delete(&models.Order{}).Error)
	require.NoError(t, database.C.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error)
	require.NoError(t, database.C.Unscoped().Where("1 = 1").Delete(&models.Customer{}).Error)
}

func seedCustomer(t *testing.T, name, email string) models.Customer {
	t.Helper()

	customer := models.Customer{Name: name, Email: email}
	require.NoError(t, database.C.Create(&customer).Error)
	return customer
}

func seedOrderAt(t *testing.T, customerID uint, status string, at time.Time) models.Order {
	t.Helper()

	order := models.Order{
		Uuid:       "ord-" + at.Format("20060102150405.000000000"),
		Status:     status,
		CustomerID: customerID,
	}
	order.CreatedAt = at
	require.NoError(t, database.C.Create(&order).Error)
	return order
}
