package api

import (
	"clientele/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

// The maintenance endpoints run the same operations the cron schedule does,
// for operators who need them on demand. They return the outcome instead of
// appending to the report files.
func cleanupInactiveCustomers(c *fiber.Ctx) error {
	count, err := services.CleanupInactiveCustomers()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"count": count,
	})
}

func restockLowStock(c *fiber.Ctx) error {
	products, err := services.RestockLowStockProducts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"count":    len(products),
		"products": products,
	})
}
