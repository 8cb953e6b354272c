package api

import (
	"clientele/pkg/internal/server/exts"
	"clientele/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
)

func listOrder(c *fiber.Ctx) error {
	orders, err := services.ListOrder()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(orders)
}

func createOrder(c *fiber.Ctx) error {
	var data struct {
		CustomerID uint   `json:"customer_id" validate:"required"`
		ProductIDs []uint `json:"product_ids" validate:"required,min=1"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if order, err := services.NewOrder(data.CustomerID, data.ProductIDs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else {
		return c.JSON(order)
	}
}
