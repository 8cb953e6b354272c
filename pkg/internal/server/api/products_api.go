package api

import (
	"clientele/pkg/internal/models"
	"clientele/pkg/internal/server/exts"
	"clientele/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func listProduct(c *fiber.Ctx) error {
	products, err := services.ListProduct()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(products)
}

func createProduct(c *fiber.Ctx) error {
	var data struct {
		Name  string          `json:"name" validate:"required"`
		Price decimal.Decimal `json:"price" validate:"required"`
		Stock int             `json:"stock"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	product := models.Product{
		Name:  data.Name,
		Price: data.Price,
		Stock: data.Stock,
	}

	if product, err := services.NewProduct(product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else {
		return c.JSON(product)
	}
}
