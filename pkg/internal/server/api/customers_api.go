package api

import (
	"clientele/pkg/internal/models"
	"clientele/pkg/internal/server/exts"
	"clientele/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

func listCustomer(c *fiber.Ctx) error {
	customers, err := services.ListCustomer()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(customers)
}

func getCustomer(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	customer, err := services.GetCustomer(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.JSON(customer)
}

func createCustomer(c *fiber.Ctx) error {
	var data struct {
		Name  string  `json:"name" validate:"required"`
		Email string  `json:"email" validate:"required,email"`
		Phone *string `json:"phone"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	customer := models.Customer{
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	}

	if customer, err := services.NewCustomer(customer); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else {
		return c.JSON(customer)
	}
}

func createCustomerBatch(c *fiber.Ctx) error {
	var data struct {
		Customers []struct {
			Name  string  `json:"name" validate:"required"`
			Email string  `json:"email" validate:"required,email"`
			Phone *string `json:"phone"`
		} `json:"customers" validate:"required,min=1,dive"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	customers := make([]models.Customer, 0, len(data.Customers))
	for _, item := range data.Customers {
		customers = append(customers, models.Customer{
			Name:  item.Name,
			Email: item.Email,
			Phone: item.Phone,
		})
	}

	created, errs := services.BulkNewCustomers(customers)

	return c.JSON(fiber.Map{
		"customers": created,
		"errors": lo.Map(errs, func(err error, _ int) string {
			return err.Error()
		}),
	})
}
