package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		customers := api.Group("/customers").Name("Customers API")
		{
			customers.Get("/", listCustomer)
			customers.Get("/:id", getCustomer)
			customers.Post("/", createCustomer)
			customers.Post("/bulk", createCustomerBatch)
		}

		products := api.Group("/products").Name("Products API")
		{
			products.Get("/", listProduct)
			products.Post("/", createProduct)
		}

		orders := api.Group("/orders").Name("Orders API")
		{
			orders.Get("/", listOrder)
			orders.Post("/", createOrder)
		}

		maintenance := api.Group("/maintenance").Name("Maintenance API")
		{
			maintenance.Post("/cleanup-inactive", cleanupInactiveCustomers)
			maintenance.Post("/restock-low-stock", restockLowStock)
		}
	}
}
