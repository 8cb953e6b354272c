package services

import (
	"fmt"

	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"
)

func ListProduct() ([]models.Product, error) {
	var products []models.Product
	if err := database.C.Find(&products).Error; err != nil {
		return products, err
	}
	return products, nil
}

func NewProduct(product models.Product) (models.Product, error) {
	if product.Price.Sign() <= 0 {
		return product, fmt.Errorf("price must be positive")
	}
	if product.Stock < 0 {
		return product, fmt.Errorf("stock cannot be negative")
	}

	if err := database.C.Save(&product).Error; err != nil {
		return product, err
	}
	return product, nil
}
