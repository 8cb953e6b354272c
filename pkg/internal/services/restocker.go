package services

import (
	"fmt"
	"time"

	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	lowStockThreshold = 10
	restockAmount     = 10
)

// RestockLowStockProducts tops up every product whose stock ran below the
// threshold and returns them with their new stock levels.
func RestockLowStockProducts() ([]models.Product, error) {
	var products []models.Product
	if err := database.C.Where("stock < ?", lowStockThreshold).Find(&products).Error; err != nil {
		return nil, err
	}

	for idx := range products {
		products[idx].Stock += restockAmount
		if err := database.C.Model(&products[idx]).Update("stock", products[idx].Stock).Error; err != nil {
			return nil, err
		}
	}

	return products, nil
}

func RunLowStockRestockTask() {
	products, err := RestockLowStockProducts()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when restocking low stock products...")
		return
	}

	lines := append(
		[]string{fmt.Sprintf("[%s] Restocked %d low stock products.", reportTimestamp(time.Now()), len(products))},
		lo.Map(products, func(product models.Product, _ int) string {
			return fmt.Sprintf(" - %s: new stock = %d", product.Name, product.Stock)
		})...,
	)

	if err := appendReportLines(viper.GetString("reports.low_stock"), lines...); err != nil {
		log.Error().Err(err).Msg("An error occurred when writing the low stock report...")
		return
	}

	log.Info().Int("count", len(products)).Msg("Low stock restock accomplished.")
}
