package database

import (
	"clientele/pkg/internal/models"

	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Customer{},
	&models.Product{},
	&models.Order{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		AutoMaintainRange...,
	); err != nil {
		return err
	}

	return nil
}
