package services

import (
	"fmt"
	"time"

	"clientele/pkg/internal/database"
	"clientele/pkg/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Customers count as inactive once their newest order is older than this.
const InactiveCustomerMaxAge = 365 * 24 * time.Hour

// CleanupInactiveCustomers permanently removes every customer that has no
// order newer than the cutoff, which also covers customers with no orders at
// all. Their orders go with them via the foreign key cascade.
func CleanupInactiveCustomers() (int64, error) {
	cutoff := time.Now().Add(-InactiveCustomerMaxAge)

	recentOrderers := database.C.Model(&models.Order{}).
		Select("customer_id").
		Where("created_at >= ?", cutoff)

	tx := database.C.Unscoped().
		Where("id NOT IN (?)", recentOrderers).
		Delete(&models.Customer{})
	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}

func RunInactiveCustomerCleanup() {
	start := time.Now()
	count, err := CleanupInactiveCustomers()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when cleaning up inactive customers...")
		return
	}

	line := fmt.Sprintf("[%s] Deleted %d inactive customers.", reportTimestamp(time.Now()), count)
	if err := appendReportLines(viper.GetString("reports.customer_cleanup"), line); err != nil {
		log.Error().Err(err).Msg("An error occurred when writing the customer cleanup report...")
		return
	}

	log.Info().Dur("elapsed", time.Since(start)).Int64("count", count).Msg("Inactive customers cleanup accomplished.")
}
