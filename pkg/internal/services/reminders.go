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

const orderReminderWindow = 7 * 24 * time.Hour

// ListOrdersNeedingReminder returns pending orders placed within the reminder
// window, with their customers preloaded.
func ListOrdersNeedingReminder() ([]models.Order, error) {
	since := time.Now().Add(-orderReminderWindow)

	var orders []models.Order
	if err := database.C.Preload("Customer").
		Where("created_at >= ?", since).
		Where("status = ?", models.OrderStatusPending).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func RunOrderReminderTask() {
	orders, err := ListOrdersNeedingReminder()
	if err != nil {
		log.Error().Err(err).Msg("An error occurred when looking up orders needing reminders...")
		return
	}
	if len(orders) == 0 {
		log.Debug().Msg("No pending orders needing reminders.")
		return
	}

	timestamp := reportTimestamp(time.Now())
	lines := lo.Map(orders, func(order models.Order, _ int) string {
		return fmt.Sprintf("[%s] Reminder for Order %s - %s", timestamp, order.Uuid, order.Customer.Email)
	})

	if err := appendReportLines(viper.GetString("reports.order_reminders"), lines...); err != nil {
		log.Error().Err(err).Msg("An error occurred when writing the order reminders report...")
		return
	}

	log.Info().Int("count", len(orders)).Msg("Order reminders processed.")
}
