package main

import (
	"os"
	"os/signal"
	"syscall"

	"clientele/pkg/internal/cache"
	"clientele/pkg/internal/database"
	"clientele/pkg/internal/server"
	"clientele/pkg/internal/services"
	"github.com/robfig/cron/v3"

	pkg "clientele/pkg/internal"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewSource(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Set up cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache store.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("0 2 * * 0", services.RunInactiveCustomerCleanup)
	quartz.AddFunc("@every 12h", services.RunLowStockRestockTask)
	quartz.AddFunc("@daily", services.RunOrderReminderTask)
	quartz.Start()

	// Server
	server.NewServer()
	go server.Listen()

	// Messages
	log.Info().Msgf("Clientele v%s is started...", pkg.AppVersion)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msgf("Clientele v%s is quitting...", pkg.AppVersion)

	quartz.Stop()
}
