package main

import (
	"os"

	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title EduLink AI API
// @version 1.0
// @description Adaptive learning backend: generated lessons and quizzes, forget prediction, topic mastery and learning analytics.
// @contact.name API Support
// @host localhost:3000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "edulink",
		Short:         "EduLink AI learning API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate()
			},
		},
	)
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel, cfg.Server.GinMode != "release")
	return cfg, nil
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load config")
		return err
	}
	app := newApp(cfg)
	app.Run()
	return app.Err()
}

func runMigrate() error {
	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load config")
		return err
	}
	store := database.NewDatabase(cfg)
	defer store.Close()
	if _, err := store.Gorm(); err != nil {
		log.Error().Err(err).Msg("Cannot migrate without a database")
		return err
	}
	return store.AutoMigrate()
}
