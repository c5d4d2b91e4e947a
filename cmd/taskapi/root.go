package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/TaskAPI/pkg/infra/logger"
	_ "github.com/NeuralTrust/TaskAPI/pkg/infra/migrations"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taskapi",
		Short:         "Task management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "", "directory containing config.yaml")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func loadEnv() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
}

// bootstrap loads configuration and opens the logger and database shared by
// every command. The returned cleanup closes them in reverse order.
func bootstrap(opts *rootOptions) (*config.Config, *logrus.Logger, *database.DB, func(), error) {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLogger, err := infraLogger.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewDB(logger, cfg.Database)
	if err != nil {
		closeLogger()
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
		closeLogger()
	}
	return cfg, logger, db, cleanup, nil
}
