package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/dependency_container"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/cache"
	"github.com/NeuralTrust/TaskAPI/pkg/server"
	"github.com/NeuralTrust/TaskAPI/pkg/server/router"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply pending migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	startedAt := time.Now()

	cfg, logger, db, cleanup, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	redisClient, err := cache.NewClient(cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Warn("failed to close redis client")
		}
	}()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:       cfg,
		Logger:    logger,
		DB:        db,
		Redis:     redisClient,
		StartedAt: startedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	apiServer := server.NewAPIServer(server.APIServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(container.MiddlewareTransport, container.HandlerTransport),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- apiServer.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutdown signal received")
	}

	if err := apiServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down server")
	}
	logger.Info("server stopped")
	return nil
}
