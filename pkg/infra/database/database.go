package database

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 50
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 60 * time.Second

	pingTimeout      = 10 * time.Second
	migrationTimeout = 30 * time.Second
)

// DB represents the database connection
type DB struct {
	logger *logrus.Logger
	*gorm.DB
}

// DSN returns cfg.DSN when present, otherwise a keyword/value string built
// from the discrete fields.
func DSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// NewDB opens the pool and verifies connectivity. Migrations are applied
// separately through Migrate.
func NewDB(logger *logrus.Logger, cfg config.DatabaseConfig) (*DB, error) {
	logger.WithFields(logrus.Fields{
		"host":    cfg.Host,
		"port":    cfg.Port,
		"db":      cfg.DBName,
		"sslmode": cfg.SSLMode,
		"dsn":     cfg.DSN != "",
	}).Info("connecting to database")

	gormDB, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
	logger.WithFields(logrus.Fields{
		"max_open_conns":     maxOpenConns,
		"max_idle_conns":     maxIdleConns,
		"conn_max_lifetime":  connMaxLifetime.String(),
		"conn_max_idle_time": connMaxIdleTime.String(),
	}).Info("configured database connection pool")

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &DB{logger: logger, DB: gormDB}, nil
}

// Migrate applies every pending registered migration, giving up after
// migrationTimeout.
func (db *DB) Migrate(ctx context.Context) error {
	db.logger.WithField("timeout", migrationTimeout.String()).Info("applying database migrations")
	ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- NewMigrationsManager(db.DB.WithContext(ctx)).ApplyPending()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			db.logger.WithError(err).Error("failed to apply database migrations")
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		db.logger.Info("database migrations applied")
		return nil
	case <-ctx.Done():
		db.logger.WithError(ctx.Err()).Error("database migrations timed out")
		return fmt.Errorf("database migrations timed out: %w", ctx.Err())
	}
}

// Ping reports whether the database answers within ctx.
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
