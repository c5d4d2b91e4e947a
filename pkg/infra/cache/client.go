package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// Options translates the redis section into client options. A URI, when
// present, wins over the discrete fields.
func Options(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URI != "" {
		options, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("invalid redis uri: %w", err)
		}
		return options, nil
	}
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	return options, nil
}

// NewClient builds the single shared client and pings it. The caller owns
// the client and closes it on shutdown.
func NewClient(cfg config.RedisConfig, logger *logrus.Logger) (*redis.Client, error) {
	options, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"addr":  options.Addr,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithField("addr", options.Addr).Info("redis connected successfully")
	return redisClient, nil
}
