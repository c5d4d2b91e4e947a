package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Env         string `mapstructure:"env"`
	MetricsPort int    `mapstructure:"metrics_port"`
	BodyLimit   int    `mapstructure:"body_limit"`
}

func (s ServerConfig) IsDevelopment() bool {
	return s.Env == EnvDevelopment
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	// DSN, when set, takes precedence over the discrete fields.
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
	// URI, when set, takes precedence over the discrete fields.
	URI string `mapstructure:"uri"`
}

type CacheConfig struct {
	// TTL in seconds.
	TTL int `mapstructure:"ttl"`
}

func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type RateLimitConfig struct {
	Max           int           `mapstructure:"max"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Breaker       BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

type CORSConfig struct {
	AllowOrigins  []string `mapstructure:"allow_origins"`
	AllowMethods  []string `mapstructure:"allow_methods"`
	AllowHeaders  []string `mapstructure:"allow_headers"`
	ExposeHeaders []string `mapstructure:"expose_headers"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads config.yaml from configPath (falling back to ./config and .),
// overlays environment variables and validates the result. A missing file is
// not an error: defaults plus environment are enough to run.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaultValues(v)
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeHook lets list settings arrive from the environment as
// comma-separated strings.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("rate_limit.max must be positive, got %d", c.RateLimit.Max)
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit.window_seconds must be positive, got %d", c.RateLimit.WindowSeconds)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %d", c.Cache.TTL)
	}
	return nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3333)
	v.SetDefault("server.env", EnvDevelopment)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit", 1024*1024)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.enable_latency", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "todo_api")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.dsn", "")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)
	v.SetDefault("redis.uri", "")

	v.SetDefault("cache.ttl", 60)

	v.SetDefault("rate_limit.max", 100)
	v.SetDefault("rate_limit.window_seconds", 900)
	v.SetDefault("rate_limit.breaker.max_failures", 5)
	v.SetDefault("rate_limit.breaker.open_timeout", "30s")

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Content-Type", "x-api-key"})
	v.SetDefault("cors.expose_headers", []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// bindLegacyEnv keeps the flat variable names older deployments use.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":               {"SERVER_PORT", "PORT"},
		"server.env":                {"SERVER_ENV", "APP_ENV", "NODE_ENV"},
		"database.dsn":              {"DATABASE_DSN", "DATABASE_URL"},
		"redis.uri":                 {"REDIS_URI", "REDIS_URL"},
		"cache.ttl":                 {"CACHE_TTL"},
		"rate_limit.max":            {"RATE_LIMIT_MAX"},
		"rate_limit.window_seconds": {"RATE_LIMIT_WINDOW_SECONDS", "RATE_LIMIT_WINDOW"},
		"log.level":                 {"LOG_LEVEL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env for %s: %w", key, err)
		}
	}
	return nil
}
