package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"orders"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	ProductServiceURL         string        `envconfig:"PRODUCT_SERVICE_URL" required:"true"`
	ProductServiceTimeout     time.Duration `envconfig:"PRODUCT_SERVICE_TIMEOUT" default:"3s"`
	ProductBreakerFailures    uint32        `envconfig:"PRODUCT_BREAKER_FAILURES" default:"5"`
	ProductBreakerOpenTimeout time.Duration `envconfig:"PRODUCT_BREAKER_OPEN_TIMEOUT" default:"30s"`

	MaxOrderItems int  `envconfig:"MAX_ORDER_ITEMS" default:"1"`
	DegradedReads bool `envconfig:"DEGRADED_READS" default:"false"`

	KafkaBrokers          string `envconfig:"KAFKA_BROKERS"`
	KafkaOrderEventsTopic string `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"orders.events"`

	OutboxRelaySchedule string `envconfig:"OUTBOX_RELAY_SCHEDULE" default:"*/2 * * * * *"`
	OutboxBatchSize     int    `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
}

// LoadConfig reads .env when present and decodes the environment.
// Variables already set in the environment win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxOrderItems < 1 {
		return Config{}, fmt.Errorf("MAX_ORDER_ITEMS must be at least 1, got %d", cfg.MaxOrderItems)
	}

	return cfg, nil
}

// DSN is the libpq key/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
