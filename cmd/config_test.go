package cmd

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PRODUCT_SERVICE_URL", "http://products:3001")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.ProductServiceTimeout)
	assert.Equal(t, uint32(5), cfg.ProductBreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.ProductBreakerOpenTimeout)
	assert.Equal(t, 1, cfg.MaxOrderItems)
	assert.False(t, cfg.DegradedReads)
	assert.Equal(t, "orders.events", cfg.KafkaOrderEventsTopic)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoadConfig_RequiresProductServiceURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PRODUCT_SERVICE_URL", "")
	require.NoError(t, os.Unsetenv("PRODUCT_SERVICE_URL"))

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_RejectsZeroMaxItems(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PRODUCT_SERVICE_URL", "http://products:3001")
	t.Setenv("MAX_ORDER_ITEMS", "0")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "MAX_ORDER_ITEMS")
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", cfg.DSN())
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "bogus"}.SlogLevel())
}
