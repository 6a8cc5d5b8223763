package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"grubdash/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "STORE_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "SEED_DATA", "LOG_LEVEL", "REPORT_SCHEDULE", "AMQP_URL", "AMQP_EXCHANGE",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, StoreDriverMemory, config.StoreDriver)
	assert.True(t, config.SeedData)
	assert.Equal(t, slog.LevelInfo, config.LogLevel)
	assert.Equal(t, "@every 1m", config.ReportSchedule)
	assert.Empty(t, config.AMQPURL)
	assert.Equal(t, "grubdash.orders", config.AMQPExchange)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "HTTP_PORT=9090\nSTORE_DRIVER=postgres\nDB_HOST=db\nDB_USER=grub\nDB_PASSWORD=secret\n" +
		"DB_NAME=grubdash\nSEED_DATA=false\nLOG_LEVEL=debug\nREPORT_SCHEDULE=\nAMQP_URL=amqp://guest:guest@mq:5672/\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	config, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, StoreDriverPostgres, config.StoreDriver)
	assert.False(t, config.SeedData)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
	assert.Empty(t, config.ReportSchedule)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", config.AMQPURL)
	assert.Equal(t, "host=db port=5432 user=grub password=secret dbname=grubdash sslmode=disable", config.DSN())
}

func TestLoadConfig_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("HTTP_PORT=9090\n"), 0o600))
	t.Setenv("HTTP_PORT", "7070")

	config, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "7070", config.HTTPPort)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		key   string
		value string
	}{
		"seed data":    {key: "SEED_DATA", value: "maybe"},
		"log level":    {key: "LOG_LEVEL", value: "loud"},
		"store driver": {key: "STORE_DRIVER", value: "mongo"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig("")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestCompositionRoot_MemoryStore(t *testing.T) {
	clearEnv(t)
	config, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(config, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, root.Close()) })

	seeded, err := root.Seed(t.Context())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = root.Seed(t.Context())
	require.NoError(t, err)
	assert.False(t, seeded)

	summary, err := root.CreateGetOrderStatusSummaryQueryHandler().Handle(t.Context(), queries.NewGetOrderStatusSummaryQuery())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
}
