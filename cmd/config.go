package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	HTTPPort       string
	StoreDriver    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	SeedData       bool
	LogLevel       slog.Level
	ReportSchedule string
	AMQPURL        string
	AMQPExchange   string
}

// LoadConfig reads envFile into the process environment, when it exists, and builds
// the configuration from environment variables. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	config := Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		StoreDriver:    envOr("STORE_DRIVER", StoreDriverMemory),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		SeedData:       true,
		ReportSchedule: "@every 1m",
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   envOr("AMQP_EXCHANGE", "grubdash.orders"),
	}

	// An explicitly empty REPORT_SCHEDULE turns the report off.
	if schedule, ok := os.LookupEnv("REPORT_SCHEDULE"); ok {
		config.ReportSchedule = schedule
	}

	if raw := os.Getenv("SEED_DATA"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_DATA %q: %w", raw, err)
		}
		config.SeedData = seed
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	switch config.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: want %s or %s",
			config.StoreDriver, StoreDriverMemory, StoreDriverPostgres)
	}

	return config, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
