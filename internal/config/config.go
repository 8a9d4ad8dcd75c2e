// Package config handles application configuration loading from environment
// variables, optionally seeded from a .env file. It provides a centralized
// Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends for the catalog record.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendValkey   = "valkey"
	BackendS3       = "s3"
	BackendMemory   = "memory"
)

// Backends lists every accepted STYLEPINS_BACKEND value.
var Backends = []string{BackendFile, BackendSQLite, BackendPostgres, BackendValkey, BackendS3, BackendMemory}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	Env       string // "development", "production", "testing"
	LogLevel  string
	LogFormat string // "text" or "json"

	// Catalog storage
	Backend       string
	RecordKey     string
	DataDir       string
	SQLitePath    string
	HashPasswords bool

	// Admin credentials for commands that change the catalog. Flags take
	// precedence.
	AdminUsername string
	AdminPassword string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int

	// S3-compatible object storage
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Variables from the .env file named by
// STYLEPINS_ENV_FILE (default ".env") are applied first without overriding
// the real environment; a missing file is ignored.
func Load() (*Config, error) {
	envFile := envOrDefault("STYLEPINS_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		slog.Debug("loaded env file", "path", envFile)
	}

	cfg := &Config{
		Env:       envOrDefault("APP_ENV", "development"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		Backend:    strings.ToLower(envOrDefault("STYLEPINS_BACKEND", BackendFile)),
		RecordKey:  envOrDefault("STYLEPINS_RECORD_KEY", "stylepins_db"),
		DataDir:    envOrDefault("STYLEPINS_DATA_DIR", "./data"),
		SQLitePath: envOrDefault("STYLEPINS_SQLITE_PATH", "./data/stylepins.db"),

		AdminUsername: envOrDefault("STYLEPINS_ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("STYLEPINS_ADMIN_PASSWORD"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "stylepins"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "stylepins"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "stylepins"),
	}

	var err error
	if cfg.HashPasswords, err = strconv.ParseBool(envOrDefault("STYLEPINS_HASH_PASSWORDS", "false")); err != nil {
		return nil, fmt.Errorf("STYLEPINS_HASH_PASSWORDS: %w", err)
	}
	if cfg.ValkeyDB, err = strconv.Atoi(envOrDefault("VALKEY_DB", "0")); err != nil {
		return nil, fmt.Errorf("VALKEY_DB: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks combinations Load cannot default its way out of.
func (c *Config) Validate() error {
	known := false
	for _, b := range Backends {
		if c.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown STYLEPINS_BACKEND %q (want one of %s)", c.Backend, strings.Join(Backends, ", "))
	}

	if c.Env == "production" && c.Backend == BackendPostgres {
		if c.DBPassword == "changeme" {
			return fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	if c.Backend == BackendS3 {
		if c.S3Endpoint == "" || c.S3AccessKey == "" || c.S3SecretKey == "" {
			return fmt.Errorf("s3 backend requires S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY")
		}
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
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

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
