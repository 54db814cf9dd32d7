// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Seed sources understood by SEED_SOURCE.
const (
	SeedBuiltin  = "builtin"
	SeedFile     = "file"
	SeedPostgres = "postgres"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// Where the catalog is initialized from.
	SeedSource string
	SeedFile   string

	// PostgreSQL fixture database (SEED_SOURCE=postgres only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible) response cache. Empty host disables it.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	CacheTTL       time.Duration

	// API requests allowed per minute per client IP; 0 disables limiting.
	RateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or critical values are missing in production mode.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with variables looked up through getenv, so callers can
// layer overrides over the environment without modifying it.
func LoadFrom(getenv func(string) string) (*Config, error) {
	envOrDefault := func(key, fallback string) string {
		return valueOrDefault(getenv(key), fallback)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		SeedSource: strings.ToLower(envOrDefault("SEED_SOURCE", SeedBuiltin)),
		SeedFile:   getenv("SEED_FILE"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "toolnav"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "toolnav"),

		ValkeyHost:     getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: getenv("VALKEY_PASSWORD"),
	}

	defaultLevel := "info"
	if cfg.IsDev() {
		defaultLevel = "debug"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", defaultLevel))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(envOrDefault("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %s", ttl)
	}
	cfg.CacheTTL = ttl

	limit, err := strconv.Atoi(envOrDefault("RATE_LIMIT", "120"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}
	if limit < 0 {
		return nil, fmt.Errorf("RATE_LIMIT must not be negative, got %d", limit)
	}
	cfg.RateLimit = limit

	switch cfg.SeedSource {
	case SeedBuiltin, SeedPostgres:
	case SeedFile:
		if cfg.SeedFile == "" {
			return nil, fmt.Errorf("SEED_FILE must be set when SEED_SOURCE=file")
		}
	default:
		return nil, fmt.Errorf("SEED_SOURCE %q is not one of builtin, file, postgres", cfg.SeedSource)
	}

	if cfg.Env == "production" && cfg.SeedSource == SeedPostgres {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey response cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// valueOrDefault returns v, or fallback when v is empty.
func valueOrDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
