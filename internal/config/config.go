// Package config loads the repovault command-line configuration.
//
// Values are layered: built-in defaults, then the INI file, then
// REPOVAULT_* environment variables, then command-line flags (applied by
// the cmd package).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/inovacc/repovault/internal/application"
	"github.com/inovacc/repovault/internal/medium"
	"gopkg.in/ini.v1"
)

// StorageConfig selects the persistence medium.
type StorageConfig struct {
	Backend       string `ini:"backend" env:"BACKEND"`
	Dir           string `ini:"dir" env:"DIR"`
	MaxValueBytes int    `ini:"max_value_bytes" env:"MAX_VALUE_BYTES"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `ini:"addr" env:"ADDR"`
	Password string `ini:"password" env:"PASSWORD"`
	DB       int    `ini:"db" env:"DB"`
	Prefix   string `ini:"prefix" env:"PREFIX"`
}

// PostgresConfig configures the postgres backend.
type PostgresConfig struct {
	DSN string `ini:"dsn" env:"DSN"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `ini:"level" env:"LEVEL"`
	Format string `ini:"format" env:"FORMAT"`
}

// Config holds the command-line configuration.
type Config struct {
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Postgres PostgresConfig `envPrefix:"POSTGRES_"`
	Log      LogConfig      `envPrefix:"LOG_"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		dir = "."
	}

	return Config{
		Storage: StorageConfig{
			Backend: string(medium.BackendBolt),
			Dir:     dir,
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: application.AppName + ":",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the INI file at path and the
// environment. An empty path means the default location, which may be
// missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := application.DefaultConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.loadFile(path, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: application.EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string, mustExist bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return nil
		}

		return fmt.Errorf("reading config %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := file.Section("storage").MapTo(&c.Storage); err != nil {
		return fmt.Errorf("parsing [storage] in %s: %w", path, err)
	}

	if err := file.Section("redis").MapTo(&c.Redis); err != nil {
		return fmt.Errorf("parsing [redis] in %s: %w", path, err)
	}

	if err := file.Section("postgres").MapTo(&c.Postgres); err != nil {
		return fmt.Errorf("parsing [postgres] in %s: %w", path, err)
	}

	if err := file.Section("log").MapTo(&c.Log); err != nil {
		return fmt.Errorf("parsing [log] in %s: %w", path, err)
	}

	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := medium.ParseBackend(c.Storage.Backend); err != nil {
		return err
	}

	if c.Storage.MaxValueBytes < 0 {
		return fmt.Errorf("max_value_bytes must not be negative, got %d", c.Storage.MaxValueBytes)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}

	return nil
}

// Write saves c as an INI file at path, creating the parent directory.
func (c Config) Write(path string) error {
	file := ini.Empty()

	if err := file.Section("storage").ReflectFrom(&c.Storage); err != nil {
		return err
	}

	if err := file.Section("redis").ReflectFrom(&c.Redis); err != nil {
		return err
	}

	if err := file.Section("postgres").ReflectFrom(&c.Postgres); err != nil {
		return err
	}

	if err := file.Section("log").ReflectFrom(&c.Log); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return file.SaveTo(path)
}

// MediumOptions converts the storage settings for medium.Open.
func (c Config) MediumOptions() medium.Options {
	return medium.Options{
		Backend:       medium.Backend(c.Storage.Backend),
		Dir:           c.Storage.Dir,
		MaxValueBytes: c.Storage.MaxValueBytes,
		Redis: medium.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
		Postgres: medium.PostgresOptions{
			DSN: c.Postgres.DSN,
		},
	}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger builds the slog logger described by c.Log writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
