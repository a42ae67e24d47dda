// Package config loads knightmoves settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails to load or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultAddr          = ":8080"
	DefaultCacheSize     = 1024
	DefaultMaxCoordinate = 1000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config is the full application configuration.
type Config struct {
	Server    Server `yaml:"server"`
	Cache     Cache  `yaml:"cache"`
	Search    Search `yaml:"search"`
	Log       Log    `yaml:"log"`
	Scenarios string `yaml:"scenarios"` // optional scenario file for `check`
}

// Server configures the HTTP listener.
type Server struct {
	Addr string `yaml:"addr"`
}

// Cache configures result memoisation. Size 0 disables the cache.
type Cache struct {
	Size int `yaml:"size"`
}

// Search bounds the inputs accepted from untrusted callers.
type Search struct {
	// MaxCoordinate caps |row| and |col| of every queried square; 0 means no cap.
	MaxCoordinate int `yaml:"max_coordinate"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{Addr: DefaultAddr},
		Cache:  Cache{Size: DefaultCacheSize},
		Search: Search{MaxCoordinate: DefaultMaxCoordinate},
		Log:    Log{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.decode(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML data over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("%w: cache.size cannot be negative (%d)", ErrInvalidConfig, c.Cache.Size)
	}
	if c.Search.MaxCoordinate < 0 {
		return fmt.Errorf("%w: search.max_coordinate cannot be negative (%d)", ErrInvalidConfig, c.Search.MaxCoordinate)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
	}
}
