// Package config loads fasim settings from a YAML file and FASIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given and it exists in the working directory.
const DefaultFile = "fasim.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FASIM_"

// Config holds all application configuration.
type Config struct {
	Table   string      `mapstructure:"table" yaml:"table"`
	Inputs  string      `mapstructure:"inputs" yaml:"inputs"`
	Workers int         `mapstructure:"workers" yaml:"workers"`
	Parse   ParseConfig `mapstructure:"parse" yaml:"parse"`
	Log     LogConfig   `mapstructure:"log" yaml:"log"`
	Store   StoreConfig `mapstructure:"store" yaml:"store"`
	HTTP    HTTPConfig  `mapstructure:"http" yaml:"http"`
}

// ParseConfig controls how table and request lines are tokenized.
type ParseConfig struct {
	TrimSpace bool `mapstructure:"trim_space" yaml:"trim_space"`
	SharedRow bool `mapstructure:"shared_row" yaml:"shared_row"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// StoreConfig selects where simulation traces are kept.
type StoreConfig struct {
	// Driver is one of "none", "memory" or "redis".
	Driver string      `mapstructure:"driver" yaml:"driver"`
	Redis  RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig holds the Redis trace store connection.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// HTTPConfig holds the API server configuration.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Table:   "faparity.txt",
		Inputs:  "fainputparity.txt",
		Workers: 1,
		Log:     LogConfig{Level: "info", Format: "text"},
		Store: StoreConfig{
			Driver: "none",
			Redis:  RedisConfig{Addr: "localhost:6379", Prefix: "fasim:trace:"},
		},
		HTTP: HTTPConfig{Addr: ":8080"},
	}
}

// envKeys maps environment suffixes to nested config keys.
var envKeys = map[string][]string{
	"TABLE":            {"table"},
	"INPUTS":           {"inputs"},
	"WORKERS":          {"workers"},
	"PARSE_TRIM_SPACE": {"parse", "trim_space"},
	"PARSE_SHARED_ROW": {"parse", "shared_row"},
	"LOG_LEVEL":        {"log", "level"},
	"LOG_FORMAT":       {"log", "format"},
	"STORE_DRIVER":     {"store", "driver"},
	"REDIS_ADDR":       {"store", "redis", "addr"},
	"REDIS_PASSWORD":   {"store", "redis", "password"},
	"REDIS_DB":         {"store", "redis", "db"},
	"REDIS_PREFIX":     {"store", "redis", "prefix"},
	"REDIS_TTL":        {"store", "redis", "ttl"},
	"HTTP_ADDR":        {"http", "addr"},
}

// Load builds the configuration: defaults, then the YAML file, then environment.
// An empty path reads DefaultFile if present; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	raw := map[string]any{}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	for suffix, keys := range envKeys {
		if v, ok := lookupEnv(EnvPrefix + suffix); ok {
			setPath(raw, keys, v)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("invalid config: workers must be at least 1, got %d", c.Workers)
	}
	switch c.Store.Driver {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("invalid config: unknown store driver %q", c.Store.Driver)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid config: unknown log format %q", c.Log.Format)
	}
	return nil
}

func setPath(m map[string]any, keys []string, v string) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = v
}
