package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type StoreConfig struct {
	SeedCount  int    `yaml:"seed_count"`
	RandomSeed uint64 `yaml:"random_seed"` // 0 = seeded from the clock
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

type DashboardConfig struct {
	APIURL   string `yaml:"api_url"` // empty = local in-process store
	DarkMode bool   `yaml:"dark_mode"`
}

// DefaultRateLimitRequests is the per-client budget for one rate-limit window.
const DefaultRateLimitRequests = 600

// DefaultEnvFile is read when no env file is given.
const DefaultEnvFile = ".env"

// Environment variables that override file values
const (
	EnvPort       = "CONTRACTDASH_PORT"
	EnvLogLevel   = "CONTRACTDASH_LOG_LEVEL"
	EnvLogFormat  = "CONTRACTDASH_LOG_FORMAT"
	EnvSeedCount  = "CONTRACTDASH_SEED_COUNT"
	EnvRandomSeed = "CONTRACTDASH_RANDOM_SEED"
	EnvAPIURL     = "CONTRACTDASH_API_URL"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads the YAML file at path, fills defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults when the file is missing.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = &Config{}
		if err := cfg.finish(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// LoadEnvFile loads variables from envFile into the process environment.
// A missing file is not an error; existing variables are never overwritten.
func LoadEnvFile(envFile string) error {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed loading env file %s: %w", envFile, err)
	}
	return nil
}

// finish applies environment overrides, then fills whatever is still zero, so
// a zero from either source means "use the default".
func (c *Config) finish() error {
	if err := c.applyEnvOverrides(); err != nil {
		return err
	}
	c.setDefaults()
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.SeedCount == 0 {
		c.Store.SeedCount = 50
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = DefaultRateLimitRequests
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvSeedCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeedCount, err)
		}
		c.Store.SeedCount = n
	}
	if v := os.Getenv(EnvRandomSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRandomSeed, err)
		}
		c.Store.RandomSeed = n
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.Dashboard.APIURL = v
	}
	return nil
}
