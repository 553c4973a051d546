package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration for the theme preference"`
	Content  ContentConfig  `yaml:"content" json:"content" jsonschema:"description=Article sources"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL  string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and share links"`
	PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=6,minimum=1,description=Articles per page"`
	Latency  time.Duration `yaml:"latency" json:"latency" jsonschema:"default=0s,description=Simulated article fetch delay for the list partial"`
}

// DatabaseConfig holds SQLite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:gamedesk.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ContentConfig lists where articles come from
type ContentConfig struct {
	Files []string `yaml:"files" json:"files" jsonschema:"description=Article data files (yaml or json), embedded dataset when empty"`
	Feeds []string `yaml:"feeds" json:"feeds" jsonschema:"description=RSS or Atom files imported as articles"`
	Seed  int64    `yaml:"seed" json:"seed" jsonschema:"default=0,description=Random seed for highlight and related picks, 0 for time based"`
}

const (
	defaultListen   = ":8080"
	defaultTimeout  = 30 * time.Second
	defaultBaseURL  = "http://localhost:8080"
	defaultPageSize = 6
	defaultDSN      = "file:gamedesk.db?cache=shared&mode=rwc&_txlock=immediate"
)

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finalize(&cfg)
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	// validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = defaultListen
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = defaultTimeout
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = defaultBaseURL
	}
	if cfg.Server.PageSize == 0 {
		cfg.Server.PageSize = defaultPageSize
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = defaultDSN
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.PageSize < 1 {
		return fmt.Errorf("server.page_size must be at least 1")
	}
	if cfg.Server.Latency < 0 {
		return fmt.Errorf("server.latency must be non-negative")
	}
	if cfg.Server.Latency >= cfg.Server.Timeout {
		return fmt.Errorf("server.latency %v must be shorter than server.timeout %v", cfg.Server.Latency, cfg.Server.Timeout)
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database pool sizes must be non-negative")
	}
	for _, f := range cfg.Content.Files {
		if f == "" {
			return fmt.Errorf("content.files contains an empty path")
		}
	}
	for _, f := range cfg.Content.Feeds {
		if f == "" {
			return fmt.Errorf("content.feeds contains an empty path")
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL used for absolute links
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetPageSize returns the number of articles per page
func (c *Config) GetPageSize() int {
	return c.Server.PageSize
}

// GetLatency returns the simulated fetch delay for the article list
func (c *Config) GetLatency() time.Duration {
	return c.Server.Latency
}

// GetSeed returns the random seed for highlight and related picks, 0 means time based
func (c *Config) GetSeed() int64 {
	return c.Content.Seed
}
