// Package config loads the settings of the quotes tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/quotes"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "quotes.yaml"

// EnvFile is the dotenv file read next to the configuration file.
const EnvFile = ".env"

// Config holds all the tool configuration.
type Config struct {
	Dir        string `yaml:"dir"`
	TextExt    string `yaml:"text_ext"`
	Format     string `yaml:"format"`
	Conversion string `yaml:"conversion"`
	Currency   string `yaml:"currency"`
	Log        struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
//
// A missing file is not an error, the defaults are used instead. Variables of
// the EnvFile next to it never override the actual environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(filepath.Join(filepath.Dir(path), EnvFile)); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("QUOTES_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("QUOTES_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("QUOTES_CONVERSION"); v != "" {
		cfg.Conversion = v
	}
	if v := os.Getenv("QUOTES_CURRENCY"); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv("QUOTES_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("QUOTES_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Dir == "" {
		cfg.Dir = quotes.DefaultDir
	}
	if cfg.TextExt == "" {
		cfg.TextExt = quotes.DefaultTextExt
	}
	if cfg.Format == "" {
		cfg.Format = string(quotes.JSON)
	}
	if cfg.Conversion == "" {
		cfg.Conversion = quotes.Truncate.String()
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "quotes.db"
	}

	return cfg, nil
}

// Pipeline returns the conversion pipeline configuration.
func (c *Config) Pipeline() (quotes.Config, error) {
	format, err := quotes.ParseFormat(c.Format)
	if err != nil {
		return quotes.Config{}, fmt.Errorf("config format: %w", err)
	}
	conversion, err := quotes.ParseConversion(c.Conversion)
	if err != nil {
		return quotes.Config{}, fmt.Errorf("config conversion: %w", err)
	}
	return quotes.Config{
		Dir:        c.Dir,
		TextExt:    c.TextExt,
		Format:     format,
		Conversion: conversion,
	}, nil
}

// Validate checks that all the values are usable.
func (c *Config) Validate() error {
	if _, err := c.Pipeline(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("currency %q must be a 3 letter ISO 4217 code", c.Currency)
	}
	return nil
}
