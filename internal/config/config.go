// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles dcgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Defaults applied to settings missing from the config file.
const (
	DefaultProvider    = "openai"
	DefaultAPIKeyEnv   = "OPENAI_API_KEY"
	DefaultLLMTimeout  = 60 * time.Second
	DefaultRedisURLEnv = "REDIS_URL"
	DefaultStoreTTL    = 24 * time.Hour
	DefaultPort        = 8000
	DefaultCount       = 5
	MaxCount           = 1000
)

// Providers lists the accepted llm.provider values.
var Providers = []string{"openai", "perplexity", "anthropic"}

// Config represents the dcgen.yaml project configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	LLM      LLMConfig      `yaml:"llm"`
	Store    StoreConfig    `yaml:"store"`
	Server   ServerConfig   `yaml:"server"`
	Generate GenerateConfig `yaml:"generate"`
}

// LLMConfig selects the completion service used for plans.
// The API key itself is never stored; APIKeyEnv names the variable holding it.
type LLMConfig struct {
	Provider  string        `yaml:"provider"`
	Model     string        `yaml:"model,omitempty"`
	APIKeyEnv string        `yaml:"api_key_env"`
	BaseURL   string        `yaml:"base_url,omitempty"`
	Timeout   time.Duration `yaml:"timeout"`
}

// StoreConfig configures saved plans.
type StoreConfig struct {
	RedisURLEnv string        `yaml:"redis_url_env"`
	TTL         time.Duration `yaml:"ttl"`
}

// ServerConfig configures dcgen serve.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// GenerateConfig holds generation defaults.
type GenerateConfig struct {
	Count int    `yaml:"count"`
	Seed  *int64 `yaml:"seed,omitempty"`
}

// Default returns a Config with every setting at its default.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		LLM: LLMConfig{
			Provider:  DefaultProvider,
			APIKeyEnv: DefaultAPIKeyEnv,
			Timeout:   DefaultLLMTimeout,
		},
		Store: StoreConfig{
			RedisURLEnv: DefaultRedisURLEnv,
			TTL:         DefaultStoreTTL,
		},
		Server:   ServerConfig{Port: DefaultPort},
		Generate: GenerateConfig{Count: DefaultCount},
	}
}

// Load reads a Config from a file path. Settings missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if !slices.Contains(Providers, c.LLM.Provider) {
		return fmt.Errorf("llm.provider %q is not one of %v", c.LLM.Provider, Providers)
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.Store.TTL <= 0 {
		return errors.New("store.ttl must be positive")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Generate.Count < 1 || c.Generate.Count > MaxCount {
		return fmt.Errorf("generate.count must be between 1 and %d", MaxCount)
	}
	return nil
}

// APIKey returns the completion API key from the environment, or "".
func (c *Config) APIKey(getenv func(string) string) string {
	if c.LLM.APIKeyEnv == "" {
		return ""
	}
	return getenv(c.LLM.APIKeyEnv)
}

// RedisURL returns the Redis URL from the environment, or "".
func (c *Config) RedisURL(getenv func(string) string) string {
	if c.Store.RedisURLEnv == "" {
		return ""
	}
	return getenv(c.Store.RedisURLEnv)
}

// LoadEnv loads variables from the given dotenv files into the process
// environment without overriding variables already set. Missing files are
// skipped.
func LoadEnv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
