// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/dcgen/internal/config"
	"github.com/dacolabs/dcgen/internal/llm"
	"github.com/dacolabs/dcgen/internal/store"
)

// ErrInvalidConfig indicates the config file exists but is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigFileName is the name of the dcgen configuration file.
const ConfigFileName = "dcgen.yaml"

// EnvFiles are the dotenv files read from the project directory, in order.
var EnvFiles = []string{".env", ".env.local"}

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the loaded configuration, or the defaults when the project
	// has no dcgen.yaml.
	Config *config.Config

	// Dir is the project directory.
	Dir string

	// Initialized reports whether dcgen.yaml was found.
	Initialized bool

	// Getenv reads environment variables.
	Getenv func(string) string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the dcgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	sess, err := LoadDir(cwd, os.Getenv)
	if err != nil {
		return nil, err
	}
	return With(ctx, sess), nil
}

// LoadDir reads the dotenv files and dcgen.yaml of dir.
func LoadDir(dir string, getenv func(string) string) (*Context, error) {
	envFiles := make([]string, len(EnvFiles))
	for i, name := range EnvFiles {
		envFiles[i] = filepath.Join(dir, name)
	}
	if err := config.LoadEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	sess := &Context{Config: config.Default(), Dir: dir, Getenv: getenv}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return sess, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	sess.Config = cfg
	sess.Initialized = true
	return sess, nil
}

// With returns a copy of ctx carrying sess.
func With(ctx context.Context, sess *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// From extracts the dcgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sess, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sess
	}
	return nil
}

// Planner returns a plan builder for the configured provider. Without an
// API key in the environment the planner is heuristic only.
func (c *Context) Planner() (*llm.Planner, error) {
	cfg := c.Config.LLM
	return llm.NewPlanner(llm.Config{
		Provider: llm.Provider(cfg.Provider),
		APIKey:   c.Config.APIKey(c.getenv()),
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
	})
}

// OpenStore opens the plan store. When Redis is configured but unreachable
// the returned store is in memory and the error wraps store.ErrRedisUnavailable.
func (c *Context) OpenStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, c.Config.RedisURL(c.getenv()), c.Config.Store.TTL)
}

func (c *Context) getenv() func(string) string {
	if c.Getenv == nil {
		return os.Getenv
	}
	return c.Getenv
}
