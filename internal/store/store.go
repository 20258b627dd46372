// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package store keeps named generation plans, in Redis when one is
// reachable and in process memory otherwise.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dacolabs/dcgen/internal/plan"
)

// DefaultTTL is how long a saved plan lives.
const DefaultTTL = 24 * time.Hour

var (
	// ErrNotFound is returned when no plan is saved under a name.
	ErrNotFound = errors.New("plan not found")
	// ErrRedisUnavailable reports that Open fell back to memory.
	ErrRedisUnavailable = errors.New("redis unavailable, using in-memory plan storage")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Store saves plans under names.
type Store interface {
	Save(ctx context.Context, name string, p *plan.Plan) error
	Load(ctx context.Context, name string) (*plan.Plan, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

// ValidateName checks that name can be used as a plan name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid plan name %q: use letters, digits, '.', '-' or '_'", name)
	}
	return nil
}

// Open connects to the Redis server at url. An empty url selects memory
// storage. When the server cannot be reached Open returns a memory store
// together with an error wrapping ErrRedisUnavailable; that store is usable.
func Open(ctx context.Context, url string, ttl time.Duration) (Store, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if url == "" {
		return NewMemory(ttl), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return NewMemory(ttl), fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return NewMemory(ttl), fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return NewRedis(client, ttl), nil
}
