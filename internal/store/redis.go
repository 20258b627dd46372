// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dacolabs/dcgen/internal/plan"
)

// KeyPrefix namespaces plan keys.
const KeyPrefix = "dcgen:plan:"

// Redis stores plans as JSON strings with an expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an already connected client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Save(ctx context.Context, name string, p *plan.Plan) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if p == nil {
		return errors.New("cannot save a nil plan")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := r.client.Set(ctx, KeyPrefix+name, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save plan %q: %w", name, err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, name string) (*plan.Plan, error) {
	data, err := r.client.Get(ctx, KeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %q: %w", name, err)
	}
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode plan %q: %w", name, err)
	}
	return &p, nil
}

func (r *Redis) List(ctx context.Context) ([]string, error) {
	var names []string
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, KeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to list plans: %w", err)
		}
		names = append(names, keys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return planNames(names), nil
}

// planNames strips the key prefix and returns the sorted, distinct names.
// SCAN may return a key more than once.
func planNames(keys []string) []string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, KeyPrefix))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (r *Redis) Delete(ctx context.Context, name string) error {
	n, err := r.client.Del(ctx, KeyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete plan %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
