// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dacolabs/dcgen/internal/plan"
)

type entry struct {
	plan    *plan.Plan
	expires time.Time
}

// Memory is a process-local Store. Plans expire after the TTL.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewMemory returns an empty Memory store.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

func (m *Memory) Save(_ context.Context, name string, p *plan.Plan) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if p == nil {
		return errors.New("cannot save a nil plan")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.evict(now)
	m.entries[name] = entry{plan: p.Clone(), expires: now.Add(m.ttl)}
	return nil
}

func (m *Memory) Load(_ context.Context, name string) (*plan.Plan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[name]
	if !ok || !m.now().Before(e.expires) {
		return nil, ErrNotFound
	}
	return e.plan.Clone(), nil
}

func (m *Memory) List(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evict(m.now())
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evict(m.now())
	if _, ok := m.entries[name]; !ok {
		return ErrNotFound
	}
	delete(m.entries, name)
	return nil
}

// evict drops expired entries. Callers hold the write lock.
func (m *Memory) evict(now time.Time) {
	for name, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, name)
		}
	}
}

func (m *Memory) Close() error { return nil }
