// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generator produces synthetic records from a generation plan.
// A Generator owns its random source: the same seed and the same sequence of
// calls always yield the same records. A Generator is not safe for
// concurrent use.
package generator

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/dacolabs/dcgen/internal/plan"
)

// MaxSeed bounds seeds drawn when none is given.
const MaxSeed = 1 << 32

type options struct {
	seed  *int64
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*options)

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithClock sets the time source used for timestamps and dates.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// Generator produces records from plans.
type Generator struct {
	seed  int64
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   func() time.Time
}

// New returns a Generator. Without WithSeed a seed in [0, MaxSeed) is drawn
// and retained so the output can be replayed.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	g.ResetSeed(opts...)
	return g
}

// ForPlan returns a Generator seeded with the plan's seed when it has one.
// Explicit options take precedence.
func ForPlan(p *plan.Plan, opts ...Option) *Generator {
	if p != nil && p.Seed != nil {
		opts = append([]Option{WithSeed(*p.Seed)}, opts...)
	}
	return New(opts...)
}

// ResetSeed replaces the random source. Without WithSeed a fresh seed is drawn.
// A WithClock option replaces the clock; otherwise the clock is kept.
func (g *Generator) ResetSeed(opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed != nil {
		g.seed = *o.seed
	} else {
		g.seed = rand.Int64N(MaxSeed)
	}
	if o.clock != nil {
		g.now = o.clock
	}

	src := rand.NewPCG(uint64(g.seed), uint64(g.seed))
	g.rng = rand.New(src)
	g.faker = gofakeit.NewFaker(src, false)
}

// Seed returns the seed of the current random source.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate produces one record. Fields are filled in plan order: a non-nil
// suggested value is copied in verbatim, otherwise the field's generator runs.
// Records never share maps or slices with the plan or with each other.
// Any field error aborts the record.
func (g *Generator) Generate(p *plan.Plan) (map[string]any, error) {
	record := make(map[string]any, len(p.Fields))
	for _, f := range p.Fields {
		value := plan.CloneValue(f.SuggestedValue)
		if value == nil {
			v, err := g.value(f)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if err := setPath(record, f.FieldName, value); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// GenerateN produces n records from one continuing random stream.
func (g *Generator) GenerateN(p *plan.Plan, n int) ([]map[string]any, error) {
	if n < 0 {
		return nil, fmt.Errorf("record count must not be negative, got %d", n)
	}
	records := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		record, err := g.Generate(p)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Value runs a single generator kind with the given constraints.
func (g *Generator) Value(kind plan.GeneratorKind, constraints map[string]any) (any, error) {
	return g.value(plan.FieldPlan{Generator: kind, Constraints: constraints})
}

func (g *Generator) value(f plan.FieldPlan) (any, error) {
	fn, ok := kinds[f.Generator]
	if !ok {
		fn = (*Generator).genString
	}
	return fn(g, constraints{field: f.FieldName, kind: f.Generator, values: f.Constraints})
}

// randReader adapts the generator's random source to io.Reader.
type randReader struct{ rng *rand.Rand }

func (r randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
