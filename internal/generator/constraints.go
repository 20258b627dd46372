// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

import (
	"reflect"

	"github.com/spf13/cast"

	"github.com/dacolabs/dcgen/internal/plan"
)

// constraints reads typed values from a field plan's constraint map.
// Missing keys and nil values fall back to the default.
type constraints struct {
	field  string
	kind   plan.GeneratorKind
	values map[string]any
}

func (c constraints) lookup(key string) (any, bool) {
	v, ok := c.values[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (c constraints) fail(key string, v any, err error) error {
	return &ValueError{Field: c.field, Kind: c.kind, Key: key, Value: v, Err: err}
}

func (c constraints) intAt(key string, def int) (int, error) {
	v, ok := c.lookup(key)
	if !ok {
		return def, nil
	}
	switch f := v.(type) {
	case float64:
		return plan.ClampInt(f), nil
	case float32:
		return plan.ClampInt(float64(f)), nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, c.fail(key, v, err)
	}
	return n, nil
}

func (c constraints) floatAt(key string, def float64) (float64, error) {
	v, ok := c.lookup(key)
	if !ok {
		return def, nil
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, c.fail(key, v, err)
	}
	return n, nil
}

func (c constraints) stringAt(key, def string) (string, error) {
	v, ok := c.lookup(key)
	if !ok {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", c.fail(key, v, err)
	}
	return s, nil
}

// list returns the elements of a slice-valued constraint; other values yield nil.
func (c constraints) list(key string) []any {
	v, ok := c.lookup(key)
	if !ok {
		return nil
	}
	if items, ok := v.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

// intRange reads min/max bounds, swapping them when reversed.
func (c constraints) intRange(def0, def1 int) (int, int, error) {
	lo, err := c.intAt("min", def0)
	if err != nil {
		return 0, 0, err
	}
	hi, err := c.intAt("max", def1)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

// floatRange reads min/max bounds, swapping them when reversed.
func (c constraints) floatRange(def0, def1 float64) (float64, float64, error) {
	lo, err := c.floatAt("min", def0)
	if err != nil {
		return 0, 0, err
	}
	hi, err := c.floatAt("max", def1)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}
