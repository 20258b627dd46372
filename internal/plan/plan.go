// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package plan describes how each field of a schema is generated and builds
// such plans heuristically or from completion text.
package plan

import (
	"errors"
	"fmt"
)

// FieldPlan says how one field is generated. FieldName may be a dotted path
// such as "address.city" to place the value in a nested object.
type FieldPlan struct {
	FieldName      string         `json:"field_name"`
	Generator      GeneratorKind  `json:"generator_type"`
	SuggestedValue any            `json:"suggested_value"`
	Constraints    map[string]any `json:"constraints"`
	Rationale      string         `json:"rationale,omitempty"`
}

// Plan is an ordered list of field plans.
type Plan struct {
	Fields  []FieldPlan `json:"fields"`
	UseCase string      `json:"use_case"`
	Seed    *int64      `json:"seed,omitempty"`
}

// Field returns the plan of the named field.
func (p *Plan) Field(name string) (FieldPlan, bool) {
	for _, f := range p.Fields {
		if f.FieldName == name {
			return f, true
		}
	}
	return FieldPlan{}, false
}

// Clone returns a copy that shares no maps or slices with p, including those
// nested in suggested values and constraints.
func (p *Plan) Clone() *Plan {
	out := &Plan{UseCase: p.UseCase, Fields: make([]FieldPlan, len(p.Fields))}
	if p.Seed != nil {
		seed := *p.Seed
		out.Seed = &seed
	}
	for i, f := range p.Fields {
		f.SuggestedValue = CloneValue(f.SuggestedValue)
		if f.Constraints != nil {
			f.Constraints = CloneValue(f.Constraints).(map[string]any)
		}
		out.Fields[i] = f
	}
	return out
}

// CloneValue deep-copies JSON-shaped values. Maps and slices are copied
// recursively; anything else is returned as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = CloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Validate checks that every field is named and that names are unique.
func (p *Plan) Validate() error {
	if p == nil || len(p.Fields) == 0 {
		return errors.New("plan has no fields")
	}
	seen := make(map[string]bool, len(p.Fields))
	for i, f := range p.Fields {
		if f.FieldName == "" {
			return fmt.Errorf("field %d has no name", i)
		}
		if seen[f.FieldName] {
			return fmt.Errorf("field %q is planned twice", f.FieldName)
		}
		seen[f.FieldName] = true
	}
	return nil
}
