// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plan

import (
	"math"
	"strings"

	"github.com/dacolabs/dcgen/internal/schema"
)

// HeuristicRationale marks field plans chosen by Heuristic.
const HeuristicRationale = "Auto-generated based on field type and name"

// Default constraint values shared by the heuristic planner and the generator.
const (
	DefaultIntMin       = 0
	DefaultIntMax       = 1000
	DefaultFloatMin     = 0.0
	DefaultFloatMax     = 1000.0
	DefaultPrecision    = 2
	DefaultMinLength    = 5
	DefaultMaxLength    = 20
	DefaultCurrencyMin  = 0.01
	DefaultCurrencyMax  = 9999.99
	DefaultPattern      = "[A-Z]{3}[0-9]{4}"
	DefaultDaysBack     = 30
	DefaultDateDaysBack = 365
	DefaultDaysForward  = 365
)

// Heuristic builds a plan from field names and types alone. Object fields
// with nested fields are flattened into dotted leaf paths.
func Heuristic(fields []schema.Field, useCase string) *Plan {
	p := &Plan{UseCase: useCase}
	appendLeaves(p, fields, "")
	return p
}

func appendLeaves(p *Plan, fields []schema.Field, prefix string) {
	for _, f := range fields {
		path := prefix + f.Name
		if f.Type == schema.TypeObject && len(f.Nested) > 0 {
			appendLeaves(p, f.Nested, path+".")
			continue
		}
		kind, constraints := Choose(f)
		p.Fields = append(p.Fields, FieldPlan{
			FieldName:   path,
			Generator:   kind,
			Constraints: constraints,
			Rationale:   HeuristicRationale,
		})
	}
}

// Choose selects a generator kind and its constraints for one field.
// Name rules are checked in priority order before falling back on the type.
func Choose(f schema.Field) (GeneratorKind, map[string]any) {
	name := strings.ToLower(f.Name)
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
	none := map[string]any{}

	switch {
	case len(f.Enum) > 0:
		return KindEnumChoice, map[string]any{"choices": f.Enum}
	case has("email"):
		return KindEmail, none
	case has("phone"):
		return KindPhone, none
	case has("id") && f.Type == schema.TypeString:
		return KindUUID4, none
	case has("timestamp", "datetime"):
		return KindTimestamp, none
	case has("date") || f.Type == schema.TypeDate:
		return KindDate, none
	case has("name"):
		switch {
		case has("first"):
			return KindFirstName, none
		case has("last"):
			return KindLastName, none
		default:
			return KindFullName, none
		}
	case has("country"):
		return KindCountry, none
	case has("city"):
		return KindCity, none
	case has("address"):
		return KindAddress, none
	case has("company", "org"):
		return KindCompany, none
	case has("url", "link"):
		return KindURL, none
	case has("lat", "long", "coord"):
		return KindLatLong, none
	case has("price", "amount", "cost"):
		return KindCurrency, map[string]any{
			"min": floatOr(f.Minimum, DefaultCurrencyMin),
			"max": floatOr(f.Maximum, DefaultCurrencyMax),
		}
	}

	switch f.Type {
	case schema.TypeInteger:
		return KindIntRange, map[string]any{
			"min": ClampInt(floatOr(f.Minimum, DefaultIntMin)),
			"max": ClampInt(floatOr(f.Maximum, DefaultIntMax)),
		}
	case schema.TypeNumber:
		return KindNumericRange, map[string]any{
			"min":       floatOr(f.Minimum, DefaultFloatMin),
			"max":       floatOr(f.Maximum, DefaultFloatMax),
			"precision": DefaultPrecision,
		}
	case schema.TypeBoolean:
		return KindBoolean, none
	}

	if f.Pattern != "" {
		return KindStringPattern, map[string]any{"pattern": f.Pattern}
	}
	return KindString, map[string]any{
		"min_length": intOr(f.MinLength, DefaultMinLength),
		"max_length": intOr(f.MaxLength, DefaultMaxLength),
	}
}

// ClampInt truncates f to an int, saturating at the int bounds instead of
// wrapping. NaN becomes 0.
func ClampInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
