// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plan

// OverrideRationale marks field plans replaced by ApplyOverrides.
const OverrideRationale = "User override"

// ApplyOverrides returns a copy of p in which every field named in overrides
// is replaced by a fixed_value plan carrying the literal. Other fields and the
// field order are unchanged; p itself is not modified.
func ApplyOverrides(p *Plan, overrides map[string]any) *Plan {
	out := p.Clone()
	if len(overrides) == 0 {
		return out
	}
	for i, f := range out.Fields {
		v, ok := overrides[f.FieldName]
		if !ok {
			continue
		}
		out.Fields[i] = FieldPlan{
			FieldName:      f.FieldName,
			Generator:      KindFixedValue,
			SuggestedValue: v,
			Constraints:    map[string]any{"value": v},
			Rationale:      OverrideRationale,
		}
	}
	return out
}
