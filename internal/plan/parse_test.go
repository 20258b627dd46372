// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Tolerant(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "plain",
			input: `{"fields":[{"field_name":"id","generator_type":"uuid4"},{"field_name":"amount","generator_type":"currency","constraints":{"min":1,"max":5}}],"use_case":"x"}`,
		},
		{
			name: "code fence",
			input: "Here you go:\n```json\n" +
				`{"fields":[{"field_name":"id","generator_type":"uuid4"},{"field_name":"amount","generator_type":"currency","constraints":{"min":1,"max":5}}]}` +
				"\n```\nEnjoy!",
		},
		{
			name:  "prose around object",
			input: `Sure! {"fields":[{"field_name":"id","generator_type":"uuid4"},{"field_name":"amount","generator_type":"currency","constraints":{"min":1,"max":5}}]} Hope that helps.`,
		},
		{
			name: "trailing commas",
			input: `{"fields":[
  {"field_name":"id","generator_type":"uuid4",},
  {"field_name":"amount","generator_type":"currency","constraints":{"min":1,"max":5,},},
],}`,
		},
		{
			name:  "fields array only",
			input: `{"note": "broken {", "fields": [{"field_name":"id","generator_type":"uuid4"},{"field_name":"amount","generator_type":"currency","constraints":{"min":1,"max":5}}], "use_case": oops}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input, "payments")
			require.NoError(t, err)

			assert.Equal(t, "payments", p.UseCase)
			require.Len(t, p.Fields, 2)
			assert.Equal(t, "id", p.Fields[0].FieldName)
			assert.Equal(t, KindUUID4, p.Fields[0].Generator)
			assert.Equal(t, map[string]any{}, p.Fields[0].Constraints)
			assert.Equal(t, KindCurrency, p.Fields[1].Generator)
			assert.Equal(t, map[string]any{"min": 1.0, "max": 5.0}, p.Fields[1].Constraints)
		})
	}
}

func TestParse_UnknownKindBecomesString(t *testing.T) {
	p, err := Parse(`{"fields":[{"field_name":"x","generator_type":"hologram"},{"field_name":"y"}]}`, "")
	require.NoError(t, err)
	assert.Equal(t, KindString, p.Fields[0].Generator)
	assert.Equal(t, KindString, p.Fields[1].Generator)
}

func TestParse_KeepsSuggestedValueAndRationale(t *testing.T) {
	p, err := Parse(`{"fields":[{"field_name":"country","generator_type":"fixed_value","suggested_value":"FR","constraints":{"value":"FR"},"rationale":"French demo"}]}`, "")
	require.NoError(t, err)
	assert.Equal(t, "FR", p.Fields[0].SuggestedValue)
	assert.Equal(t, "French demo", p.Fields[0].Rationale)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{name: "no json", input: "I cannot help with that.", reason: "not valid JSON"},
		{name: "garbage object", input: "{this is not json}", reason: "not valid JSON"},
		{name: "missing fields", input: `{"plan": []}`, reason: `missing "fields"`},
		{name: "fields not list", input: `{"fields": {"a": 1}}`, reason: "not a list"},
		{name: "entry not object", input: `{"fields": ["a"]}`, reason: "not an object"},
		{name: "entry without name", input: `{"fields": [{"generator_type": "uuid4"}]}`, reason: "no field_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, "u")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, pe.Reason, tt.reason)
			assert.Equal(t, len(tt.input), pe.Length)
		})
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "{}", stripFences("```\n{}\n```"))
	assert.Equal(t, "no fences", stripFences("no fences"))
	assert.Equal(t, "```", stripFences("```"))
}
