// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sampleFields() []Field {
	return []Field{
		{Name: "orderId", Type: TypeString, Required: true, PrimaryKey: true, Description: "Order reference"},
		{Name: "status", Type: TypeString, Enum: []any{"NEW", "PAID"}},
		{Name: "total", Type: TypeNumber, Minimum: ptr(0.5), Maximum: ptr(100.0)},
		{Name: "code", Type: TypeString, MinLength: ptr(2), MaxLength: ptr(4), Pattern: "[A-Z]{2}"},
		{Name: "placedOn", Type: TypeDate},
		{Name: "placedAt", Type: TypeDateTime, Format: "iso8601", Required: true},
		{Name: "customer", Type: TypeObject, Nested: []Field{
			{Name: "email", Type: TypeString, Required: true},
			{Name: "vip", Type: TypeBoolean},
		}},
		{Name: "lines", Type: TypeArray, Nested: []Field{
			{Name: "qty", Type: TypeInteger, Required: true},
		}},
	}
}

func TestTableRows(t *testing.T) {
	rows := TableRows(sampleFields())

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"orderId", "status", "total", "code", "placedOn", "placedAt",
		"customer", "customer.email", "customer.vip", "lines", "lines.qty",
	}, names)

	assert.Equal(t, TableRow{
		Name:        "orderId",
		Type:        "string",
		PK:          "🔑",
		Required:    "Yes",
		Description: "Order reference",
	}, rows[0])
	assert.Equal(t, "NEW, PAID", rows[1].Enum)
	assert.Equal(t, "No", rows[1].Required)
	assert.Equal(t, "min: 0.5, max: 100", rows[2].Constraints)
	assert.Equal(t, "minLen: 2, maxLen: 4, pattern: [A-Z]{2}", rows[3].Constraints)
	assert.Equal(t, "iso8601", rows[5].Format)
	assert.Equal(t, "Yes", rows[7].Required)
	assert.Len(t, rows[0].Values(), len(TableHeaders))
}

func TestMarshalJSONSchema(t *testing.T) {
	fields := []Field{
		{Name: "id", Type: TypeString, Required: true, PrimaryKey: true},
		{Name: "on", Type: TypeDate},
		{Name: "meta", Type: TypeObject, Nested: []Field{{Name: "k", Type: TypeInteger, Required: true}}},
	}
	data, err := MarshalJSONSchema(fields)
	require.NoError(t, err)

	want := `{
  "type": "object",
  "properties": {
    "id": {
      "type": "string"
    },
    "on": {
      "type": "string",
      "format": "date"
    },
    "meta": {
      "type": "object",
      "properties": {
        "k": {
          "type": "integer"
        }
      },
      "required": [
        "k"
      ]
    }
  },
  "required": [
    "id"
  ]
}`
	assert.Equal(t, want, string(data))
}

func TestJSONSchemaDocument_ArrayItems(t *testing.T) {
	doc := JSONSchemaDocument(sampleFields())
	props, ok := doc.MapAt("properties")
	require.True(t, ok)

	lines, ok := props.MapAt("lines")
	require.True(t, ok)
	assert.Equal(t, "array", lines.StringAt("type"))
	items, ok := lines.MapAt("items")
	require.True(t, ok)
	assert.Equal(t, "object", items.StringAt("type"))
	req, _ := items.ListAt("required")
	assert.Equal(t, []any{"qty"}, req)

	placedAt, _ := props.MapAt("placedAt")
	assert.Equal(t, "iso8601", placedAt.StringAt("format"))
}

func TestToJSONSchema(t *testing.T) {
	s, err := ToJSONSchema(sampleFields())
	require.NoError(t, err)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"orderId", "placedAt"}, s.Required)
	require.Contains(t, s.Properties, "total")
	require.NotNil(t, s.Properties["total"].Minimum)
	assert.Equal(t, 0.5, *s.Properties["total"].Minimum)
	assert.Equal(t, "iso8601", s.Properties["placedAt"].Format)
	assert.Equal(t, "date", s.Properties["placedOn"].Format)
	assert.Equal(t, "string", s.Properties["placedOn"].Type)
}

func TestJSONSchema_RoundTrip(t *testing.T) {
	docs := []string{
		`
components:
  schemas:
    Order:
      required: [orderId, placedAt]
      properties:
        orderId: {type: string}
        placedAt: {type: string, format: date-time}
        due: {type: date}
        amount: {type: double, minimum: 1}
        customer:
          type: object
          required: [email]
          properties:
            email: {type: string}
        lines:
          type: list
          items:
            properties:
              sku: {type: str}
`,
		`
fields:
  - {name: event_id, type: string, required: true}
  - {name: seen, type: timestamp}
  - {name: ok, type: bool}
`,
	}

	for _, src := range docs {
		original, err := Normalize(mustParse(t, src))
		require.NoError(t, err)

		data, err := MarshalJSONSchema(original)
		require.NoError(t, err)
		back, err := Parse(data)
		require.NoError(t, err)

		assert.Equal(t, summarize(original), summarize(back))
	}
}

type fieldSummary struct {
	Name     string
	Type     FieldType
	Required bool
	Nested   []fieldSummary
}

func summarize(fields []Field) []fieldSummary {
	var out []fieldSummary
	for _, f := range fields {
		out = append(out, fieldSummary{Name: f.Name, Type: f.Type, Required: f.Required, Nested: summarize(f.Nested)})
	}
	return out
}

func TestValidator(t *testing.T) {
	v, err := NewValidator(sampleFields())
	require.NoError(t, err)

	good := map[string]any{
		"orderId":  "o-1",
		"status":   "PAID",
		"total":    12.5,
		"placedAt": "2026-01-02T03:04:05.000Z",
		"customer": map[string]any{"email": "a@b.c", "vip": true},
		"lines":    []any{map[string]any{"qty": 2}},
	}
	assert.NoError(t, v.Validate(good))

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing required", mutate: func(r map[string]any) { delete(r, "orderId") }},
		{name: "enum", mutate: func(r map[string]any) { r["status"] = "LOST" }},
		{name: "maximum", mutate: func(r map[string]any) { r["total"] = 1000 }},
		{name: "nested type", mutate: func(r map[string]any) { r["customer"] = map[string]any{"email": 5} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := make(map[string]any, len(good))
			for k, val := range good {
				bad[k] = val
			}
			tt.mutate(bad)
			assert.Error(t, v.Validate(bad))
		})
	}
}

func TestValidator_CollectionsAcceptAnyShape(t *testing.T) {
	fields := []Field{
		{Name: "orderId", Type: TypeString, Required: true},
		{Name: "tags", Type: TypeArray},
		{Name: "meta", Type: TypeObject},
		{Name: "lines", Type: TypeArray, Nested: []Field{{Name: "qty", Type: TypeInteger, Required: true}}},
	}
	v, err := NewValidator(fields)
	require.NoError(t, err)

	assert.NoError(t, v.Validate(map[string]any{"orderId": "o-1", "tags": "abc", "meta": "xyz", "lines": "q"}))
	assert.NoError(t, v.Validate(map[string]any{"orderId": "o-1", "tags": []any{"a"}, "meta": map[string]any{"k": 1}}))
	assert.Error(t, v.Validate(map[string]any{"orderId": 5, "tags": "abc"}))

	// the published projection keeps the declared types
	doc := JSONSchemaDocument(fields)
	props, _ := doc.MapAt("properties")
	tags, _ := props.MapAt("tags")
	assert.Equal(t, "array", tags.StringAt("type"))
}

func TestField_JSONTags(t *testing.T) {
	data, err := json.Marshal(Field{Name: "id", Type: TypeString, PrimaryKey: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"field_name":"id","field_type":"string","required":false,"is_primary_key":true}`, string(data))
}
