// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/dcgen/internal/schema"
)

// stubResolver is a minimal TypeResolver for testing Prepare logic.
type stubResolver struct{}

func (s *stubResolver) PrimitiveType(fieldType schema.FieldType, format string) string {
	if format != "" {
		return format
	}
	return string(fieldType)
}

func (s *stubResolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (s *stubResolver) RefType(defName string) string {
	return defName
}

func (s *stubResolver) FormatDefName(defName string) string {
	return defName
}

func (s *stubResolver) FormatRootName(name string) string {
	return name + "_root"
}

func (s *stubResolver) EnrichField(_ *Field) {}

func TestPrepare_RootFields(t *testing.T) {
	fields := []schema.Field{
		{Name: "name", Type: schema.TypeString, Required: true},
		{Name: "age", Type: schema.TypeInteger, Description: "Age in years"},
		{Name: "seen", Type: schema.TypeDateTime, Format: "date-time"},
	}

	data := Prepare("users", fields, &stubResolver{})

	assert.Equal(t, "users_root", data.Root.Name)
	assert.Empty(t, data.Defs)
	require.Len(t, data.Root.Fields, 3)

	assert.Equal(t, "name", data.Root.Fields[0].Name)
	assert.Equal(t, "string", data.Root.Fields[0].Type)
	assert.False(t, data.Root.Fields[0].Nullable)

	assert.Equal(t, "integer", data.Root.Fields[1].Type)
	assert.True(t, data.Root.Fields[1].Nullable)
	assert.Equal(t, "Age in years", data.Root.Fields[1].Description)

	assert.Equal(t, "date-time", data.Root.Fields[2].Type)
	assert.Equal(t, "date-time", data.Root.Fields[2].Constraints.Format)
}

func TestPrepare_NestedObjectsExtracted(t *testing.T) {
	fields := []schema.Field{
		{Name: "customer", Type: schema.TypeObject, Nested: []schema.Field{
			{Name: "email", Type: schema.TypeString, Required: true},
			{Name: "home_address", Type: schema.TypeObject, Nested: []schema.Field{
				{Name: "city", Type: schema.TypeString},
			}},
		}},
		{Name: "lines", Type: schema.TypeArray, Nested: []schema.Field{
			{Name: "qty", Type: schema.TypeInteger},
		}},
		{Name: "tags", Type: schema.TypeArray},
		{Name: "meta", Type: schema.TypeObject},
	}

	data := Prepare("order", fields, &stubResolver{})

	require.Len(t, data.Defs, 3)
	assert.Equal(t, "HomeAddress", data.Defs[0].Name)
	assert.Equal(t, "Customer", data.Defs[1].Name)
	assert.Equal(t, "LinesItem", data.Defs[2].Name)

	assert.Equal(t, "HomeAddress", data.Defs[1].Fields[1].Type)
	assert.Equal(t, "Customer", data.Root.Fields[0].Type)
	assert.Equal(t, "[]LinesItem", data.Root.Fields[1].Type)
	assert.Equal(t, "[]string", data.Root.Fields[2].Type)
	assert.Equal(t, "object", data.Root.Fields[3].Type)
}

func TestPrepare_DuplicateNestedNames(t *testing.T) {
	fields := []schema.Field{
		{Name: "billing", Type: schema.TypeObject, Nested: []schema.Field{
			{Name: "address", Type: schema.TypeObject, Nested: []schema.Field{{Name: "city", Type: schema.TypeString}}},
		}},
		{Name: "shipping", Type: schema.TypeObject, Nested: []schema.Field{
			{Name: "address", Type: schema.TypeObject, Nested: []schema.Field{{Name: "city", Type: schema.TypeString}}},
		}},
	}

	data := Prepare("order", fields, &stubResolver{})

	names := make([]string, len(data.Defs))
	for i, d := range data.Defs {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Address", "Billing", "Address2", "Shipping"}, names)
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		snake  string
	}{
		{in: "user_name", pascal: "UserName", snake: "user_name"},
		{in: "eventId", pascal: "EventId", snake: "event_id"},
		{in: "flight-status", pascal: "FlightStatus", snake: "flight_status"},
		{in: "2fa code", pascal: "2faCode", snake: "_2fa_code"},
		{in: "orders", pascal: "Orders", snake: "orders"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, ToPascalCase(tt.in))
			assert.Equal(t, tt.snake, ToSnakeCase(tt.in))
		})
	}
}

type fakeTranslator struct{ ext string }

func (f fakeTranslator) Translate(string, []schema.Field) ([]byte, error) { return nil, nil }
func (f fakeTranslator) FileExtension() string                           { return f.ext }

func TestRegister(t *testing.T) {
	r := Register{
		"markdown": fakeTranslator{ext: ".md"},
		"gotypes":  fakeTranslator{ext: ".go"},
	}

	assert.Equal(t, []string{"gotypes", "markdown"}, r.Available())

	tr, err := r.Get("markdown")
	require.NoError(t, err)
	assert.Equal(t, ".md", tr.FileExtension())

	_, err = r.Get("avro")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gotypes, markdown")
}
