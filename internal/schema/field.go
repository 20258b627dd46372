// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema normalizes schema documents of several dialects into a
// canonical field model and projects that model for display.
package schema

import "strings"

// FieldType is the canonical type of a normalized field.
type FieldType string

// Supported field types.
const (
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeDate     FieldType = "date"
	TypeDateTime FieldType = "datetime"
	TypeObject   FieldType = "object"
	TypeArray    FieldType = "array"
)

// Field is one schema attribute after normalization.
// Only object and array fields carry Nested fields.
type Field struct {
	Name        string    `json:"field_name"`
	Type        FieldType `json:"field_type"`
	Required    bool      `json:"required"`
	PrimaryKey  bool      `json:"is_primary_key"`
	Enum        []any     `json:"enum_values,omitempty"`
	Format      string    `json:"format,omitempty"`
	Minimum     *float64  `json:"min_value,omitempty"`
	Maximum     *float64  `json:"max_value,omitempty"`
	MinLength   *int      `json:"min_length,omitempty"`
	MaxLength   *int      `json:"max_length,omitempty"`
	Pattern     string    `json:"pattern,omitempty"`
	Description string    `json:"description,omitempty"`
	Nested      []Field   `json:"nested_schema,omitempty"`
}

var typeLookup = map[string]FieldType{
	"string":    TypeString,
	"str":       TypeString,
	"text":      TypeString,
	"integer":   TypeInteger,
	"int":       TypeInteger,
	"long":      TypeInteger,
	"number":    TypeNumber,
	"float":     TypeNumber,
	"double":    TypeNumber,
	"decimal":   TypeNumber,
	"boolean":   TypeBoolean,
	"bool":      TypeBoolean,
	"date":      TypeDate,
	"datetime":  TypeDateTime,
	"timestamp": TypeDateTime,
	"object":    TypeObject,
	"array":     TypeArray,
	"list":      TypeArray,
}

// ParseFieldType maps a declared type and optional format hint to a FieldType.
// A date or date-time format wins over the declared type; unknown types map to string.
func ParseFieldType(typeName, format string) FieldType {
	switch strings.ToLower(format) {
	case "date", "date-only":
		return TypeDate
	case "datetime", "date-time", "iso8601":
		return TypeDateTime
	}
	if t, ok := typeLookup[strings.ToLower(typeName)]; ok {
		return t
	}
	return TypeString
}
