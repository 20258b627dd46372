// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/dcgen/internal/document"
)

// JSONSchemaDocument renders fields as an ordered JSON Schema object.
// Date and datetime fields become strings with a matching format so the
// document stays valid JSON Schema and normalizes back to the same types.
func JSONSchemaDocument(fields []Field) *document.Map {
	return schemaDocument(fields, false)
}

// schemaDocument builds the JSON Schema object. When loose is set, array
// fields and objects without nested fields accept any value: generator kinds
// produce scalars, so such fields are filled with strings or suggested values
// of any shape.
func schemaDocument(fields []Field, loose bool) *document.Map {
	props, required := propertiesOf(fields, loose)
	doc := document.NewMap()
	doc.Set("type", "object")
	doc.Set("properties", props)
	if len(required) > 0 {
		doc.Set("required", required)
	}
	return doc
}

// MarshalJSONSchema returns the indented JSON Schema for fields.
func MarshalJSONSchema(fields []Field) ([]byte, error) {
	return json.MarshalIndent(JSONSchemaDocument(fields), "", "  ")
}

// ToJSONSchema returns fields as a typed JSON Schema.
func ToJSONSchema(fields []Field) (*jsonschema.Schema, error) {
	return toJSONSchema(JSONSchemaDocument(fields))
}

func toJSONSchema(doc *document.Map) (*jsonschema.Schema, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to build JSON schema: %w", err)
	}
	return &s, nil
}

func propertiesOf(fields []Field, loose bool) (*document.Map, []any) {
	props := document.NewMap()
	var required []any
	for _, f := range fields {
		props.Set(f.Name, propertyOf(f, loose))
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return props, required
}

func propertyOf(f Field, loose bool) *document.Map {
	prop := document.NewMap()
	if loose && (f.Type == TypeArray || (f.Type == TypeObject && len(f.Nested) == 0)) {
		if f.Description != "" {
			prop.Set("description", f.Description)
		}
		return prop
	}
	typeName, format := jsonType(f)
	prop.Set("type", typeName)
	if len(f.Enum) > 0 {
		prop.Set("enum", f.Enum)
	}
	if format != "" {
		prop.Set("format", format)
	}
	if f.Minimum != nil {
		prop.Set("minimum", *f.Minimum)
	}
	if f.Maximum != nil {
		prop.Set("maximum", *f.Maximum)
	}
	if f.MinLength != nil {
		prop.Set("minLength", *f.MinLength)
	}
	if f.MaxLength != nil {
		prop.Set("maxLength", *f.MaxLength)
	}
	if f.Pattern != "" {
		prop.Set("pattern", f.Pattern)
	}
	if f.Description != "" {
		prop.Set("description", f.Description)
	}

	if len(f.Nested) > 0 {
		nested, required := propertiesOf(f.Nested, loose)
		switch f.Type {
		case TypeObject:
			prop.Set("properties", nested)
			if len(required) > 0 {
				prop.Set("required", required)
			}
		case TypeArray:
			items := document.NewMap()
			items.Set("type", "object")
			items.Set("properties", nested)
			if len(required) > 0 {
				items.Set("required", required)
			}
			prop.Set("items", items)
		}
	}
	return prop
}

// jsonType maps a field to its JSON Schema type and format.
func jsonType(f Field) (string, string) {
	switch f.Type {
	case TypeDate, TypeDateTime:
		if f.Format != "" && ParseFieldType("string", f.Format) == f.Type {
			return "string", f.Format
		}
		if f.Type == TypeDate {
			return "string", "date"
		}
		return "string", "date-time"
	default:
		return string(f.Type), f.Format
	}
}
