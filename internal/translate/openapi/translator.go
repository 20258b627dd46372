// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package openapi renders field lists as OpenAPI 3.0.3 component documents,
// the shape accepted for streaming ingestion object definitions.
package openapi

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/dcgen/internal/document"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
)

// Version is the OpenAPI version written to every document.
const Version = "3.0.3"

// Translator translates field lists to OpenAPI YAML documents.
type Translator struct{}

// FileExtension returns the file extension for YAML files.
func (t *Translator) FileExtension() string {
	return ".yaml"
}

// Translate converts a field list to an OpenAPI document with a single
// component schema named after name.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Document(name, fields)); err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Document builds the ordered OpenAPI document for fields.
func Document(name string, fields []schema.Field) *document.Map {
	schemas := document.NewMap()
	schemas.Set(translate.ToPascalCase(name), object(fields))

	components := document.NewMap()
	components.Set("schemas", schemas)

	doc := document.NewMap()
	doc.Set("openapi", Version)
	doc.Set("components", components)
	return doc
}

func object(fields []schema.Field) *document.Map {
	props := document.NewMap()
	var required []string
	for _, f := range fields {
		props.Set(f.Name, property(f))
		if f.Required {
			required = append(required, f.Name)
		}
	}

	obj := document.NewMap()
	obj.Set("type", "object")
	obj.Set("properties", props)
	if len(required) > 0 {
		obj.Set("required", required)
	}
	return obj
}

func property(f schema.Field) *document.Map {
	if f.Type == schema.TypeObject && len(f.Nested) > 0 {
		return object(f.Nested)
	}

	prop := document.NewMap()
	switch f.Type {
	case schema.TypeDateTime:
		prop.Set("type", "string")
		prop.Set("format", "date-time")
	case schema.TypeDate:
		prop.Set("type", "string")
		prop.Set("format", "date")
	case schema.TypeNumber, schema.TypeInteger:
		prop.Set("type", "number")
	case schema.TypeBoolean:
		prop.Set("type", "boolean")
	case schema.TypeArray:
		prop.Set("type", "array")
		if len(f.Nested) > 0 {
			prop.Set("items", object(f.Nested))
		} else {
			items := document.NewMap()
			items.Set("type", "string")
			prop.Set("items", items)
		}
	case schema.TypeObject:
		prop.Set("type", "object")
	default:
		prop.Set("type", "string")
	}
	if len(f.Enum) > 0 {
		prop.Set("enum", f.Enum)
	}
	if f.Description != "" {
		prop.Set("description", f.Description)
	}
	return prop
}
