// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"slices"

	"github.com/spf13/cast"

	"github.com/dacolabs/dcgen/internal/document"
)

// Normalize converts a parsed schema document into an ordered field list
// using the built-in Dialects.
func Normalize(root *document.Map) ([]Field, error) {
	return NormalizeWith(root, Dialects)
}

// NormalizeWith converts root using the given dialects. The first dialect
// whose Match reports true decides the outcome; later dialects are not consulted.
func NormalizeWith(root *document.Map, dialects []Dialect) ([]Field, error) {
	tried := make([]string, 0, len(dialects))
	for _, d := range dialects {
		tried = append(tried, d.Name)
		if root == nil || !d.Match(root) {
			continue
		}
		props, ok := d.Locate(root)
		if !ok {
			return nil, &FormatError{Tried: tried, Matched: d.Name}
		}
		return parseProperties(props), nil
	}
	return nil, &FormatError{Tried: tried}
}

// Parse decodes YAML or JSON content and normalizes it.
func Parse(data []byte) ([]Field, error) {
	root, err := document.Parse(data)
	if err != nil {
		return nil, err
	}
	return Normalize(root)
}

func parseProperties(props Properties) []Field {
	fields := make([]Field, 0, props.Fields.Len())
	for name, v := range props.Fields.All() {
		switch def := v.(type) {
		case *document.Map:
			fields = append(fields, parseField(name, def, props.Required))
		case string:
			// shorthand: "name: string", never a primary key
			fields = append(fields, Field{
				Name:     name,
				Type:     ParseFieldType(def, ""),
				Required: slices.Contains(props.Required, name),
			})
		}
	}
	return fields
}

func parseField(name string, def *document.Map, required []string) Field {
	format := def.StringAt("format")
	f := Field{
		Name:        name,
		Type:        ParseFieldType(declaredType(def), format),
		Required:    slices.Contains(required, name),
		PrimaryKey:  isPrimaryKey(name, def),
		Format:      format,
		Pattern:     def.StringAt("pattern"),
		Description: def.StringAt("description"),
		Minimum:     firstNumber(def, "minimum", "min", "exclusiveMinimum"),
		Maximum:     firstNumber(def, "maximum", "max", "exclusiveMaximum"),
		MinLength:   intAt(def, "minLength"),
		MaxLength:   intAt(def, "maxLength"),
	}
	if f.Description == "" {
		f.Description = def.StringAt("title")
	}
	if enum, ok := def.ListAt("enum"); ok && len(enum) > 0 {
		f.Enum = enum
	}

	switch f.Type {
	case TypeObject:
		if props, ok := objectProperties(def); ok {
			f.Nested = parseProperties(props)
		}
	case TypeArray:
		if items, ok := def.MapAt("items"); ok {
			if props, ok := objectProperties(items); ok {
				f.Nested = parseProperties(props)
			}
		}
	}
	return f
}

// declaredType reads "type", which may be a single name or a list such as
// ["string", "null"]; the first non-null entry of a list is used.
func declaredType(def *document.Map) string {
	v, ok := def.Get("type")
	if !ok {
		return string(TypeString)
	}
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	}
	return string(TypeString)
}

// firstNumber reads the first of keys that is present. Later keys are only
// consulted when earlier ones are absent; a present non-numeric value yields nil.
func firstNumber(def *document.Map, keys ...string) *float64 {
	for _, k := range keys {
		v, ok := def.Get(k)
		if !ok {
			continue
		}
		if n, ok := toFloat(v); ok {
			return &n
		}
		return nil
	}
	return nil
}

func intAt(def *document.Map, key string) *int {
	v, ok := def.Get(key)
	if !ok {
		return nil
	}
	if _, isBool := v.(bool); isBool || v == nil {
		return nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return nil
	}
	return &n
}

func toFloat(v any) (float64, bool) {
	if _, isBool := v.(bool); isBool || v == nil {
		return 0, false
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
