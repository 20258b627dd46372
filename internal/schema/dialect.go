// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"strings"

	"github.com/dacolabs/dcgen/internal/document"
)

// Properties is the property collection located by a Dialect.
type Properties struct {
	Fields   *document.Map // property name -> definition
	Required []string
}

// Dialect recognizes one document shape and locates its property collection.
// Match decides whether the dialect applies; the first matching dialect is the
// only one asked to Locate.
type Dialect struct {
	Name   string
	Match  func(root *document.Map) bool
	Locate func(root *document.Map) (Properties, bool)
}

// Dialects lists the recognized document shapes in resolution order.
var Dialects = []Dialect{
	{
		Name:   "properties",
		Match:  func(root *document.Map) bool { return root.Has("properties") },
		Locate: objectProperties,
	},
	{
		Name: "components.schemas",
		Match: func(root *document.Map) bool {
			components, ok := root.MapAt("components")
			return ok && components.Has("schemas")
		},
		Locate: func(root *document.Map) (Properties, bool) {
			schemas, _ := lookup(root, "components", "schemas")
			return firstWithProperties(schemas)
		},
	},
	{
		Name:  "definitions",
		Match: func(root *document.Map) bool { return root.Has("definitions") },
		Locate: func(root *document.Map) (Properties, bool) {
			defs, _ := root.MapAt("definitions")
			return firstWithProperties(defs)
		},
	},
	{
		Name:  "types",
		Match: func(root *document.Map) bool { return root.Has("types") },
		Locate: func(root *document.Map) (Properties, bool) {
			types, _ := root.MapAt("types")
			return firstWithProperties(types)
		},
	},
	{
		Name:  "schema",
		Match: func(root *document.Map) bool { return root.Has("schema") },
		Locate: func(root *document.Map) (Properties, bool) {
			s, ok := root.MapAt("schema")
			if !ok {
				return Properties{}, false
			}
			if list, ok := s.ListAt("fields"); ok {
				return fieldList(list)
			}
			return objectProperties(s)
		},
	},
	{
		Name: "fields",
		Match: func(root *document.Map) bool {
			_, ok := root.ListAt("fields")
			return ok
		},
		Locate: func(root *document.Map) (Properties, bool) {
			list, _ := root.ListAt("fields")
			return fieldList(list)
		},
	},
	{
		Name:   "paths",
		Match:  func(root *document.Map) bool { return root.Has("paths") },
		Locate: requestBodyProperties,
	},
}

// DialectNames returns the names of the given dialects in order.
func DialectNames(dialects []Dialect) []string {
	names := make([]string, len(dialects))
	for i, d := range dialects {
		names[i] = d.Name
	}
	return names
}

// objectProperties returns the non-empty properties map of an object schema.
func objectProperties(s *document.Map) (Properties, bool) {
	props, ok := s.MapAt("properties")
	if !ok || props.Len() == 0 {
		return Properties{}, false
	}
	return Properties{Fields: props, Required: stringList(s, "required")}, true
}

// firstWithProperties picks the first schema, in document order, that declares properties.
func firstWithProperties(schemas *document.Map) (Properties, bool) {
	for _, v := range schemas.All() {
		def, ok := v.(*document.Map)
		if ok && def.Has("properties") {
			return objectProperties(def)
		}
	}
	return Properties{}, false
}

// fieldList converts a list of {name, type, ...} entries into a property collection.
func fieldList(list []any) (Properties, bool) {
	props := document.NewMap()
	var required []string
	for _, item := range list {
		entry, ok := item.(*document.Map)
		if !ok {
			continue
		}
		name := entry.StringAt("name")
		if name == "" {
			name = entry.StringAt("fieldName")
		}
		if name == "" {
			continue
		}
		props.Set(name, entry)
		if v, _ := entry.Get("required"); truthy(v) {
			required = append(required, name)
		}
	}
	if props.Len() == 0 {
		return Properties{}, false
	}
	return Properties{Fields: props, Required: required}, true
}

// requestBodyProperties scans POST/PUT/PATCH operations for a JSON request
// body schema. Within a path the first such operation is used; across paths
// the last path with one wins.
func requestBodyProperties(root *document.Map) (Properties, bool) {
	var (
		found Properties
		ok    bool
	)
	paths, _ := root.MapAt("paths")
	for _, v := range paths.All() {
		methods, isMap := v.(*document.Map)
		if !isMap {
			continue
		}
		if props, hit := operationProperties(root, methods); hit {
			found, ok = props, true
		}
	}
	return found, ok
}

func operationProperties(root *document.Map, methods *document.Map) (Properties, bool) {
	for method, details := range methods.All() {
		switch strings.ToLower(method) {
		case "post", "put", "patch":
		default:
			continue
		}
		op, ok := details.(*document.Map)
		if !ok {
			continue
		}
		body, ok := lookup(op, "requestBody", "content", "application/json", "schema")
		if !ok {
			continue
		}
		if props, ok := objectProperties(body); ok {
			return props, true
		}
		if ref := body.StringAt("$ref"); ref != "" {
			if target, ok := resolveRef(root, ref); ok {
				if props, ok := objectProperties(target); ok {
					return props, true
				}
			}
		}
	}
	return Properties{}, false
}

// resolveRef follows an internal reference such as "#/components/schemas/Order"
// by literal path-segment lookup from the document root.
func resolveRef(root *document.Map, ref string) (*document.Map, bool) {
	var segments []string
	for _, part := range strings.Split(ref, "/") {
		if part == "#" || part == "" {
			continue
		}
		segments = append(segments, part)
	}
	if len(segments) == 0 {
		return nil, false
	}
	return lookup(root, segments...)
}

func lookup(m *document.Map, keys ...string) (*document.Map, bool) {
	current := m
	for _, k := range keys {
		next, ok := current.MapAt(k)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func stringList(m *document.Map, key string) []string {
	list, _ := m.ListAt(key)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// truthy mirrors the loose flag semantics of hand-written schemas:
// true, non-empty strings and non-zero numbers count as set.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
