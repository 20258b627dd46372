// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro renders field lists as Apache Avro record schemas.
package avro

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
)

// Namespace is the namespace of the root record.
const Namespace = "dcgen.records"

// Translator translates field lists to Apache Avro schema definitions.
type Translator struct{}

// FileExtension returns the file extension for Avro schema files.
func (t *Translator) FileExtension() string {
	return ".avsc"
}

type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Doc       string      `json:"doc,omitempty"`
	Fields    []avroField `json:"fields"`
}

type avroField struct {
	Name    string `json:"name"`
	Type    any    `json:"type"`
	Doc     string `json:"doc,omitempty"`
	Default any    `json:"default,omitempty"`
}

type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

type avroMap struct {
	Type   string `json:"type"`
	Values string `json:"values"`
}

type avroEnum struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Symbols []string `json:"symbols"`
}

type avroLogicalType struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

// nullDefault marshals as JSON null so optional fields default to null.
type nullDefault struct{}

func (nullDefault) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Translate converts a field list to an Avro schema JSON document.
// Nested records are declared inline where they are first used.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	data := translate.Prepare(name, fields, &resolver{})

	b := &builder{
		defs:    make(map[string]*translate.TypeDef, len(data.Defs)),
		inlined: make(map[string]bool),
	}
	for i := range data.Defs {
		b.defs[data.Defs[i].Name] = &data.Defs[i]
	}

	root := avroRecord{
		Type:      "record",
		Name:      data.Root.Name,
		Namespace: Namespace,
		Fields:    b.fields(data.Root.Fields),
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Avro schema: %w", err)
	}
	return append(out, '\n'), nil
}

type builder struct {
	defs    map[string]*translate.TypeDef
	inlined map[string]bool
}

func (b *builder) fields(fields []translate.Field) []avroField {
	out := make([]avroField, 0, len(fields))
	for _, f := range fields {
		var typ any
		if enum := enumSymbols(f); enum != nil {
			typ = avroEnum{Type: "enum", Name: translate.ToPascalCase(f.JSONName) + "Enum", Symbols: enum}
		} else {
			typ = b.avroType(f.Type)
		}
		field := avroField{Name: f.Name, Type: typ, Doc: f.Description}
		if f.Nullable {
			field.Type = []any{"null", typ}
			field.Default = nullDefault{}
		}
		out = append(out, field)
	}
	return out
}

func (b *builder) avroType(typeStr string) any {
	if name, ok := strings.CutPrefix(typeStr, "ref:"); ok {
		if def, exists := b.defs[name]; exists && !b.inlined[name] {
			b.inlined[name] = true
			return avroRecord{Type: "record", Name: name, Fields: b.fields(def.Fields)}
		}
		return name
	}
	if elem, ok := strings.CutPrefix(typeStr, "array:"); ok {
		return avroArray{Type: "array", Items: b.avroType(elem)}
	}

	switch typeStr {
	case "map":
		return avroMap{Type: "map", Values: "string"}
	case "date":
		return avroLogicalType{Type: "int", LogicalType: "date"}
	case "timestamp-millis":
		return avroLogicalType{Type: "long", LogicalType: "timestamp-millis"}
	case "uuid":
		return avroLogicalType{Type: "string", LogicalType: "uuid"}
	}
	return typeStr
}

// enumSymbols returns the enum of a string field when every value is a
// valid Avro symbol, otherwise nil.
func enumSymbols(f translate.Field) []string {
	if f.Type != "string" || len(f.Constraints.Enum) == 0 {
		return nil
	}
	symbols := make([]string, 0, len(f.Constraints.Enum))
	for _, v := range f.Constraints.Enum {
		s, ok := v.(string)
		if !ok || !validSymbol(s) {
			return nil
		}
		symbols = append(symbols, s)
	}
	return symbols
}

func validSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

type resolver struct{}

func (r *resolver) PrimitiveType(fieldType schema.FieldType, format string) string {
	switch fieldType {
	case schema.TypeDate:
		return "date"
	case schema.TypeDateTime:
		return "timestamp-millis"
	case schema.TypeInteger:
		return "long"
	case schema.TypeNumber:
		return "double"
	case schema.TypeBoolean:
		return "boolean"
	case schema.TypeObject:
		return "map"
	}
	if strings.EqualFold(format, "uuid") {
		return "uuid"
	}
	return "string"
}

func (r *resolver) ArrayType(elemType string) string {
	return "array:" + elemType
}

func (r *resolver) RefType(defName string) string {
	return "ref:" + defName
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToPascalCase(defName)
}

func (r *resolver) FormatRootName(name string) string {
	return translate.ToPascalCase(name)
}

// EnrichField makes field names valid Avro names.
func (r *resolver) EnrichField(f *translate.Field) {
	if !validSymbol(f.Name) {
		f.Name = translate.ToSnakeCase(f.Name)
	}
}
