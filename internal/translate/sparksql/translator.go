// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package sparksql renders field lists as Spark SQL CREATE TABLE statements.
package sparksql

import (
	"fmt"
	"strings"

	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
)

// Translator translates field lists to Spark DDL CREATE TABLE statements.
type Translator struct{}

// FileExtension returns the file extension for SQL files.
func (t *Translator) FileExtension() string {
	return ".sql"
}

// Translate converts a field list to a Spark DDL CREATE TABLE statement.
// Nested objects are inlined as STRUCT<...> column types.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	data := translate.Prepare(name, fields, &resolver{})

	defs := make(map[string]*translate.TypeDef, len(data.Defs))
	for i := range data.Defs {
		defs[data.Defs[i].Name] = &data.Defs[i]
	}
	if err := inlineStructs(data.Root.Fields, defs, make(map[string]bool)); err != nil {
		return nil, fmt.Errorf("failed to inline struct definitions: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "CREATE TABLE %s (\n", data.Root.Name)
	for i, f := range data.Root.Fields {
		fmt.Fprintf(&sb, "  %s %s%s", f.Name, f.Type, f.Tag)
		if f.Description != "" {
			fmt.Fprintf(&sb, " COMMENT '%s'", escapeComment(f.Description))
		}
		if i < len(data.Root.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");\n")
	return []byte(sb.String()), nil
}

// inlineStructs replaces struct references, which may sit inside ARRAY<...>,
// with inline STRUCT<...> definitions.
func inlineStructs(fields []translate.Field, defs map[string]*translate.TypeDef, visited map[string]bool) error {
	for i := range fields {
		typ, err := inlineType(fields[i].Type, defs, visited)
		if err != nil {
			return err
		}
		fields[i].Type = typ
	}
	return nil
}

func inlineType(typ string, defs map[string]*translate.TypeDef, visited map[string]bool) (string, error) {
	if inner, ok := strings.CutPrefix(typ, "ARRAY<"); ok {
		elem, err := inlineType(strings.TrimSuffix(inner, ">"), defs, visited)
		if err != nil {
			return "", err
		}
		return "ARRAY<" + elem + ">", nil
	}
	def, ok := defs[typ]
	if !ok {
		return typ, nil
	}
	if visited[typ] {
		return "", fmt.Errorf("circular type reference detected: %s", typ)
	}
	visited[typ] = true
	defer delete(visited, typ)

	fields := make([]translate.Field, len(def.Fields))
	copy(fields, def.Fields)
	if err := inlineStructs(fields, defs, visited); err != nil {
		return "", err
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + f.Type + f.Tag
	}
	return "STRUCT<" + strings.Join(parts, ", ") + ">", nil
}

func escapeComment(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "'", "\\'")
}

type resolver struct{}

func (r *resolver) PrimitiveType(fieldType schema.FieldType, _ string) string {
	switch fieldType {
	case schema.TypeDate:
		return "DATE"
	case schema.TypeDateTime:
		return "TIMESTAMP"
	case schema.TypeInteger:
		return "BIGINT"
	case schema.TypeNumber:
		return "DOUBLE"
	case schema.TypeBoolean:
		return "BOOLEAN"
	case schema.TypeObject:
		return "MAP<STRING, STRING>"
	default:
		return "STRING"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "ARRAY<" + elemType + ">"
}

func (r *resolver) RefType(defName string) string {
	return defName
}

func (r *resolver) FormatDefName(defName string) string {
	return defName
}

func (r *resolver) FormatRootName(name string) string {
	return translate.ToSnakeCase(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = translate.ToSnakeCase(f.Name)
	if !f.Nullable {
		f.Tag = " NOT NULL"
	}
}
