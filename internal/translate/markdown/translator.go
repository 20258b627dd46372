// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown renders field lists as markdown documentation tables.
package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"formatConstraints": formatConstraints,
	"cell":              cell,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator translates field lists to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts a field list to markdown documentation.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	data := translate.Prepare(name, fields, &resolver{})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type resolver struct{}

func (r *resolver) PrimitiveType(fieldType schema.FieldType, _ string) string {
	return string(fieldType)
}

func (r *resolver) ArrayType(elemType string) string {
	return "array(" + elemType + ")"
}

func (r *resolver) RefType(defName string) string {
	name := translate.ToPascalCase(defName)
	return "[" + name + "](#" + strings.ToLower(name) + ")"
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToPascalCase(defName)
}

func (r *resolver) FormatRootName(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) EnrichField(*translate.Field) {}

// formatConstraints formats the constraints of a field as a human-readable string.
func formatConstraints(f translate.Field) string {
	var parts []string
	c := f.Constraints

	if f.PrimaryKey {
		parts = append(parts, "primary key")
	}

	if len(c.Enum) > 0 {
		enumVals := make([]string, len(c.Enum))
		for i, v := range c.Enum {
			enumVals[i] = fmt.Sprintf("`%v`", v)
		}
		parts = append(parts, "enum: "+strings.Join(enumVals, ", "))
	}

	if c.Pattern != "" {
		parts = append(parts, fmt.Sprintf("pattern: `%s`", cell(c.Pattern)))
	}

	if c.Format != "" {
		parts = append(parts, "format: "+c.Format)
	}

	if c.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLength: %d", *c.MinLength))
	}

	if c.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLength: %d", *c.MaxLength))
	}

	if c.Minimum != nil {
		parts = append(parts, fmt.Sprintf("minimum: %v", *c.Minimum))
	}

	if c.Maximum != nil {
		parts = append(parts, fmt.Sprintf("maximum: %v", *c.Maximum))
	}

	return strings.Join(parts, ", ")
}

// cell escapes pipes so text stays inside one table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
