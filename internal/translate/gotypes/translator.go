// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes renders field lists as Go struct type definitions.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gotypes.go.tmpl"))

// DefaultPackage is used when Translator.Package is empty.
const DefaultPackage = "models"

// Translator translates field lists to Go struct definitions.
type Translator struct {
	Package string
}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate converts a field list to gofmt-formatted Go struct definitions.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	data := translate.Prepare(name, fields, &resolver{})

	pkg := t.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	data.Extra["Package"] = pkg
	data.Extra["NeedsTimeImport"] = needsTime(data)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

func needsTime(data *translate.SchemaData) bool {
	defs := append([]translate.TypeDef{data.Root}, data.Defs...)
	for _, def := range defs {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "time.Time") {
				return true
			}
		}
	}
	return false
}

type resolver struct{}

func (r *resolver) PrimitiveType(fieldType schema.FieldType, _ string) string {
	switch fieldType {
	case schema.TypeDateTime:
		return "time.Time"
	case schema.TypeInteger:
		return "int64"
	case schema.TypeNumber:
		return "float64"
	case schema.TypeBoolean:
		return "bool"
	case schema.TypeObject:
		return "map[string]any"
	default:
		// dates are emitted as YYYY-MM-DD strings
		return "string"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) RefType(defName string) string {
	return toPascalCase(defName)
}

func (r *resolver) FormatDefName(defName string) string {
	return toPascalCase(defName)
}

func (r *resolver) FormatRootName(name string) string {
	return toPascalCase(name)
}

func (r *resolver) EnrichField(f *translate.Field) {
	tag := f.JSONName
	if f.Nullable {
		tag += ",omitempty"
		if !strings.HasPrefix(f.Type, "[]") && !strings.HasPrefix(f.Type, "map[") {
			f.Type = "*" + f.Type
		}
	}
	f.Tag = "`json:\"" + tag + "\"`"
	f.Name = toPascalCase(f.Name)
	f.Description = strings.Join(strings.Fields(f.Description), " ")
}

var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"uuid": "UUID",
	"guid": "GUID",
	"ip":   "IP",
	"uri":  "URI",
	"sku":  "SKU",
}

// toPascalCase converts a field or type name to an exported Go identifier,
// uppercasing common acronyms.
func toPascalCase(s string) string {
	var sb strings.Builder
	for _, word := range strings.FieldsFunc(translate.ToSnakeCase(s), func(r rune) bool { return r == '_' }) {
		if acronym, ok := acronyms[word]; ok {
			sb.WriteString(acronym)
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	name := sb.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "F" + name
	}
	return name
}
