// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema renders field lists as JSON Schema documents.
package jsonschema

import (
	"encoding/json"

	"github.com/dacolabs/dcgen/internal/document"
	"github.com/dacolabs/dcgen/internal/schema"
)

// Draft is the dialect URI written to every document.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator translates field lists to JSON Schema.
type Translator struct{}

// FileExtension returns the file extension for JSON files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// Translate converts a field list to an indented JSON Schema document titled name.
func (t *Translator) Translate(name string, fields []schema.Field) ([]byte, error) {
	doc := document.NewMap()
	doc.Set("$schema", Draft)
	doc.Set("title", name)
	for k, v := range schema.JSONSchemaDocument(fields).All() {
		doc.Set(k, v)
	}
	return json.MarshalIndent(doc, "", "  ")
}
