// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package templates provides the built-in streaming use-case templates.
package templates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/dcgen/internal/document"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
	"github.com/dacolabs/dcgen/internal/translate/openapi"
)

//go:embed templates.yaml
var catalogYAML []byte

var catalog = mustLoad(catalogYAML)

// Field is one attribute of a template schema.
type Field struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Required    bool   `yaml:"required" json:"required"`
	PrimaryKey  bool   `yaml:"primary_key" json:"is_primary_key"`
	ProfileID   bool   `yaml:"profile_id" json:"is_profile_id"`
	Description string `yaml:"description" json:"description"`
	Example     string `yaml:"example" json:"example,omitempty"`
}

// Template is a ready-made schema for a common streaming use case.
type Template struct {
	ID              string  `yaml:"id" json:"id"`
	Name            string  `yaml:"name" json:"name"`
	Category        string  `yaml:"category" json:"category"`
	Description     string  `yaml:"description" json:"description"`
	BusinessValue   string  `yaml:"business_value" json:"business_value"`
	DataModelObject string  `yaml:"data_model_object" json:"data_model_object"`
	Fields          []Field `yaml:"fields" json:"fields"`
	SetupNotes      string  `yaml:"setup_notes" json:"setup_notes"`
}

func mustLoad(data []byte) []Template {
	var all []Template
	if err := yaml.Unmarshal(data, &all); err != nil {
		panic(fmt.Sprintf("templates: invalid catalog: %v", err))
	}
	return all
}

// All returns every template in catalog order.
func All() []Template {
	return slices.Clone(catalog)
}

// Get returns the template with the given id.
func Get(id string) (Template, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// IDs returns the template ids in catalog order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	var out []string
	for _, t := range catalog {
		if !slices.Contains(out, t.Category) {
			out = append(out, t.Category)
		}
	}
	return out
}

// ByCategory returns the templates of one category.
func ByCategory(category string) []Template {
	var out []Template
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// SchemaName is the PascalCase object name used in generated documents.
func (t Template) SchemaName() string {
	name := strings.NewReplacer("&", "And", "/", " ").Replace(t.Name)
	return translate.ToPascalCase(strings.ToLower(name))
}

// SchemaFields returns the template as normalized fields.
func (t Template) SchemaFields() []schema.Field {
	fields := make([]schema.Field, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = schema.Field{
			Name:        f.Name,
			Type:        schema.ParseFieldType(f.Type, ""),
			Required:    f.Required,
			PrimaryKey:  f.PrimaryKey,
			Description: f.Description,
		}
	}
	return fields
}

// YAML renders the template as an OpenAPI components document.
func (t Template) YAML() ([]byte, error) {
	return (&openapi.Translator{}).Translate(t.SchemaName(), t.SchemaFields())
}

// SampleEvent builds an example payload from the field examples, typed
// after each field. Fields without an example are left out.
func (t Template) SampleEvent() *document.Map {
	event := document.NewMap()
	for _, f := range t.Fields {
		if f.Example == "" {
			continue
		}
		var value any = f.Example
		switch schema.ParseFieldType(f.Type, "") {
		case schema.TypeInteger:
			if n, err := cast.ToInt64E(f.Example); err == nil {
				value = n
			}
		case schema.TypeNumber:
			if n, err := cast.ToFloat64E(f.Example); err == nil {
				value = n
			}
		case schema.TypeBoolean:
			if b, err := cast.ToBoolE(f.Example); err == nil {
				value = b
			}
		}
		event.Set(f.Name, value)
	}
	return event
}

// SampleJSON renders SampleEvent as indented JSON.
func (t Template) SampleJSON() ([]byte, error) {
	return json.MarshalIndent(t.SampleEvent(), "", "  ")
}
