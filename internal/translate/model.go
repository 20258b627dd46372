// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Defs  []TypeDef      // nested object types, innermost first
	Root  TypeDef        // the top-level record type
	Extra map[string]any // translator-specific template data
}

// TypeDef represents a named record type (the root or a nested object).
type TypeDef struct {
	Name   string  // formatted name, e.g. "Customer" (Go) or "customer" (markdown)
	Fields []Field // ordered fields
}

// Field represents a single attribute within a type definition.
type Field struct {
	Name        string // field name (may be mutated by EnrichField)
	JSONName    string // original field name as it appears in records
	Type        string // fully resolved target type string
	Nullable    bool   // true if the field is not required
	PrimaryKey  bool
	Tag         string // language-specific annotation, e.g. `json:"name,omitempty"`
	Description string
	Constraints Constraints
}

// Constraints holds the validation constraints of a field.
type Constraints struct {
	Enum      []any
	Pattern   string
	Format    string
	MinLength *int
	MaxLength *int
	Minimum   *float64
	Maximum   *float64
}
