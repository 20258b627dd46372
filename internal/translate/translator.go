// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate renders normalized field lists into other schema and code formats.
package translate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/dcgen/internal/schema"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate converts a field list to the target format.
	// name is used to name the output type or document (e.g. "orders" -> "Orders").
	Translate(name string, fields []schema.Field) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".md", ".go").
	FileExtension() string
}

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(r.Available(), ", "))
	}
	return t, nil
}

// Available returns all registered format names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
