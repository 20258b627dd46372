// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/dacolabs/dcgen/internal/schema"

// TypeResolver converts field types to target-language type strings and naming conventions.
// Each translator implements this interface to control how fields map to its output format.
type TypeResolver interface {
	// PrimitiveType maps a scalar field type and format hint to a target type string.
	PrimitiveType(fieldType schema.FieldType, format string) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// RefType returns the type string that refers to a nested type definition.
	RefType(defName string) string

	// FormatDefName formats a nested type name for the target language.
	FormatDefName(defName string) string

	// FormatRootName formats the root type name from the schema name.
	FormatRootName(name string) string

	// EnrichField applies language-specific post-processing to a resolved field,
	// e.g. renaming for target conventions, wrapping for nullability or setting tags.
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}
