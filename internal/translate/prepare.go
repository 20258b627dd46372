// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strconv"
	"strings"

	"github.com/dacolabs/dcgen/internal/schema"
)

// prepareContext holds mutable state during preparation.
type prepareContext struct {
	resolver  TypeResolver
	extracted []TypeDef // nested objects extracted as named types
	names     map[string]int
}

// Prepare converts a normalized field list into a SchemaData ready for template execution.
// Nested object and array-of-object fields are extracted as named type definitions,
// innermost first, so every type is declared before the type that uses it.
func Prepare(name string, fields []schema.Field, resolver TypeResolver) *SchemaData {
	ctx := &prepareContext{
		resolver: resolver,
		names:    make(map[string]int),
	}

	rootFields := ctx.resolveFields(fields)

	return &SchemaData{
		Defs:  ctx.extracted,
		Root:  TypeDef{Name: resolver.FormatRootName(name), Fields: rootFields},
		Extra: make(map[string]any),
	}
}

func (c *prepareContext) resolveFields(fields []schema.Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, sf := range fields {
		f := Field{
			Name:        sf.Name,
			JSONName:    sf.Name,
			Type:        c.resolveType(sf),
			Nullable:    !sf.Required,
			PrimaryKey:  sf.PrimaryKey,
			Description: sf.Description,
			Constraints: Constraints{
				Enum:      sf.Enum,
				Pattern:   sf.Pattern,
				Format:    sf.Format,
				MinLength: sf.MinLength,
				MaxLength: sf.MaxLength,
				Minimum:   sf.Minimum,
				Maximum:   sf.Maximum,
			},
		}
		c.resolver.EnrichField(&f)
		out = append(out, f)
	}
	return out
}

func (c *prepareContext) resolveType(f schema.Field) string {
	switch f.Type {
	case schema.TypeArray:
		if len(f.Nested) > 0 {
			return c.resolver.ArrayType(c.extract(f.Name+"_item", f.Nested))
		}
		return c.resolver.ArrayType(c.resolver.PrimitiveType(schema.TypeString, ""))
	case schema.TypeObject:
		if len(f.Nested) > 0 {
			return c.extract(f.Name, f.Nested)
		}
	}
	return c.resolver.PrimitiveType(f.Type, f.Format)
}

// extract registers nested fields as a named type and returns a reference to it.
// Repeated names get a numeric suffix.
func (c *prepareContext) extract(fieldName string, nested []schema.Field) string {
	defName := ToPascalCase(fieldName)
	if n := c.names[defName]; n > 0 {
		c.names[defName] = n + 1
		defName += strconv.Itoa(n + 1)
	} else {
		c.names[defName] = 1
	}

	fields := c.resolveFields(nested)
	c.extracted = append(c.extracted, TypeDef{
		Name:   c.resolver.FormatDefName(defName),
		Fields: fields,
	})
	return c.resolver.RefType(defName)
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It splits on non-alphanumeric characters and camelCase boundaries, lowercases each part,
// and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	var words []string
	for _, part := range splitWords(s) {
		words = append(words, strings.ToLower(part))
	}

	result := strings.Join(words, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a snake_case, kebab-case or camelCase string to PascalCase
// for type name generation.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, part := range splitWords(s) {
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}

// splitWords splits on non-alphanumeric characters and lower-to-upper case transitions.
func splitWords(s string) []string {
	var (
		words   []string
		current []byte
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		isLower := ch >= 'a' && ch <= 'z'
		isUpper := ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'
		if !isLower && !isUpper && !isDigit {
			flush()
			continue
		}
		if isUpper && len(current) > 0 {
			prev := current[len(current)-1]
			if prev >= 'a' && prev <= 'z' || prev >= '0' && prev <= '9' {
				flush()
			}
		}
		current = append(current, ch)
	}
	flush()
	return words
}
