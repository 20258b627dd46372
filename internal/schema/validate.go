// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Validator checks generated records against the JSON Schema of a field list.
// Array fields and objects without nested fields are not type checked.
type Validator struct {
	resolved *jsonschema.Resolved
}

// NewValidator compiles the JSON Schema projection of fields.
func NewValidator(fields []Field) (*Validator, error) {
	s, err := toJSONSchema(schemaDocument(fields, true))
	if err != nil {
		return nil, err
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve JSON schema: %w", err)
	}
	return &Validator{resolved: resolved}, nil
}

// Validate checks one record. The record is normalized through JSON first so
// Go-typed values compare as their JSON counterparts.
func (v *Validator) Validate(record map[string]any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return err
	}
	return v.resolved.Validate(instance)
}
