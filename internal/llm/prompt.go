// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
)

// Limits applied to the schema summary sent with a plan request.
const (
	MaxPromptFields = 30
	MaxPromptEnum   = 5
)

// RetryPrompt follows a reply that could not be parsed as a plan.
const RetryPrompt = "That response was not valid JSON. Please respond with ONLY a valid JSON object, no other text or formatting."

// SystemPrompt describes the plan format and the generator kinds.
func SystemPrompt() string {
	kinds := plan.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return "You generate JSON data plans. Respond with ONLY a JSON object, no other text.\n\n" +
		"Generator types: " + strings.Join(names, ", ") + "\n\n" +
		"JSON format:\n" +
		`{"fields":[{"field_name":"name","generator_type":"type","suggested_value":null,"constraints":{},"rationale":"why"}],"use_case":"desc"}`
}

type fieldSummary struct {
	Name string           `json:"name"`
	Type schema.FieldType `json:"type"`
	Enum []any            `json:"enum,omitempty"`
}

// UserPrompt summarizes the schema and states the use case. Only the first
// MaxPromptFields fields and MaxPromptEnum enum values of each are included.
func UserPrompt(fields []schema.Field, useCase string) string {
	fields = fields[:min(len(fields), MaxPromptFields)]
	summary := make([]fieldSummary, len(fields))
	for i, f := range fields {
		summary[i] = fieldSummary{Name: f.Name, Type: f.Type}
		if len(f.Enum) > 0 {
			summary[i].Enum = f.Enum[:min(len(f.Enum), MaxPromptEnum)]
		}
	}
	data, err := json.Marshal(summary)
	if err != nil {
		// enum values that cannot be encoded are dropped from the summary
		for i := range summary {
			summary[i].Enum = nil
		}
		data, _ = json.Marshal(summary)
	}
	return fmt.Sprintf("Schema: %s\nUse case: %s\nReturn JSON only.", data, useCase)
}
