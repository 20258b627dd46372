// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("plan parse error")

// ParseError reports completion text that could not be turned into a plan.
type ParseError struct {
	Reason string
	Length int // length of the raw text
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse plan: %s (response length: %d chars)", e.Reason, e.Length)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

var (
	trailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	fieldsKey     = regexp.MustCompile(`"fields"\s*:\s*\[`)
)

// Parse extracts a plan from free-form completion text. It tolerates markdown
// code fences, prose around the JSON object and trailing commas, and as a last
// resort extracts the "fields" array on its own. Unknown generator kinds become
// string generators.
func Parse(text, useCase string) (*Plan, error) {
	fail := func(format string, args ...any) error {
		return &ParseError{Reason: fmt.Sprintf(format, args...), Length: len(text)}
	}

	data := decodeLenient(extractObject(stripFences(strings.TrimSpace(text))), useCase)
	if data == nil {
		return nil, fail("response is not valid JSON")
	}

	raw, ok := data["fields"]
	if !ok {
		return nil, fail("response missing %q key", "fields")
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, fail("%q is not a list", "fields")
	}

	p := &Plan{UseCase: useCase, Fields: make([]FieldPlan, 0, len(entries))}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return nil, fail("field plan %d is not an object", i)
		}
		name, _ := entry["field_name"].(string)
		if name == "" {
			return nil, fail("field plan %d has no field_name", i)
		}
		kind, _ := entry["generator_type"].(string)
		constraints, _ := entry["constraints"].(map[string]any)
		if constraints == nil {
			constraints = map[string]any{}
		}
		rationale, _ := entry["rationale"].(string)

		p.Fields = append(p.Fields, FieldPlan{
			FieldName:      name,
			Generator:      ParseKind(kind),
			SuggestedValue: entry["suggested_value"],
			Constraints:    constraints,
			Rationale:      rationale,
		})
	}
	return p, nil
}

// stripFences returns the body of the first fenced code block, if any.
func stripFences(text string) string {
	if !strings.Contains(text, "```") {
		return text
	}
	var (
		body   []string
		inside bool
	)
	for _, line := range strings.Split(text, "\n") {
		fence := strings.HasPrefix(strings.TrimSpace(line), "```")
		switch {
		case fence && !inside:
			inside = true
		case fence && inside:
			return strings.Join(body, "\n")
		case inside:
			body = append(body, line)
		}
	}
	if len(body) == 0 {
		return text
	}
	return strings.Join(body, "\n")
}

// extractObject trims text to the span between the first '{' and the last '}'.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}") + 1
	if start >= 0 && end > start {
		return text[start:end]
	}
	return text
}

func decodeLenient(text, useCase string) map[string]any {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data
	}

	fixed := trailingComma.ReplaceAllString(text, "$1")
	if err := json.Unmarshal([]byte(fixed), &data); err == nil {
		return data
	}

	list, ok := balancedFields(text)
	if !ok {
		return nil
	}
	var fields []any
	if err := json.Unmarshal([]byte(list), &fields); err != nil {
		if err := json.Unmarshal([]byte(trailingComma.ReplaceAllString(list, "$1")), &fields); err != nil {
			return nil
		}
	}
	return map[string]any{"fields": fields, "use_case": useCase}
}

// balancedFields returns the bracket-balanced array that follows a "fields" key.
func balancedFields(text string) (string, bool) {
	loc := fieldsKey.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	start := loc[1] - 1
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
