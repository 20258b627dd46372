// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
)

func TestFieldsTable(t *testing.T) {
	out := FieldsTable([]schema.Field{
		{Name: "orderId", Type: schema.TypeString, Required: true, PrimaryKey: true},
		{Name: "customer", Type: schema.TypeObject, Nested: []schema.Field{
			{Name: "email", Type: schema.TypeString},
		}},
	})

	for _, h := range schema.TableHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "orderId")
	assert.Contains(t, out, "customer.email")
}

func TestPlanTable(t *testing.T) {
	out := PlanTable(&plan.Plan{Fields: []plan.FieldPlan{
		{FieldName: "country", Generator: plan.KindFixedValue, SuggestedValue: "FR", Rationale: plan.OverrideRationale},
		{FieldName: "qty", Generator: plan.KindIntRange, Constraints: map[string]any{"min": 1}},
	}})

	assert.Contains(t, out, "fixed_value")
	assert.Contains(t, out, "FR")
	assert.Contains(t, out, "map[min:1]")
	assert.Contains(t, out, plan.OverrideRationale)
}

func TestValidators(t *testing.T) {
	assert.Error(t, requiredValidator("use case")(""))
	assert.NoError(t, requiredValidator("use case")("demo"))
	assert.Error(t, planNameValidator("has space"))
	assert.NoError(t, planNameValidator("demo-1"))
}
