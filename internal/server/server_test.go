// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/store"
	"github.com/dacolabs/dcgen/internal/translate"
	"github.com/dacolabs/dcgen/internal/translate/markdown"
)

const ordersSchema = `
type: object
required: [orderId]
properties:
  orderId: {type: string}
  quantity: {type: integer, minimum: 1, maximum: 3}
  status: {type: string, enum: [NEW, SHIPPED]}
`

type fakePlanner struct {
	err     error
	useCase string
}

func (f *fakePlanner) Plan(_ context.Context, fields []schema.Field, useCase string) (*plan.Plan, error) {
	f.useCase = useCase
	if f.err != nil {
		return nil, f.err
	}
	return plan.Heuristic(fields, useCase), nil
}

func newTestServer(t *testing.T, planner Planner) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemory(time.Hour)
	s := New(Options{
		Planner:     planner,
		Store:       st,
		Translators: translate.Register{"markdown": &markdown.Translator{}},
		Clock:       func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	})
	return s, st
}

func do(t *testing.T, s *Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, nil)
	status, body := do(t, s, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestParseSchema(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status, body := do(t, s, http.MethodPost, "/api/schema/parse", map[string]any{"schema": ordersSchema})
	require.Equal(t, http.StatusOK, status)

	fields := body["fields"].([]any)
	require.Len(t, fields, 3)
	assert.Equal(t, "orderId", fields[0].(map[string]any)["field_name"])

	rows := body["table_data"].([]any)
	require.Len(t, rows, 3)
	assert.Equal(t, "quantity", rows[1].(map[string]any)["Field Name"])

	js := body["json_schema"].(map[string]any)
	assert.Equal(t, "object", js["type"])
}

func TestParseSchema_Errors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		status int
		kind   string
	}{
		{name: "empty", schema: "  ", status: http.StatusBadRequest, kind: KindInvalidRequest},
		{name: "no properties", schema: "title: nothing here", status: http.StatusBadRequest, kind: KindSchemaFormat},
		{name: "not a mapping", schema: "- a\n- b", status: http.StatusBadRequest, kind: KindSchemaFormat},
		{name: "broken yaml", schema: "a: [1, 2", status: http.StatusBadRequest, kind: KindSchemaFormat},
	}

	s, _ := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, s, http.MethodPost, "/api/schema/parse", map[string]any{"schema": tt.schema})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.kind, body["kind"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestTranslateSchema(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status, body := do(t, s, http.MethodPost, "/api/schema/translate", map[string]any{
		"schema": ordersSchema,
		"format": "markdown",
		"name":   "orders",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, ".md", body["extension"])
	assert.Contains(t, body["content"], "orderId")

	status, body = do(t, s, http.MethodPost, "/api/schema/translate", map[string]any{
		"schema": ordersSchema,
		"format": "cobol",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, KindInvalidRequest, body["kind"])
	assert.Contains(t, body["error"], "markdown")
}

func TestBuildPlan(t *testing.T) {
	planner := &fakePlanner{}
	s, _ := newTestServer(t, planner)

	status, body := do(t, s, http.MethodPost, "/api/plan", map[string]any{
		"schema":    ordersSchema,
		"use_case":  "order events",
		"overrides": map[string]any{"status": "NEW"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "order events", planner.useCase)
	assert.Equal(t, "order events", body["use_case"])

	fields := body["fields"].([]any)
	require.Len(t, fields, 3)
	status2 := fields[2].(map[string]any)
	assert.Equal(t, "fixed_value", status2["generator_type"])
	assert.Equal(t, "NEW", status2["suggested_value"])
}

func TestBuildPlan_ParseFailure(t *testing.T) {
	s, _ := newTestServer(t, &fakePlanner{err: fmt.Errorf("reply: %w", plan.ErrParse)})

	status, body := do(t, s, http.MethodPost, "/api/plan", map[string]any{"schema": ordersSchema})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, KindPlanParse, body["kind"])
}

func TestGenerate(t *testing.T) {
	s, _ := newTestServer(t, nil)

	req := map[string]any{"yaml_schema": ordersSchema, "seed": 42}
	status, body := do(t, s, http.MethodPost, "/api/payload/generate", req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 5, body["count"])
	assert.EqualValues(t, 42, body["seed"])

	records := body["records"].([]any)
	require.Len(t, records, 5)
	for _, r := range records {
		rec := r.(map[string]any)
		assert.Contains(t, []any{"NEW", "SHIPPED"}, rec["status"])
		assert.GreaterOrEqual(t, rec["quantity"], 1.0)
		assert.LessOrEqual(t, rec["quantity"], 3.0)
	}

	_, again := do(t, s, http.MethodPost, "/api/payload/generate", req)
	assert.Equal(t, body["records"], again["records"])
}

func TestGenerate_CountAndOverrides(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status, body := do(t, s, http.MethodPost, "/api/payload/generate", map[string]any{
		"yaml_schema": ordersSchema,
		"count":       2,
		"overrides":   map[string]any{"orderId": "fixed"},
	})
	require.Equal(t, http.StatusOK, status)
	records := body["records"].([]any)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "fixed", r.(map[string]any)["orderId"])
	}

	status, body = do(t, s, http.MethodPost, "/api/payload/generate", map[string]any{
		"yaml_schema": ordersSchema,
		"count":       0,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["records"])
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]any
		status int
		kind   string
	}{
		{
			name:   "nothing to generate from",
			body:   map[string]any{"count": 1},
			status: http.StatusBadRequest,
			kind:   KindInvalidRequest,
		},
		{
			name:   "count too large",
			body:   map[string]any{"yaml_schema": ordersSchema, "count": 1001},
			status: http.StatusBadRequest,
			kind:   KindInvalidRequest,
		},
		{
			name:   "negative count",
			body:   map[string]any{"yaml_schema": ordersSchema, "count": -1},
			status: http.StatusBadRequest,
			kind:   KindInvalidRequest,
		},
		{
			name:   "unknown saved plan",
			body:   map[string]any{"plan_name": "missing"},
			status: http.StatusNotFound,
			kind:   KindNotFound,
		},
		{
			name: "unusable constraint",
			body: map[string]any{"plan": map[string]any{"fields": []any{
				map[string]any{"field_name": "n", "generator_type": "int_range", "constraints": map[string]any{"min": "abc"}},
			}}},
			status: http.StatusUnprocessableEntity,
			kind:   KindGenerationValue,
		},
		{
			name: "path conflict",
			body: map[string]any{"plan": map[string]any{"fields": []any{
				map[string]any{"field_name": "address", "generator_type": "address"},
				map[string]any{"field_name": "address.city", "generator_type": "city"},
			}}},
			status: http.StatusUnprocessableEntity,
			kind:   KindGenerationValue,
		},
		{
			name:   "empty inline plan",
			body:   map[string]any{"plan": map[string]any{"fields": []any{}}},
			status: http.StatusBadRequest,
			kind:   KindInvalidRequest,
		},
	}

	s, _ := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, s, http.MethodPost, "/api/payload/generate", tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.kind, body["kind"])
		})
	}
}

func TestTemplates(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status, body := do(t, s, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, status)
	list := body["templates"].([]any)
	require.Len(t, list, 5)
	first := list[0].(map[string]any)
	assert.NotEmpty(t, first["id"])
	assert.Greater(t, first["fields_count"], 0.0)

	status, body = do(t, s, http.MethodGet, "/api/templates/categories", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["categories"], 5)

	status, body = do(t, s, http.MethodGet, "/api/templates/credit_card_transaction", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["yaml"], "openapi: 3.0.3")
	assert.NotEmpty(t, body["sample_json"])
	assert.Equal(t, "credit_card_transaction", body["template"].(map[string]any)["id"])

	status, body = do(t, s, http.MethodGet, "/api/templates/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, KindNotFound, body["kind"])
}

func TestPlans_Lifecycle(t *testing.T) {
	s, _ := newTestServer(t, nil)

	saved := map[string]any{
		"use_case": "orders",
		"fields": []any{
			map[string]any{"field_name": "id", "generator_type": "uuid4", "constraints": map[string]any{}},
		},
	}

	status, _ := do(t, s, http.MethodPut, "/api/plans/orders", saved)
	require.Equal(t, http.StatusOK, status)

	status, body := do(t, s, http.MethodGet, "/api/plans", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"orders"}, body["plans"])

	status, body = do(t, s, http.MethodGet, "/api/plans/orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "orders", body["use_case"])

	status, body = do(t, s, http.MethodPost, "/api/payload/generate", map[string]any{"plan_name": "orders", "count": 3})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["records"], 3)

	status, _ = do(t, s, http.MethodDelete, "/api/plans/orders", nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, body = do(t, s, http.MethodGet, "/api/plans/orders", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, KindNotFound, body["kind"])

	status, _ = do(t, s, http.MethodDelete, "/api/plans/orders", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPlans_Validation(t *testing.T) {
	s, _ := newTestServer(t, nil)

	status, body := do(t, s, http.MethodPut, "/api/plans/_bad", map[string]any{
		"fields": []any{map[string]any{"field_name": "id"}},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, KindInvalidRequest, body["kind"])

	status, _ = do(t, s, http.MethodPut, "/api/plans/empty", map[string]any{"fields": []any{}})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t, nil)
	status, body := do(t, s, http.MethodGet, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, KindNotFound, body["kind"])
}
