// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(translate.Register{"markdown": &markdown.Translator{}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeSchema(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "orders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ordersSchema), 0o600))
	return path
}

func TestSchemaParse_JSON(t *testing.T) {
	path := writeSchema(t)

	out, err := execute(t, "schema", "parse", path, "--output", "json")
	require.NoError(t, err)

	var fields []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fields))
	require.Len(t, fields, 3)
	assert.Equal(t, "orderId", fields[0]["field_name"])
	assert.Equal(t, true, fields[0]["required"])
}

func TestSchemaParse_UnknownOutput(t *testing.T) {
	path := writeSchema(t)
	_, err := execute(t, "schema", "parse", path, "--output", "xml")
	assert.ErrorContains(t, err, "unsupported output")
}

func TestSchemaTranslate(t *testing.T) {
	path := writeSchema(t)

	out, err := execute(t, "schema", "translate", path, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "orderId")

	_, err = execute(t, "schema", "translate", path, "--format", "cobol")
	assert.ErrorContains(t, err, "unknown format")
}

func TestGenerate_Reproducible(t *testing.T) {
	path := writeSchema(t)

	first, err := execute(t, "generate", path, "--seed", "7", "-n", "3")
	require.NoError(t, err)
	second, err := execute(t, "generate", path, "--seed", "7", "-n", "3")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &records))
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Contains(t, []any{"NEW", "SHIPPED"}, r["status"])
	}
	assert.Equal(t, first, second)
}

func TestGenerate_SetAndValidate(t *testing.T) {
	path := writeSchema(t)

	out, err := execute(t, "generate", path, "-n", "2", "--set", "status=SHIPPED", "--set", "quantity=2", "--validate", "--format", "jsonl")
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var r map[string]any
		require.NoError(t, json.Unmarshal(line, &r))
		assert.Equal(t, "SHIPPED", r["status"])
		assert.Equal(t, 2.0, r["quantity"])
	}
}

func TestGenerate_ValidateHeuristicCollections(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "tagged.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
type: object
required: [orderId]
properties:
  orderId: {type: string}
  tags: {type: array, items: {type: string}}
  attributes: {type: object}
`), 0o600))

	out, err := execute(t, "generate", path, "-n", "3", "--seed", "1", "--validate")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Contains(t, r, "tags")
		assert.Contains(t, r, "attributes")
	}
}

func TestGenerate_Errors(t *testing.T) {
	path := writeSchema(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no source", args: []string{"generate"}, want: "is required"},
		{name: "negative count", args: []string{"generate", path, "-n", "-1"}, want: "must not be negative"},
		{name: "bad format", args: []string{"generate", path, "--format", "csv"}, want: "unsupported format"},
		{name: "bad override", args: []string{"generate", path, "--set", "nope"}, want: "expected field=value"},
		{name: "template and file", args: []string{"generate", path, "--template", "consent_signal"}, want: "mutually exclusive"},
		{name: "unknown template", args: []string{"generate", "--template", "nope"}, want: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestTemplatesShow_Sample(t *testing.T) {
	out, err := execute(t, "templates", "show", "consent_signal", "--sample")
	require.NoError(t, err)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &event))
	assert.NotEmpty(t, event)
}

func TestTemplatesShow_YAML(t *testing.T) {
	out, err := execute(t, "templates", "show", "flight_status_change", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi: 3.0.3")
}

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides([]string{"a=5", "b=true", "c=hello", "d=", "e=1.5", "f=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": 5,
		"b": true,
		"c": "hello",
		"d": nil,
		"e": 1.5,
		"f": "a=b",
	}, got)

	got, err = parseOverrides(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseOverrides([]string{"=x"})
	assert.Error(t, err)
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "orders", nameFromPath("schemas/orders.yaml"))
	assert.Equal(t, "orders.v2", nameFromPath("orders.v2.json"))
	assert.Equal(t, "schema", nameFromPath("-"))
}

func TestPackageFromOutput(t *testing.T) {
	assert.Equal(t, "models", packageFromOutput("models/orders.go", ""))
	assert.Equal(t, "eventtypes", packageFromOutput("out/event-types/orders.go", ""))
	assert.Equal(t, "fallback", packageFromOutput("orders.go", "fallback"))
}

func TestEncodeRecords(t *testing.T) {
	records := []map[string]any{{"a": 1}, {"a": 2}}

	data, err := encodeRecords(records, "jsonl")
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n{\"a\":2}\n", string(data))

	data, err = encodeRecords(records, "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":1},{"a":2}]`, string(data))
}

func TestBuildInitConfig(t *testing.T) {
	cfg, err := buildInitConfig(&initOptions{provider: "anthropic", redisURLEnv: "REDIS_URL"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.LLM.APIKeyEnv)

	_, err = buildInitConfig(&initOptions{provider: "nope"})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "init", "--provider", "perplexity", "--non-interactive")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "dcgen.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "provider: perplexity")
	assert.Contains(t, string(data), "api_key_env: PERPLEXITY_API_KEY")

	_, err = execute(t, "init", "--non-interactive")
	assert.ErrorContains(t, err, "already initialized")
}
