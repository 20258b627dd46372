// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/dcgen/internal/schema"
)

func TestTranslate_Struct(t *testing.T) {
	fields := []schema.Field{
		{Name: "eventId", Type: schema.TypeString, Required: true},
		{Name: "amount", Type: schema.TypeNumber, Description: "Amount in\nUSD"},
		{Name: "count", Type: schema.TypeInteger, Required: true},
		{Name: "seen_at", Type: schema.TypeDateTime},
		{Name: "travel_date", Type: schema.TypeDate, Required: true},
		{Name: "tags", Type: schema.TypeArray},
	}

	output, err := (&Translator{}).Translate("flight_status", fields)
	require.NoError(t, err)

	result := string(output)

	assert.Contains(t, result, "// Code generated by dcgen. DO NOT EDIT.")
	assert.Contains(t, result, "package models")
	assert.Contains(t, result, `import "time"`)
	assert.Contains(t, result, "type FlightStatus struct {")
	assert.Contains(t, result, "EventID    string     `json:\"eventId\"`")
	assert.Contains(t, result, "// Amount in USD")
	assert.Contains(t, result, "Amount     *float64   `json:\"amount,omitempty\"`")
	assert.Contains(t, result, "SeenAt     *time.Time `json:\"seen_at,omitempty\"`")
	assert.Contains(t, result, "TravelDate string     `json:\"travel_date\"`")
	assert.Contains(t, result, "Tags       []string   `json:\"tags,omitempty\"`")
}

func TestTranslate_NestedAndPackage(t *testing.T) {
	fields := []schema.Field{
		{Name: "customer", Type: schema.TypeObject, Required: true, Nested: []schema.Field{
			{Name: "email", Type: schema.TypeString},
		}},
		{Name: "lines", Type: schema.TypeArray, Nested: []schema.Field{
			{Name: "sku", Type: schema.TypeString, Required: true},
		}},
	}

	output, err := (&Translator{Package: "demo"}).Translate("order", fields)
	require.NoError(t, err)

	result := string(output)

	assert.Contains(t, result, "package demo")
	assert.NotContains(t, result, "import")
	assert.Contains(t, result, "type Customer struct {")
	assert.Contains(t, result, "type LinesItem struct {")
	assert.Contains(t, result, "SKU string `json:\"sku\"`")
	assert.Contains(t, result, "Customer Customer    `json:\"customer\"`")
	assert.Contains(t, result, "Lines    []LinesItem `json:\"lines,omitempty\"`")
	assert.Less(t, strings.Index(result, "type Customer"), strings.Index(result, "type Order"))
}

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"user_id":     "UserID",
		"eventId":     "EventID",
		"website_url": "WebsiteURL",
		"2fa":         "F2fa",
		"":            "F",
	}
	for in, want := range tests {
		assert.Equal(t, want, toPascalCase(in), in)
	}
}
