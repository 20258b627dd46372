// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/dcgen/internal/schema"
)

func TestTranslate(t *testing.T) {
	fields := []schema.Field{
		{Name: "eventId", Type: schema.TypeString, Required: true},
		{Name: "amount", Type: schema.TypeInteger},
		{Name: "seenAt", Type: schema.TypeDateTime},
		{Name: "day", Type: schema.TypeDate},
		{Name: "ok", Type: schema.TypeBoolean},
	}

	out, err := (&Translator{}).Translate("web_browsing_event", fields)
	require.NoError(t, err)

	want := `openapi: 3.0.3
components:
  schemas:
    WebBrowsingEvent:
      type: object
      properties:
        eventId:
          type: string
        amount:
          type: number
        seenAt:
          type: string
          format: date-time
        day:
          type: string
          format: date
        ok:
          type: boolean
      required:
        - eventId
`
	assert.Equal(t, want, string(out))
}

func TestTranslate_RoundTrip(t *testing.T) {
	fields := []schema.Field{
		{Name: "orderId", Type: schema.TypeString, Required: true, PrimaryKey: true},
		{Name: "status", Type: schema.TypeString, Enum: []any{"NEW", "PAID"}},
		{Name: "customer", Type: schema.TypeObject, Nested: []schema.Field{
			{Name: "email", Type: schema.TypeString, Required: true},
		}},
		{Name: "lines", Type: schema.TypeArray, Nested: []schema.Field{
			{Name: "qty", Type: schema.TypeNumber},
		}},
	}

	out, err := (&Translator{}).Translate("order", fields)
	require.NoError(t, err)

	back, err := schema.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, fields, back)
}
