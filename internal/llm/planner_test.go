// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
)

type fakeCompleter struct {
	replies []string
	calls   [][]Message
	err     error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, messages []Message) (string, error) {
	f.calls = append(f.calls, append([]Message(nil), messages...))
	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

var orderFields = []schema.Field{
	{Name: "orderId", Type: schema.TypeString},
	{Name: "amount", Type: schema.TypeNumber},
}

const goodReply = `{"fields":[{"field_name":"orderId","generator_type":"uuid4"},{"field_name":"amount","generator_type":"currency"}]}`

func TestPlanner_Heuristic(t *testing.T) {
	p, err := NewPlanner(Config{Provider: ProviderOpenAI})
	require.NoError(t, err)
	assert.True(t, p.Heuristic())

	got, err := p.Plan(context.Background(), orderFields, "orders")
	require.NoError(t, err)
	assert.Equal(t, plan.Heuristic(orderFields, "orders"), got)
}

func TestPlanner_FirstReplyParses(t *testing.T) {
	fc := &fakeCompleter{replies: []string{goodReply}}
	got, err := (&Planner{Completer: fc}).Plan(context.Background(), orderFields, "orders")
	require.NoError(t, err)

	assert.Len(t, fc.calls, 1)
	assert.Equal(t, "orders", got.UseCase)
	assert.Equal(t, plan.KindCurrency, got.Fields[1].Generator)
}

func TestPlanner_RetriesOnce(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"sorry, no", goodReply}}
	got, err := (&Planner{Completer: fc}).Plan(context.Background(), orderFields, "orders")
	require.NoError(t, err)
	assert.Len(t, got.Fields, 2)

	require.Len(t, fc.calls, 2)
	retry := fc.calls[1]
	require.Len(t, retry, 3)
	assert.Equal(t, Message{Role: "assistant", Content: "sorry, no"}, retry[1])
	assert.Equal(t, Message{Role: "user", Content: RetryPrompt}, retry[2])
}

func TestPlanner_GivesUpAfterRetry(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"nope", "still nope"}}
	_, err := (&Planner{Completer: fc}).Plan(context.Background(), orderFields, "orders")
	assert.ErrorIs(t, err, plan.ErrParse)
	assert.Len(t, fc.calls, 2)
}

func TestPlanner_NoRetryOnTransportError(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("connection refused")}
	_, err := (&Planner{Completer: fc}).Plan(context.Background(), orderFields, "orders")
	assert.ErrorContains(t, err, "connection refused")
	assert.Len(t, fc.calls, 1)
}

func TestUserPrompt_Truncates(t *testing.T) {
	fields := make([]schema.Field, 40)
	for i := range fields {
		fields[i] = schema.Field{Name: fmt.Sprintf("f%d", i), Type: schema.TypeString}
	}
	fields[0].Enum = []any{"a", "b", "c", "d", "e", "f", "g"}

	prompt := UserPrompt(fields, "demo")

	assert.True(t, strings.HasPrefix(prompt, `Schema: [{"name":"f0","type":"string","enum":["a","b","c","d","e"]}`))
	assert.Contains(t, prompt, `"f29"`)
	assert.NotContains(t, prompt, `"f30"`)
	assert.True(t, strings.HasSuffix(prompt, "\nUse case: demo\nReturn JSON only."))
}

func TestSystemPrompt_ListsKinds(t *testing.T) {
	prompt := SystemPrompt()
	for _, k := range plan.Kinds() {
		assert.Contains(t, prompt, string(k))
	}
}
