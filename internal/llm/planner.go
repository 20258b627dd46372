// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"context"
	"errors"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
)

// Planner builds generation plans from a completion service.
type Planner struct {
	// Completer may be nil, in which case plans are built heuristically.
	Completer Completer
}

// NewPlanner returns a Planner for cfg. A config without an API key yields
// a heuristic-only Planner.
func NewPlanner(cfg Config) (*Planner, error) {
	if cfg.APIKey == "" {
		return &Planner{}, nil
	}
	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &Planner{Completer: c}, nil
}

// Heuristic reports whether the planner works without a completion service.
func (p *Planner) Heuristic() bool {
	return p == nil || p.Completer == nil
}

// Plan asks the completion service for a plan. A reply that cannot be parsed
// is answered once with RetryPrompt; a second failure is returned as a
// *plan.ParseError.
func (p *Planner) Plan(ctx context.Context, fields []schema.Field, useCase string) (*plan.Plan, error) {
	if p.Heuristic() {
		return plan.Heuristic(fields, useCase), nil
	}

	system := SystemPrompt()
	messages := []Message{{Role: "user", Content: UserPrompt(fields, useCase)}}

	reply, err := p.Completer.Complete(ctx, system, messages)
	if err != nil {
		return nil, err
	}
	result, err := plan.Parse(reply, useCase)
	if err == nil || !errors.Is(err, plan.ErrParse) {
		return result, err
	}

	messages = append(messages,
		Message{Role: "assistant", Content: reply},
		Message{Role: "user", Content: RetryPrompt},
	)
	reply, err = p.Completer.Complete(ctx, system, messages)
	if err != nil {
		return nil, err
	}
	return plan.Parse(reply, useCase)
}
