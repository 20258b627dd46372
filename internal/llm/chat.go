// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"context"
	"net/http"
)

// chatClient speaks the OpenAI chat completions protocol, which Perplexity
// also implements.
type chatClient struct {
	cfg Config
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	MaxTokens      int             `json:"max_tokens"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	req := chatRequest{
		Model:       c.cfg.Model,
		Messages:    append([]Message{{Role: "system", Content: system}}, messages...),
		MaxTokens:   4096,
		Temperature: 0.2,
	}
	if c.cfg.Provider == ProviderOpenAI {
		req.ResponseFormat = &responseFormat{Type: "json_object"}
	} else {
		req.MaxTokens = 2048
		req.Temperature = 0.1
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	var resp chatResponse
	if err := postJSON(ctx, c.cfg.HTTPClient, c.cfg.Provider, c.cfg.BaseURL+"/chat/completions", header, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
