// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"context"
	"net/http"
)

const anthropicVersion = "2023-06-01"

type anthropicClient struct {
	cfg Config
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []Message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	req := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: 4096,
		System:    system,
		Messages:  messages,
	}

	header := http.Header{}
	header.Set("x-api-key", c.cfg.APIKey)
	header.Set("anthropic-version", anthropicVersion)

	var resp messagesResponse
	if err := postJSON(ctx, c.cfg.HTTPClient, c.cfg.Provider, c.cfg.BaseURL+"/messages", header, req, &resp); err != nil {
		return "", err
	}
	for _, block := range resp.Content {
		if block.Text != "" {
			return block.Text, nil
		}
	}
	return "", ErrEmptyReply
}
