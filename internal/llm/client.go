// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package llm talks to hosted text-completion services and turns their
// replies into generation plans.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Provider names a completion service.
type Provider string

// Supported providers.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderPerplexity Provider = "perplexity"
	ProviderAnthropic  Provider = "anthropic"
)

// DefaultTimeout bounds a single completion request.
const DefaultTimeout = 60 * time.Second

var defaults = map[Provider]struct{ model, baseURL string }{
	ProviderOpenAI:     {model: "gpt-4o-mini", baseURL: "https://api.openai.com/v1"},
	ProviderPerplexity: {model: "sonar", baseURL: "https://api.perplexity.ai"},
	ProviderAnthropic:  {model: "claude-3-haiku-20240307", baseURL: "https://api.anthropic.com/v1"},
}

// Providers returns the supported provider names, sorted.
func Providers() []string {
	names := make([]string, 0, len(defaults))
	for p := range defaults {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// DefaultModel returns the model used when none is configured.
func DefaultModel(p Provider) string {
	return defaults[p].model
}

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer returns the assistant's reply to a conversation.
type Completer interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}

// Config selects and configures a provider client.
type Config struct {
	Provider   Provider
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient returns a Completer for cfg.Provider. Empty fields take the
// provider defaults.
func NewClient(cfg Config) (Completer, error) {
	def, ok := defaults[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider %q (available: %s)", cfg.Provider, strings.Join(Providers(), ", "))
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", cfg.Provider, ErrNoCredential)
	}
	if cfg.Model == "" {
		cfg.Model = def.model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.baseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	if cfg.Provider == ProviderAnthropic {
		return &anthropicClient{cfg: cfg}, nil
	}
	return &chatClient{cfg: cfg}, nil
}

// postJSON sends body to url and decodes a 2xx reply into out.
func postJSON(ctx context.Context, client *http.Client, provider Provider, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = header
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s API call failed: %w", provider, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", provider, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Provider: provider, Status: resp.StatusCode, Body: string(data)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", provider, err)
	}
	return nil
}
