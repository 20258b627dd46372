// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package llm

import (
	"errors"
	"fmt"
)

// ErrNoCredential is returned when a provider is selected without an API key.
var ErrNoCredential = errors.New("no API key configured")

// ErrEmptyReply is returned when a provider answers without any text.
var ErrEmptyReply = errors.New("completion contained no text")

// APIError is a non-2xx reply from a provider.
type APIError struct {
	Provider Provider
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error: %d - %s", e.Provider, e.Status, e.Body)
}
