// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormat is matched by every *FormatError.
var ErrFormat = errors.New("unrecognized schema format")

// FormatError reports that no dialect yielded a property collection.
type FormatError struct {
	Tried   []string // dialects consulted, in order
	Matched string   // dialect whose shape matched but held no properties, if any
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("could not find schema properties (tried: %s)", strings.Join(e.Tried, ", "))
	if e.Matched != "" {
		msg += fmt.Sprintf("; %q matched but declared no properties", e.Matched)
	}
	return msg
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
