// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

import (
	"fmt"

	"github.com/dacolabs/dcgen/internal/plan"
)

// ValueError reports a constraint value that could not be converted to the
// type a generator needs. It aborts the whole record.
type ValueError struct {
	Field string
	Kind  plan.GeneratorKind
	Key   string
	Value any
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("field %q (%s): constraint %q has unusable value %v: %v", e.Field, e.Kind, e.Key, e.Value, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// PathConflictError reports a dotted field path that runs through a value
// that is not an object.
type PathConflictError struct {
	Field   string
	Segment string // the path prefix holding the non-object value
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("field %q: %q already holds a non-object value", e.Field, e.Segment)
}
