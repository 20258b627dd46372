// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

import "strings"

// setPath writes value at a dotted path, creating intermediate objects.
// An existing leaf at the final segment is replaced; an existing non-object
// value at an intermediate segment is never overwritten.
func setPath(record map[string]any, path string, value any) error {
	parts := strings.Split(path, ".")
	current := record
	for i, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return &PathConflictError{Field: path, Segment: strings.Join(parts[:i+1], ".")}
		}
		current = child
	}
	current[parts[len(parts)-1]] = value
	return nil
}
