// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dacolabs/dcgen/internal/document"
)

var (
	keyTokens   = []string{"id", "key", "uuid", "guid"}
	keyPrefixes = []string{"id_", "pk_", "uuid_", "primary_"}
)

// isPrimaryKey reports whether a field is an identifier. An explicit
// primaryKey/primary_key flag or a description mentioning "primary key" or
// "unique identifier" decides immediately; otherwise the name is inspected.
func isPrimaryKey(name string, def *document.Map) bool {
	if v, _ := def.Get("primaryKey"); truthy(v) {
		return true
	}
	if v, _ := def.Get("primary_key"); truthy(v) {
		return true
	}
	desc := strings.ToLower(def.StringAt("description"))
	if strings.Contains(desc, "primary key") || strings.Contains(desc, "unique identifier") {
		return true
	}
	return nameLooksLikeKey(name)
}

func nameLooksLikeKey(name string) bool {
	lower := strings.ToLower(name)
	if slices.Contains(keyTokens, lower) {
		return true
	}

	runes := []rune(name)
	for _, token := range keyTokens {
		n := len(token)
		if len(runes) <= n || !strings.HasSuffix(lower, token) {
			continue
		}
		prefix := runes[:len(runes)-n]
		last := prefix[len(prefix)-1]
		if last == '_' || unicode.IsUpper(last) {
			return true
		}
		// camelCase boundary: the token itself starts with a capital ("eventId")
		if unicode.IsUpper(runes[len(runes)-n]) {
			return true
		}
	}

	for _, p := range keyPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
