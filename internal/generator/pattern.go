// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generator

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const wordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// expandPattern renders a string from a small regex subset: character
// classes with an optional {n} count, \d and \w, and literal text.
// Other metacharacters are dropped.
func expandPattern(pattern string, rng *rand.Rand) string {
	src := []rune(pattern)
	var sb strings.Builder

	for i := 0; i < len(src); {
		switch r := src[i]; {
		case r == '[':
			end := indexRune(src, ']', i)
			if end < 0 {
				sb.WriteRune(r)
				i++
				continue
			}
			class := expandClass(src[i+1 : end])
			repeat := 1
			if end+1 < len(src) && src[end+1] == '{' {
				if closing := indexRune(src, '}', end+1); closing >= 0 {
					if n, err := strconv.Atoi(strings.TrimSpace(string(src[end+2 : closing]))); err == nil {
						repeat = n
						end = closing
					}
				}
			}
			for range max(repeat, 0) {
				sb.WriteRune(class[rng.IntN(len(class))])
			}
			i = end + 1
		case r == '\\':
			if i+1 < len(src) {
				switch src[i+1] {
				case 'd':
					sb.WriteByte(byte('0' + rng.IntN(10)))
				case 'w':
					sb.WriteByte(wordChars[rng.IntN(len(wordChars))])
				default:
					sb.WriteRune(src[i+1])
				}
			}
			i += 2
		case strings.ContainsRune(".+*?^$|(){}", r):
			i++
		default:
			sb.WriteRune(r)
			i++
		}
	}
	return sb.String()
}

// expandClass lists the runes of a bracket class body. Ranges such as A-Z
// are expanded; an empty result falls back to "X".
func expandClass(body []rune) []rune {
	var out []rune
	for i := 0; i < len(body); {
		if i+2 < len(body) && body[i+1] == '-' {
			for c := body[i]; c <= body[i+2]; c++ {
				out = append(out, c)
			}
			i += 3
			continue
		}
		out = append(out, body[i])
		i++
	}
	if len(out) == 0 {
		return []rune{'X'}
	}
	return out
}

func indexRune(src []rune, r rune, from int) int {
	for j := from; j < len(src); j++ {
		if src[j] == r {
			return j
		}
	}
	return -1
}
