// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/session"
	"github.com/dacolabs/dcgen/internal/store"
	"github.com/dacolabs/dcgen/internal/templates"
)

// readInput reads a file, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// schemaSource names where a command's schema comes from: a file argument
// or a built-in template.
type schemaSource struct {
	path     string
	template string
}

// load returns the normalized fields and a name suitable for generated types.
func (s schemaSource) load(cmd *cobra.Command) ([]schema.Field, string, error) {
	switch {
	case s.path != "" && s.template != "":
		return nil, "", errors.New("a schema file and --template are mutually exclusive")
	case s.template != "":
		t, ok := templates.Get(s.template)
		if !ok {
			return nil, "", fmt.Errorf("template %q not found (available: %s)", s.template, strings.Join(templates.IDs(), ", "))
		}
		return t.SchemaFields(), t.ID, nil
	case s.path != "":
		data, err := readInput(cmd, s.path)
		if err != nil {
			return nil, "", err
		}
		fields, err := schema.Parse(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse schema %s: %w", s.path, err)
		}
		return fields, nameFromPath(s.path), nil
	default:
		return nil, "", errors.New("a schema file or --template is required")
	}
}

func nameFromPath(path string) string {
	if path == "-" {
		return "schema"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// parseOverrides turns key=value pairs into field overrides. Values are read
// as YAML scalars, so "5" is an integer and "true" a boolean.
func parseOverrides(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	overrides := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected field=value", pair)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid override value for %s: %w", key, err)
		}
		overrides[key] = value
	}
	return overrides, nil
}

// openStore opens the plan store, warning when Redis is configured but
// unreachable.
func openStore(cmd *cobra.Command, sess *session.Context) (store.Store, error) {
	st, err := sess.OpenStore(cmd.Context())
	if errors.Is(err, store.ErrRedisUnavailable) {
		prompts.Warn("%v", err)
		return st, nil
	}
	return st, err
}

// writeOutput writes data to path, or to standard output when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
