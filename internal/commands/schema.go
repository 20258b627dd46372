// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/translate"
	"github.com/dacolabs/dcgen/internal/translate/gotypes"
)

type schemaParseOptions struct {
	template string
	output   string
}

func newSchemaParseCmd() *cobra.Command {
	opts := &schemaParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Normalize a schema document and show its fields",
		Long: `Normalize a schema document and show its fields.

The document may be YAML or JSON in any supported layout: a JSON Schema
"properties" object, OpenAPI "components.schemas", Swagger "definitions",
RAML-style "types", a "schema.fields" list, a bare "fields" list, or the
request body of the first OpenAPI path operation. Use "-" to read standard input.`,
		Example: `  # Show the field table
  dcgen schema parse orders.yaml

  # Print the normalized fields as JSON
  dcgen schema parse orders.yaml --output json

  # Print the JSON Schema projection of a template
  dcgen schema parse --template consent_signal --output jsonschema`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schemaSource{template: opts.template}
			if len(args) == 1 {
				src.path = args[0]
			}
			return runSchemaParse(cmd, src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Use a built-in template instead of a file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, jsonschema)")

	return cmd
}

func runSchemaParse(cmd *cobra.Command, src schemaSource, opts *schemaParseOptions) error {
	fields, _, err := src.load(cmd)
	if err != nil {
		return err
	}

	switch opts.output {
	case "table":
		_, err = fmt.Fprintln(cmd.OutOrStdout(), prompts.FieldsTable(fields))
		return err
	case "json":
		data, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", append(data, '\n'))
	case "jsonschema":
		data, err := schema.MarshalJSONSchema(fields)
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", append(data, '\n'))
	default:
		return fmt.Errorf("unsupported output %q (available: table, json, jsonschema)", opts.output)
	}
}

type schemaTranslateOptions struct {
	template string
	format   string
	name     string
	output   string
}

func newSchemaTranslateCmd(translators translate.Register) *cobra.Command {
	opts := &schemaTranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a schema document to a target format",
		Long: fmt.Sprintf(`Translate a schema document to a target format.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  dcgen schema translate orders.yaml

  # Go structs written to a file (the directory name is the package name)
  dcgen schema translate orders.yaml --format gotypes --output models/orders.go

  # Markdown documentation for a template
  dcgen schema translate --template web_browsing_event --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schemaSource{template: opts.template}
			if len(args) == 1 {
				src.path = args[0]
			}
			return runSchemaTranslate(cmd, translators, src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Use a built-in template instead of a file")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Name of the generated type or document (defaults to the file name)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to standard output)")

	return cmd
}

func runSchemaTranslate(cmd *cobra.Command, translators translate.Register, src schemaSource, opts *schemaTranslateOptions) error {
	fields, name, err := src.load(cmd)
	if err != nil {
		return err
	}
	if opts.name != "" {
		name = opts.name
	}

	format := opts.format
	if err := prompts.RunTranslateForm(&format, translators.Available()); err != nil {
		return err
	}

	translator, err := translators.Get(format)
	if err != nil {
		return err
	}
	if gt, ok := translator.(*gotypes.Translator); ok && opts.output != "" {
		translator = &gotypes.Translator{Package: packageFromOutput(opts.output, gt.Package)}
	}

	data, err := translator.Translate(name, fields)
	if err != nil {
		return fmt.Errorf("failed to translate to %s: %w", format, err)
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}
	if opts.output != "" {
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Format", Value: format},
			{Label: "Output", Value: opts.output},
		}, "")
	}
	return nil
}

// packageFromOutput names the Go package after the output file's directory.
func packageFromOutput(output, fallback string) string {
	dir := filepath.Base(filepath.Dir(output))
	if dir == "." || dir == string(filepath.Separator) {
		return fallback
	}
	return strings.ToLower(strings.NewReplacer("-", "", ".", "", " ", "").Replace(dir))
}
