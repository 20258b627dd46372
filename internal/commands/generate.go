// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/generator"
	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/session"
)

type generateOptions struct {
	template string
	plan     string
	useCase  string
	count    int
	seed     int64
	set      []string
	validate bool
	format   string
	output   string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Generate synthetic records",
		Long: `Generate synthetic records from a schema, a template or a saved plan.

Records are reproducible: the seed is printed to standard error and passing it
back with --seed yields the same records. Without --use-case generators are
chosen heuristically, so no completion service is called.`,
		Example: `  # Five records from a schema
  dcgen generate orders.yaml

  # 100 reproducible records as JSON lines
  dcgen generate orders.yaml --count 100 --seed 42 --format jsonl --output orders.jsonl

  # From a saved plan, pinning one field and validating every record
  dcgen generate orders.yaml --plan fraud-demo --set currency=EUR --validate

  # From a template
  dcgen generate --template flight_status_change -n 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schemaSource{template: opts.template}
			if len(args) == 1 {
				src.path = args[0]
			}
			return runGenerate(cmd, src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Use a built-in template instead of a file")
	cmd.Flags().StringVar(&opts.plan, "plan", "", "Generate from a saved plan")
	cmd.Flags().StringVarP(&opts.useCase, "use-case", "u", "", "Ask the completion service for a plan for this use case")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Number of records (defaults to generate.count)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (defaults to generate.seed, the plan's seed, or a fresh one)")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Pin a field to a value (field=value, repeatable)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate every record against the schema")
	cmd.Flags().StringVar(&opts.format, "format", "json", "Output format (json, jsonl)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to standard output)")

	return cmd
}

func runGenerate(cmd *cobra.Command, src schemaSource, opts *generateOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	if opts.format != "json" && opts.format != "jsonl" {
		return fmt.Errorf("unsupported format %q (available: json, jsonl)", opts.format)
	}

	count := sess.Config.Generate.Count
	if cmd.Flags().Changed("count") {
		count = opts.count
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	var fields []schema.Field
	if src.path != "" || src.template != "" {
		if fields, _, err = src.load(cmd); err != nil {
			return err
		}
	}

	p, err := resolveGeneratePlan(cmd, sess, fields, opts)
	if err != nil {
		return err
	}
	overrides, err := parseOverrides(opts.set)
	if err != nil {
		return err
	}
	p = plan.ApplyOverrides(p, overrides)

	var genOpts []generator.Option
	switch {
	case cmd.Flags().Changed("seed"):
		genOpts = append(genOpts, generator.WithSeed(opts.seed))
	case sess.Config.Generate.Seed != nil && p.Seed == nil:
		genOpts = append(genOpts, generator.WithSeed(*sess.Config.Generate.Seed))
	}
	gen := generator.ForPlan(p, genOpts...)

	records, err := gen.GenerateN(p, count)
	if err != nil {
		return err
	}

	if opts.validate {
		if err := validateRecords(fields, records); err != nil {
			return err
		}
	}

	data, err := encodeRecords(records, opts.format)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, opts.output, data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "generated %d record(s) with seed %d\n", len(records), gen.Seed())
	return nil
}

// resolveGeneratePlan loads the saved plan when one is named, asks the
// planner when a use case is given, and falls back to the heuristic plan.
func resolveGeneratePlan(cmd *cobra.Command, sess *session.Context, fields []schema.Field, opts *generateOptions) (*plan.Plan, error) {
	if opts.plan != "" {
		st, err := openStore(cmd, sess)
		if err != nil {
			return nil, err
		}
		defer st.Close() //nolint:errcheck
		p, err := st.Load(cmd.Context(), opts.plan)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan %s: %w", opts.plan, err)
		}
		return p, nil
	}
	if len(fields) == 0 {
		return nil, errors.New("a schema file, --template or --plan is required")
	}
	if opts.useCase != "" {
		return buildPlan(cmd, sess, fields, opts.useCase, false)
	}
	return plan.Heuristic(fields, ""), nil
}

func validateRecords(fields []schema.Field, records []map[string]any) error {
	if len(fields) == 0 {
		return errors.New("--validate needs a schema file or --template")
	}
	v, err := schema.NewValidator(fields)
	if err != nil {
		return err
	}
	var failed int
	for i, record := range records {
		if err := v.Validate(record); err != nil {
			prompts.Warn("record %d: %v", i+1, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d record(s) failed validation", failed, len(records))
	}
	return nil
}

func encodeRecords(records []map[string]any, format string) ([]byte, error) {
	if format == "json" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
