// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/schema"
	"github.com/dacolabs/dcgen/internal/session"
	"github.com/dacolabs/dcgen/internal/store"
)

type planOptions struct {
	template string
	useCase  string
	set      []string
	save     string
	output   string
	json     bool
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Build a generation plan for a schema",
		Long: `Build a generation plan for a schema.

With an API key for the configured provider the plan is requested from the
completion service for the given use case. Without one, generators are chosen
heuristically from field names, types and constraints.`,
		Example: `  # Interactive mode
  dcgen plan orders.yaml

  # Plan for a use case and save it
  dcgen plan orders.yaml --use-case "fraud detection demo" --save fraud-demo

  # Pin a field and print the plan as JSON
  dcgen plan --template consent_signal --set channel=EMAIL --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := schemaSource{template: opts.template}
			if len(args) == 1 {
				src.path = args[0]
			}
			return runPlan(cmd, src, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Use a built-in template instead of a file")
	cmd.Flags().StringVarP(&opts.useCase, "use-case", "u", "", "Use case the data is generated for")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Pin a field to a value (field=value, repeatable)")
	cmd.Flags().StringVar(&opts.save, "save", "", "Save the plan under this name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the plan as JSON to a file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the plan as JSON instead of a table")

	return cmd
}

func runPlan(cmd *cobra.Command, src schemaSource, opts *planOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if opts.save != "" {
		if err := store.ValidateName(opts.save); err != nil {
			return err
		}
	}

	fields, _, err := src.load(cmd)
	if err != nil {
		return err
	}
	overrides, err := parseOverrides(opts.set)
	if err != nil {
		return err
	}

	p, err := buildPlan(cmd, sess, fields, opts.useCase, true)
	if err != nil {
		return err
	}
	p = plan.ApplyOverrides(p, overrides)

	if opts.save != "" {
		if err := savePlan(cmd, sess, opts.save, p); err != nil {
			return err
		}
	}

	if opts.output != "" || opts.json {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, opts.output, append(data, '\n')); err != nil {
			return err
		}
		if opts.output == "" {
			return nil
		}
	} else {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), prompts.PlanTable(p)); err != nil {
			return err
		}
	}

	result := []prompts.ResultField{{Label: "Fields", Value: fmt.Sprint(len(p.Fields))}}
	if opts.save != "" {
		result = append(result, prompts.ResultField{Label: "Saved as", Value: opts.save})
	}
	if opts.output != "" {
		result = append(result, prompts.ResultField{Label: "Output", Value: opts.output})
	}
	prompts.PrintResult(result, "")
	return nil
}

// buildPlan asks the configured planner for a plan. A heuristic planner needs
// no use case; otherwise a missing one is prompted for when ask is set.
func buildPlan(cmd *cobra.Command, sess *session.Context, fields []schema.Field, useCase string, ask bool) (*plan.Plan, error) {
	planner, err := sess.Planner()
	if err != nil {
		return nil, err
	}
	if planner.Heuristic() {
		prompts.Warn("no API key in %s; choosing generators heuristically", sess.Config.LLM.APIKeyEnv)
		return plan.Heuristic(fields, useCase), nil
	}
	if useCase == "" && ask {
		if err := prompts.RunUseCaseForm(&useCase); err != nil {
			return nil, err
		}
	}
	p, err := planner.Plan(cmd.Context(), fields, useCase)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	return p, nil
}

func savePlan(cmd *cobra.Command, sess *session.Context, name string, p *plan.Plan) error {
	st, err := openStore(cmd, sess)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck
	if _, ok := st.(*store.Memory); ok {
		prompts.Warn("no Redis configured in %s; saved plans last only for this run", sess.Config.Store.RedisURLEnv)
	}
	if err := st.Save(cmd.Context(), name, p); err != nil {
		return fmt.Errorf("failed to save plan %s: %w", name, err)
	}
	return nil
}
