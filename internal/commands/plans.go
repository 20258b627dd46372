// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/session"
	"github.com/dacolabs/dcgen/internal/store"
)

func newPlansListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		Example: `  # List plans
  dcgen plans list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runPlansList(cmd, sess)
		},
	}
}

func runPlansList(cmd *cobra.Command, sess *session.Context) error {
	st, err := openStore(cmd, sess)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	names, err := st.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(names) == 0 {
		fmt.Println("No saved plans.")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func newPlansShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show a saved plan",
		Example: `  # Interactive mode
  dcgen plans show

  # Print as JSON
  dcgen plans show fraud-demo --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runPlansShow(cmd, sess, args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}

func runPlansShow(cmd *cobra.Command, sess *session.Context, args []string, asJSON bool) error {
	st, err := openStore(cmd, sess)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	name, err := planNameArg(cmd, st, args, "Select plan to show")
	if err != nil {
		return err
	}
	p, err := st.Load(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("failed to load plan %s: %w", name, err)
	}

	if asJSON {
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", append(data, '\n'))
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Plan", Value: name},
		{Label: "Use case", Value: p.UseCase},
	}, "")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prompts.PlanTable(p))
	return err
}

func newPlansSaveCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save a plan from a JSON file",
		Long: `Save a plan from a JSON file, such as one written by "dcgen plan --output".
Plans expire after store.ttl.`,
		Example: `  # Save an edited plan
  dcgen plans save fraud-demo --file plan.json

  # Read the plan from standard input
  dcgen plan orders.yaml --json | dcgen plans save orders --file -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runPlansSave(cmd, sess, args, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan JSON file (\"-\" for standard input)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPlansSave(cmd *cobra.Command, sess *session.Context, args []string, file string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	} else if err := prompts.RunPlanNameForm(&name); err != nil {
		return err
	}
	if err := store.ValidateName(name); err != nil {
		return err
	}

	data, err := readInput(cmd, file)
	if err != nil {
		return err
	}
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	if err := savePlan(cmd, sess, name, &p); err != nil {
		return err
	}
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Plan", Value: name},
		{Label: "Fields", Value: fmt.Sprint(len(p.Fields))},
	}, "Plan saved")
	return nil
}

func newPlansDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [name]",
		Aliases: []string{"rm"},
		Short:   "Delete a saved plan",
		Example: `  # Interactive mode
  dcgen plans delete

  # Delete by name
  dcgen plans delete fraud-demo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runPlansDelete(cmd, sess, args)
		},
	}
}

func runPlansDelete(cmd *cobra.Command, sess *session.Context, args []string) error {
	st, err := openStore(cmd, sess)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	name, err := planNameArg(cmd, st, args, "Select plan to delete")
	if err != nil {
		return err
	}
	if err := st.Delete(cmd.Context(), name); err != nil {
		return fmt.Errorf("failed to delete plan %s: %w", name, err)
	}
	prompts.PrintResult([]prompts.ResultField{{Label: "Plan", Value: name}}, "Plan deleted")
	return nil
}

// planNameArg returns the name argument, prompting with the saved plans when
// it is missing.
func planNameArg(cmd *cobra.Command, st store.Store, args []string, title string) (string, error) {
	if len(args) == 1 {
		return args[0], store.ValidateName(args[0])
	}
	names, err := st.List(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to list plans: %w", err)
	}
	var name string
	if err := prompts.RunPlanSelectForm(&name, names, title); err != nil {
		return "", err
	}
	return name, nil
}
