// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/prompts"
	"github.com/dacolabs/dcgen/internal/templates"
)

func newTemplatesListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Long: fmt.Sprintf(`List the built-in use-case templates.

Categories: %s`, strings.Join(templates.Categories(), ", ")),
		Example: `  # List templates
  dcgen templates list

  # Only one category
  dcgen templates list --category "Travel & Hospitality"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesList(category)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list templates in this category")

	return cmd
}

func runTemplatesList(category string) error {
	list := templates.All()
	if category != "" {
		list = templates.ByCategory(category)
	}
	if len(list) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tCATEGORY\tFIELDS\tDESCRIPTION")
	for _, t := range list {
		desc := t.Description
		if utf8.RuneCountInString(desc) > 50 {
			desc = string([]rune(desc)[:47]) + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.ID, t.Category, len(t.Fields), desc)
	}
	return w.Flush()
}

type templatesShowOptions struct {
	yaml   bool
	sample bool
}

func newTemplatesShowCmd() *cobra.Command {
	opts := &templatesShowOptions{}

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a template",
		Long: `Show a template's description, setup notes and fields.
Use --yaml for its OpenAPI schema document or --sample for an example event.`,
		Example: `  # Interactive mode
  dcgen templates show

  # Write the schema document to a file
  dcgen templates show consent_signal --yaml > consent.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) == 1 {
				id = args[0]
			}
			return runTemplatesShow(cmd, id, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Print the OpenAPI schema document")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Print a sample event as JSON")

	return cmd
}

func runTemplatesShow(cmd *cobra.Command, id string, opts *templatesShowOptions) error {
	if opts.yaml && opts.sample {
		return fmt.Errorf("--yaml and --sample are mutually exclusive")
	}
	if id == "" {
		if err := prompts.RunTemplateSelectForm(&id, templates.All()); err != nil {
			return err
		}
	}
	t, ok := templates.Get(id)
	if !ok {
		return fmt.Errorf("template %q not found (available: %s)", id, strings.Join(templates.IDs(), ", "))
	}

	switch {
	case opts.yaml:
		data, err := t.YAML()
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", data)
	case opts.sample:
		data, err := t.SampleJSON()
		if err != nil {
			return err
		}
		return writeOutput(cmd, "", append(data, '\n'))
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Template", Value: t.Name},
		{Label: "Category", Value: t.Category},
		{Label: "Data model object", Value: t.DataModelObject},
		{Label: "Description", Value: t.Description},
		{Label: "Business value", Value: t.BusinessValue},
	}, "")
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), prompts.FieldsTable(t.SchemaFields())); err != nil {
		return err
	}
	if t.SetupNotes != "" {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nSetup notes:\n%s\n", strings.TrimSpace(t.SetupNotes))
		return err
	}
	return nil
}
