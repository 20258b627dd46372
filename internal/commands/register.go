// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/dcgen/internal/session"
	"github.com/dacolabs/dcgen/internal/translate"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dcgen",
		Short: "Generate realistic synthetic records from data schemas",
		Long: `dcgen normalizes schema documents (JSON Schema, OpenAPI, Swagger, RAML-style
types and field lists) into a flat field model, builds a generation plan for
them, and produces reproducible synthetic records.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	registerSchemaCmd(rootCmd, translators)
	registerTemplatesCmd(rootCmd)

	// Commands below read dcgen.yaml and the project .env files.
	for _, cmd := range []*cobra.Command{
		newPlanCmd(),
		newGenerateCmd(),
		newPlansCmd(),
		newServeCmd(translators),
	} {
		cmd.PersistentPreRunE = session.PreRunLoad
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func registerSchemaCmd(parent *cobra.Command, translators translate.Register) {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect and convert schema documents",
	}

	cmd.AddCommand(newSchemaParseCmd())
	cmd.AddCommand(newSchemaTranslateCmd(translators))

	parent.AddCommand(cmd)
}

func registerTemplatesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse the built-in use-case templates",
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())

	parent.AddCommand(cmd)
}

func newPlansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage saved generation plans",
	}

	cmd.AddCommand(newPlansListCmd())
	cmd.AddCommand(newPlansShowCmd())
	cmd.AddCommand(newPlansSaveCmd())
	cmd.AddCommand(newPlansDeleteCmd())

	return cmd
}
