// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/dcgen/internal/commands"
	"github.com/dacolabs/dcgen/internal/translate"
	"github.com/dacolabs/dcgen/internal/translate/avro"
	"github.com/dacolabs/dcgen/internal/translate/gotypes"
	"github.com/dacolabs/dcgen/internal/translate/jsonschema"
	"github.com/dacolabs/dcgen/internal/translate/markdown"
	"github.com/dacolabs/dcgen/internal/translate/openapi"
	"github.com/dacolabs/dcgen/internal/translate/sparksql"
)

// RegisterTranslators returns every schema output format the CLI offers.
func RegisterTranslators() translate.Register {
	translators := make(translate.Register)
	translators["jsonschema"] = &jsonschema.Translator{}
	translators["openapi"] = &openapi.Translator{}
	translators["markdown"] = &markdown.Translator{}
	translators["gotypes"] = &gotypes.Translator{}
	translators["avro"] = &avro.Translator{}
	translators["spark-sql"] = &sparksql.Translator{}
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, args).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(RegisterTranslators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
