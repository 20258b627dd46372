// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(provider, apiKeyEnv, redisURLEnv *string, providers []string) error {
	options := make([]huh.Option[string], len(providers))
	for i, p := range providers {
		options[i] = huh.NewOption(p, p)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Completion provider").
				Description("Used to build generation plans; without an API key plans are heuristic.").
				Options(options...).
				Value(provider),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("API key environment variable").
				Placeholder("OPENAI_API_KEY").
				Validate(requiredValidator("environment variable")).
				Value(apiKeyEnv),
			huh.NewInput().
				Title("Redis URL environment variable (optional)").
				Placeholder("REDIS_URL").
				Value(redisURLEnv),
		),
	).WithTheme(Theme()).Run()
}
