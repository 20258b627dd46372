// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dacolabs/dcgen/internal/templates"
)

// RunUseCaseForm prompts for the use case a plan is built for.
func RunUseCaseForm(useCase *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Use case").
				Placeholder("e.g., card transactions for a fraud detection demo").
				Validate(requiredValidator("use case")).
				Value(useCase),
		),
	).WithTheme(Theme()).Run()
}

// RunPlanNameForm prompts for the name a plan is saved under.
func RunPlanNameForm(name *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan name").
				Placeholder("e.g., card-fraud-demo").
				Validate(planNameValidator).
				Value(name),
		),
	).WithTheme(Theme()).Run()
}

// RunPlanSelectForm prompts the user to pick one of the saved plans.
func RunPlanSelectForm(value *string, names []string, title string) error {
	if len(names) == 0 {
		return fmt.Errorf("no saved plans")
	}
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(n, n)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Filtering(true).
				Value(value).
				Height(10),
		),
	).WithTheme(Theme()).Run()
}

// RunTemplateSelectForm prompts the user to pick a use-case template.
func RunTemplateSelectForm(value *string, all []templates.Template) error {
	options := make([]huh.Option[string], 0, len(all))
	for _, t := range all {
		label := fmt.Sprintf("%s - %s", t.Name, t.Category)
		options = append(options, huh.NewOption(label, t.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select template").
				Options(options...).
				Value(value).
				Height(8),
		),
	).WithTheme(Theme()).Run()
}
