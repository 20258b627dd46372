// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunTranslateFormatSelect returns a select field for choosing translation output format.
func RunTranslateFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunTranslateForm prompts for the output format when it is not set.
func RunTranslateForm(format *string, formats []string) error {
	if *format != "" {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(RunTranslateFormatSelect(format, formats)),
	).WithTheme(Theme()).Run()
}
