// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dacolabs/dcgen/internal/plan"
	"github.com/dacolabs/dcgen/internal/schema"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

func newTable(headers []string, rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
}

// FieldsTable renders normalized fields as the schema review table.
func FieldsTable(fields []schema.Field) string {
	rows := schema.TableRows(fields)
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = r.Values()
	}
	return newTable(schema.TableHeaders, values).String()
}

// PlanTable renders a generation plan, one row per field.
func PlanTable(p *plan.Plan) string {
	rows := make([][]string, len(p.Fields))
	for i, f := range p.Fields {
		value := ""
		if f.SuggestedValue != nil {
			value = fmt.Sprint(f.SuggestedValue)
		}
		constraints := ""
		if len(f.Constraints) > 0 {
			constraints = fmt.Sprint(f.Constraints)
		}
		rows[i] = []string{f.FieldName, string(f.Generator), value, constraints, f.Rationale}
	}
	return newTable([]string{"Field", "Generator", "Value", "Constraints", "Rationale"}, rows).String()
}
