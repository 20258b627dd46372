// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"fmt"
	"strings"
)

// TableHeaders are the column titles of a TableRow, in Values order.
var TableHeaders = []string{"Field Name", "Type", "PK", "Required", "Enum", "Format", "Constraints", "Description"}

// TableRow is the display form of one field. Nested fields get their own
// rows with dotted names.
type TableRow struct {
	Name        string `json:"Field Name"`
	Type        string `json:"Type"`
	PK          string `json:"PK"`
	Required    string `json:"Required"`
	Enum        string `json:"Enum"`
	Format      string `json:"Format"`
	Constraints string `json:"Constraints"`
	Description string `json:"Description"`
}

// Values returns the row cells in TableHeaders order.
func (r TableRow) Values() []string {
	return []string{r.Name, r.Type, r.PK, r.Required, r.Enum, r.Format, r.Constraints, r.Description}
}

// TableRows flattens fields depth-first into display rows.
func TableRows(fields []Field) []TableRow {
	return appendRows(nil, fields, "")
}

func appendRows(rows []TableRow, fields []Field, prefix string) []TableRow {
	for _, f := range fields {
		name := prefix + f.Name
		row := TableRow{
			Name:        name,
			Type:        string(f.Type),
			Required:    "No",
			Format:      f.Format,
			Constraints: constraintSummary(f),
			Description: f.Description,
		}
		if f.PrimaryKey {
			row.PK = "🔑"
		}
		if f.Required {
			row.Required = "Yes"
		}
		if len(f.Enum) > 0 {
			vals := make([]string, len(f.Enum))
			for i, v := range f.Enum {
				vals[i] = fmt.Sprint(v)
			}
			row.Enum = strings.Join(vals, ", ")
		}
		rows = append(rows, row)
		if len(f.Nested) > 0 {
			rows = appendRows(rows, f.Nested, name+".")
		}
	}
	return rows
}

func constraintSummary(f Field) string {
	var parts []string
	if f.Minimum != nil {
		parts = append(parts, fmt.Sprintf("min: %v", *f.Minimum))
	}
	if f.Maximum != nil {
		parts = append(parts, fmt.Sprintf("max: %v", *f.Maximum))
	}
	if f.MinLength != nil {
		parts = append(parts, fmt.Sprintf("minLen: %d", *f.MinLength))
	}
	if f.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("maxLen: %d", *f.MaxLength))
	}
	if f.Pattern != "" {
		parts = append(parts, "pattern: "+f.Pattern)
	}
	return strings.Join(parts, ", ")
}
