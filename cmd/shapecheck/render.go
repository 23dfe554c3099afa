// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/shapecheck/pkg/core/bounds"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	okStyle   = cellStyle.Foreground(lipgloss.Color("#0A0"))
	failStyle = cellStyle.Foreground(lipgloss.Color("#F44")).Bold(true)
)

// renderResults renders one row per check: name, inputs, outcome kind and message.
func renderResults(results []result, formatter bounds.Formatter) string {
	table := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers("Check", "Inputs", "Result", "Message").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if col == 2 && row >= 0 && row < len(results) {
				if results[row].err == nil {
					return okStyle
				}
				return failStyle
			}
			return cellStyle
		})
	for _, r := range results {
		table.Row(r.name, r.inputs, bounds.KindOf(r.err).String(), bounds.Format(r.err, formatter))
	}
	return table.Render()
}
