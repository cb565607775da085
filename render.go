package truthtable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderOptions controls how a Table is laid out for a terminal.
type RenderOptions struct {
	TrueGlyph  string
	FalseGlyph string
	Color      bool
	// ResultOnly hides the intermediate derivation columns, leaving the
	// variable columns and the final result.
	ResultOnly bool
}

// DefaultRenderOptions matches DefaultConfig.
func DefaultRenderOptions() RenderOptions {
	return DefaultConfig().RenderOptions()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	trueStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	falseStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

// Render lays the truth table out as a bordered terminal table, one column
// per derivation step.
func (t *Table) Render(opts RenderOptions) string {
	if opts.TrueGlyph == "" {
		opts.TrueGlyph = "1"
	}
	if opts.FalseGlyph == "" {
		opts.FalseGlyph = "0"
	}

	headers, rows := t.columns(opts)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if !opts.Color || row >= len(rows) || col >= len(rows[row]) {
				return cellStyle
			}
			if rows[row][col] {
				return trueStyle
			}
			return falseStyle
		})

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if v {
				cells[i] = opts.TrueGlyph
			} else {
				cells[i] = opts.FalseGlyph
			}
		}
		tbl = tbl.Row(cells...)
	}

	return tbl.Render()
}

// columns selects the visible columns: all of them, or just the variables
// plus the final result when ResultOnly is set.
func (t *Table) columns(opts RenderOptions) ([]string, [][]bool) {
	if !opts.ResultOnly || len(t.Headers) == 0 {
		return t.Headers, t.Rows
	}

	idx := make([]int, 0, len(t.Variables)+1)
	for j := range t.Variables {
		idx = append(idx, j)
	}
	if last := len(t.Headers) - 1; last >= len(t.Variables) {
		idx = append(idx, last)
	}

	headers := make([]string, len(idx))
	for i, j := range idx {
		headers[i] = t.Headers[j]
	}
	rows := make([][]bool, len(t.Rows))
	for r, row := range t.Rows {
		rows[r] = make([]bool, len(idx))
		for i, j := range idx {
			rows[r][i] = row[j]
		}
	}
	return headers, rows
}
