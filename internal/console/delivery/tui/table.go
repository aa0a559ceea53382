package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"admin-console/internal/console"
)

const (
	markColumnWidth = 2
	minColumnWidth  = 6
	maxColumnWidth  = 32
)

// flatRow is a table line; tree children follow their parent, indented.
type flatRow struct {
	id    int64
	depth int
	cells []console.Cell
}

func flatten(rows []console.Row) []flatRow {
	var out []flatRow
	var walk func(rows []console.Row, depth int)
	walk = func(rows []console.Row, depth int) {
		for _, r := range rows {
			out = append(out, flatRow{id: r.ID, depth: depth, cells: r.Cells})
			walk(r.Children, depth+1)
		}
	}
	walk(rows, 0)
	return out
}

func cellText(c console.Cell) string {
	if c.Image != nil {
		return "[img] " + c.Image.URL
	}
	return c.Text
}

// tableContent renders the snapshot rows; selected rows are marked.
func tableContent(snap console.Snapshot) ([]table.Column, []table.Row, []int64) {
	flat := flatten(snap.Rows)

	widths := make([]int, len(snap.Columns))
	for i, col := range snap.Columns {
		widths[i] = max(minColumnWidth, lipgloss.Width(col.Label))
	}
	for _, r := range flat {
		for i, c := range r.cells {
			if i >= len(widths) {
				break
			}
			w := lipgloss.Width(cellText(c))
			if i == 0 {
				w += 2 * r.depth
			}
			widths[i] = max(widths[i], min(w, maxColumnWidth))
		}
	}

	cols := make([]table.Column, 0, len(snap.Columns)+1)
	cols = append(cols, table.Column{Title: "", Width: markColumnWidth})
	for i, col := range snap.Columns {
		cols = append(cols, table.Column{Title: col.Label, Width: widths[i]})
	}

	selected := make(map[int64]bool, len(snap.Selected))
	for _, id := range snap.Selected {
		selected[id] = true
	}

	rows := make([]table.Row, 0, len(flat))
	ids := make([]int64, 0, len(flat))
	for _, r := range flat {
		row := make(table.Row, 0, len(r.cells)+1)
		if selected[r.id] {
			row = append(row, "●")
		} else {
			row = append(row, "")
		}
		for i, c := range r.cells {
			text := cellText(c)
			if i == 0 && r.depth > 0 {
				text = strings.Repeat("  ", r.depth-1) + "└ " + text
			}
			row = append(row, text)
		}
		rows = append(rows, row)
		ids = append(ids, r.id)
	}
	return cols, rows, ids
}

// describe renders the detail drawer.
func describe(cells []console.Cell) string {
	width := 0
	for _, c := range cells {
		width = max(width, lipgloss.Width(c.Label))
	}
	var b strings.Builder
	for _, c := range cells {
		label := labelStyle.Render(c.Label + strings.Repeat(" ", width-lipgloss.Width(c.Label)))
		b.WriteString(label + "  " + statusStyle(c.Status).Render(cellText(c)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
