package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minColumnWidth   = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// TableFormatter formats rows as a styled table. Column widths are measured
// in terminal cells, so full-width text stays aligned.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats headers and rows. Groups are separated by a light rule;
// an empty row starts a new group.
func (t *TableFormatter) FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := t.columnWidths(headers, rows)
	total := totalWidth(widths)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(formatCells(headers, widths)))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		if len(row) == 0 {
			builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)))
			builder.WriteString("\n")
			continue
		}
		builder.WriteString(formatCells(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)))
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths sizes every column to its widest cell, then shrinks the last
// column to fit the terminal.
func (t *TableFormatter) columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(minColumnWidth, runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	if total := totalWidth(widths); total > t.termWidth {
		last := len(widths) - 1
		widths[last] = max(minColumnWidth, widths[last]-(total-t.termWidth))
	}

	return widths
}

func totalWidth(widths []int) int {
	total := tablePadding * len(widths)
	for _, w := range widths {
		total += w
	}
	return total
}

func formatCells(cells []string, widths []int) string {
	var builder strings.Builder
	builder.WriteString(" ")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncateString(cell, w)
		if i == len(widths)-1 {
			builder.WriteString(cell)
			break
		}
		builder.WriteString(runewidth.FillRight(cell, w))
		builder.WriteString(strings.Repeat(" ", tablePadding))
	}
	return strings.TrimRight(builder.String(), " ")
}

// truncateString truncates a string to maxWidth cells, adding "..." if truncated.
func truncateString(str string, maxWidth int) string {
	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}
	if maxWidth <= len(ellipsis) {
		return runewidth.Truncate(str, maxWidth, "")
	}
	return runewidth.Truncate(str, maxWidth, ellipsis)
}
