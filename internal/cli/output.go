package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lacquerai/calcform/internal/calc"
	"github.com/lacquerai/calcform/internal/style"
)

// printTable outputs data in a human-readable table format. Columns are
// aligned on display width, so accented labels line up.
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	separator := make([]string, len(headers))
	for i := range headers {
		separator[i] = strings.Repeat("-", widths[i])
	}

	printRow(w, widths, headers)
	printRow(w, widths, separator)
	for _, row := range rows {
		printRow(w, widths, row)
	}
}

func printRow(w io.Writer, widths []int, cells []string) {
	var line strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			line.WriteString("  ")
		}
		line.WriteString(cell)
		line.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
	}
	fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
}

// expression renders a snapshot as "a op b", showing empty fields as 0
func expression(snapshot calc.Snapshot) string {
	a, b := snapshot.A, snapshot.B
	if strings.TrimSpace(a) == "" {
		a = "0"
	}
	if strings.TrimSpace(b) == "" {
		b = "0"
	}
	return fmt.Sprintf("%s %s %s", a, calc.ParseOperation(snapshot.Operation).Symbol(), b)
}

// printSnapshot writes one form state in the selected output format. Text
// output is the result label alone, or the whole expression when verbose.
func printSnapshot(w io.Writer, snapshot calc.Snapshot, format string, verbose bool) {
	switch format {
	case "json":
		style.PrintJSON(w, snapshot)
	case "yaml":
		style.PrintYAML(w, snapshot)
	default:
		if verbose {
			fmt.Fprintf(w, "%s = %s\n", expression(snapshot), snapshot.Result)
			return
		}
		fmt.Fprintln(w, snapshot.Result)
	}
}
