package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnSeparator separates table columns, matching pip's own spacing.
const columnSeparator = "  "

// writeTable renders rows as an aligned text table.
//
// It performs the following operations:
//   - Picks the column set for the plain or outdated shape
//   - Sizes every column to its widest cell using display width, so
//     package names with wide Unicode characters stay aligned
//   - Prints a header row and a dashed separator row, mirroring the
//     pip listing shape the parser consumes
//
// Parameters:
//   - w: Destination writer
//   - rows: Rows in listing order
//   - outdated: Whether to include the Latest, Type, and Scope columns
//
// Returns:
//   - error: Any write error
func writeTable(w io.Writer, rows []Row, outdated bool) error {
	headers := []string{"Package", "Version"}
	if outdated {
		headers = append(headers, "Latest", "Type", "Scope")
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cell := []string{row.Name, row.Version}
		if outdated {
			cell = append(cell, row.Latest, row.Type, row.Scope)
		}
		cells = append(cells, cell)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, cell := range cells {
		for i, val := range cell {
			if wd := runewidth.StringWidth(val); wd > widths[i] {
				widths[i] = wd
			}
		}
	}

	if err := writeRow(w, headers, widths); err != nil {
		return err
	}

	dashes := make([]string, len(headers))
	for i := range headers {
		dashes[i] = strings.Repeat("-", widths[i])
	}
	if err := writeRow(w, dashes, widths); err != nil {
		return err
	}

	for _, cell := range cells {
		if err := writeRow(w, cell, widths); err != nil {
			return err
		}
	}
	return nil
}

// writeRow prints one table row with padded columns.
//
// The final column is never padded, so lines carry no trailing spaces.
//
// Parameters:
//   - w: Destination writer
//   - cells: Column values for this row
//   - widths: Display width per column
//
// Returns:
//   - error: Any write error
func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, val := range cells {
		if i == len(cells)-1 {
			parts[i] = val
			continue
		}
		parts[i] = pad(val, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, columnSeparator), " "))
	return err
}

// pad extends a string to the target display width with spaces.
//
// Parameters:
//   - val: The string to pad
//   - width: Target display width in character cells
//
// Returns:
//   - string: The padded string, unchanged when already wide enough
func pad(val string, width int) string {
	current := runewidth.StringWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
