// Package markdown extracts pipe-delimited Markdown tables from text.
//
// Generated answers often embed a table between prose paragraphs. Extract
// pulls the first such table into a table.Dataset; callers fall back to
// plain-text rendering when no table is present.
package markdown

import (
	"errors"
	"strings"

	"github.com/lvillar/reportpdf/table"
)

// ErrNoTable reports that the text contains no pipe-delimited table.
var ErrNoTable = errors.New("markdown: no table found")

// Extract scans text for lines beginning with "|". The first such line is
// the header, the second is the separator row and is skipped, and each
// remaining line becomes a data row. Rows whose cell count disagrees with
// the header are dropped; the count of dropped rows is returned so callers
// can observe the loss.
func Extract(text string) (*table.Dataset, int, error) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "|") {
			lines = append(lines, ln)
		}
	}
	if len(lines) < 2 {
		return nil, 0, ErrNoTable
	}

	cols := splitRow(lines[0])
	if len(cols) == 0 {
		return nil, 0, ErrNoTable
	}

	ds := &table.Dataset{Columns: cols}
	dropped := 0
	for _, ln := range lines[2:] {
		cells := splitRow(ln)
		if len(cells) != len(cols) {
			dropped++
			continue
		}
		row := make(map[string]string, len(cols))
		for i, name := range cols {
			row[name] = cells[i]
		}
		ds.Rows = append(ds.Rows, row)
	}
	return ds, dropped, nil
}

// splitRow splits a "|"-delimited line into trimmed cells.
func splitRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
