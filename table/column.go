package table

import "fmt"

// ColumnDef defines the properties of a table column.
type ColumnDef struct {
	Name      string
	Weight    float64 // layout weight; must be > 0
	MultiLine bool    // word-wrap text across lines instead of clipping
	Highlight bool    // integer values below Style.Threshold render in AlertText
}

// Columns builds column definitions from ordered names. Weights absent from
// the overrides map default to 1; an explicit override is copied verbatim,
// so a zero or negative override surfaces as an error from AllocateWidths.
func Columns(names []string, weights map[string]float64, multiLine, highlight map[string]bool) []ColumnDef {
	cols := make([]ColumnDef, len(names))
	for i, name := range names {
		w, ok := weights[name]
		if !ok {
			w = 1
		}
		cols[i] = ColumnDef{
			Name:      name,
			Weight:    w,
			MultiLine: multiLine[name],
			Highlight: highlight[name],
		}
	}
	return cols
}

// AllocateWidths converts layout weights into column widths proportional to
// each column's share of the total weight. The widths sum to available.
func AllocateWidths(cols []ColumnDef, available float64) ([]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("table: no columns defined")
	}

	total := 0.0
	for _, col := range cols {
		if col.Weight <= 0 {
			return nil, fmt.Errorf("table: column %q has non-positive weight %g", col.Name, col.Weight)
		}
		total += col.Weight
	}

	widths := make([]float64, len(cols))
	for i, col := range cols {
		widths[i] = available * col.Weight / total
	}
	return widths, nil
}
