package table

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// LineSplitter wraps text into lines that fit a given width. *fpdf.Fpdf
// implements it with the metrics of the current font; measurement through
// it has no drawing side effects.
type LineSplitter interface {
	SplitLines(txt []byte, w float64) [][]byte
}

// MeasureCell predicts the height a cell will occupy when drawn at the
// given column width, without drawing. Multi-line columns wrap and grow by
// whole lines; single-line columns always occupy the baseline row height,
// however long the text.
func MeasureCell(s LineSplitter, col ColumnDef, width float64, text string, style Style) float64 {
	if !col.MultiLine {
		return style.RowHeight
	}
	lines := len(s.SplitLines([]byte(text), width))
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * style.LineHeight
}

// MeasureRow returns the uniform height for one row: the maximum of its
// cells' measured heights, never below the baseline row height.
func MeasureRow(s LineSplitter, cols []ColumnDef, widths []float64, row map[string]string, style Style) float64 {
	h := style.RowHeight
	for i, col := range cols {
		if ch := MeasureCell(s, col, widths[i], row[col.Name], style); ch > h {
			h = ch
		}
	}
	return h
}

// RuneSplitter is a font-independent LineSplitter that charges every
// half-width rune CharWidth units and full-width (CJK) runes twice that.
// It serves measurement when no PDF font metric is available.
type RuneSplitter struct {
	CharWidth float64
}

// SplitLines wraps txt greedily at width w, breaking at the last space on
// the line when there is one and mid-word otherwise.
func (s RuneSplitter) SplitLines(txt []byte, w float64) [][]byte {
	cw := s.CharWidth
	if cw <= 0 {
		cw = 1
	}

	var lines [][]byte
	for _, raw := range bytes.Split(txt, []byte("\n")) {
		runes := []rune(string(raw))
		if len(runes) == 0 {
			lines = append(lines, []byte{})
			continue
		}
		for start := 0; start < len(runes); {
			lineW := 0.0
			lastSpace := -1
			i := start
			for i < len(runes) {
				rw := cw * float64(runewidth.RuneWidth(runes[i]))
				if lineW+rw > w && i > start {
					break
				}
				if runes[i] == ' ' {
					lastSpace = i
				}
				lineW += rw
				i++
			}
			if i == len(runes) {
				lines = append(lines, []byte(string(runes[start:])))
				break
			}
			brk, next := i, i
			if lastSpace >= start {
				brk, next = lastSpace, lastSpace+1
			}
			lines = append(lines, []byte(string(runes[start:brk])))
			start = next
		}
	}
	return lines
}
