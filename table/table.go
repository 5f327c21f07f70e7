package table

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Doc is the drawing surface the table engine requires: a resource that can
// measure and draw text. *fpdf.Fpdf satisfies it.
type Doc interface {
	GetY() float64
	SetXY(x, y float64)
	AddPage()
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
	MultiCell(w, h float64, txtStr, borderStr, alignStr string, fill bool)
	Rect(x, y, w, h float64, styleStr string)
	SetFillColor(r, g, b int)
	SetTextColor(r, g, b int)
	SplitLines(txt []byte, w float64) [][]byte
	GetPageSize() (width, height float64)
	GetMargins() (left, top, right, bottom float64)
}

var _ Doc = (*fpdf.Fpdf)(nil)

// Dataset is an ordered set of named columns plus rows of string cells.
// Every row holds exactly one value per column name.
type Dataset struct {
	Columns []string
	Rows    []map[string]string
}

// pageState is the mutable state of one rendering pass: the usable bottom
// bound of the page and the fill-alternation flag. The vertical cursor
// itself lives in the Doc. The flag toggles after every data row and is
// deliberately untouched by page breaks, so alternation continues across
// them.
type pageState struct {
	bottom float64
	fill   bool
}

// Table draws a dataset onto a Doc with uniform row heights, alternating
// fills, and header re-emission after page breaks.
type Table struct {
	doc   Doc
	cols  []ColumnDef
	style Style
}

// New creates a Table drawing through doc with the given column layout.
func New(doc Doc, cols []ColumnDef) *Table {
	return &Table{doc: doc, cols: cols, style: DefaultStyle()}
}

// SetStyle replaces the default style.
func (t *Table) SetStyle(s Style) *Table {
	t.style = s
	return t
}

// Render draws the header row followed by every data row in order. Column
// widths are allocated once from the layout weights; each data row is
// measured, checked against the page bound, drawn, and followed by a fill
// toggle. The Doc must already have an open page and font.
func (t *Table) Render(rows []map[string]string) error {
	left, _, right, bottomMargin := t.doc.GetMargins()
	pageW, pageH := t.doc.GetPageSize()

	widths, err := AllocateWidths(t.cols, pageW-left-right)
	if err != nil {
		return err
	}

	st := pageState{bottom: pageH - bottomMargin}

	t.drawHeader(widths, left)
	for _, row := range rows {
		h := MeasureRow(t.doc, t.cols, widths, row, t.style)
		if t.doc.GetY()+h > st.bottom {
			t.doc.AddPage()
			t.drawHeader(widths, left)
		}
		t.drawRow(row, widths, left, h, st.fill)
		st.fill = !st.fill
	}
	return nil
}

// drawHeader draws the column names as a single-line gray row.
func (t *Table) drawHeader(widths []float64, left float64) {
	y := t.doc.GetY()
	h := t.style.RowHeight

	t.doc.SetFillColor(t.style.HeaderFill.R, t.style.HeaderFill.G, t.style.HeaderFill.B)
	t.doc.SetTextColor(0, 0, 0)

	x := left
	for i, col := range t.cols {
		t.doc.Rect(x, y, widths[i], h, "FD")
		t.doc.SetXY(x, y)
		t.doc.CellFormat(widths[i], h, col.Name, "", 0, "C", false, 0, "")
		x += widths[i]
	}
	t.doc.SetXY(left, y+h)
}

// drawRow draws one data row at the uniform height h. Each cell is filled
// and bordered across the full row height before its text is placed, so
// short multi-line cells still present a complete box. The vertical cursor
// advances by h exactly once, at the end.
func (t *Table) drawRow(row map[string]string, widths []float64, left, h float64, fill bool) {
	y := t.doc.GetY()

	bg := t.style.Fills[0]
	if fill {
		bg = t.style.Fills[1]
	}

	x := left
	for i, col := range t.cols {
		text := row[col.Name]

		t.doc.SetFillColor(bg.R, bg.G, bg.B)
		t.doc.Rect(x, y, widths[i], h, "FD")

		tc := t.cellTextColor(col, text)
		t.doc.SetTextColor(tc.R, tc.G, tc.B)

		t.doc.SetXY(x, y)
		if col.MultiLine {
			// MultiCell advances the cursor by its own line count, not
			// by the row height, so the position is restored afterwards.
			t.doc.MultiCell(widths[i], t.style.LineHeight, text, "", "L", false)
			t.doc.SetXY(x+widths[i], y)
		} else {
			// Overflowing text is clipped by the cell box, not reflowed.
			t.doc.CellFormat(widths[i], h, text, "", 0, "C", false, 0, "")
		}
		x += widths[i]
	}

	t.doc.SetTextColor(0, 0, 0)
	t.doc.SetXY(left, y+h)
}

// cellTextColor resolves the text color for one cell. Highlight columns
// switch to the alert color when the cell parses as an integer below the
// threshold; anything that does not parse keeps the default color.
func (t *Table) cellTextColor(col ColumnDef, text string) RGBColor {
	if col.Highlight {
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && n < t.style.Threshold {
			return t.style.AlertText
		}
	}
	return RGBColor{}
}
