// Package table renders string datasets as bordered, paginated PDF tables.
//
// It provides weight-based column sizing, per-column wrap modes, numeric
// threshold highlighting, alternating row fills, and automatic page breaks
// with header re-emission. Drawing goes through the narrow Doc interface,
// satisfied by *fpdf.Fpdf, so the engine can be exercised against a
// recording fake in tests.
package table

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// Style defines the geometry and colors shared by every row of a table.
type Style struct {
	RowHeight  float64     // baseline height of a single-line row
	LineHeight float64     // height of one wrapped line in a multi-line cell
	HeaderFill RGBColor    // fill for header rows
	Fills      [2]RGBColor // alternating data-row fills, starting with Fills[0]
	AlertText  RGBColor    // text color for highlighted cells
	Threshold  int         // highlight cells whose integer value is below this
}

// DefaultStyle returns the standard report style: white and light blue
// alternating fills, gray header, red alerts below 60.
func DefaultStyle() Style {
	return Style{
		RowHeight:  10,
		LineHeight: 5,
		HeaderFill: RGBColor{R: 200, G: 200, B: 200},
		Fills: [2]RGBColor{
			{R: 255, G: 255, B: 255},
			{R: 204, G: 229, B: 255},
		},
		AlertText: RGBColor{R: 255, G: 0, B: 0},
		Threshold: 60,
	}
}
