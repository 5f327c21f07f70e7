package table

import (
	"math"
	"testing"
)

func TestAllocateWidthsSumToAvailable(t *testing.T) {
	cases := []struct {
		name      string
		weights   []float64
		available float64
	}{
		{"uniform", []float64{1, 1, 1, 1}, 190},
		{"mixed", []float64{2, 1, 1, 2, 1}, 190},
		{"fractional", []float64{0.5, 1.25, 3}, 277.3},
		{"single", []float64{7}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols := make([]ColumnDef, len(tc.weights))
			for i, w := range tc.weights {
				cols[i] = ColumnDef{Name: "c", Weight: w}
			}

			widths, err := AllocateWidths(cols, tc.available)
			if err != nil {
				t.Fatalf("AllocateWidths: %v", err)
			}

			sum := 0.0
			for _, w := range widths {
				if w <= 0 {
					t.Errorf("column width %g is not positive", w)
				}
				sum += w
			}
			if math.Abs(sum-tc.available)/tc.available > 1e-6 {
				t.Errorf("widths sum to %g, want %g", sum, tc.available)
			}
		})
	}
}

func TestAllocateWidthsProportional(t *testing.T) {
	cols := []ColumnDef{
		{Name: "a", Weight: 2},
		{Name: "b", Weight: 1},
		{Name: "c", Weight: 1},
	}

	widths, err := AllocateWidths(cols, 200)
	if err != nil {
		t.Fatalf("AllocateWidths: %v", err)
	}
	if math.Abs(widths[0]-100) > 1e-9 {
		t.Errorf("weight-2 column got width %g, want 100", widths[0])
	}
	if math.Abs(widths[1]-50) > 1e-9 || math.Abs(widths[2]-50) > 1e-9 {
		t.Errorf("weight-1 columns got widths %g, %g, want 50 each", widths[1], widths[2])
	}
}

func TestAllocateWidthsRejectsNonPositiveWeight(t *testing.T) {
	for _, w := range []float64{0, -1} {
		cols := []ColumnDef{{Name: "a", Weight: 1}, {Name: "bad", Weight: w}}
		if _, err := AllocateWidths(cols, 100); err == nil {
			t.Errorf("AllocateWidths accepted weight %g", w)
		}
	}

	if _, err := AllocateWidths(nil, 100); err == nil {
		t.Error("AllocateWidths accepted empty column set")
	}
}

func TestColumnsDefaults(t *testing.T) {
	cols := Columns(
		[]string{"name", "comment", "score"},
		map[string]float64{"comment": 2},
		map[string]bool{"comment": true},
		map[string]bool{"score": true},
	)

	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	if cols[0].Weight != 1 || cols[2].Weight != 1 {
		t.Errorf("unset weights should default to 1, got %g and %g", cols[0].Weight, cols[2].Weight)
	}
	if cols[1].Weight != 2 {
		t.Errorf("comment weight = %g, want 2", cols[1].Weight)
	}
	if !cols[1].MultiLine || cols[0].MultiLine {
		t.Error("multi-line flags not applied to the right columns")
	}
	if !cols[2].Highlight || cols[1].Highlight {
		t.Error("highlight flags not applied to the right columns")
	}
}
