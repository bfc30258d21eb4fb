package paf_test

import (
	"testing"

	"github.com/kestrelvision/posegroup/paf"
)

// buildField creates an h x w, 1-edge field where every pixel has a
// uniform vector (8x8 with {1, 0} matches scenario S1 of spec.md §8).
func buildField(t *testing.T, h, w int, uniform paf.Vec2) *paf.Field {
	t.Helper()
	values := make([][][]paf.Vec2, h)
	for r := 0; r < h; r++ {
		values[r] = make([][]paf.Vec2, w)
		for c := 0; c < w; c++ {
			values[r][c] = []paf.Vec2{uniform}
		}
	}
	f, err := paf.NewField(values, 1)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	return f
}

func TestSampleLine_Uniform(t *testing.T) {
	f := buildField(t, 8, 8, paf.Vec2{X: 1, Y: 0})
	samples, err := f.SampleLine(2, 4, 6, 4, 0, 10)
	if err != nil {
		t.Fatalf("SampleLine: %v", err)
	}
	if len(samples) != 10 {
		t.Fatalf("want 10 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s.X != 1 || s.Y != 0 {
			t.Errorf("sample %d = %+v, want {1 0}", i, s)
		}
	}
}

func TestSampleLine_ClipsAtBoundary(t *testing.T) {
	f := buildField(t, 4, 4, paf.Vec2{X: 1, Y: 1})
	// Endpoints land outside the grid after stride division; must clip,
	// not error, and still return one sample per point.
	samples, err := f.SampleLine(-10, -10, 100, 100, 0, 5)
	if err != nil {
		t.Fatalf("SampleLine: %v", err)
	}
	if len(samples) != 5 {
		t.Fatalf("want 5 samples, got %d", len(samples))
	}
}

func TestSampleLine_BadNPoints(t *testing.T) {
	f := buildField(t, 4, 4, paf.Vec2{})
	if _, err := f.SampleLine(0, 0, 1, 1, 0, 0); err != paf.ErrBadNPoints {
		t.Errorf("want ErrBadNPoints, got %v", err)
	}
}

func TestSampleLine_EdgeOutOfRange(t *testing.T) {
	f := buildField(t, 4, 4, paf.Vec2{})
	if _, err := f.SampleLine(0, 0, 1, 1, 3, 2); err != paf.ErrEdgeOutOfRange {
		t.Errorf("want ErrEdgeOutOfRange, got %v", err)
	}
}
