package paf

import "errors"

// Sentinel errors for the paf package. Adapted from gridgraph's
// bounds/shape sentinel set (see DESIGN.md).
var (
	// ErrEmptyField indicates a PAF tensor with zero height, width, or
	// edge count.
	ErrEmptyField = errors.New("paf: field has zero height, width, or edge count")

	// ErrBadLayout indicates a flat PAF slice whose length does not match
	// H*W*E*2, for either the [H,W,2E] or [H,W,E,2] source layout.
	ErrBadLayout = errors.New("paf: flat tensor length does not match H*W*E*2")

	// ErrEdgeOutOfRange indicates an edge index outside [0, E).
	ErrEdgeOutOfRange = errors.New("paf: edge index out of range")

	// ErrBadStride indicates a non-positive output stride.
	ErrBadStride = errors.New("paf: stride must be positive")

	// ErrBadNPoints indicates a non-positive sample count.
	ErrBadNPoints = errors.New("paf: n_points must be positive")

	// ErrZeroLengthEdge indicates a candidate pair with coincident source
	// and destination peaks (‖v‖ = 0); see spec.md §9 Open Questions. The
	// core never silently divides by zero: callers must filter such pairs
	// before §4.2, and ScorePair reports this sentinel instead.
	ErrZeroLengthEdge = errors.New("paf: source and destination peaks coincide")
)

// Vec2 is a single 2-vector sample from a PAF channel: X then Y component.
type Vec2 struct {
	X, Y float64
}

// Field is a reshaped Part Affinity Field tensor: H rows, W columns, E
// edges, 2 vector components per edge. Values[row][col][edge] holds the
// sampled PAF vector at that grid cell.
type Field struct {
	H, W, E int
	Values  [][][]Vec2
	Stride  int
}

// NewField wraps an already-reshaped [H][W][E]Vec2 tensor with its output
// stride. Returns ErrEmptyField if any dimension is zero, ErrBadStride if
// stride <= 0.
func NewField(values [][][]Vec2, stride int) (*Field, error) {
	if stride <= 0 {
		return nil, ErrBadStride
	}
	h := len(values)
	if h == 0 {
		return nil, ErrEmptyField
	}
	w := len(values[0])
	if w == 0 {
		return nil, ErrEmptyField
	}
	e := len(values[0][0])
	if e == 0 {
		return nil, ErrEmptyField
	}

	return &Field{H: h, W: w, E: e, Values: values, Stride: stride}, nil
}

// ReshapeHWE2 reshapes a flat [H, W, 2*E] row-major float64 slice (the
// "source convention" of spec.md §9) into a Field with layout [H, W, E, 2].
// Accepts the alternative [H, W, E, 2] layout identically, since both are
// a simple reinterpretation of the same flat buffer at stride 2*E per
// pixel: flat[row][col][2*edge+0] is the X component, [2*edge+1] the Y
// component, for either source shape.
func ReshapeHWE2(flat []float64, h, w, e, stride int) (*Field, error) {
	if h <= 0 || w <= 0 || e <= 0 {
		return nil, ErrEmptyField
	}
	if stride <= 0 {
		return nil, ErrBadStride
	}
	if len(flat) != h*w*e*2 {
		return nil, ErrBadLayout
	}

	values := make([][][]Vec2, h)
	idx := 0
	for r := 0; r < h; r++ {
		values[r] = make([][]Vec2, w)
		for c := 0; c < w; c++ {
			values[r][c] = make([]Vec2, e)
			for edge := 0; edge < e; edge++ {
				values[r][c][edge] = Vec2{X: flat[idx], Y: flat[idx+1]}
				idx += 2
			}
		}
	}

	return &Field{H: h, W: w, E: e, Values: values, Stride: stride}, nil
}

// At returns the PAF vector at grid cell (row, col) for the given edge
// index. Returns ErrEdgeOutOfRange if edge is outside [0, E). Row and col
// are expected already clipped to [0,H-1]/[0,W-1] by the caller (see
// SampleLine).
func (f *Field) At(row, col, edge int) (Vec2, error) {
	if edge < 0 || edge >= f.E {
		return Vec2{}, ErrEdgeOutOfRange
	}

	return f.Values[row][col][edge], nil
}
