package match

import "errors"

// Sentinel errors for the match package.
var (
	// ErrNegativeDimension indicates a score matrix was requested with a
	// negative source or destination peak count.
	ErrNegativeDimension = errors.New("match: negative source or destination count")
)

// EdgeType is a directed pair of channel (body-part) indices, immutable
// once constructed. Duplicate EdgeTypes within a configuration are
// rejected at configuration-validation time (spec.md §7 ConfigError), not
// here.
type EdgeType struct {
	Src, Dst int
}

// Connection is a single matched (source, destination) pair within one
// fixed EdgeType: the peak indices are peak_ind values within their
// respective channel's bucketed list (spec.md §3 EdgeConnection).
type Connection struct {
	Src, Dst        int
	Score           float64
	FractionCorrect float64
}
