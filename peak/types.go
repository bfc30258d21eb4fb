package peak

import "errors"

// Sentinel errors for the peak package.
var (
	// ErrLengthMismatch indicates the flat peaks/scores/channels slices
	// passed to Bucket disagree in length.
	ErrLengthMismatch = errors.New("peak: flat peaks/scores/channels length mismatch")

	// ErrChannelOutOfRange indicates a channel index outside [0, N).
	ErrChannelOutOfRange = errors.New("peak: channel index out of range")
)

// Peak is a single detected body-part candidate: an (x, y) location in
// image pixels, a detection score in [0, 1], and the channel (body-part
// type index) it was extracted from.
type Peak struct {
	X, Y    float64
	Score   float64
	Channel int
}

// ID uniquely identifies a Peak within its channel's bucketed list: Node is
// the channel (body-part) index, Index is the position within that
// channel's peak list after Bucket has run.
type ID struct {
	Node  int
	Index int
}
