// Package peak defines the detected-keypoint types consumed by the pose
// grouping pipeline and the channel-bucketing step that assigns each
// PeakID its identity.
//
// A Peak is a single local maximum lifted from a body-part confidence map:
// an (x, y) location in image pixels, a detection score in [0, 1], and the
// channel (body-part type) it was extracted from. Peak extraction itself is
// out of scope here (see spec.md §1); this package only orders and indexes
// peaks already extracted elsewhere.
package peak
