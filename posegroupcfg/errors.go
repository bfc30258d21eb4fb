package posegroupcfg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the posegroupcfg package — the ConfigError taxonomy
// of spec.md §7. Check with errors.Is, never by string comparison.
//
// ERROR PRIORITY (imitating the teacher's matrix/errors.go convention):
// Validate checks, in order, an empty part_names list, then each edge in
// turn (unknown part name, then duplicate of an earlier edge), then
// non-positive stride, non-positive n_points, and finally the fractional
// min_instance_peaks range — the first violation found is returned.
var (
	// ErrUnknownPartName indicates an edge names a part not present in
	// PartNames.
	ErrUnknownPartName = errors.New("posegroupcfg: unknown part name in edges")

	// ErrDuplicateEdge indicates the same (src, dst) channel pair
	// appears more than once in Edges.
	ErrDuplicateEdge = errors.New("posegroupcfg: duplicate edge")

	// ErrNonPositiveStride indicates PAFsStride <= 0.
	ErrNonPositiveStride = errors.New("posegroupcfg: pafs_stride must be positive")

	// ErrNonPositiveNPoints indicates NPoints <= 0.
	ErrNonPositiveNPoints = errors.New("posegroupcfg: n_points must be positive")

	// ErrFractionOutOfRange indicates a non-integer MinInstancePeaks that
	// falls outside (0, 1].
	ErrFractionOutOfRange = errors.New("posegroupcfg: fractional min_instance_peaks must be in (0, 1]")

	// ErrNoPartNames indicates Validate was called with an empty
	// PartNames list.
	ErrNoPartNames = errors.New("posegroupcfg: part_names must be non-empty")
)

func configErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
