package posegroup

import "errors"

// ErrConfigNotValidated indicates Group was called with a
// posegroupcfg.Config whose Validate method was never called (or
// returned an error) — ResolvedEdges is unavailable without it.
var ErrConfigNotValidated = errors.New("posegroup: config must be validated before grouping")
