package hull3d

import "errors"

// Caller-facing error kinds. Use errors.Is to test for a specific kind; the
// wrapped error, when present, carries the offending index or value.
var (
	// ErrBadInput is returned when the input is not a usable point sequence.
	ErrBadInput = errors.New("hull3d: bad input")
	// ErrTooFewPoints is returned when fewer than four points are supplied.
	ErrTooFewPoints = errors.New("hull3d: fewer than four points")
	// ErrDegenerate is returned when the input points are collinear or
	// coplanar such that no initial tetrahedron can be formed.
	ErrDegenerate = errors.New("hull3d: degenerate input")
	// ErrInternalInvariant is returned when a mesh consistency check fails
	// during construction; it indicates a bug in the builder, not bad input.
	ErrInternalInvariant = errors.New("hull3d: internal invariant violated")
)
