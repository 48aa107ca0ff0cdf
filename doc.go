// Package hull3d computes the 3D convex hull of a finite point set using the
// QuickHull algorithm: an incrementally built half-edge mesh, horizon-based
// point addition, and two passes of adjacent-face merging that keep the hull
// strictly convex in the presence of near-coplanar faces.
//
// The engine is single-threaded, non-reentrant, and one-shot: call Compute
// (or build a Builder and call Build) once per point set. There is no
// incremental update after construction.
package hull3d
