package hull3d

import "github.com/go-gl/mathgl/mgl64"

// Input is the small capability the core needs from a candidate point: turn
// itself into (x, y, z) doubles. The two concrete implementations below
// cover both shapes the spec allows (an ordered triple, and a record
// exposing named components); the core never sees anything else.
type Input interface {
	Coords() (x, y, z float64)
}

// Point is a record-style input point with named components.
type Point struct {
	X, Y, Z float64
}

// Coords implements Input.
func (p Point) Coords() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// Triple is an ordered-triple input point.
type Triple [3]float64

// Coords implements Input.
func (t Triple) Coords() (float64, float64, float64) {
	return t[0], t[1], t[2]
}

func toVec3(in Input) mgl64.Vec3 {
	x, y, z := in.Coords()
	return mgl64.Vec3{x, y, z}
}
