// Package vector3 is the pure R3 arithmetic kernel the hull builder runs on.
//
// Every function with a vector result writes it into a caller-provided
// destination and returns that destination (scalar results are returned
// directly), the way the teacher's epa package keeps scratch math as
// stack-local values rather than fresh heap allocations in hot loops.
package vector3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Add sets dst = a + b.
func Add(dst *mgl64.Vec3, a, b mgl64.Vec3) *mgl64.Vec3 {
	*dst = a.Add(b)
	return dst
}

// Sub sets dst = a - b.
func Sub(dst *mgl64.Vec3, a, b mgl64.Vec3) *mgl64.Vec3 {
	*dst = a.Sub(b)
	return dst
}

// Cross sets dst = a x b using the right-hand rule.
func Cross(dst *mgl64.Vec3, a, b mgl64.Vec3) *mgl64.Vec3 {
	*dst = a.Cross(b)
	return dst
}

// Dot returns a . b.
func Dot(a, b mgl64.Vec3) float64 {
	return a.Dot(b)
}

// Length returns the Euclidean length of a.
func Length(a mgl64.Vec3) float64 {
	return math.Sqrt(a.Dot(a))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func SquaredDistance(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// Normalize sets dst to the unit vector in the direction of a. If a has
// exactly zero length, dst is set to the zero vector rather than failing.
func Normalize(dst *mgl64.Vec3, a mgl64.Vec3) *mgl64.Vec3 {
	l := Length(a)
	if l == 0 {
		*dst = mgl64.Vec3{}
		return dst
	}
	*dst = a.Mul(1 / l)
	return dst
}

// PointLineDistance returns the Euclidean distance from p to the infinite
// line through l1 and l2. Returns 0 if l1 == l2.
func PointLineDistance(p, l1, l2 mgl64.Vec3) float64 {
	dir := l2.Sub(l1)
	dirLen := Length(dir)
	if dirLen == 0 {
		return 0
	}
	cross := p.Sub(l1).Cross(dir)
	return Length(cross) / dirLen
}

// PlaneNormal sets dst to an unnormalized normal of triangle (a, b, c),
// computed as (b-c) x (b-a) so its sign agrees with the ring orientation
// mesh.CreateTriangle produces.
func PlaneNormal(dst *mgl64.Vec3, a, b, c mgl64.Vec3) *mgl64.Vec3 {
	*dst = b.Sub(c).Cross(b.Sub(a))
	return dst
}
