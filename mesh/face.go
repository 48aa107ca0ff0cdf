package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mark classifies a Face's role in the current mesh.
type Mark int

const (
	// Visible faces are part of the current hull boundary.
	Visible Mark = iota
	// NonConvex marks a face the larger-face merge policy could not safely
	// merge; the second merge pass revisits it.
	NonConvex
	// Deleted faces have been absorbed by a merge or superseded by a
	// horizon cut and must not be traversed via Opposite.
	Deleted
)

// Face is a planar polygonal face: its edge ring, outward unit normal,
// centroid, plane offset, (pre-normalization) area, mesh mark, and the head
// of its outside-vertex sub-run within the builder's claimed list.
type Face struct {
	Edge      *HalfEdge
	NVertices int

	Normal   mgl64.Vec3
	Centroid mgl64.Vec3
	Offset   float64
	Area     float64

	Mark Mark

	// Outside is the head of this face's run within the builder's claimed
	// list, or nil if no vertex currently claims this face.
	Outside *Vertex
}

// CreateTriangle builds a triangular face with a ring e0->e1->e2->e0 whose
// heads are v0, v1, v2 in order, then computes its normal and centroid.
// minArea is forwarded to ComputeNormalMinArea; 0 disables the correction.
func CreateTriangle(v0, v1, v2 *Vertex, minArea float64) *Face {
	f := &Face{Mark: Visible}

	e0 := &HalfEdge{Head: v0, Face: f}
	e1 := &HalfEdge{Head: v1, Face: f}
	e2 := &HalfEdge{Head: v2, Face: f}

	e0.Next, e0.Prev = e1, e2
	e1.Next, e1.Prev = e2, e0
	e2.Next, e2.Prev = e0, e1

	f.Edge = e0
	f.ComputeNormalAndCentroid(minArea)
	return f
}

// ComputeNormal recomputes Normal, Area and NVertices via a Newell-style
// accumulation: walking the ring from Edge, it sums cross products of
// successive (vertex - Edge.Head) vectors. Area is the length of that sum
// before normalization (twice the true polygon area for a triangle, used
// only for relative comparison between faces).
func (f *Face) ComputeNormal() float64 {
	e0 := f.Edge
	e1 := e0.Next
	p0 := e0.Head.Point
	p1 := e1.Head.Point
	d1 := p1.Sub(p0)

	var normal mgl64.Vec3
	count := 2
	for e2 := e1.Next; e2 != e0; e2 = e2.Next {
		d2 := e2.Head.Point.Sub(p0)
		normal[0] += d1[1]*d2[2] - d1[2]*d2[1]
		normal[1] += d1[2]*d2[0] - d1[0]*d2[2]
		normal[2] += d1[0]*d2[1] - d1[1]*d2[0]
		d1 = d2
		count++
	}

	f.NVertices = count
	area := normal.Len()
	if area > 0 {
		normal = normal.Mul(1 / area)
	}
	f.Normal = normal
	f.Area = area
	return area
}

// ComputeNormalMinArea is a robustness correction for sliver faces: if the
// straight Newell-sum area falls below minArea, the ring's longest edge is
// treated as absent by projecting it out of the normal before renormalizing.
// This avoids the numerical amplification a nearly collinear vertex would
// otherwise cause.
func (f *Face) ComputeNormalMinArea(minArea float64) float64 {
	area := f.ComputeNormal()
	if area >= minArea {
		return area
	}

	var longest *HalfEdge
	longestLenSq := -1.0
	e := f.Edge
	for {
		lenSq := e.LengthSquared()
		if lenSq > longestLenSq {
			longestLenSq = lenSq
			longest = e
		}
		e = e.Next
		if e == f.Edge {
			break
		}
	}

	if longestLenSq <= 0 {
		return area
	}

	u := longest.direction().Mul(1 / math.Sqrt(longestLenSq))
	proj := f.Normal.Dot(u)
	corrected := f.Normal.Sub(u.Mul(proj))
	correctedLen := corrected.Len()
	if correctedLen > 0 {
		f.Normal = corrected.Mul(1 / correctedLen)
	}
	return area
}

// ComputeCentroid recomputes Centroid as the arithmetic mean of the ring's
// head-vertex points.
func (f *Face) ComputeCentroid() {
	var sum mgl64.Vec3
	n := 0
	e := f.Edge
	for {
		sum = sum.Add(e.Head.Point)
		n++
		e = e.Next
		if e == f.Edge {
			break
		}
	}
	f.Centroid = sum.Mul(1 / float64(n))
}

// ComputeNormalAndCentroid recomputes both Normal and Centroid and sets
// Offset = dot(Normal, Centroid). minArea <= 0 skips the sliver correction.
func (f *Face) ComputeNormalAndCentroid(minArea float64) {
	if minArea > 0 {
		f.ComputeNormalMinArea(minArea)
	} else {
		f.ComputeNormal()
	}
	f.ComputeCentroid()
	f.Offset = f.Normal.Dot(f.Centroid)
}

// DistanceToPlane returns the signed distance from p to the face's plane;
// positive means p is on the outward side.
func (f *Face) DistanceToPlane(p mgl64.Vec3) float64 {
	return f.Normal.Dot(p) - f.Offset
}
