package mesh

import "github.com/go-gl/mathgl/mgl64"

// HalfEdge is a directed edge within a Face's ring. Next and Prev close the
// ring; Opposite is the matching half-edge in the neighboring face, traversed
// in reverse orientation (opposite.Opposite == self, opposite.Head ==
// prev.Head).
type HalfEdge struct {
	Head *Vertex
	Face *Face

	Next, Prev, Opposite *HalfEdge
}

// Tail returns the vertex at the start of the edge (the head of Prev), or
// nil if Prev is not yet set.
func (e *HalfEdge) Tail() *Vertex {
	if e.Prev == nil {
		return nil
	}
	return e.Prev.Head
}

// SetOpposite links e and other as opposites of each other.
func (e *HalfEdge) SetOpposite(other *HalfEdge) {
	e.Opposite = other
	other.Opposite = e
}

// Length returns the Euclidean length of the edge, or -1 if it has no tail.
func (e *HalfEdge) Length() float64 {
	t := e.Tail()
	if t == nil {
		return -1
	}
	d := e.Head.Point.Sub(t.Point)
	return d.Len()
}

// LengthSquared returns the squared Euclidean length of the edge, or -1 if
// it has no tail.
func (e *HalfEdge) LengthSquared() float64 {
	t := e.Tail()
	if t == nil {
		return -1
	}
	d := e.Head.Point.Sub(t.Point)
	return d.Dot(d)
}

// Advance walks steps hops around the ring: forward along Next for a
// positive count, backward along Prev for a negative one. face.edge(k) in
// the algorithm description is e.Advance(k) starting from face.Edge.
func (e *HalfEdge) Advance(steps int) *HalfEdge {
	cur := e
	for i := 0; i < steps; i++ {
		cur = cur.Next
	}
	for i := 0; i > steps; i-- {
		cur = cur.Prev
	}
	return cur
}

// direction returns the unnormalized vector from tail to head.
func (e *HalfEdge) direction() mgl64.Vec3 {
	return e.Head.Point.Sub(e.Tail().Point)
}
