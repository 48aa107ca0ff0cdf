package mesh

import "github.com/go-gl/mathgl/mgl64"

// Vertex wraps one input point with its original index and its membership
// links in whichever VertexList currently owns it (claimed, unclaimed, or
// none). Face is a non-owning back-reference to the face that claims this
// vertex as an outside point; it is nil until the vertex is first claimed
// and is not cleared when the vertex is unclaimed, so it is meaningful only
// while the vertex is in the claimed list.
type Vertex struct {
	Point mgl64.Vec3
	Index int

	Prev, Next *Vertex
	Face       *Face
}

// NewVertex wraps a point and its original input index.
func NewVertex(p mgl64.Vec3, index int) *Vertex {
	return &Vertex{Point: p, Index: index}
}
