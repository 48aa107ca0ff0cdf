package hull3d

import (
	"fmt"

	"github.com/akmonengine/hull3d/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

// computeHorizon (§4.9) is a depth-first walk of faces visible from
// eyePoint. It deletes every visible face it enters, moving its outside
// vertices to unclaimed, and appends to b.horizon the ring of edges
// separating visible faces from non-visible ones.
//
// Depth is bounded by the number of currently visible faces, which Go's
// growable goroutine stack accommodates without the explicit-stack
// conversion the spec's design notes suggest for adversarial inputs (see
// DESIGN.md).
func (b *Builder) computeHorizon(eyePoint mgl64.Vec3, crossEdge *mesh.HalfEdge, face *mesh.Face) error {
	b.deleteFaceVertices(face, nil)
	face.Mark = mesh.Deleted

	var start, stop *mesh.HalfEdge
	if crossEdge == nil {
		start, stop = face.Edge, face.Edge
	} else {
		start, stop = crossEdge.Next, crossEdge
	}

	for edge := start; ; {
		if edge.Opposite == nil {
			return fmt.Errorf("%w: half-edge missing required opposite during horizon walk", ErrInternalInvariant)
		}
		neighbor := edge.Opposite.Face
		if neighbor.Mark == mesh.Visible {
			if neighbor.DistanceToPlane(eyePoint) > b.tolerance {
				if err := b.computeHorizon(eyePoint, edge.Opposite, neighbor); err != nil {
					return err
				}
			} else {
				b.horizon = append(b.horizon, edge)
			}
		}
		edge = edge.Next
		if edge == stop {
			break
		}
	}
	return nil
}

// addNewFaces (§4.10) fans triangles from eyeVertex to each horizon edge,
// stitching each new face's outward side to the horizon edge's opposite and
// its lateral sides to its neighbors in the fan.
func (b *Builder) addNewFaces(eyeVertex *mesh.Vertex, horizon []*mesh.HalfEdge) {
	b.newFaces = b.newFaces[:0]

	var sideBegin, sidePrev *mesh.HalfEdge

	for _, h := range horizon {
		face := mesh.CreateTriangle(eyeVertex, h.Tail(), h.Head, 0)
		b.faces = append(b.faces, face)
		b.newFaces = append(b.newFaces, face)

		face.Edge.Prev.SetOpposite(h.Opposite)

		side := face.Edge
		if sidePrev != nil {
			side.Next.SetOpposite(sidePrev)
		} else {
			sideBegin = side
		}
		sidePrev = side
	}

	if sideBegin != nil {
		sideBegin.Next.SetOpposite(sidePrev)
	}
}
