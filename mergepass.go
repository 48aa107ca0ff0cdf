package hull3d

import (
	"fmt"

	"github.com/akmonengine/hull3d/mesh"
)

type mergePolicy int

const (
	// mergeNonConvexWRTLargerFace merges across an edge when the larger of
	// the two faces sharing it does not see the other's centroid below its
	// plane by more than tolerance. When only the smaller face sees the edge
	// that way, it marks the face being walked NonConvex for the second pass.
	mergeNonConvexWRTLargerFace mergePolicy = iota
	// mergeNonConvex merges whenever either face sees the other's centroid
	// from its outward side, with no larger/smaller distinction.
	mergeNonConvex
)

// oppositeFaceDistance is edge.Face's signed distance to the centroid of
// the face across edge.
func oppositeFaceDistance(edge *mesh.HalfEdge) float64 {
	return edge.Face.DistanceToPlane(edge.Opposite.Face.Centroid)
}

// mergePass (§4.11) runs policy over every currently Visible face in
// b.newFaces, restarting a face's ring walk after each merge since the ring
// it belongs to has changed shape.
func (b *Builder) mergePass(policy mergePolicy) error {
	for _, face := range b.newFaces {
		if face.Mark != mesh.Visible {
			continue
		}
		for {
			merged, err := b.doAdjacentMerge(face, policy)
			if err != nil {
				return err
			}
			if !merged {
				break
			}
		}
	}
	return nil
}

// doAdjacentMerge walks face's edge ring once, merging the first pair that
// policy approves. It returns true if a merge happened (the caller should
// restart the walk on the surviving face).
func (b *Builder) doAdjacentMerge(face *mesh.Face, policy mergePolicy) (bool, error) {
	edge := face.Edge
	convex := true

	for i := 0; i < face.NVertices; i++ {
		oppFace := edge.Opposite.Face
		merge := false

		d1 := oppositeFaceDistance(edge)
		d2 := oppositeFaceDistance(edge.Opposite)

		switch policy {
		case mergeNonConvex:
			if d1 > -b.tolerance || d2 > -b.tolerance {
				merge = true
			}
		case mergeNonConvexWRTLargerFace:
			var largerDist, smallerDist float64
			if face.Area >= oppFace.Area {
				largerDist, smallerDist = d1, d2
			} else {
				largerDist, smallerDist = d2, d1
			}
			if largerDist > -b.tolerance {
				merge = true
			} else if smallerDist > -b.tolerance {
				convex = false
			}
		}

		if merge {
			b.trace("merging face across edge (policy %d)", policy)
			discarded, err := face.MergeAdjacentFaces(edge)
			if err != nil {
				return false, fmt.Errorf("%w: %v", ErrInternalInvariant, err)
			}
			for _, dface := range discarded {
				b.deleteFaceVertices(dface, face)
			}
			return true, nil
		}
		edge = edge.Next
	}

	if !convex && policy == mergeNonConvexWRTLargerFace {
		face.Mark = mesh.NonConvex
	}
	return false, nil
}

// resolveUnclaimedPoints (§4.12) reassigns every vertex orphaned during this
// iteration onto whichever currently-visible new face sees it with maximum
// distance, discarding it if no face qualifies beyond tolerance.
func (b *Builder) resolveUnclaimedPoints() {
	for v := b.unclaimed.First(); v != nil; {
		next := v.Next

		var bestFace *mesh.Face
		bestDist := b.tolerance
		for _, f := range b.newFaces {
			if f.Mark != mesh.Visible {
				continue
			}
			d := f.DistanceToPlane(v.Point)
			if d > bestDist {
				bestDist = d
				bestFace = f
				if bestDist > unclaimedResolveFastAcceptFactor*b.tolerance {
					break
				}
			}
		}
		if bestFace != nil {
			b.addVertexToFace(v, bestFace)
		}
		v = next
	}
	b.unclaimed.Clear()
}
