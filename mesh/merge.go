package mesh

import "errors"

// ErrInternalInvariant reports a mesh consistency check that should be
// unreachable in normal operation; it indicates a bug in the builder itself.
var ErrInternalInvariant = errors.New("hull3d: internal invariant violated")

// MergeAdjacentFaces absorbs the face on the opposite side of adjacentEdge
// into f. It returns every face the merge rendered degenerate (the absorbed
// face itself, plus up to two neighbors collapsed by the stitch), each
// marked Deleted. f's normal and centroid are recomputed before returning.
func (f *Face) MergeAdjacentFaces(adjacentEdge *HalfEdge) ([]*Face, error) {
	if adjacentEdge.Opposite == nil {
		return nil, ErrInternalInvariant
	}

	oppFace := adjacentEdge.Opposite.Face
	discarded := []*Face{oppFace}
	oppFace.Mark = Deleted

	hedgeOpp := adjacentEdge.Opposite
	hedgeAdjPrev := adjacentEdge.Prev
	hedgeAdjNext := adjacentEdge.Next
	hedgeOppPrev := hedgeOpp.Prev
	hedgeOppNext := hedgeOpp.Next

	for hedgeAdjPrev.Opposite.Face == oppFace {
		hedgeAdjPrev = hedgeAdjPrev.Prev
		hedgeOppNext = hedgeOppNext.Next
	}
	for hedgeAdjNext.Opposite.Face == oppFace {
		hedgeOppPrev = hedgeOppPrev.Prev
		hedgeAdjNext = hedgeAdjNext.Next
	}

	for he := hedgeOppNext; he != hedgeOppPrev.Next; he = he.Next {
		he.Face = f
	}

	f.Edge = hedgeAdjNext

	discardedFace, err := connectHalfEdges(f, hedgeOppPrev, hedgeAdjNext)
	if err != nil {
		return nil, err
	}
	if discardedFace != nil {
		discarded = append(discarded, discardedFace)
	}

	discardedFace, err = connectHalfEdges(f, hedgeAdjPrev, hedgeOppNext)
	if err != nil {
		return nil, err
	}
	if discardedFace != nil {
		discarded = append(discarded, discardedFace)
	}

	f.ComputeNormalAndCentroid(0)
	return discarded, nil
}

// connectHalfEdges relinks prev.Next = next, next.Prev = prev within face's
// ring. If prev and next both opposite into the same neighbor face, that
// neighbor has become degenerate (two of its edges are being merged into the
// one edge between prev and next): a 3-vertex neighbor is discarded
// outright, a larger one has its redundant edge (next.Opposite) spliced out
// of its ring. In either case prev itself is redundant and is spliced out of
// face's ring rather than linked to next. Returns the discarded face, if any.
func connectHalfEdges(face *Face, prev, next *HalfEdge) (*Face, error) {
	if prev.Opposite == nil || next.Opposite == nil {
		return nil, ErrInternalInvariant
	}

	var discarded *Face

	if prev.Opposite.Face == next.Opposite.Face {
		oppFace := next.Opposite.Face
		var oppositeEdge *HalfEdge

		if prev == face.Edge {
			face.Edge = next
		}

		if oppFace.NVertices == 3 {
			oppFace.Mark = Deleted
			discarded = oppFace
			oppositeEdge = next.Opposite.Prev.Opposite
		} else {
			oppositeEdge = next.Opposite.Next
			if oppFace.Edge == oppositeEdge.Prev {
				oppFace.Edge = oppositeEdge
			}
			oppositeEdge.Prev = oppositeEdge.Prev.Prev
			oppositeEdge.Prev.Next = oppositeEdge
		}

		next.Prev = prev.Prev
		next.Prev.Next = next

		next.SetOpposite(oppositeEdge)
		oppFace.ComputeNormalAndCentroid(0)
	} else {
		prev.Next = next
		next.Prev = prev
	}

	return discarded, nil
}
