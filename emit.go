package hull3d

import (
	"fmt"

	"github.com/akmonengine/hull3d/mesh"
)

// collectFaces drops every Deleted face, then emits each Visible face as
// either its full polygon or its fan triangulation, per skipTriangulation.
// Any other mark reaching emission is reported as ErrInternalInvariant.
func (b *Builder) collectFaces(skipTriangulation bool) ([]Face, error) {
	var out []Face

	for _, f := range b.faces {
		switch f.Mark {
		case mesh.Visible:
			indices, err := ringIndices(f)
			if err != nil {
				return nil, err
			}
			if skipTriangulation {
				out = append(out, Face(indices))
				continue
			}
			for k := 1; k+1 < len(indices); k++ {
				out = append(out, Face{indices[0], indices[k], indices[k+1]})
			}
		case mesh.Deleted:
			// absorbed by a merge or superseded by a horizon cut; not part
			// of the hull.
		default:
			return nil, fmt.Errorf("%w: face with mark %d reached emission", ErrInternalInvariant, f.Mark)
		}
	}

	return out, nil
}

// ringIndices returns the input indices of f's boundary vertices in ring
// (ccw, viewed from outside) order.
func ringIndices(f *mesh.Face) ([]int, error) {
	indices := make([]int, 0, f.NVertices)
	e := f.Edge
	for {
		indices = append(indices, e.Head.Index)
		e = e.Next
		if e == f.Edge {
			break
		}
		if len(indices) > f.NVertices {
			return nil, fmt.Errorf("%w: face ring did not close within its recorded vertex count", ErrInternalInvariant)
		}
	}
	return indices, nil
}
