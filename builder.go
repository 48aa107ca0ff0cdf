package hull3d

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/akmonengine/hull3d/mesh"
	"github.com/akmonengine/hull3d/vector3"
	"github.com/go-gl/mathgl/mgl64"
)

// epsMachine is the double-precision machine epsilon used by the tolerance
// formula in §4.6.
const epsMachine = 2.220446049250313e-16

// unclaimedResolveFastAcceptFactor is the short-circuit threshold in
// resolveUnclaimedPoints (§4.12): once a candidate face's distance exceeds
// this many multiples of tolerance, later faces are assumed unable to beat
// it and the scan stops early.
const unclaimedResolveFastAcceptFactor = 1000

// Options configures a single Build/Compute call.
type Options struct {
	// SkipTriangulation emits each surviving face as its full polygon
	// (ordered vertex indices) instead of a fan triangulation. Default
	// (false) triangulates, matching the spec's documented default.
	SkipTriangulation bool
	// Debug turns on one trace line per eye-point addition and per merge.
	Debug bool
	// Trace receives debug output when Debug is set. Defaults to os.Stderr.
	Trace io.Writer
}

// Builder accumulates input points and runs QuickHull construction over
// them. It is not safe for concurrent use and must not be reused after a
// failed Build: construct a new Builder instead.
type Builder struct {
	opts Options

	points []*mesh.Vertex

	faces     []*mesh.Face
	newFaces  []*mesh.Face
	claimed   mesh.VertexList
	unclaimed mesh.VertexList
	horizon   []*mesh.HalfEdge

	tolerance float64
}

// NewBuilder returns an empty Builder configured with opts.
func NewBuilder(opts Options) *Builder {
	if opts.Trace == nil {
		opts.Trace = os.Stderr
	}
	return &Builder{opts: opts}
}

// AddPoint appends one input point to the builder's pending point set.
func (b *Builder) AddPoint(p Input) {
	idx := len(b.points)
	b.points = append(b.points, mesh.NewVertex(toVec3(p), idx))
}

// AddPoints appends a batch of input points.
func (b *Builder) AddPoints(points []Input) {
	for _, p := range points {
		b.AddPoint(p)
	}
}

// Face is one emitted boundary face: the input indices of its vertices, in
// ccw order viewed from outside the hull.
type Face []int

// Compute is the one-shot convenience entry point: it builds the hull of
// points under opts and returns the emitted faces.
func Compute(points []Input, opts Options) ([]Face, error) {
	b := NewBuilder(opts)
	b.AddPoints(points)
	return b.Build()
}

func (b *Builder) trace(format string, args ...interface{}) {
	if !b.opts.Debug {
		return
	}
	fmt.Fprintf(b.opts.Trace, format+"\n", args...)
}

// Build runs QuickHull over every point added so far and returns the
// emitted faces.
func (b *Builder) Build() ([]Face, error) {
	for _, v := range b.points {
		for axis := 0; axis < 3; axis++ {
			if math.IsNaN(v.Point[axis]) || math.IsInf(v.Point[axis], 0) {
				return nil, fmt.Errorf("%w: point %d has a non-finite coordinate", ErrBadInput, v.Index)
			}
		}
	}
	if len(b.points) < 4 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(b.points))
	}

	if err := b.buildTetrahedron(); err != nil {
		return nil, err
	}

	for {
		eyeVertex := b.nextVertexToAdd()
		if eyeVertex == nil {
			break
		}
		if err := b.addPointToHull(eyeVertex); err != nil {
			return nil, err
		}
	}

	return b.collectFaces(b.opts.SkipTriangulation)
}

// addVertexToFace claims v for face f, prepending it to f's outside run.
func (b *Builder) addVertexToFace(v *mesh.Vertex, f *mesh.Face) {
	v.Face = f
	if f.Outside == nil {
		b.claimed.Add(v)
	} else {
		b.claimed.InsertBefore(f.Outside, v)
	}
	f.Outside = v
}

// removeVertexFromFace unclaims v from face f.
func (b *Builder) removeVertexFromFace(v *mesh.Vertex, f *mesh.Face) {
	if v == f.Outside {
		if v.Next != nil && v.Next.Face == f {
			f.Outside = v.Next
		} else {
			f.Outside = nil
		}
	}
	b.claimed.Remove(v)
}

// removeAllPointsFromFace detaches f's entire outside run from claimed and
// returns it as a standalone chain (nil if f claims nothing).
func (b *Builder) removeAllPointsFromFace(f *mesh.Face) *mesh.Vertex {
	if f.Outside == nil {
		return nil
	}
	end := f.Outside
	for end.Next != nil && end.Next.Face == f {
		end = end.Next
	}
	b.claimed.RemoveChain(f.Outside, end)
	head := f.Outside
	f.Outside = nil
	return head
}

// deleteFaceVertices (§4.12) detaches f's outside run. With no absorbing
// face every detached vertex joins unclaimed. With one, each vertex is
// reassigned into absorbing's outside run if it still sees absorbing beyond
// tolerance, else it joins unclaimed.
func (b *Builder) deleteFaceVertices(f *mesh.Face, absorbing *mesh.Face) {
	vertices := b.removeAllPointsFromFace(f)
	if vertices == nil {
		return
	}
	if absorbing == nil {
		b.unclaimed.AddAll(vertices)
		return
	}
	for v := vertices; v != nil; {
		next := v.Next
		if absorbing.DistanceToPlane(v.Point) > b.tolerance {
			b.addVertexToFace(v, absorbing)
		} else {
			b.unclaimed.Add(v)
		}
		v = next
	}
}

// nextVertexToAdd picks the farthest outside point of the first claimed
// face (§4.8 step 1).
func (b *Builder) nextVertexToAdd() *mesh.Vertex {
	if b.claimed.IsEmpty() {
		return nil
	}
	eyeFace := b.claimed.First().Face

	var eyeVertex *mesh.Vertex
	maxDist := 0.0
	for v := eyeFace.Outside; v != nil && v.Face == eyeFace; v = v.Next {
		dist := eyeFace.DistanceToPlane(v.Point)
		if dist > maxDist {
			maxDist = dist
			eyeVertex = v
		}
	}
	return eyeVertex
}

// addPointToHull runs one full iteration of §4.8 steps 2-7 for eyeVertex.
func (b *Builder) addPointToHull(eyeVertex *mesh.Vertex) error {
	b.trace("adding point %d", eyeVertex.Index)

	b.removeVertexFromFace(eyeVertex, eyeVertex.Face)

	b.horizon = b.horizon[:0]
	if err := b.computeHorizon(eyeVertex.Point, nil, eyeVertex.Face); err != nil {
		return err
	}

	b.addNewFaces(eyeVertex, b.horizon)

	if err := b.mergePass(mergeNonConvexWRTLargerFace); err != nil {
		return err
	}
	for _, f := range b.newFaces {
		if f.Mark == mesh.NonConvex {
			f.Mark = mesh.Visible
		}
	}
	if err := b.mergePass(mergeNonConvex); err != nil {
		return err
	}

	b.resolveUnclaimedPoints()
	return nil
}

// buildTetrahedron constructs the tolerance and the initial simplex (§4.6,
// §4.7), then assigns every remaining point to the face that sees it with
// maximum distance beyond tolerance (ties go to the first such face).
func (b *Builder) buildTetrahedron() error {
	var minV, maxV [3]*mesh.Vertex
	for axis := 0; axis < 3; axis++ {
		minV[axis] = b.points[0]
		maxV[axis] = b.points[0]
	}
	for _, v := range b.points[1:] {
		for axis := 0; axis < 3; axis++ {
			if v.Point[axis] < minV[axis].Point[axis] {
				minV[axis] = v
			}
			if v.Point[axis] > maxV[axis].Point[axis] {
				maxV[axis] = v
			}
		}
	}

	var maxAbs [3]float64
	for axis := 0; axis < 3; axis++ {
		maxAbs[axis] = math.Max(math.Abs(minV[axis].Point[axis]), math.Abs(maxV[axis].Point[axis]))
	}
	b.tolerance = 3 * epsMachine * (maxAbs[0] + maxAbs[1] + maxAbs[2])

	k := 0
	maxExtent := maxV[0].Point[0] - minV[0].Point[0]
	for axis := 1; axis < 3; axis++ {
		extent := maxV[axis].Point[axis] - minV[axis].Point[axis]
		if extent > maxExtent {
			maxExtent = extent
			k = axis
		}
	}
	v0, v1 := minV[k], maxV[k]
	if maxExtent <= b.tolerance {
		return fmt.Errorf("%w: all input points coincide", ErrDegenerate)
	}

	var v2 *mesh.Vertex
	maxLineDist := -1.0
	for _, v := range b.points {
		if v == v0 || v == v1 {
			continue
		}
		d := vector3.PointLineDistance(v.Point, v0.Point, v1.Point)
		if d > maxLineDist {
			maxLineDist = d
			v2 = v
		}
	}
	if v2 == nil || maxLineDist <= b.tolerance {
		return fmt.Errorf("%w: all input points are collinear", ErrDegenerate)
	}

	var normal mgl64.Vec3
	vector3.PlaneNormal(&normal, v0.Point, v1.Point, v2.Point)
	baseOffset := normal.Dot(v0.Point)

	var v3 *mesh.Vertex
	maxPlaneDist := -1.0
	for _, v := range b.points {
		if v == v0 || v == v1 || v == v2 {
			continue
		}
		d := math.Abs(normal.Dot(v.Point) - baseOffset)
		if d > maxPlaneDist {
			maxPlaneDist = d
			v3 = v
		}
	}
	if v3 == nil || maxPlaneDist <= b.tolerance {
		return fmt.Errorf("%w: all input points are coplanar", ErrDegenerate)
	}

	faces := make([]*mesh.Face, 4)
	orientation := normal.Dot(v3.Point) - baseOffset
	if orientation < 0 {
		faces[0] = mesh.CreateTriangle(v0, v1, v2, 0)
		faces[1] = mesh.CreateTriangle(v3, v1, v0, 0)
		faces[2] = mesh.CreateTriangle(v3, v2, v1, 0)
		faces[3] = mesh.CreateTriangle(v3, v0, v2, 0)
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			faces[i+1].Edge.Advance(2).SetOpposite(faces[0].Edge.Advance(j))
			faces[i+1].Edge.Advance(1).SetOpposite(faces[j+1].Edge.Advance(0))
		}
	} else {
		faces[0] = mesh.CreateTriangle(v0, v2, v1, 0)
		faces[1] = mesh.CreateTriangle(v3, v0, v1, 0)
		faces[2] = mesh.CreateTriangle(v3, v1, v2, 0)
		faces[3] = mesh.CreateTriangle(v3, v2, v0, 0)
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			faces[i+1].Edge.Advance(2).SetOpposite(faces[0].Edge.Advance((3 - i) % 3))
			faces[i+1].Edge.Advance(0).SetOpposite(faces[j+1].Edge.Advance(1))
		}
	}
	b.faces = append(b.faces, faces...)

	for _, v := range b.points {
		if v == v0 || v == v1 || v == v2 || v == v3 {
			continue
		}
		var bestFace *mesh.Face
		bestDist := b.tolerance
		for _, f := range faces {
			d := f.DistanceToPlane(v.Point)
			if d > bestDist {
				bestDist = d
				bestFace = f
			}
		}
		if bestFace != nil {
			b.addVertexToFace(v, bestFace)
		}
	}

	return nil
}
