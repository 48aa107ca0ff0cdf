package hull3d

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func triple(x, y, z float64) Triple { return Triple{x, y, z} }

func cubeCorners() []Input {
	pts := make([]Input, 0, 8)
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				pts = append(pts, triple(x, y, z))
			}
		}
	}
	return pts
}

func sortedTriple(t *testing.T, f Face) [3]int {
	t.Helper()
	require.Len(t, f, 3)
	s := [3]int{f[0], f[1], f[2]}
	sort.Ints(s[:])
	return s
}

func faceSet(t *testing.T, faces []Face) map[[3]int]bool {
	t.Helper()
	out := make(map[[3]int]bool, len(faces))
	for _, f := range faces {
		out[sortedTriple(t, f)] = true
	}
	return out
}

// E2: tetrahedron.
func TestTetrahedron(t *testing.T) {
	points := []Input{
		triple(0, 0, 0),
		triple(1, 0, 0),
		triple(0, 1, 0),
		triple(0, 0, 1),
	}
	faces, err := Compute(points, Options{})
	require.NoError(t, err)
	require.Len(t, faces, 4)

	got := faceSet(t, faces)
	want := map[[3]int]bool{
		{0, 1, 2}: true,
		{0, 1, 3}: true,
		{0, 2, 3}: true,
		{1, 2, 3}: true,
	}
	require.Equal(t, want, got)
}

// E1: cube.
func TestCube(t *testing.T) {
	points := cubeCorners()
	faces, err := Compute(points, Options{})
	require.NoError(t, err)
	require.Len(t, faces, 12)

	polygons, err := Compute(points, Options{SkipTriangulation: true})
	require.NoError(t, err)
	require.Len(t, polygons, 6)
	for _, p := range polygons {
		require.Len(t, p, 4)
	}

	requireContainment(t, points, faces)
	requireEveryInputVertexUsed(t, points, faces)
}

// E3: an interior point must not appear on the hull.
func TestInteriorPoint(t *testing.T) {
	points := append(cubeCorners(), triple(0.5, 0.5, 0.5))
	faces, err := Compute(points, Options{})
	require.NoError(t, err)
	require.Len(t, faces, 12)

	for _, f := range faces {
		for _, idx := range f {
			require.NotEqual(t, 8, idx, "interior point must not be on the hull")
		}
	}
	requireContainment(t, points, faces)
}

// E4: a coplanar base cluster plus an apex.
func TestCoplanarCluster(t *testing.T) {
	points := []Input{
		triple(0, 0, 0),
		triple(1, 0, 0),
		triple(1, 1, 0),
		triple(0, 1, 0),
		triple(0.5, 0.5, 1),
	}

	polygons, err := Compute(points, Options{SkipTriangulation: true})
	require.NoError(t, err)
	require.Len(t, polygons, 5)

	var baseCount, sideCount int
	for _, p := range polygons {
		switch len(p) {
		case 4:
			baseCount++
		case 3:
			sideCount++
		default:
			t.Fatalf("unexpected polygon size %d", len(p))
		}
	}
	require.Equal(t, 1, baseCount)
	require.Equal(t, 4, sideCount)

	triangles, err := Compute(points, Options{})
	require.NoError(t, err)
	require.Len(t, triangles, 6)
}

// E6: too few points.
func TestTooFewPoints(t *testing.T) {
	points := []Input{triple(0, 0, 0), triple(1, 0, 0), triple(0, 1, 0)}
	_, err := Compute(points, Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTooFewPoints))
}

// E5: a duplicated point. This implementation omits the duplicate index
// from the hull rather than emitting it: the duplicate coincides exactly
// with an existing hull vertex, so every face's distance to it is <=
// tolerance and it is never claimed as an outside point by any face.
func TestRepeatedPoint(t *testing.T) {
	points := []Input{
		triple(0, 0, 0),
		triple(1, 0, 0),
		triple(0, 1, 0),
		triple(0, 0, 1),
		triple(0, 0, 0),
	}
	faces, err := Compute(points, Options{})
	require.NoError(t, err)
	require.Len(t, faces, 4)

	got := faceSet(t, faces)
	want := map[[3]int]bool{
		{0, 1, 2}: true,
		{0, 1, 3}: true,
		{0, 2, 3}: true,
		{1, 2, 3}: true,
	}
	require.Equal(t, want, got)

	for _, f := range faces {
		for _, idx := range f {
			require.NotEqual(t, 4, idx)
		}
	}
}

func TestBadInputNonFiniteCoordinate(t *testing.T) {
	points := []Input{
		triple(0, 0, 0),
		triple(1, 0, 0),
		triple(0, 1, 0),
		triple(math.NaN(), 0, 1),
	}
	_, err := Compute(points, Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadInput))
}

func TestDegenerateCollinearInput(t *testing.T) {
	points := []Input{
		triple(0, 0, 0),
		triple(1, 0, 0),
		triple(2, 0, 0),
		triple(3, 0, 0),
	}
	_, err := Compute(points, Options{})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDegenerate))
}

func TestBuilderIncrementalAddPoint(t *testing.T) {
	b := NewBuilder(Options{})
	for _, p := range cubeCorners() {
		b.AddPoint(p)
	}
	faces, err := b.Build()
	require.NoError(t, err)
	require.Len(t, faces, 12)
}

// requireContainment checks §8 property 1: every input point lies on or
// inside every emitted face's plane within slack.
func requireContainment(t *testing.T, points []Input, faces []Face) {
	t.Helper()
	vecs := make([]struct{ x, y, z float64 }, len(points))
	for i, p := range points {
		vecs[i].x, vecs[i].y, vecs[i].z = p.Coords()
	}

	// Recompute each face's plane from its own (triangulated) vertices so
	// the check is independent of internal builder state.
	for _, f := range faces {
		require.GreaterOrEqual(t, len(f), 3)
		a, b, c := vecs[f[0]], vecs[f[1]], vecs[f[2]]
		ax, ay, az := b.x-a.x, b.y-a.y, b.z-a.z
		bx, by, bz := c.x-a.x, c.y-a.y, c.z-a.z
		nx := ay*bz - az*by
		ny := az*bx - ax*bz
		nz := ax*by - ay*bx
		offset := nx*a.x + ny*a.y + nz*a.z

		for _, v := range vecs {
			dist := nx*v.x + ny*v.y + nz*v.z - offset
			require.LessOrEqual(t, dist, 1e-6, "point must not be strictly outside any emitted face's plane")
		}
	}
}

// requireEveryInputVertexUsed checks §8 property 2 in its simplest form for
// an input set that is exactly its own hull (every point is extremal on
// some axis for the cube).
func requireEveryInputVertexUsed(t *testing.T, points []Input, faces []Face) {
	t.Helper()
	used := map[int]bool{}
	for _, f := range faces {
		for _, idx := range f {
			used[idx] = true
		}
	}
	for i := range points {
		require.True(t, used[i], "input point %d expected on the hull", i)
	}
}
