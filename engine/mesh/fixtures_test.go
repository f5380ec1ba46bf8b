package mesh

import (
	"testing"

	"golang.org/x/exp/slices"
)

// Unit cube, 2 outward-facing triangles per side.
var (
	cubeCoords = []float64{
		0, 0, 0,
		1, 0, 0,
		1, 1, 0,
		0, 1, 0,
		0, 0, 1,
		1, 0, 1,
		1, 1, 1,
		0, 1, 1,
	}
	cubeFaces = []int{
		0, 2, 1, 0, 3, 2, // bottom
		4, 5, 6, 4, 6, 7, // top
		0, 1, 5, 0, 5, 4, // front
		3, 7, 6, 3, 6, 2, // back
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
)

// Octahedron: 0..3 around the equator, 4 on top, 5 below.
var (
	octaCoords = []float64{
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
		0, -1, 0,
		0, 0, 1,
		0, 0, -1,
	}
	octaFaces = []int{
		4, 0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0,
		5, 1, 0, 5, 2, 1, 5, 3, 2, 5, 0, 3,
	}
)

// A closed fan around vertex 1; collapsing (0,1) flips face (1,2,4).
var (
	flipCoords = []float64{
		4, 0, 0,
		0, 0, 0,
		1, 1, 0,
		-1, -1, 0,
		-1, 2, 0,
	}
	fanFaces = []int{1, 0, 2, 1, 2, 4, 1, 4, 3, 1, 3, 0}
)

// Same fan with vertex 0 on the line through 2 and 4; collapsing (0,1) flattens face (1,2,4).
var flatCoords = []float64{
	3, 0, 0,
	0, 0, 0,
	1, 1, 0,
	-1, -1, 0,
	-1, 2, 0,
}

// Vertices 1 and 3 are both joined to 0, but (0,1) has no face with 3.
var (
	dupCoords = []float64{
		3, 0, 0,
		0, 0, 0,
		1, 1, 0,
		-1, 2, 0,
	}
	dupFaces = []int{1, 0, 2, 1, 2, 3, 0, 3, 2}
)

var (
	triCoords = []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}
	triFaces  = []int{0, 1, 2}
)

func strict() Options {
	return Options{PrintNonManifoldEdges: true}
}

func tolerant() Options {
	return Options{SupportNonManifoldEdges: true, PrintNonManifoldEdges: true}
}

func mustTrimesh(t testing.TB, coords []float64, faces []int, opts Options) *Trimesh {
	t.Helper()
	m, err := NewTrimesh(coords, faces, opts)
	if err != nil {
		t.Fatalf("NewTrimesh: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("fresh mesh: %v", err)
	}
	return m
}

func mustEdge(t testing.TB, m *Trimesh, v0, v1 int) int {
	t.Helper()
	eid := m.EdgeID(v0, v1)
	if eid == InvalidID {
		t.Fatalf("no edge (%d, %d)", v0, v1)
	}
	return eid
}

// cloneState deep-copies every table of m, keeping nil rows nil.
func cloneState(m *Trimesh) *Trimesh {
	cloneRows := func(t [][]int) [][]int {
		if t == nil {
			return nil
		}
		out := make([][]int, len(t))
		for i, row := range t {
			out[i] = slices.Clone(row)
		}
		return out
	}
	return &Trimesh{
		opts:        m.opts,
		data:        m.data,
		verts:       slices.Clone(m.verts),
		edges:       slices.Clone(m.edges),
		faces:       slices.Clone(m.faces),
		vData:       slices.Clone(m.vData),
		eData:       slices.Clone(m.eData),
		fData:       slices.Clone(m.fData),
		vNormals:    slices.Clone(m.vNormals),
		fNormals:    slices.Clone(m.fNormals),
		v2v:         cloneRows(m.v2v),
		v2e:         cloneRows(m.v2e),
		v2f:         cloneRows(m.v2f),
		e2f:         cloneRows(m.e2f),
		f2e:         cloneRows(m.f2e),
		f2f:         cloneRows(m.f2f),
		bbox:        m.bbox,
		nonManifold: slices.Clone(m.nonManifold),
		generation:  m.generation,
	}
}
