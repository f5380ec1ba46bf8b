package mesh

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/exp/slices"
)

func TestCubeAdjacency(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())

	if m.NumVerts() != 8 || m.NumFaces() != 12 || m.NumEdges() != 18 {
		t.Fatalf("cube has %d verts, %d faces, %d edges; want 8, 12, 18", m.NumVerts(), m.NumFaces(), m.NumEdges())
	}
	for eid := 0; eid < m.NumEdges(); eid++ {
		if n := len(m.AdjE2F(eid)); n != 2 {
			t.Errorf("edge %d has %d faces, want 2", eid, n)
		}
	}
	if !m.IsManifold() {
		t.Error("cube should be manifold")
	}
	if b := m.BoundaryEdges(); len(b) != 0 {
		t.Errorf("cube has boundary edges %v", b)
	}
	if n := m.NumComponents(); n != 1 {
		t.Errorf("cube has %d components, want 1", n)
	}
}

func TestAdjacencyInvariants(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		faces  []int
	}{
		{"cube", cubeCoords, cubeFaces},
		{"octahedron", octaCoords, octaFaces},
		{"fan", flipCoords, fanFaces},
		{"open strip", dupCoords, dupFaces},
		{"triangle", triCoords, triFaces},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustTrimesh(t, tt.coords, tt.faces, strict())

			for fid := 0; fid < m.NumFaces(); fid++ {
				if n := len(m.f2e[fid]); n != 3 {
					t.Errorf("face %d has %d edges", fid, n)
				}
				for _, nbr := range m.f2f[fid] {
					if !slices.Contains(m.f2f[nbr], fid) {
						t.Errorf("f2f not symmetric between %d and %d", fid, nbr)
					}
				}
			}
			for vid := 0; vid < m.NumVerts(); vid++ {
				for _, w := range m.v2v[vid] {
					if !slices.Contains(m.v2v[w], vid) {
						t.Errorf("v2v not symmetric between %d and %d", vid, w)
					}
				}
			}
			for eid := 0; eid < m.NumEdges(); eid++ {
				count := 0
				for fid := 0; fid < m.NumFaces(); fid++ {
					if slices.Contains(m.f2e[fid], eid) {
						count++
					}
				}
				if count != len(m.e2f[eid]) {
					t.Errorf("edge %d: |e2f| = %d but %d faces list it", eid, len(m.e2f[eid]), count)
				}
			}
		})
	}
}

func TestAdjacencyIsDeterministic(t *testing.T) {
	m := mustTrimesh(t, octaCoords, octaFaces, strict())
	before := cloneState(m)

	if err := m.UpdateAdjacency(); err != nil {
		t.Fatal(err)
	}
	tables := []struct {
		name      string
		got, want interface{}
	}{
		{"edges", m.edges, before.edges},
		{"v2v", m.v2v, before.v2v},
		{"v2e", m.v2e, before.v2e},
		{"v2f", m.v2f, before.v2f},
		{"e2f", m.e2f, before.e2f},
		{"f2e", m.f2e, before.f2e},
		{"f2f", m.f2f, before.f2f},
	}
	for _, tt := range tables {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s differs after rebuild:\n got %v\nwant %v", tt.name, tt.got, tt.want)
		}
	}

	other := mustTrimesh(t, octaCoords, octaFaces, strict())
	if !reflect.DeepEqual(other.edges, m.edges) {
		t.Errorf("two builds disagree on edge ids: %v vs %v", other.edges, m.edges)
	}
}

func TestEdgeIDsFollowCanonicalOrder(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	prev := edgeKey{-1, -1}
	for eid := 0; eid < m.NumEdges(); eid++ {
		v0, v1 := m.EdgeVertID(eid, 0), m.EdgeVertID(eid, 1)
		if v0 >= v1 {
			t.Fatalf("edge %d stored as (%d, %d), want min first", eid, v0, v1)
		}
		key := edgeKey{v0, v1}
		if edgeKeyComparator(prev, key) >= 0 {
			t.Fatalf("edge %d (%d, %d) does not follow (%d, %d)", eid, v0, v1, prev.v0, prev.v1)
		}
		prev = key
	}
	if got := m.EdgeID(0, 1); got != 0 {
		t.Errorf("EdgeID(0, 1) = %d, want 0", got)
	}
}

func TestNewRejectsMalformedBuffers(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		faces  []int
		want   error
	}{
		{"coords not a multiple of 3", []float64{0, 0, 0, 1}, nil, ErrMalformedBuffer},
		{"faces not a multiple of 3", triCoords, []int{0, 1}, ErrMalformedBuffer},
		{"index past the end", triCoords, []int{0, 1, 3}, ErrInvalidIndex},
		{"negative index", triCoords, []int{0, -1, 2}, ErrInvalidIndex},
		{"repeated vertex", triCoords, []int{0, 1, 1}, ErrInvalidFace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTrimesh(tt.coords, tt.faces, strict())
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewTrimesh error = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Fatal("NewTrimesh returned a mesh along with an error")
			}
		})
	}
}

// Three faces hinged on edge (0,1).
var (
	bookCoords = []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, -1, 0,
		0, 0, 1,
	}
	bookFaces = []int{0, 1, 2, 1, 0, 3, 0, 1, 4}
)

func TestNonManifoldEdgeStrict(t *testing.T) {
	_, err := NewTrimesh(bookCoords, bookFaces, strict())
	if !errors.Is(err, ErrNonManifoldEdge) {
		t.Fatalf("strict build error = %v, want ErrNonManifoldEdge", err)
	}

	m := mustTrimesh(t, triCoords, triFaces, strict())
	if err := m.Init(bookCoords, bookFaces); !errors.Is(err, ErrNonManifoldEdge) {
		t.Fatalf("Init error = %v, want ErrNonManifoldEdge", err)
	}
	if m.NumVerts() != 0 || m.NumFaces() != 0 || m.NumEdges() != 0 {
		t.Fatalf("failed Init left %d verts, %d faces, %d edges", m.NumVerts(), m.NumFaces(), m.NumEdges())
	}
}

func TestNonManifoldEdgeTolerant(t *testing.T) {
	m := mustTrimesh(t, bookCoords, bookFaces, tolerant())

	hinge := m.EdgeID(0, 1)
	if got := m.NonManifoldEdges(); !reflect.DeepEqual(got, []int{hinge}) {
		t.Fatalf("NonManifoldEdges() = %v, want [%d]", got, hinge)
	}
	if n := len(m.AdjE2F(hinge)); n != 3 {
		t.Fatalf("hinge has %d faces, want 3", n)
	}
	if m.IsManifold() || m.EdgeIsManifold(hinge) {
		t.Fatal("book mesh reported as manifold")
	}
	for _, fid := range m.AdjE2F(hinge) {
		if n := len(m.AdjF2F(fid)); n != 2 {
			t.Errorf("face %d has %d neighbours, want 2", fid, n)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	m := mustTrimesh(t, cubeCoords, cubeFaces, strict())
	m.f2f[0] = append(m.f2f[0], 11)
	if err := m.Validate(); !errors.Is(err, ErrCorruptTopology) {
		t.Fatalf("Validate() = %v, want ErrCorruptTopology", err)
	}

	book := mustTrimesh(t, bookCoords, bookFaces, tolerant())
	book.nonManifold = nil
	if err := book.Validate(); !errors.Is(err, ErrCorruptTopology) {
		t.Fatalf("Validate() with an empty record = %v, want ErrCorruptTopology", err)
	}
}
