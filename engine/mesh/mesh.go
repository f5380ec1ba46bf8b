package mesh

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/trimesh/engine/core"
	"github.com/spaghettifunk/trimesh/engine/math"
)

// InvalidID marks a missing element, e.g. a face without the requested edge.
const InvalidID = -1

// Options configures manifoldness enforcement and diagnostics of a Mesh.
type Options struct {
	// SupportNonManifoldEdges switches from strict to tolerant mode: edges with 0 or more
	// than 2 incident faces are recorded instead of failing the build.
	SupportNonManifoldEdges bool
	// PrintNonManifoldEdges logs each non-manifold edge found while building.
	PrintNonManifoldEdges bool
	// Logger receives diagnostics. Nil discards them.
	Logger *core.Logger
	// Metrics receives timings of builds and collapses. Nil disables timing.
	Metrics *core.Metrics
}

// OptionsFromConfig maps the [manifold] configuration table onto mesh options.
func OptionsFromConfig(cfg core.ManifoldConfig, logger *core.Logger, metrics *core.Metrics) Options {
	return Options{
		SupportNonManifoldEdges: cfg.SupportNonManifoldEdges,
		PrintNonManifoldEdges:   cfg.PrintNonManifoldEdges,
		Logger:                  logger,
		Metrics:                 metrics,
	}
}

// MeshData identifies a mesh instance.
type MeshData struct {
	ID       uuid.UUID
	Name     string
	Filename string
}

// Mesh is an indexed triangle mesh with full adjacency.
//
// Vertices, edges and faces are addressed by dense ids in [0, count). Any mutating call may
// renumber elements (deletion moves the last element of a category into the freed slot), so
// ids must not be kept across mutations. Generation changes whenever that can happen.
//
// A Mesh is not safe for concurrent use.
type Mesh[V Payload[V], E Payload[E], F Payload[F]] struct {
	opts Options
	data MeshData

	verts []math.Vec3
	edges []int // 2 vertex ids per edge, derived
	faces []int // 3 vertex ids per face, authored order

	vData []V
	eData []E
	fData []F

	vNormals []math.Vec3
	fNormals []math.Vec3

	v2v [][]int
	v2e [][]int
	v2f [][]int
	e2f [][]int
	f2e [][]int
	f2f [][]int

	bbox        math.Extents3D
	nonManifold []int
	generation  uint64
}

// NewEmpty returns a mesh with no elements.
func NewEmpty[V Payload[V], E Payload[E], F Payload[F]](opts Options) *Mesh[V, E, F] {
	m := &Mesh[V, E, F]{opts: opts}
	m.Clear()
	return m
}

// New builds a mesh from a flat coordinate buffer (3 values per vertex) and a flat face buffer
// (3 vertex ids per face), then computes adjacency, bounding box and normals.
func New[V Payload[V], E Payload[E], F Payload[F]](coords []float64, faces []int, opts Options) (*Mesh[V, E, F], error) {
	m := NewEmpty[V, E, F](opts)
	if err := m.Init(coords, faces); err != nil {
		return nil, err
	}
	return m, nil
}

// Init replaces the content of m with the given buffers. On error m is left empty.
func (m *Mesh[V, E, F]) Init(coords []float64, faces []int) error {
	if err := checkBuffers(coords, faces); err != nil {
		m.Clear()
		return err
	}

	data := m.data
	m.Clear()
	m.data = data

	nv := len(coords) / 3
	m.verts = make([]math.Vec3, nv)
	for vid := range m.verts {
		m.verts[vid] = math.NewVec3FromSlice(coords, vid)
	}
	m.faces = append(make([]int, 0, len(faces)), faces...)

	m.vData = fill[V](nv)
	m.fData = fill[F](len(faces) / 3)

	if err := m.UpdateAdjacency(); err != nil {
		m.Clear()
		m.data = data
		return err
	}
	m.UpdateBBox()
	m.UpdateNormals()

	m.opts.Logger.LogDebug("mesh %s ready: %d verts, %d edges, %d faces", m.label(), m.NumVerts(), m.NumEdges(), m.NumFaces())
	return nil
}

func checkBuffers(coords []float64, faces []int) error {
	if len(coords)%3 != 0 {
		return fmt.Errorf("%w: %d coordinates is not a multiple of 3", ErrMalformedBuffer, len(coords))
	}
	if len(faces)%3 != 0 {
		return fmt.Errorf("%w: %d face indices is not a multiple of 3", ErrMalformedBuffer, len(faces))
	}
	nv := len(coords) / 3
	for i := 0; i < len(faces); i += 3 {
		a, b, c := faces[i], faces[i+1], faces[i+2]
		for _, vid := range [3]int{a, b, c} {
			if vid < 0 || vid >= nv {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidIndex, i/3, vid, nv)
			}
		}
		if a == b || b == c || a == c {
			return fmt.Errorf("%w: face %d is (%d, %d, %d)", ErrInvalidFace, i/3, a, b, c)
		}
	}
	return nil
}

func fill[T Payload[T]](n int) []T {
	var zero T
	def := zero.Default()
	out := make([]T, n)
	for i := range out {
		out[i] = def
	}
	return out
}

// Clear drops every element, adjacency and attachment and gives m a fresh identity.
// Options are kept.
func (m *Mesh[V, E, F]) Clear() {
	m.data = MeshData{ID: uuid.New()}
	m.verts = nil
	m.edges = nil
	m.faces = nil
	m.vData = nil
	m.eData = nil
	m.fData = nil
	m.vNormals = nil
	m.fNormals = nil
	m.v2v = nil
	m.v2e = nil
	m.v2f = nil
	m.e2f = nil
	m.f2e = nil
	m.f2f = nil
	m.bbox = math.NewExtents3DEmpty()
	m.nonManifold = nil
	m.generation++
}

func (m *Mesh[V, E, F]) Options() Options {
	return m.opts
}

func (m *Mesh[V, E, F]) Data() MeshData {
	return m.data
}

// SetData replaces the identity of m. A nil ID is replaced by a fresh one.
func (m *Mesh[V, E, F]) SetData(d MeshData) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.data = d
}

// Generation increases on every call that may add, remove or renumber elements.
func (m *Mesh[V, E, F]) Generation() uint64 {
	return m.generation
}

func (m *Mesh[V, E, F]) label() string {
	if m.data.Name != "" {
		return m.data.Name
	}
	return m.data.ID.String()
}

func (m *Mesh[V, E, F]) NumVerts() int { return len(m.verts) }
func (m *Mesh[V, E, F]) NumEdges() int { return len(m.edges) / 2 }
func (m *Mesh[V, E, F]) NumFaces() int { return len(m.faces) / 3 }

// VectorCoords returns the flat coordinate buffer, 3 values per vertex.
func (m *Mesh[V, E, F]) VectorCoords() []float64 {
	out := make([]float64, 0, 3*len(m.verts))
	for _, p := range m.verts {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// FaceIndices returns the flat face buffer, 3 vertex ids per face.
func (m *Mesh[V, E, F]) FaceIndices() []int {
	return append([]int(nil), m.faces...)
}

// EdgeIndices returns the flat edge buffer, 2 vertex ids per edge.
func (m *Mesh[V, E, F]) EdgeIndices() []int {
	return append([]int(nil), m.edges...)
}

func (m *Mesh[V, E, F]) VertData(vid int) V       { return m.vData[vid] }
func (m *Mesh[V, E, F]) EdgeData(eid int) E       { return m.eData[eid] }
func (m *Mesh[V, E, F]) FaceData(fid int) F       { return m.fData[fid] }
func (m *Mesh[V, E, F]) SetVertData(vid int, d V) { m.vData[vid] = d }
func (m *Mesh[V, E, F]) SetEdgeData(eid int, d E) { m.eData[eid] = d }
func (m *Mesh[V, E, F]) SetFaceData(fid int, d F) { m.fData[fid] = d }
