package mesh

import (
	"github.com/spaghettifunk/trimesh/engine/math"
)

// Topology is the read-only view of a mesh handed to geometric-query collaborators.
type Topology interface {
	NumVerts() int
	NumEdges() int
	NumFaces() int
	Vert(vid int) math.Vec3
	FaceVertID(fid, off int) int
	EdgeVertID(eid, off int) int
	AdjV2V(vid int) []int
	AdjV2E(vid int) []int
	AdjV2F(vid int) []int
	AdjE2F(eid int) []int
	AdjF2E(fid int) []int
	AdjF2F(fid int) []int
	EdgeID(v0, v1 int) int
	EdgeIsBoundary(eid int) bool
}

var (
	_ Topology = (*Trimesh)(nil)
	_ Topology = (*Topomesh)(nil)
)

// RenderData is a copy of everything a renderer needs. Changing it never affects the mesh.
type RenderData[V any, F any] struct {
	Positions   []math.Vec3
	VertNormals []math.Vec3
	FaceNormals []math.Vec3
	// Faces holds 3 vertex ids per face.
	Faces      []int
	VertData   []V
	FaceData   []F
	BBox       math.Extents3D
	Generation uint64
}

// Snapshot copies the current render state of m.
func (m *Mesh[V, E, F]) Snapshot() RenderData[V, F] {
	return RenderData[V, F]{
		Positions:   append([]math.Vec3(nil), m.verts...),
		VertNormals: append([]math.Vec3(nil), m.vNormals...),
		FaceNormals: append([]math.Vec3(nil), m.fNormals...),
		Faces:       append([]int(nil), m.faces...),
		VertData:    append([]V(nil), m.vData...),
		FaceData:    append([]F(nil), m.fData...),
		BBox:        m.bbox,
		Generation:  m.generation,
	}
}
