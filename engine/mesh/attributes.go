package mesh

import (
	"github.com/spaghettifunk/trimesh/engine/math"
)

// UpdateBBox recomputes the bounding box from the vertex positions.
// Edge collapse does not call it.
func (m *Mesh[V, E, F]) UpdateBBox() {
	bb := math.NewExtents3DEmpty()
	for _, p := range m.verts {
		bb = bb.Expand(p)
	}
	m.bbox = bb
}

func (m *Mesh[V, E, F]) BBox() math.Extents3D {
	return m.bbox
}

// UpdateNormals recomputes every face normal, then every vertex normal.
func (m *Mesh[V, E, F]) UpdateNormals() {
	m.UpdateFaceNormals()
	m.UpdateVertNormals()
}

func (m *Mesh[V, E, F]) UpdateFaceNormals() {
	m.fNormals = resizeVecs(m.fNormals, m.NumFaces())
	for fid := range m.fNormals {
		m.updateFaceNormal(fid)
	}
}

func (m *Mesh[V, E, F]) UpdateVertNormals() {
	m.vNormals = resizeVecs(m.vNormals, m.NumVerts())
	for vid := range m.vNormals {
		m.updateVertNormal(vid)
	}
}

// updateFaceNormal follows the authored vertex order. A degenerate face gets the zero vector.
func (m *Mesh[V, E, F]) updateFaceNormal(fid int) {
	m.fNormals[fid] = math.TriangleNormal(m.FaceVert(fid, 0), m.FaceVert(fid, 1), m.FaceVert(fid, 2))
}

// updateVertNormal averages the incident face normals without weights.
// An isolated vertex, or one whose face normals cancel out, gets the zero vector.
func (m *Mesh[V, E, F]) updateVertNormal(vid int) {
	sum := math.NewVec3Zero()
	for _, fid := range m.v2f[vid] {
		sum = sum.Add(m.fNormals[fid])
	}
	m.vNormals[vid] = sum.Normalized()
}

func resizeVecs(s []math.Vec3, n int) []math.Vec3 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]math.Vec3, n)
}

func (m *Mesh[V, E, F]) FaceNormal(fid int) math.Vec3 { return m.fNormals[fid] }
func (m *Mesh[V, E, F]) VertNormal(vid int) math.Vec3 { return m.vNormals[vid] }

// ElemMass returns the area of face fid.
func (m *Mesh[V, E, F]) ElemMass(fid int) float64 {
	return math.TriangleArea(m.FaceVert(fid, 0), m.FaceVert(fid, 1), m.FaceVert(fid, 2))
}

// Area returns the summed area of all faces.
func (m *Mesh[V, E, F]) Area() float64 {
	area := 0.0
	for fid := 0; fid < m.NumFaces(); fid++ {
		area += m.ElemMass(fid)
	}
	return area
}
