package mesh

import (
	stdmath "math"

	"github.com/spaghettifunk/trimesh/engine/math"
)

// normalizeAreaMin is the smallest area NormalizeArea divides by.
const normalizeAreaMin = 1e-4

// Translate moves every vertex by delta and refreshes the bounding box.
func (m *Mesh[V, E, F]) Translate(delta math.Vec3) {
	for vid := range m.verts {
		m.verts[vid] = m.verts[vid].Add(delta)
	}
	m.UpdateBBox()
}

// Rotate turns the mesh around axis by angle radians about its barycenter, then refreshes
// normals and bounding box.
func (m *Mesh[V, E, F]) Rotate(axis math.Vec3, angle float64) {
	center := m.Barycenter()
	for vid := range m.verts {
		m.verts[vid] = m.verts[vid].Sub(center).Rotate(axis, angle).Add(center)
	}
	m.UpdateNormals()
	m.UpdateBBox()
}

// Scale multiplies every coordinate by factor, about the origin, and refreshes the bounding box.
func (m *Mesh[V, E, F]) Scale(factor float64) {
	for vid := range m.verts {
		m.verts[vid] = m.verts[vid].MulScalar(factor)
	}
	m.UpdateBBox()
}

// NormalizeArea scales the mesh about the origin so that its total area becomes 1. Areas below
// 1e-4 count as 1e-4, so a tiny mesh grows by at most 100 and never ends up with degenerate
// faces.
func (m *Mesh[V, E, F]) NormalizeArea() {
	area := stdmath.Max(m.Area(), normalizeAreaMin)
	m.Scale(1 / stdmath.Sqrt(area))
}

// CenterBBox moves the mesh so that its bounding box is centred on the origin.
func (m *Mesh[V, E, F]) CenterBBox() {
	m.UpdateBBox()
	m.Translate(m.bbox.Center().MulScalar(-1))
}
