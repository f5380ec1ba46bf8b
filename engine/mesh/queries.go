package mesh

import (
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/trimesh/engine/math"
)

func (m *Mesh[V, E, F]) Vert(vid int) math.Vec3 {
	return m.verts[vid]
}

// SetVert moves vertex vid. Normals and bounding box are not refreshed.
func (m *Mesh[V, E, F]) SetVert(vid int, pos math.Vec3) {
	m.verts[vid] = pos
}

// FaceVertID returns the vertex at position off (0, 1 or 2) of face fid.
func (m *Mesh[V, E, F]) FaceVertID(fid, off int) int {
	return m.faces[3*fid+off]
}

func (m *Mesh[V, E, F]) FaceVert(fid, off int) math.Vec3 {
	return m.verts[m.faces[3*fid+off]]
}

// EdgeVertID returns endpoint off (0 or 1) of edge eid.
func (m *Mesh[V, E, F]) EdgeVertID(eid, off int) int {
	return m.edges[2*eid+off]
}

func (m *Mesh[V, E, F]) EdgeVert(eid, off int) math.Vec3 {
	return m.verts[m.edges[2*eid+off]]
}

// The adjacency accessors return copies; the mesh tables are never exposed.

func (m *Mesh[V, E, F]) AdjV2V(vid int) []int { return slices.Clone(m.v2v[vid]) }
func (m *Mesh[V, E, F]) AdjV2E(vid int) []int { return slices.Clone(m.v2e[vid]) }
func (m *Mesh[V, E, F]) AdjV2F(vid int) []int { return slices.Clone(m.v2f[vid]) }
func (m *Mesh[V, E, F]) AdjE2F(eid int) []int { return slices.Clone(m.e2f[eid]) }
func (m *Mesh[V, E, F]) AdjF2E(fid int) []int { return slices.Clone(m.f2e[fid]) }
func (m *Mesh[V, E, F]) AdjF2F(fid int) []int { return slices.Clone(m.f2f[fid]) }

// EdgeContainsVert reports whether vid is an endpoint of eid.
func (m *Mesh[V, E, F]) EdgeContainsVert(eid, vid int) bool {
	return m.edges[2*eid] == vid || m.edges[2*eid+1] == vid
}

// EdgeOtherVert returns the endpoint of eid that is not vid.
func (m *Mesh[V, E, F]) EdgeOtherVert(eid, vid int) int {
	if m.edges[2*eid] == vid {
		return m.edges[2*eid+1]
	}
	return m.edges[2*eid]
}

// EdgeOppositeTo returns the edge of face fid that does not touch vid, or InvalidID when vid
// is not a vertex of fid.
func (m *Mesh[V, E, F]) EdgeOppositeTo(fid, vid int) int {
	if !m.FaceContainsVert(fid, vid) {
		return InvalidID
	}
	for _, eid := range m.f2e[fid] {
		if !m.EdgeContainsVert(eid, vid) {
			return eid
		}
	}
	return InvalidID
}

func (m *Mesh[V, E, F]) EdgeIsManifold(eid int) bool {
	return len(m.e2f[eid]) <= 2
}

func (m *Mesh[V, E, F]) EdgeIsBoundary(eid int) bool {
	return len(m.e2f[eid]) < 2
}

// EdgesShareFace reports whether e0 and e1 are sides of a common face.
func (m *Mesh[V, E, F]) EdgesShareFace(e0, e1 int) bool {
	for _, f := range m.e2f[e0] {
		if slices.Contains(m.e2f[e1], f) {
			return true
		}
	}
	return false
}

// EdgeShared returns the edge shared by faces f0 and f1, or InvalidID.
func (m *Mesh[V, E, F]) EdgeShared(f0, f1 int) int {
	for _, eid := range m.f2e[f0] {
		if slices.Contains(m.f2e[f1], eid) {
			return eid
		}
	}
	return InvalidID
}

// EdgeID returns the edge joining v0 and v1 in either order, or InvalidID.
func (m *Mesh[V, E, F]) EdgeID(v0, v1 int) int {
	for _, eid := range m.v2e[v0] {
		if m.EdgeContainsVert(eid, v1) {
			return eid
		}
	}
	return InvalidID
}

func (m *Mesh[V, E, F]) VertsAreAdjacent(v0, v1 int) bool {
	return slices.Contains(m.v2v[v0], v1)
}

func (m *Mesh[V, E, F]) FaceContainsVert(fid, vid int) bool {
	return slices.Contains(m.faces[3*fid:3*fid+3], vid)
}

func (m *Mesh[V, E, F]) EdgeLength(eid int) float64 {
	return m.EdgeVert(eid, 0).Distance(m.EdgeVert(eid, 1))
}

// EdgeAvgLength returns 0 for a mesh without edges.
func (m *Mesh[V, E, F]) EdgeAvgLength() float64 {
	ne := m.NumEdges()
	if ne == 0 {
		return 0
	}
	sum := 0.0
	for eid := 0; eid < ne; eid++ {
		sum += m.EdgeLength(eid)
	}
	return sum / float64(ne)
}

func (m *Mesh[V, E, F]) EdgeMaxLength() float64 {
	longest := 0.0
	for eid := 0; eid < m.NumEdges(); eid++ {
		if l := m.EdgeLength(eid); l > longest {
			longest = l
		}
	}
	return longest
}

// EdgeMinLength returns 0 for a mesh without edges.
func (m *Mesh[V, E, F]) EdgeMinLength() float64 {
	if m.NumEdges() == 0 {
		return 0
	}
	shortest := m.EdgeLength(0)
	for eid := 1; eid < m.NumEdges(); eid++ {
		if l := m.EdgeLength(eid); l < shortest {
			shortest = l
		}
	}
	return shortest
}

// BoundaryEdges lists the edges with fewer than two incident faces, in id order.
func (m *Mesh[V, E, F]) BoundaryEdges() []int {
	var out []int
	for eid := range m.e2f {
		if m.EdgeIsBoundary(eid) {
			out = append(out, eid)
		}
	}
	return out
}

func (m *Mesh[V, E, F]) FaceCentroid(fid int) math.Vec3 {
	return math.TriangleCentroid(m.FaceVert(fid, 0), m.FaceVert(fid, 1), m.FaceVert(fid, 2))
}

// Barycenter is the average vertex position, or the origin for an empty mesh.
func (m *Mesh[V, E, F]) Barycenter() math.Vec3 {
	bary := math.NewVec3Zero()
	if len(m.verts) == 0 {
		return bary
	}
	for _, p := range m.verts {
		bary = bary.Add(p)
	}
	return bary.DivScalar(float64(len(m.verts)))
}
