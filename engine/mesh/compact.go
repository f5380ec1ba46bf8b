package mesh

import (
	"golang.org/x/exp/slices"
)

// The compaction primitives delete one element from a dense id space by moving the last
// element of that category into the freed slot and shrinking every parallel slice by one.
// References to the moved element are found through its own adjacency rows, so the cost is
// proportional to its degree, not to the mesh size.
//
// The element being deleted must already be detached: nothing may reference it and its own
// adjacency rows must be empty. After the call the previous last id no longer exists.

func (m *Mesh[V, E, F]) compactVertex(vid int) {
	assert("vertex to compact is detached", func() bool {
		return len(m.v2v[vid]) == 0 && len(m.v2e[vid]) == 0 && len(m.v2f[vid]) == 0
	})

	last := len(m.verts) - 1
	if vid != last {
		m.verts[vid] = m.verts[last]
		m.vData[vid] = m.vData[last]
		m.vNormals[vid] = m.vNormals[last]
		m.v2v[vid] = m.v2v[last]
		m.v2e[vid] = m.v2e[last]
		m.v2f[vid] = m.v2f[last]

		for _, nbr := range m.v2v[vid] {
			replaceValue(m.v2v[nbr], last, vid)
		}
		for _, eid := range m.v2e[vid] {
			replaceValue(m.edges[2*eid:2*eid+2], last, vid)
		}
		for _, fid := range m.v2f[vid] {
			replaceValue(m.faces[3*fid:3*fid+3], last, vid)
		}
	}

	m.verts = m.verts[:last]
	m.vData = m.vData[:last]
	m.vNormals = m.vNormals[:last]
	m.v2v = m.v2v[:last]
	m.v2e = m.v2e[:last]
	m.v2f = m.v2f[:last]
}

func (m *Mesh[V, E, F]) compactEdge(eid int) {
	assert("edge to compact is detached", func() bool {
		return len(m.e2f[eid]) == 0 && !slices.Contains(m.nonManifold, eid)
	})

	last := m.NumEdges() - 1
	if eid != last {
		m.edges[2*eid] = m.edges[2*last]
		m.edges[2*eid+1] = m.edges[2*last+1]
		m.eData[eid] = m.eData[last]
		m.e2f[eid] = m.e2f[last]

		for i := 0; i < 2; i++ {
			replaceValue(m.v2e[m.edges[2*eid+i]], last, eid)
		}
		for _, fid := range m.e2f[eid] {
			replaceValue(m.f2e[fid], last, eid)
		}
		replaceValue(m.nonManifold, last, eid)
	}

	m.edges = m.edges[:2*last]
	m.eData = m.eData[:last]
	m.e2f = m.e2f[:last]
}

func (m *Mesh[V, E, F]) compactFace(fid int) {
	assert("face to compact is detached", func() bool {
		return len(m.f2e[fid]) == 0 && len(m.f2f[fid]) == 0
	})

	last := m.NumFaces() - 1
	if fid != last {
		copy(m.faces[3*fid:3*fid+3], m.faces[3*last:3*last+3])
		m.fData[fid] = m.fData[last]
		m.fNormals[fid] = m.fNormals[last]
		m.f2e[fid] = m.f2e[last]
		m.f2f[fid] = m.f2f[last]

		for i := 0; i < 3; i++ {
			replaceValue(m.v2f[m.faces[3*fid+i]], last, fid)
		}
		for _, eid := range m.f2e[fid] {
			replaceValue(m.e2f[eid], last, fid)
		}
		for _, nbr := range m.f2f[fid] {
			replaceValue(m.f2f[nbr], last, fid)
		}
	}

	m.faces = m.faces[:3*last]
	m.fData = m.fData[:last]
	m.fNormals = m.fNormals[:last]
	m.f2e = m.f2e[:last]
	m.f2f = m.f2f[:last]
}

// RemoveUnreferencedVertices deletes every vertex without incident edges or faces and returns
// how many were removed. Remaining vertices may be renumbered.
func (m *Mesh[V, E, F]) RemoveUnreferencedVertices() int {
	removed := 0
	for vid := m.NumVerts() - 1; vid >= 0; vid-- {
		if len(m.v2e[vid]) == 0 && len(m.v2f[vid]) == 0 {
			m.compactVertex(vid)
			removed++
		}
	}
	if removed > 0 {
		m.generation++
		m.opts.Logger.LogDebug("removed %d unreferenced vertices from %s", removed, m.label())
	}
	return removed
}
