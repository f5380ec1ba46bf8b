package mesh

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// edgeFaceCountOK reports whether an edge with n incident faces is manifold:
// 1 for a boundary edge, 2 for an interior one.
func edgeFaceCountOK(n int) bool {
	return n == 1 || n == 2
}

// NonManifoldEdges returns, in increasing order, the edges with 0 or more than 2 incident faces
// recorded in tolerant mode. The record follows collapses and compaction.
func (m *Mesh[V, E, F]) NonManifoldEdges() []int {
	out := slices.Clone(m.nonManifold)
	slices.Sort(out)
	return out
}

// recordEdgeFaceCount adds eid to or drops it from the non-manifold record after its face count
// changed.
func (m *Mesh[V, E, F]) recordEdgeFaceCount(eid int) {
	if edgeFaceCountOK(len(m.e2f[eid])) {
		m.nonManifold = removeValue(m.nonManifold, eid)
		return
	}
	if slices.Contains(m.nonManifold, eid) {
		return
	}
	m.nonManifold = append(m.nonManifold, eid)
	if m.opts.PrintNonManifoldEdges {
		m.opts.Logger.LogWarn("edge %d (%d, %d) now has %d incident faces",
			eid, m.edges[2*eid], m.edges[2*eid+1], len(m.e2f[eid]))
	}
}

func (m *Mesh[V, E, F]) countManifoldEdges() int {
	n := 0
	for eid := range m.e2f {
		if edgeFaceCountOK(len(m.e2f[eid])) {
			n++
		}
	}
	return n
}

// IsManifold reports whether every edge has one or two incident faces.
func (m *Mesh[V, E, F]) IsManifold() bool {
	for eid := range m.e2f {
		if !edgeFaceCountOK(len(m.e2f[eid])) {
			return false
		}
	}
	return true
}

// Validate checks every structural invariant of m and returns the first violation wrapped in
// ErrCorruptTopology. It is O(V+E+F) and meant for tests and debug builds.
func (m *Mesh[V, E, F]) Validate() error {
	nv, ne, nf := m.NumVerts(), m.NumEdges(), m.NumFaces()
	corrupt := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrCorruptTopology, fmt.Sprintf(format, args...))
	}

	if len(m.vData) != nv || len(m.vNormals) != nv || len(m.v2v) != nv || len(m.v2e) != nv || len(m.v2f) != nv {
		return corrupt("vertex tables do not match %d vertices", nv)
	}
	if len(m.eData) != ne || len(m.e2f) != ne {
		return corrupt("edge tables do not match %d edges", ne)
	}
	if len(m.fData) != nf || len(m.fNormals) != nf || len(m.f2e) != nf || len(m.f2f) != nf {
		return corrupt("face tables do not match %d faces", nf)
	}

	keys := make(map[edgeKey]int, ne)
	for eid := 0; eid < ne; eid++ {
		a, b := m.edges[2*eid], m.edges[2*eid+1]
		if a < 0 || a >= nv || b < 0 || b >= nv || a == b {
			return corrupt("edge %d has endpoints (%d, %d)", eid, a, b)
		}
		k := newEdgeKey(a, b)
		if other, dup := keys[k]; dup {
			return corrupt("edges %d and %d both join (%d, %d)", other, eid, a, b)
		}
		keys[k] = eid
		if !slices.Contains(m.v2e[a], eid) || !slices.Contains(m.v2e[b], eid) {
			return corrupt("edge %d missing from v2e of its endpoints", eid)
		}
		if !slices.Contains(m.v2v[a], b) {
			return corrupt("edge %d endpoints not in v2v", eid)
		}
		if !m.opts.SupportNonManifoldEdges && !edgeFaceCountOK(len(m.e2f[eid])) {
			return corrupt("edge %d has %d incident faces in strict mode", eid, len(m.e2f[eid]))
		}
		for _, fid := range m.e2f[eid] {
			if fid < 0 || fid >= nf || !slices.Contains(m.f2e[fid], eid) {
				return corrupt("edge %d lists face %d which does not list it back", eid, fid)
			}
		}
	}

	recorded := 0
	for _, eid := range m.nonManifold {
		if eid < 0 || eid >= ne || edgeFaceCountOK(len(m.e2f[eid])) {
			return corrupt("non-manifold record lists edge %d", eid)
		}
		recorded++
	}
	if bad := len(m.e2f) - m.countManifoldEdges(); m.opts.SupportNonManifoldEdges && bad != recorded {
		return corrupt("%d non-manifold edges but %d recorded", bad, recorded)
	}

	for fid := 0; fid < nf; fid++ {
		fv := m.faces[3*fid : 3*fid+3]
		if fv[0] == fv[1] || fv[1] == fv[2] || fv[0] == fv[2] {
			return corrupt("face %d repeats a vertex", fid)
		}
		for _, vid := range fv {
			if vid < 0 || vid >= nv || !slices.Contains(m.v2f[vid], fid) {
				return corrupt("face %d vertex %d missing from v2f", fid, vid)
			}
		}
		if len(m.f2e[fid]) != 3 {
			return corrupt("face %d has %d edges", fid, len(m.f2e[fid]))
		}
		for _, eid := range m.f2e[fid] {
			if eid < 0 || eid >= ne {
				return corrupt("face %d references edge %d", fid, eid)
			}
			a, b := m.edges[2*eid], m.edges[2*eid+1]
			if !slices.Contains(fv, a) || !slices.Contains(fv, b) {
				return corrupt("face %d edge %d (%d, %d) is not one of its sides", fid, eid, a, b)
			}
			if !slices.Contains(m.e2f[eid], fid) {
				return corrupt("face %d lists edge %d which does not list it back", fid, eid)
			}
		}
		for _, nbr := range m.f2f[fid] {
			if nbr < 0 || nbr >= nf || nbr == fid || !slices.Contains(m.f2f[nbr], fid) {
				return corrupt("f2f of face %d is not symmetric at %d", fid, nbr)
			}
		}
	}

	for vid := 0; vid < nv; vid++ {
		for _, w := range m.v2v[vid] {
			if w < 0 || w >= nv || w == vid || !slices.Contains(m.v2v[w], vid) {
				return corrupt("v2v of vertex %d is not symmetric at %d", vid, w)
			}
			if _, ok := keys[newEdgeKey(vid, w)]; !ok {
				return corrupt("vertices %d and %d adjacent without an edge", vid, w)
			}
		}
		for _, eid := range m.v2e[vid] {
			if eid < 0 || eid >= ne || (m.edges[2*eid] != vid && m.edges[2*eid+1] != vid) {
				return corrupt("v2e of vertex %d lists edge %d", vid, eid)
			}
		}
		for _, fid := range m.v2f[vid] {
			if fid < 0 || fid >= nf || !slices.Contains(m.faces[3*fid:3*fid+3], vid) {
				return corrupt("v2f of vertex %d lists face %d", vid, fid)
			}
		}
	}
	return nil
}
