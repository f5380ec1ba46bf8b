package mesh

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/trimesh/engine/core"
	"github.com/spaghettifunk/trimesh/engine/math"
)

// collapsePlan is the read-only description of one edge collapse.
type collapsePlan struct {
	eid   int
	vKeep int
	vRem  int
	// fRem holds the faces incident to eid; they disappear with it.
	fRem []int
	// eTake[i] is the side of fRem[i] opposite vRem. It survives and inherits the faces of
	// eGive[i], the side opposite vKeep, which is deleted.
	eTake []int
	eGive []int
	// eRemove is eid followed by every eGive.
	eRemove []int
}

// CollapseEdge merges the second endpoint of eid into the first, deleting eid and its incident
// faces. On success the surviving elements may be renumbered and the normals of the touched
// region are refreshed; the bounding box is not.
//
// A rejected collapse returns a *CollapseError whose reason is ErrDuplicateEdge,
// ErrDegenerateFace, ErrFaceInversion or ErrNonManifoldEdge, and m is left exactly as it was.
func (m *Mesh[V, E, F]) CollapseEdge(eid int) error {
	clock := core.NewClock()
	clock.Start()

	p, rej := m.planCollapse(eid)
	if rej == nil {
		rej = m.checkCollapse(p)
	}
	if rej != nil {
		m.opts.Logger.LogDebug("%s", rej.Error())
		return rej
	}

	m.executeCollapse(p)
	m.generation++

	assert("topology is consistent after collapse", func() bool {
		return m.Validate() == nil
	})

	clock.Stop()
	m.opts.Metrics.Record("collapse", clock.Elapsed())
	return nil
}

func (m *Mesh[V, E, F]) planCollapse(eid int) (*collapsePlan, *CollapseError) {
	if eid < 0 || eid >= m.NumEdges() {
		return nil, rejectCollapse(ErrInvalidIndex, eid, eid)
	}

	p := &collapsePlan{
		eid:   eid,
		vKeep: m.edges[2*eid],
		vRem:  m.edges[2*eid+1],
		fRem:  slices.Clone(m.e2f[eid]),
	}
	if n := len(p.fRem); n == 0 || n > 2 {
		return nil, rejectCollapse(ErrNonManifoldEdge, eid, eid)
	}

	p.eRemove = []int{eid}
	for _, fid := range p.fRem {
		take := m.EdgeOppositeTo(fid, p.vRem)
		give := m.EdgeOppositeTo(fid, p.vKeep)
		assert("removed face has both flanking edges", func() bool {
			return take != InvalidID && give != InvalidID
		})
		if take == InvalidID || give == InvalidID {
			return nil, rejectCollapse(ErrCorruptTopology, eid, fid)
		}
		p.eTake = append(p.eTake, take)
		p.eGive = append(p.eGive, give)
		p.eRemove = append(p.eRemove, give)
	}

	// Two faces over the same three vertices would leave their kept side without faces.
	if len(p.eTake) == 2 && p.eTake[0] == p.eTake[1] {
		return nil, rejectCollapse(ErrNonManifoldEdge, eid, p.eTake[0])
	}
	return p, nil
}

// checkCollapse runs every rejection rule. It never writes to m.
func (m *Mesh[V, E, F]) checkCollapse(p *collapsePlan) *CollapseError {
	// Edges of vRem that survive must not land on an existing edge of vKeep.
	for _, e := range m.v2e[p.vRem] {
		if slices.Contains(p.eRemove, e) {
			continue
		}
		if w := m.EdgeOtherVert(e, p.vRem); m.VertsAreAdjacent(p.vKeep, w) {
			return rejectCollapse(ErrDuplicateEdge, p.eid, e)
		}
	}

	// Faces of vRem that survive must stay non-degenerate and keep their orientation.
	for _, f := range m.v2f[p.vRem] {
		if slices.Contains(p.fRem, f) {
			continue
		}
		var before, after [3]math.Vec3
		for i := 0; i < 3; i++ {
			vid := m.faces[3*f+i]
			before[i] = m.verts[vid]
			if vid == p.vRem {
				vid = p.vKeep
			}
			after[i] = m.verts[vid]
		}
		nAfter := math.TriangleCross(after[0], after[1], after[2])
		if nAfter.LengthSquared() == 0 {
			return rejectCollapse(ErrDegenerateFace, p.eid, f)
		}
		nBefore := math.TriangleCross(before[0], before[1], before[2])
		if nAfter.Dot(nBefore) < 0 {
			return rejectCollapse(ErrFaceInversion, p.eid, f)
		}
	}

	// In strict mode every kept side must end up with 1 or 2 faces.
	if !m.opts.SupportNonManifoldEdges {
		for i, take := range p.eTake {
			n := len(without(m.e2f[take], p.fRem)) + len(without(m.e2f[p.eGive[i]], p.fRem))
			if !edgeFaceCountOK(n) {
				return rejectCollapse(ErrNonManifoldEdge, p.eid, take)
			}
		}
	}
	return nil
}

func (m *Mesh[V, E, F]) executeCollapse(p *collapsePlan) {
	vKeep, vRem := p.vKeep, p.vRem

	// Unlink the removed faces from every table.
	for _, f := range p.fRem {
		for i := 0; i < 3; i++ {
			vid := m.faces[3*f+i]
			m.v2f[vid] = removeValue(m.v2f[vid], f)
		}
		for _, e := range m.f2e[f] {
			m.e2f[e] = removeValue(m.e2f[e], f)
		}
		for _, g := range m.f2f[f] {
			m.f2f[g] = removeValue(m.f2f[g], f)
		}
		m.f2e[f] = nil
		m.f2f[f] = nil
	}

	// Faces beyond each deleted side now border the kept side.
	for i, take := range p.eTake {
		give := p.eGive[i]
		for _, g := range m.e2f[give] {
			replaceValue(m.f2e[g], give, take)
			for _, h := range m.e2f[take] {
				if h == g {
					continue
				}
				m.f2f[h] = addUnique(m.f2f[h], g)
				m.f2f[g] = addUnique(m.f2f[g], h)
			}
			m.e2f[take] = append(m.e2f[take], g)
		}
		m.e2f[give] = nil
		m.eData[take] = m.eData[take].Merge(m.eData[give])
	}

	for _, e := range p.eRemove {
		for i := 0; i < 2; i++ {
			vid := m.edges[2*e+i]
			m.v2e[vid] = removeValue(m.v2e[vid], e)
		}
		m.e2f[e] = nil
		m.nonManifold = removeValue(m.nonManifold, e)
	}
	for _, take := range p.eTake {
		m.recordEdgeFaceCount(take)
	}

	// Hand everything still attached to vRem over to vKeep.
	for _, w := range m.v2v[vRem] {
		m.v2v[w] = removeValue(m.v2v[w], vRem)
		if w != vKeep && !slices.Contains(m.v2v[vKeep], w) {
			m.v2v[w] = append(m.v2v[w], vKeep)
			m.v2v[vKeep] = append(m.v2v[vKeep], w)
		}
	}
	for _, e := range m.v2e[vRem] {
		replaceValue(m.edges[2*e:2*e+2], vRem, vKeep)
		m.v2e[vKeep] = append(m.v2e[vKeep], e)
	}
	for _, f := range m.v2f[vRem] {
		replaceValue(m.faces[3*f:3*f+3], vRem, vKeep)
		m.v2f[vKeep] = append(m.v2f[vKeep], f)
	}
	m.v2v[vRem] = nil
	m.v2e[vRem] = nil
	m.v2f[vRem] = nil
	m.vData[vKeep] = m.vData[vKeep].Merge(m.vData[vRem])

	// Compaction moves the last vertex into vRem's slot.
	lastVert := m.NumVerts() - 1
	m.compactVertex(vRem)
	if vKeep == lastVert {
		vKeep = vRem
	}
	for _, e := range sortedDesc(p.eRemove) {
		m.compactEdge(e)
	}
	for _, f := range sortedDesc(p.fRem) {
		m.compactFace(f)
	}

	for _, f := range m.v2f[vKeep] {
		m.updateFaceNormal(f)
	}
	m.updateVertNormal(vKeep)
	for _, w := range m.v2v[vKeep] {
		m.updateVertNormal(w)
	}
}

// CollapseShortestEdges collapses up to n edges, each time picking the shortest edge that
// passes every rejection rule. It returns the number of collapses done and wraps
// ErrNothingCollapsed when it ran out of candidates first.
func (m *Mesh[V, E, F]) CollapseShortestEdges(n int) (int, error) {
	done := 0
	for done < n {
		collapsed := false
		for _, eid := range m.edgesByLength() {
			err := m.CollapseEdge(eid)
			if err == nil {
				collapsed = true
				break
			}
			var ce *CollapseError
			if !errors.As(err, &ce) {
				return done, err
			}
		}
		if !collapsed {
			return done, fmt.Errorf("%w after %d of %d collapses", ErrNothingCollapsed, done, n)
		}
		done++
	}
	return done, nil
}

// edgesByLength returns every edge id, shortest first, ties broken by id.
func (m *Mesh[V, E, F]) edgesByLength() []int {
	ne := m.NumEdges()
	lengths := make([]float64, ne)
	order := make([]int, ne)
	for eid := 0; eid < ne; eid++ {
		lengths[eid] = m.EdgeLength(eid)
		order[eid] = eid
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case lengths[a] < lengths[b]:
			return -1
		case lengths[a] > lengths[b]:
			return 1
		}
		return a - b
	})
	return order
}
