package mesh

// Append adds the elements of other to m as a disjoint union: every id coming from other is
// offset by the current counts of m, and no element of m is linked to one of other. Attachments,
// normals and non-manifold records travel with their elements. The bounding box is recomputed.
// other is not modified.
func (m *Mesh[V, E, F]) Append(other *Mesh[V, E, F]) {
	nv, ne, nf := m.NumVerts(), m.NumEdges(), m.NumFaces()

	m.verts = append(m.verts, other.verts...)
	m.vData = append(m.vData, other.vData...)
	m.vNormals = append(m.vNormals, other.vNormals...)
	m.eData = append(m.eData, other.eData...)
	m.fData = append(m.fData, other.fData...)
	m.fNormals = append(m.fNormals, other.fNormals...)

	m.edges = appendOffset(m.edges, other.edges, nv)
	m.faces = appendOffset(m.faces, other.faces, nv)

	m.v2v = appendTable(m.v2v, other.v2v, nv)
	m.v2e = appendTable(m.v2e, other.v2e, ne)
	m.v2f = appendTable(m.v2f, other.v2f, nf)
	m.e2f = appendTable(m.e2f, other.e2f, nf)
	m.f2e = appendTable(m.f2e, other.f2e, ne)
	m.f2f = appendTable(m.f2f, other.f2f, nf)

	m.nonManifold = appendOffset(m.nonManifold, other.nonManifold, ne)

	m.UpdateBBox()
	m.generation++

	m.opts.Logger.LogDebug("appended %s (%s) to %s: %d verts, %d edges, %d faces",
		other.label(), other.data.ID, m.label(), m.NumVerts(), m.NumEdges(), m.NumFaces())
}

func appendOffset(dst, src []int, offset int) []int {
	for _, id := range src {
		dst = append(dst, id+offset)
	}
	return dst
}

func appendTable(dst, src [][]int, offset int) [][]int {
	for _, row := range src {
		dst = append(dst, appendOffset(make([]int, 0, len(row)), row, offset))
	}
	return dst
}
