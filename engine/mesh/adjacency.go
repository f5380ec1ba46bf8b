package mesh

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/spaghettifunk/trimesh/engine/core"
)

// edgeKey is the canonical (min, max) vertex pair of an undirected edge.
type edgeKey struct {
	v0, v1 int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// edgeKeyComparator orders keys lexicographically, which fixes the edge ids.
func edgeKeyComparator(a, b interface{}) int {
	ka := a.(edgeKey)
	kb := b.(edgeKey)
	switch {
	case ka.v0 < kb.v0:
		return -1
	case ka.v0 > kb.v0:
		return 1
	case ka.v1 < kb.v1:
		return -1
	case ka.v1 > kb.v1:
		return 1
	}
	return 0
}

// adjacency is a complete set of tables built off to the side and swapped in on success.
type adjacency struct {
	edges       []int
	v2v         [][]int
	v2e         [][]int
	v2f         [][]int
	e2f         [][]int
	f2e         [][]int
	f2f         [][]int
	nonManifold []int
}

// UpdateAdjacency rebuilds edges and the six adjacency tables from the face list, replacing
// any previous state. Edge ids follow the lexicographic order of the (min, max) endpoint
// pairs, so two builds over the same faces give identical tables. Edge attachments are reset
// to their default.
//
// In strict mode an edge shared by more than two faces fails the build with
// ErrNonManifoldEdge and leaves m untouched.
func (m *Mesh[V, E, F]) UpdateAdjacency() error {
	clock := core.NewClock()
	clock.Start()

	adj, err := buildAdjacency(m.faces, len(m.verts), m.opts)
	if err != nil {
		m.opts.Logger.LogError("adjacency of %s: %s", m.label(), err.Error())
		return err
	}

	m.edges = adj.edges
	m.v2v = adj.v2v
	m.v2e = adj.v2e
	m.v2f = adj.v2f
	m.e2f = adj.e2f
	m.f2e = adj.f2e
	m.f2f = adj.f2f
	m.nonManifold = adj.nonManifold
	m.eData = fill[E](len(adj.edges) / 2)
	m.generation++

	clock.Stop()
	m.opts.Metrics.Record("adjacency", clock.Elapsed())
	m.opts.Logger.LogDebug("adjacency of %s built in %s", m.label(), clock.Elapsed())
	return nil
}

func buildAdjacency(faces []int, nv int, opts Options) (*adjacency, error) {
	nf := len(faces) / 3

	buckets := redblacktree.NewWith(edgeKeyComparator)
	for fid := 0; fid < nf; fid++ {
		for i := 0; i < 3; i++ {
			key := newEdgeKey(faces[3*fid+i], faces[3*fid+(i+1)%3])
			if fs, found := buckets.Get(key); found {
				buckets.Put(key, append(fs.([]int), fid))
			} else {
				buckets.Put(key, []int{fid})
			}
		}
	}

	adj := &adjacency{
		edges: make([]int, 0, 2*buckets.Size()),
		v2v:   make([][]int, nv),
		v2e:   make([][]int, nv),
		v2f:   make([][]int, nv),
		e2f:   make([][]int, 0, buckets.Size()),
		f2e:   make([][]int, nf),
		f2f:   make([][]int, nf),
	}

	for fid := 0; fid < nf; fid++ {
		for i := 0; i < 3; i++ {
			vid := faces[3*fid+i]
			adj.v2f[vid] = append(adj.v2f[vid], fid)
		}
	}

	it := buckets.Iterator()
	for it.Next() {
		key := it.Key().(edgeKey)
		fs := it.Value().([]int)
		eid := len(adj.edges) / 2

		adj.edges = append(adj.edges, key.v0, key.v1)
		adj.v2v[key.v0] = append(adj.v2v[key.v0], key.v1)
		adj.v2v[key.v1] = append(adj.v2v[key.v1], key.v0)
		adj.v2e[key.v0] = append(adj.v2e[key.v0], eid)
		adj.v2e[key.v1] = append(adj.v2e[key.v1], eid)
		adj.e2f = append(adj.e2f, append([]int(nil), fs...))

		for i, f := range fs {
			adj.f2e[f] = append(adj.f2e[f], eid)
			for _, g := range fs[i+1:] {
				if f == g {
					continue
				}
				adj.f2f[f] = addUnique(adj.f2f[f], g)
				adj.f2f[g] = addUnique(adj.f2f[g], f)
			}
		}

		if !edgeFaceCountOK(len(fs)) {
			if !opts.SupportNonManifoldEdges {
				return nil, fmt.Errorf("%w: edge (%d, %d) has %d incident faces", ErrNonManifoldEdge, key.v0, key.v1, len(fs))
			}
			adj.nonManifold = append(adj.nonManifold, eid)
			if opts.PrintNonManifoldEdges {
				opts.Logger.LogWarn("non-manifold edge %d (%d, %d) with %d incident faces", eid, key.v0, key.v1, len(fs))
			}
		}
	}

	return adj, nil
}
