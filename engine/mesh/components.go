package mesh

import (
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/trimesh/engine/containers"
)

// ConnectedComponents groups the vertices reachable from each other through edges. Components
// are ordered by their smallest vertex id and each lists its vertices in increasing order.
// An isolated vertex is a component of its own.
func (m *Mesh[V, E, F]) ConnectedComponents() [][]int {
	nv := m.NumVerts()
	visited := make([]bool, nv)
	queue := containers.NewRingQueue[int](nv)

	var components [][]int
	for seed := 0; seed < nv; seed++ {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		_ = queue.Enqueue(seed)

		var comp []int
		for !queue.IsEmpty() {
			vid, _ := queue.Dequeue()
			comp = append(comp, vid)
			for _, w := range m.v2v[vid] {
				if !visited[w] {
					visited[w] = true
					// every vertex is queued at most once, so the queue never fills up
					_ = queue.Enqueue(w)
				}
			}
		}
		slices.Sort(comp)
		components = append(components, comp)
	}
	return components
}

// NumComponents returns len(m.ConnectedComponents()).
func (m *Mesh[V, E, F]) NumComponents() int {
	return len(m.ConnectedComponents())
}
