package palette

import (
	"math"
	"sort"

	"github.com/mmuldo/chromatic/colorful"
)

// Sorting colors is not well defined. Sort orders them so that each color
// is followed by a similar one: it walks a minimum spanning tree of the
// CIEDE2000 distances, starting from the darkest color.

type edge struct {
	u, v int // u < v
	dist float64
}

// allEdges computes the CIEDE2000 distance of every pair of colors, sorted
// by increasing distance. Ties keep index order.
func allEdges(cs []colorful.Color) []edge {
	n := len(cs)
	es := make([]edge, 0, n*(n-1)/2)
	for u := 0; u < n-1; u++ {
		for v := u + 1; v < n; v++ {
			es = append(es, edge{u, v, cs[u].DistanceCIEDE2000(cs[v])})
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].dist != es[j].dist {
			return es[i].dist < es[j].dist
		}
		if es[i].u != es[j].u {
			return es[i].u < es[j].u
		}
		return es[i].v < es[j].v
	})
	return es
}

// disjointSet is a union-find forest over vertex indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of x, halving the path on the way.
func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges the sets of x and y. It reports false if they already were
// the same set.
func (ds *disjointSet) union(x, y int) bool {
	rx, ry := ds.find(x), ds.find(y)
	if rx == ry {
		return false
	}
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	return true
}

// minSpanTree runs Kruskal's algorithm on distance-sorted edges and returns
// the neighbors of each vertex in the tree, in increasing index order.
func minSpanTree(n int, es []edge) [][]int {
	ds := newDisjointSet(n)
	neighbors := make([][]int, n)
	for _, e := range es {
		if !ds.union(e.u, e.v) {
			continue // same set: the edge would close a cycle
		}
		neighbors[e.u] = append(neighbors[e.u], e.v)
		neighbors[e.v] = append(neighbors[e.v], e.u)
	}
	for _, vs := range neighbors {
		sort.Ints(vs)
	}
	return neighbors
}

// traverse walks the tree in prefix order from root.
func traverse(neighbors [][]int, root int) []int {
	order := make([]int, 0, len(neighbors))
	visited := make([]bool, len(neighbors))
	stack := []int{root}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[r] {
			continue
		}
		visited[r] = true
		order = append(order, r)

		// Push in reverse so the smallest index is visited first.
		vs := neighbors[r]
		for i := len(vs) - 1; i >= 0; i-- {
			if !visited[vs[i]] {
				stack = append(stack, vs[i])
			}
		}
	}
	return order
}

// darkest returns the index of the color closest to black.
func darkest(cs []colorful.Color) int {
	black := colorful.Color{}
	idx := 0
	light := math.MaxFloat64
	for i, c := range cs {
		if d := black.DistanceCIEDE2000(c); d < light {
			idx, light = i, d
		}
	}
	return idx
}

// Sort returns the colors reordered so that the transition from one to the
// next is fairly smooth. The result is deterministic for a given input,
// which is not modified.
func Sort(cs []colorful.Color) []colorful.Color {
	sorted := make([]colorful.Color, len(cs))
	if len(cs) < 2 {
		copy(sorted, cs)
		return sorted
	}

	neighbors := minSpanTree(len(cs), allEdges(cs))
	for i, idx := range traverse(neighbors, darkest(cs)) {
		sorted[i] = cs[idx]
	}
	return sorted
}
