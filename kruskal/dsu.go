// This file implements the disjoint-set (union-find) structure backing
// spanning-tree construction: iterative find with path compression and
// union by rank, for near-constant amortized operations.

package kruskal

// dsu tracks connected components over vertex values.
type dsu[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newDSU[V comparable](vertices []V) *dsu[V] {
	d := &dsu[V]{
		parent: make(map[V]V, len(vertices)),
		rank:   make(map[V]int, len(vertices)),
	}
	for _, v := range vertices {
		d.parent[v] = v
	}

	return d
}

// find returns the root of u's component, compressing the path by
// pointing each visited vertex at its grandparent.
func (d *dsu[V]) find(u V) V {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the components of u and v, attaching the smaller-rank tree
// under the larger-rank root. Returns false if they were already joined.
func (d *dsu[V]) union(u, v V) bool {
	rootU, rootV := d.find(u), d.find(v)
	if rootU == rootV {
		return false
	}
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}

	return true
}
