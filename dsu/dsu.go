package dsu

import (
	"errors"
	"sort"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrNoVertices indicates that New was called with an empty vertex set.
	ErrNoVertices = errors.New("dsu: vertex set is empty")

	// ErrUnknownVertex indicates an operation referenced a vertex that was
	// not part of the initializing set.
	ErrUnknownVertex = errors.New("dsu: vertex not found")
)

// DisjointSet maintains a partition of a fixed vertex set into disjoint
// components, supporting amortized near-O(1) membership queries and merges
// via path compression and union by rank.
//
// A DisjointSet is scoped to a single algorithm run and is not safe for
// concurrent use; concurrent runs must each construct their own instance.
type DisjointSet struct {
	// parent maps each vertex to its parent in the forest; roots map to themselves.
	parent map[string]string

	// rank tracks an upper bound on tree height; meaningful for roots only.
	rank map[string]int

	// count is the number of live components.
	count int
}

// New builds a DisjointSet in which every vertex of the given set is its
// own singleton component with rank 0.
//
// Duplicate IDs in vertices are tolerated; re-initializing a vertex is a
// no-op. Returns ErrNoVertices when the set is empty.
//
// Complexity: O(V) time and memory.
func New(vertices []string) (*DisjointSet, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	d := &DisjointSet{
		parent: make(map[string]string, len(vertices)),
		rank:   make(map[string]int, len(vertices)),
	}
	for _, v := range vertices {
		if _, seen := d.parent[v]; seen {
			continue // duplicate ID; already a singleton
		}
		d.parent[v] = v
		d.rank[v] = 0
		d.count++
	}

	return d, nil
}

// Find returns the representative (root) of v's component.
//
// The walk is iterative in two passes: the first locates the root, the
// second re-points every visited vertex directly at it (full path
// compression), so a repeated lookup touches nothing. Returns
// ErrUnknownVertex if v was not part of the initializing set.
func (d *DisjointSet) Find(v string) (string, error) {
	if _, ok := d.parent[v]; !ok {
		return "", ErrUnknownVertex
	}

	// First pass: walk up until the root (parent[root] == root).
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}

	// Second pass: re-point every vertex on the walked path at the root.
	for d.parent[v] != root {
		d.parent[v], v = root, d.parent[v]
	}

	return root, nil
}

// Union merges the components containing a and b.
//
// Returns false when a and b already share a root — the merge is a no-op
// and, in Kruskal terms, the edge (a,b) would form a cycle. Otherwise the
// lower-rank root is attached under the higher-rank root; on a rank tie,
// a's root becomes the new root and its rank increments by one. Returns
// ErrUnknownVertex if either vertex is foreign to the set.
func (d *DisjointSet) Union(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if rootA == rootB {
		// Already in the same component; no structural change.
		return false, nil
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootA] < d.rank[rootB] {
		d.parent[rootA] = rootB
	} else {
		d.parent[rootB] = rootA
		// On a rank tie the surviving root's rank grows by one.
		if d.rank[rootA] == d.rank[rootB] {
			d.rank[rootA]++
		}
	}
	d.count--

	return true, nil
}

// SameSet reports whether a and b currently belong to the same component.
// Returns ErrUnknownVertex if either vertex is foreign to the set.
func (d *DisjointSet) SameSet(a, b string) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// Count returns the number of live components: |V| right after New, and
// one less after every successful Union.
func (d *DisjointSet) Count() int {
	return d.count
}

// Components returns a snapshot of the current partition as a mapping from
// component root to its sorted member list.
//
// The snapshot is detached: mutating it does not affect the DisjointSet.
// Lookups performed while building the snapshot compress paths as usual.
//
// Complexity: O(V log V) time (member sort dominates), O(V) memory.
func (d *DisjointSet) Components() map[string][]string {
	comps := make(map[string][]string, d.count)
	for v := range d.parent {
		root, _ := d.Find(v) // v is a known key; Find cannot fail
		comps[root] = append(comps[root], v)
	}
	// Sort each member list for deterministic display.
	for _, members := range comps {
		sort.Strings(members)
	}

	return comps
}
