package kruskal

import (
	"math"
	"sort"

	"github.com/katalvlaran/spantrace/dsu"
)

// Build computes a minimum- or maximum-cost spanning tree (forest, if the
// input is disconnected) of the undirected graph described by edges, and
// returns one TraceEvent per examined edge in processed order.
//
// Error Conditions:
//   - ErrNoEdges   : if edges is empty.
//   - ErrBadWeight : if any edge weight is NaN.
//
// Steps:
//  1. Validate: at least one edge, no NaN weights (fail fast before any work).
//  2. Derive the vertex set from the edge endpoints, sorted for determinism.
//  3. Copy the input and stable-sort by weight — ascending for MinCost,
//     descending for MaxCost; ties keep input order.
//  4. Initialize a fresh disjoint set over the vertex set (owned
//     exclusively by this call).
//  5. Loop over sorted edges: resolve both roots; if they differ, union and
//     accept the edge into the tree, else reject (cycle). Emit a TraceEvent
//     either way. Self-loops resolve to one root and are always rejected.
//  6. After the full pass (no |V|−1 early exit), set Connected from the
//     accepted-edge count so a disconnected input is surfaced as a forest.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time, O(E + V) memory,
// plus O(V·E) trace memory when snapshots are enabled.
func Build(edges []Edge, opts ...Option) (Result, []TraceEvent, error) {
	// Apply functional options over the defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Validate the input before touching any state.
	if len(edges) == 0 {
		return Result{}, nil, ErrNoEdges
	}
	for _, e := range edges {
		if math.IsNaN(e.Weight) {
			return Result{}, nil, ErrBadWeight
		}
	}

	// 2. Derive the vertex set as the union of all endpoints.
	//    Sorted order keeps downstream iteration deterministic.
	vertices := deriveVertices(edges)

	// 3. Sort a copy of the edges; the caller's slice stays untouched.
	//    Stable sort ties break by original input order.
	order := make([]Edge, len(edges))
	copy(order, edges)
	if o.Mode == MaxCost {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Weight > order[j].Weight
		})
	} else {
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Weight < order[j].Weight
		})
	}

	// 4. Fresh disjoint set, scoped to this run alone.
	set, err := dsu.New(vertices)
	if err != nil {
		// Unreachable in practice: a non-empty edge list always yields vertices.
		return Result{}, nil, err
	}

	res := Result{
		Mode:        o.Mode,
		VertexCount: len(vertices),
		EdgeCount:   len(order),
	}
	events := make([]TraceEvent, 0, len(order))

	// 5. Greedy selection over the sorted edges.
	for i, e := range order {
		// Endpoints come from the same edge list the set was built from,
		// so Find cannot fail here.
		rootFrom, _ := set.Find(e.From)
		rootTo, _ := set.Find(e.To)

		ev := TraceEvent{
			Step:     i + 1,
			Edge:     e,
			RootFrom: rootFrom,
			RootTo:   rootTo,
			Outcome:  Rejected,
		}
		if rootFrom != rootTo {
			// Distinct components: accept the edge and merge them.
			_, _ = set.Union(e.From, e.To)
			res.Edges = append(res.Edges, e)
			res.TotalCost += e.Weight
			ev.Outcome = Accepted
		}
		if o.Snapshots {
			// Snapshot reflects the partition after this decision.
			ev.Components = set.Components()
		}
		events = append(events, ev)
	}

	// 6. A spanning tree has exactly |V|−1 edges; anything less means the
	//    input was disconnected and res.Edges is a spanning forest.
	res.Connected = len(res.Edges) == res.VertexCount-1

	return res, events, nil
}

// Both runs the MIN-and-MAX workflow: two fully independent Build
// invocations over the same input, each constructing and owning its own
// disjoint set. Options (beyond the mode, which Both controls) apply to
// both runs.
//
// Returns the first error encountered; since both runs validate the same
// input, an error from the MIN run short-circuits the MAX run.
func Both(edges []Edge, opts ...Option) (BothResult, error) {
	var out BothResult
	var err error

	out.Min, out.MinTrace, err = Build(edges, append(opts, WithMode(MinCost))...)
	if err != nil {
		return BothResult{}, err
	}
	out.Max, out.MaxTrace, err = Build(edges, append(opts, WithMode(MaxCost))...)
	if err != nil {
		return BothResult{}, err
	}

	return out, nil
}

// deriveVertices collects the distinct endpoint IDs of edges in sorted order.
func deriveVertices(edges []Edge) []string {
	seen := make(map[string]struct{}, 2*len(edges))
	vertices := make([]string, 0, 2*len(edges))
	for _, e := range edges {
		if _, ok := seen[e.From]; !ok {
			seen[e.From] = struct{}{}
			vertices = append(vertices, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			seen[e.To] = struct{}{}
			vertices = append(vertices, e.To)
		}
	}
	sort.Strings(vertices)

	return vertices
}
