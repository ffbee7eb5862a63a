// Package kruskal computes minimum- or maximum-cost spanning trees of
// weighted undirected graphs and records a step-by-step trace of every
// decision, making each run replayable by instructional front-ends.
//
// What & Why
//
//   - What is a spanning tree?
//     Given an undirected, weighted graph G = (V, E), a spanning tree is a
//     subset T ⊆ E connecting all of V with no cycles and exactly |V|−1
//     edges. The MIN variant minimizes the summed weight of T; the MAX
//     variant maximizes it.
//
//   - Why the trace matters:
//     Kruskal's greedy strategy is the classic vehicle for teaching the cut
//     property and union-find. This package returns one TraceEvent per
//     examined edge — endpoint roots, ACCEPTED/REJECTED outcome, and a
//     component snapshot — so a console walkthrough or graph highlighter
//     can replay the run without the core ever printing a byte itself.
//
// Algorithm
//
//   - Build(edges []Edge, opts ...Option) (Result, []TraceEvent, error)
//
//   - Strategy: derive the vertex set from the edge endpoints, stable-sort
//     the edges by weight (ascending for MinCost, descending for MaxCost),
//     then scan once: an edge whose endpoints resolve to different
//     union-find roots is accepted and merged; an edge whose endpoints
//     already share a root would close a cycle and is rejected. Self-loops
//     trivially share a root and are always rejected, never an error.
//
//   - The scan never stops early at |V|−1 accepted edges: processing every
//     edge lets a disconnected input surface as a spanning forest, reported
//     via Result.Connected == false rather than as an error.
//
//   - Complexity:
//
//   - Time: O(E log E + α(V)·E) ≈ O(E log V) — sorting dominates
//     (E = number of edges, V = number of vertices, α = inverse Ackermann).
//
//   - Space: O(E + V) for the sorted copy, the union-find maps, and the
//     trace (plus O(V) per event when component snapshots are enabled).
//
//   - Determinism: sort.SliceStable preserves input order among
//     equal-weight edges, so reruns over the same input choose the same
//     tree. Callers must not depend on which of several equal-weight
//     alternatives wins — only totals are contractual.
//
// Modes & Options
//
//   - WithMode(MinCost | MaxCost) — optimization direction; MinCost is the
//     default.
//   - WithoutSnapshots() — omit the per-event component snapshot for
//     callers that only need outcomes, trading observability for O(V) less
//     work per edge.
//   - Both(edges) — convenience for the common classroom flow: two fully
//     independent runs (MIN then MAX), each owning its own union-find.
//
// Error Conditions
//
//   - ErrNoEdges   — the edge list is empty; there is nothing to build.
//   - ErrBadWeight — an edge carries a NaN weight; weights must be real
//     numbers (negative and fractional values are fine).
//
//     A disconnected input is NOT an error: Build returns the spanning
//     forest it found with Result.Connected == false.
//
// GoDoc Summary
//
//   - Build(edges, opts...) (Result, []TraceEvent, error)
//     One pass of Kruskal with full trace.
//     Returns (result, events, nil) on success, else (zero, nil,
//     ErrNoEdges/ErrBadWeight).
//
//   - Both(edges) (BothResult, error)
//     MIN and MAX runs back to back over the same input.
//
// For usage, see example_test.go in this package.
package kruskal
