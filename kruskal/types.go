// Package kruskal defines the input, configuration, and trace types for
// spanning-tree construction. See doc.go for the package narrative.
package kruskal

import "errors"

// Sentinel errors returned by Build and Both.
var (
	// ErrNoEdges indicates that the supplied edge list is empty;
	// a spanning tree over no edges is undefined.
	ErrNoEdges = errors.New("kruskal: edge list is empty")

	// ErrBadWeight indicates that an edge carries a NaN weight.
	// Weights must be real numbers; negative and fractional are allowed.
	ErrBadWeight = errors.New("kruskal: edge weight is not a number")
)

// Mode selects the optimization direction of a Build run.
//
// MinCost – sort edges ascending; the classic minimum spanning tree.
// MaxCost – sort edges descending; the maximum spanning tree.
type Mode int

const (
	// MinCost builds a minimum-cost spanning tree (ascending edge order).
	MinCost Mode = iota

	// MaxCost builds a maximum-cost spanning tree (descending edge order).
	MaxCost
)

// String returns the display name of the mode: "MIN" or "MAX".
func (m Mode) String() string {
	if m == MaxCost {
		return "MAX"
	}

	return "MIN"
}

// Edge is an undirected, weighted connection between two vertices.
//
// From and To are interchangeable endpoints (the graph is undirected);
// Weight may be negative or fractional. Edges are immutable value types,
// and parallel edges between the same pair are permitted — each is
// considered independently during sorting and selection.
type Edge struct {
	// From is one endpoint's vertex ID.
	From string

	// To is the other endpoint's vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// Outcome is the decision recorded for one examined edge.
type Outcome int

const (
	// Accepted means the edge joined two distinct components and entered the tree.
	Accepted Outcome = iota

	// Rejected means both endpoints already shared a component root,
	// so the edge would have closed a cycle.
	Rejected
)

// String returns the display name of the outcome: "ACCEPTED" or "REJECTED".
func (o Outcome) String() string {
	if o == Rejected {
		return "REJECTED"
	}

	return "ACCEPTED"
}

// TraceEvent records the decision taken for a single examined edge.
// Build emits exactly one event per edge, in processed (sorted) order, so
// the event sequence doubles as the sorted edge order.
type TraceEvent struct {
	// Step is the 1-based position of this edge in the processed order.
	Step int

	// Edge is the edge under examination.
	Edge Edge

	// RootFrom is the component root of Edge.From at examination time.
	RootFrom string

	// RootTo is the component root of Edge.To at examination time.
	RootTo string

	// Outcome is Accepted or Rejected.
	Outcome Outcome

	// Components is a snapshot of the partition taken after the decision:
	// component root → sorted member list. Nil when snapshots are disabled
	// via WithoutSnapshots.
	Components map[string][]string
}

// Result is the product of one Build run.
type Result struct {
	// Mode is the optimization direction this result was built under.
	Mode Mode

	// Edges holds the accepted edges in acceptance order.
	Edges []Edge

	// TotalCost is the sum of the accepted edges' weights.
	TotalCost float64

	// VertexCount is the number of distinct vertices derived from the input.
	VertexCount int

	// EdgeCount is the number of edges examined, accepted and rejected alike.
	EdgeCount int

	// Connected reports whether the accepted edges form a single spanning
	// tree (len(Edges) == VertexCount−1). When false, Edges is a spanning
	// forest — one tree per connected component of the input.
	Connected bool
}

// BothResult bundles the two independent runs of the MIN-and-MAX workflow.
type BothResult struct {
	// Min is the MinCost run's result; MinTrace its events.
	Min      Result
	MinTrace []TraceEvent

	// Max is the MaxCost run's result; MaxTrace its events.
	Max      Result
	MaxTrace []TraceEvent
}

// Options configures a Build run.
//
// Mode      – optimization direction (MinCost or MaxCost).
// Snapshots – whether each TraceEvent carries a component snapshot.
type Options struct {
	Mode      Mode // Optimization direction
	Snapshots bool // Attach component snapshots to trace events
}

// Option is a functional option for configuring Build.
// All Option functions modify the pointed Options in place.
type Option func(*Options)

// WithMode returns an Option that sets the optimization direction.
// Allowed values: MinCost, MaxCost.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithoutSnapshots returns an Option that disables per-event component
// snapshots (TraceEvent.Components == nil), saving O(V) work per edge for
// callers that only need outcomes.
func WithoutSnapshots() Option {
	return func(o *Options) {
		o.Snapshots = false
	}
}

// DefaultOptions returns Options initialized for a traced MIN run:
//
//	– Mode      = MinCost
//	– Snapshots = true (full component snapshot on every event).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Mode:      MinCost,
		Snapshots: true,
	}
}
