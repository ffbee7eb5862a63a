// Package spantrace is a small, instructional library for computing
// minimum- and maximum-cost spanning trees with Kruskal's algorithm while
// recording every decision the algorithm makes along the way.
//
// 🚀 What is spantrace?
//
//	A pure-Go, side-effect-free core that brings together:
//		• dsu/     — disjoint-set (union-find) with path compression & union by rank
//		• kruskal/ — edge sort + greedy selection, MIN or MAX mode, full step trace
//
// ✨ Why choose spantrace?
//
//   - Teaching-first – every examined edge yields a TraceEvent with both
//     endpoint roots, the accept/reject outcome, and a component snapshot,
//     so a front-end can replay the run step by step
//   - Pure values – the core never prints, draws, or logs; presentation
//     layers (console walkthroughs, graph highlighting) consume the
//     returned Result and TraceEvent sequence
//   - Rock-solid guarantees – deterministic stable tie-breaking, explicit
//     sentinel errors, disconnected inputs reported structurally as a
//     spanning forest rather than failing
//
// Quick ASCII example:
//
//	    A──4──B
//	    │     │
//	    2     10          MIN tree: E-F, A-C, D-F, C-D, A-B  (cost 12)
//	    │     │           MAX tree: D-E, B-D, B-C, A-B, D-F  (cost 32)
//	    C──3──D
//	     \   / \
//	      4 11  2
//	       \ │   \
//	        E──1──F
//
// See kruskal.Build for the entry point and dsu.DisjointSet for the
// underlying component tracker.
package spantrace
