// Package dsu provides a disjoint-set (union-find) data structure over
// string vertex IDs, with path compression and union by rank.
//
// What & Why
//
//   - What is a disjoint set?
//     Given a fixed universe of elements, the structure maintains a
//     partition into non-overlapping components and answers two questions
//     in amortized near-constant time: "which component does v belong to?"
//     (Find) and "merge the components of a and b" (Union).
//
//   - Why it matters:
//
//   - Kruskal's algorithm: Union-Find is the cycle detector — an edge whose
//     endpoints share a root would close a cycle and must be rejected.
//
//   - Connectivity queries: incremental "are these connected yet?" checks
//     without rebuilding adjacency structures.
//
//   - Clustering & deduplication: merging equivalence classes as evidence
//     arrives.
//
// Operations Provided
//
//   - New(vertices []string) (*DisjointSet, error)
//     Initialize every vertex as its own singleton component with rank 0.
//     Duplicate IDs are tolerated (initialization is idempotent).
//
//   - Find(v string) (string, error)
//     Return the representative (root) of v's component. The traversal is
//     iterative in two passes: locate the root, then re-point every node
//     visited along the path directly at it (full path compression). No
//     recursion, so pathological parent chains cannot exhaust the stack.
//
//   - Union(a, b string) (bool, error)
//     Merge the components of a and b. Returns false (no-op) when they
//     already share a root — the caller's cycle signal. Otherwise the
//     lower-rank root is attached under the higher-rank root; on a rank tie
//     a's root becomes the new root and its rank increments by one.
//
//   - SameSet(a, b string) (bool, error)
//     Convenience wrapper: do a and b currently share a root?
//
//   - Count() int
//     Number of live components (|V| at construction, decremented by every
//     successful Union).
//
//   - Components() map[string][]string
//     Snapshot of the current partition as root → sorted member list,
//     suitable for step-by-step display.
//
// Complexity
//
//   - Time:  O(α(V)) amortized per Find/Union/SameSet, where α is the
//     inverse Ackermann function (effectively constant).
//   - Space: O(V) for the parent and rank maps.
//
// Error Conditions
//
//   - ErrNoVertices    — New was given an empty vertex set; a partition of
//     nothing is undefined.
//   - ErrUnknownVertex — Find/Union/SameSet referenced an ID outside the
//     initializing set.
//
// Invariants
//
//   - The structure always represents a valid partition: every vertex maps
//     transitively, cycle-free, to exactly one root.
//   - Find is idempotent after compression: a second consecutive call
//     returns the same root and performs no further structural change.
//   - Ranks are meaningful for roots only and grow only when two trees of
//     equal rank merge.
//
// For usage, see example_test.go in this package.
package dsu
