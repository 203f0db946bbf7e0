// Package accumulate provides the Accumulating optimizer: a best-first
// search that finds a minimum-cost CompositeMorphism from a source object to
// a target object, pricing every morphism with the size that actually
// arrives at it along the candidate path being extended.
//
// Overview:
//
//   - Optimize computes the minimum-cost path from a single source object
//     to a target object in a category.Category, using bigraph.Expand to
//     price each morphism against the size accumulated so far on that path.
//   - It relies on a min-heap (priority queue) to always expand the
//     cheapest-so-far open state next.
//   - Requires every morphism cost encountered along the search to be
//     non-negative; see Negatable for categories that need negative costs.
//
// When to use:
//
//   - Whenever a morphism's cost or output size genuinely depends on the
//     size of what it receives — a compressor cheaper on small inputs, a
//     batch job whose cost scales with batch size — so that the optimizer
//     must account for size propagation during selection, not only during
//     reconstruction.
//
// Key features:
//
//   - Functional options allow injecting a debug logger without changing the
//     call signature.
//   - Each bipartite node carries the accumulated size of the cheapest path
//     found to it so far. The closed set is keyed by node alone: once a node
//     is closed it is never reopened, and sizes arriving along costlier
//     paths to it are not explored.
//   - Declaration-order tie-breaking: morphisms are pushed in
//     Category.Outgoing's preserved order, and every heap entry carries a
//     push-sequence number that breaks cost ties, so the first-declared
//     equal-cost morphism wins.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), V = |objects| + |morphisms|, E = 2·|morphisms|.
//   - Each bipartite node is closed at most once under non-negative costs.
//   - Each heap Push/Pop costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V) for the cost table, closed set, and predecessor table.
//
// Error handling (sentinel errors):
//
//   - ErrNilCategory: returned if you pass a nil *category.Category.
//   - ErrUnknownObject: returned if sourceID or targetID does not name an
//     object in the category.
//   - ErrUnreachable: returned if no path connects sourceID to targetID.
//   - ErrNegativeCostInAccumulating: returned if any Apply call along the
//     search produces a negative cost.
//
// Thread safety:
//
//   - Optimize itself is not thread-safe if the same *category.Category is
//     modified concurrently; Category is immutable after construction, so
//     concurrent Optimize calls over the same Category are safe.
//
// See also:
//
//   - category.Category: construction and read-only queries.
//   - bigraph.Expand: the size-propagating successor step this package drives.
//   - composite.Reconstruct: turns the winning node sequence into a
//     CompositeMorphism.
package accumulate
