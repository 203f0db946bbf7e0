// Overview:
//
//   - Optimize (Negatable) and OptimizeInfallible (NegatableInfallible)
//     compute a minimum-cost path from a source object to a target object in
//     a category.Category, using bigraph.NewStaticView to price every
//     morphism once against a single caller-provided initial size.
//   - They rely on Bellman-Ford relaxation, which tolerates negative edge
//     weights as long as no negative cycle affects the source-to-target
//     cost.
//
// When to use:
//
//   - Whenever morphism costs may be negative — a rebate, a discount applied
//     past a threshold — and the caller is willing to accept pricing against
//     a single fixed size rather than true size propagation during
//     selection (Reconstruct still propagates real sizes afterwards).
//   - Optimize, when a negative cycle on the source-target path should
//     surface as an error.
//   - OptimizeInfallible, when the caller would rather receive a best-effort
//     path flagged via NegativeCycleObserved than no result at all.
//
// Negative cycle detection:
//
//   - After |V|-1 relaxation passes, a final pass finds every node that
//     could still be relaxed further — candidates for sitting on a negative
//     cycle.
//   - A candidate only matters if it is reachable from the source (it has a
//     finite distance) and can itself reach the target (checked via a
//     breadth-first search over the reversed adjacency, ignoring weights).
//     A negative cycle elsewhere in the category, disconnected from this
//     source-target pair, is not reported.
//
// Performance and complexity:
//
//   - Time:  O(V * E), V = |objects| + |morphisms|, E = 2·|morphisms|.
//   - Space: O(V + E) for the distance table, predecessor table, and the
//     materialized edge list and reverse adjacency used for cycle detection.
//
// Error handling (sentinel errors):
//
//   - ErrNilCategory, ErrUnknownObject, ErrUnreachable: see types.go.
//   - ErrNegativeCycle: returned only by Optimize, never by
//     OptimizeInfallible.
//
// See also:
//
//   - bigraph.StaticView: the size-constant projection this package searches.
//   - composite.Reconstruct: turns the winning node sequence into a
//     CompositeMorphism with true propagated sizes and costs.
package negate
