// Package bigraph exposes a category.Category as the bipartite graph the
// optimizers search over, without ever materializing it.
//
// Node is a tagged union { Obj(ObjectId) | Mor(MorphismId) }. Two
// projections are provided, matching the two optimizer families:
//
//   - StaticView (size-constant projection): every morphism is priced once
//     using the caller's initialSize, and that price is stable for the
//     lifetime of the view. Used by the negate package (Negatable,
//     NegatableInfallible), whose Bellman-Ford relaxation needs a graph it
//     can iterate to a fixed point.
//   - Expand (size-propagating step): a plain function of (morphism, size
//     arriving at this point in a candidate path). It cannot be precomputed
//     into a static graph because the weight of an edge depends on the
//     history of the path reaching it. Used by the accumulate package, whose
//     best-first search tracks a size alongside every state it visits.
//
// Both projections agree on successor rules:
//
//	succ(Obj(o)) = { Mor(m) : m in Category.Outgoing(o) }, in declaration order
//	succ(Mor(m)) = { Obj(m.Target) }, weight zero
package bigraph
