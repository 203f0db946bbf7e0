// Package optimorph finds minimum-cost composite transformations between
// two entities in a user-defined category whose edges are first-class,
// uniquely identifiable morphisms rather than anonymous vertex pairs.
//
// # Overview
//
// A caller builds a category.Category from a set of category.Object and
// category.Morphism values, then hands it to one of three optimizers:
//
//   - accumulate.Optimize — the Accumulating optimizer, correct for
//     input-dependent, size-propagating cost functions.
//   - negate.Optimize — the Negatable optimizer, tolerates negative edge
//     weights and reports a negative cycle as an error.
//   - negate.OptimizeInfallible — the NegatableInfallible optimizer,
//     tolerates negative edge weights and never fails on a negative cycle,
//     flagging it on composite.CompositeMorphism.NegativeCycleObserved
//     instead of returning an error; unknown or unreachable objects still
//     return an error.
//
// Every optimizer returns a composite.CompositeMorphism: an ordered
// sequence of morphism applications with per-step sizes and costs, built by
// the composite package's Reconstruct pass regardless of which optimizer
// selected the path.
//
// # Usage
//
//	cat, err := category.BuildCategory(objects, morphisms)
//	if err != nil {
//	    // handle BuildCategory's ErrEmptyObjectID / ErrDuplicateID / ErrDanglingReference / ...
//	}
//	result, err := accumulate.Optimize(cat, "A", "Z", initialSize)
//
// # Package layout
//
//   - category: Object, Morphism, Category, and the category builder.
//   - bigraph: the internal bipartite projection optimizers search over.
//   - accumulate: the Accumulating optimizer.
//   - negate: the Negatable and NegatableInfallible optimizers.
//   - composite: CompositeMorphism and the shared reconstruction pass.
//   - diagnostics: Graphviz DOT rendering of a Category, for debugging.
//   - ids: a UUID helper for callers without a natural identifier scheme.
//
// # Non-goals
//
// This module is not a general category-theory toolkit, does not expose
// its internal bipartite graph, and returns exactly one optimal path rather
// than enumerating all of them. Accumulation and negative costs are not
// supported simultaneously with an optimality guarantee during selection;
// see the negate package's doc comment for the size-constant pricing model
// that applies instead.
package optimorph
