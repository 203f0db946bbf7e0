// Package composite implements §4.6 of the optimizer contract: turning a raw
// Obj/Mor/Obj/.../Obj node sequence into a CompositeMorphism by re-applying
// every morphism on the path, in order, from the caller's initial size.
//
// This pass is intentionally the only place size propagation and cost
// accounting happen for real. Accumulating already tracked size during
// selection, but reconstructs anyway — cheaply, since the work is the same
// — for a single code path all three optimizers share. Negatable and
// NegatableInfallible priced morphisms using a fixed initial size during
// selection (see the bigraph package's StaticView); Reconstruct is where
// their reported costs and sizes catch up with reality. See the tsp
// package's TSResult in the katalvlaran/lvlath pack for the precedent this
// follows: a solver selects a sequence, then a separate pass assembles the
// costed result value handed back to the caller.
//
// batch.go adds OptimizeMany and RankByScore: running one of the optimizer
// packages across several source/target pairs and ranking the results by a
// caller-supplied figure of merit, rather than raw cost alone.
package composite
