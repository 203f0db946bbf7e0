// Package composite reconstructs the raw Node sequence a search produces
// into a CompositeMorphism: it re-applies every morphism on the path in
// order, propagating sizes and recomputing cost, regardless of what pricing
// model the search used to select the path in the first place. This pass
// always runs, for all three optimizers, which is why a CompositeMorphism's
// reported sizes and costs always reflect true size propagation even when
// selection (Negatable, NegatableInfallible) did not consider it.
package composite

import "errors"

// ErrInternalInvariant indicates Reconstruct was handed a raw node sequence
// that violates the alternation contract an optimizer is required to
// produce (Obj, Mor, Obj, Mor, ..., Obj with matching endpoints). This
// should never happen; if it does, the bug is in an optimizer, not in the
// caller's category.
var ErrInternalInvariant = errors.New("composite: internal invariant violated")

// Step records one morphism application on a composite path.
type Step struct {
	// MorphismID identifies which morphism was applied.
	MorphismID string

	// InputSize is the size that arrived at the morphism's source.
	InputSize any

	// OutputSize is the size Apply produced for this step.
	OutputSize any

	// StepCost is the cost Apply produced for this step.
	StepCost float64
}

// CompositeMorphism is the result of a successful optimization: an ordered
// sequence of morphism applications connecting SourceID to TargetID, with
// the total cost and the size that arrives at TargetID after every step has
// run.
//
// An empty Steps slice is only ever legal when SourceID == TargetID; in that
// case TotalCost is zero and FinalSize equals InitialSize.
type CompositeMorphism struct {
	SourceID    string
	TargetID    string
	InitialSize any
	FinalSize   any
	TotalCost   float64
	Steps       []Step

	// NegativeCycleObserved is set by NegatableInfallible when path
	// selection detected a negative cycle reachable from the source and on
	// a path to the target; in that case the path above may be sub-optimal.
	// Always false for Accumulating and for a successful Negatable call.
	NegativeCycleObserved bool
}
