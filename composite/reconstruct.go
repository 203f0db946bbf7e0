package composite

import (
	"fmt"

	"github.com/optimorph/optimorph/bigraph"
	"github.com/optimorph/optimorph/category"
)

// Reconstruct validates a raw Node sequence produced by a search — it must
// alternate Obj, Mor, Obj, Mor, ..., Obj with each morphism's endpoints
// matching its neighbors — and re-applies every morphism in order, starting
// from initialSize, to build a CompositeMorphism whose sizes and costs
// reflect true size propagation.
//
// nodes[0] and nodes[len(nodes)-1] must both be Obj nodes; a single-Obj
// sequence yields an empty CompositeMorphism with TotalCost 0 and
// FinalSize == initialSize. Any structural inconsistency — an empty
// sequence, wrong node kind at an expected position, an endpoint mismatch,
// or an unknown ID — is
// reported as ErrInternalInvariant, since a well-formed optimizer must never
// hand Reconstruct a malformed sequence.
//
// Complexity: O(len(nodes)) Apply calls.
func Reconstruct(cat *category.Category, nodes []bigraph.Node, initialSize any) (*CompositeMorphism, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: empty node sequence", ErrInternalInvariant)
	}
	if !nodes[0].IsObject() {
		return nil, fmt.Errorf("%w: sequence must start with an object, got %s", ErrInternalInvariant, nodes[0])
	}
	if !nodes[len(nodes)-1].IsObject() {
		return nil, fmt.Errorf("%w: sequence must end with an object, got %s", ErrInternalInvariant, nodes[len(nodes)-1])
	}

	sourceID := nodes[0].ID
	targetID := nodes[len(nodes)-1].ID

	if len(nodes) == 1 {
		return &CompositeMorphism{
			SourceID:    sourceID,
			TargetID:    targetID,
			InitialSize: initialSize,
			FinalSize:   initialSize,
			TotalCost:   0,
			Steps:       nil,
		}, nil
	}

	if (len(nodes)-1)%2 != 0 {
		return nil, fmt.Errorf("%w: node sequence has an odd trailing element", ErrInternalInvariant)
	}

	steps := make([]Step, 0, (len(nodes)-1)/2)
	currentSize := initialSize
	totalCost := 0.0

	for i := 1; i < len(nodes); i += 2 {
		morNode := nodes[i]
		nextObjNode := nodes[i+1]
		prevObjNode := nodes[i-1]

		if !morNode.IsMorphism() {
			return nil, fmt.Errorf("%w: expected a morphism at position %d, got %s", ErrInternalInvariant, i, morNode)
		}
		if !nextObjNode.IsObject() {
			return nil, fmt.Errorf("%w: expected an object at position %d, got %s", ErrInternalInvariant, i+1, nextObjNode)
		}

		m, ok := cat.GetMorphism(morNode.ID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown morphism %q", ErrInternalInvariant, morNode.ID)
		}
		if m.Source != prevObjNode.ID {
			return nil, fmt.Errorf("%w: morphism %q source %q does not match preceding object %q",
				ErrInternalInvariant, m.ID, m.Source, prevObjNode.ID)
		}
		if m.Target != nextObjNode.ID {
			return nil, fmt.Errorf("%w: morphism %q target %q does not match following object %q",
				ErrInternalInvariant, m.ID, m.Target, nextObjNode.ID)
		}

		outputSize, cost := m.Apply(currentSize)
		steps = append(steps, Step{
			MorphismID: m.ID,
			InputSize:  currentSize,
			OutputSize: outputSize,
			StepCost:   cost,
		})
		totalCost += cost
		currentSize = outputSize
	}

	return &CompositeMorphism{
		SourceID:    sourceID,
		TargetID:    targetID,
		InitialSize: initialSize,
		FinalSize:   currentSize,
		TotalCost:   totalCost,
		Steps:       steps,
	}, nil
}
