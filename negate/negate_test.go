package negate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimorph/optimorph/category"
	"github.com/optimorph/optimorph/negate"
)

func TestOptimize_SourceEqualsTarget(t *testing.T) {
	objs := []*category.Object{{ID: "A"}}
	cat, err := category.BuildCategory(objs, nil)
	require.NoError(t, err)

	res, err := negate.Optimize(cat, "A", "A", 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.TotalCost)
	assert.Equal(t, 10, res.FinalSize)
}

func TestOptimize_NegativeCostAllowedWithoutCycle(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	mors := []*category.Morphism{
		{ID: "ab", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, -5 }},
		{ID: "bc", Source: "B", Target: "C", Apply: func(s any) (any, float64) { return s, 2 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	res, err := negate.Optimize(cat, "A", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, -3.0, res.TotalCost)
	require.Len(t, res.Steps, 2)
}

func TestOptimize_NegativeCycleOnPathErrors(t *testing.T) {
	// B -> B' -> B negative cycle sits between A and C.
	objs := []*category.Object{{ID: "A"}, {ID: "B"}, {ID: "Bp"}, {ID: "C"}}
	mors := []*category.Morphism{
		{ID: "ab", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "loop1", Source: "B", Target: "Bp", Apply: func(s any) (any, float64) { return s, -10 }},
		{ID: "loop2", Source: "Bp", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "bc", Source: "B", Target: "C", Apply: func(s any) (any, float64) { return s, 1 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	_, err = negate.Optimize(cat, "A", "C", 1)
	assert.ErrorIs(t, err, negate.ErrNegativeCycle)
}

func TestOptimize_NegativeCycleOffPathIgnored(t *testing.T) {
	// A negative cycle exists on D<->E, disconnected from the A-C path.
	objs := []*category.Object{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}}
	mors := []*category.Morphism{
		{ID: "ab", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "bc", Source: "B", Target: "C", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "de", Source: "D", Target: "E", Apply: func(s any) (any, float64) { return s, -10 }},
		{ID: "ed", Source: "E", Target: "D", Apply: func(s any) (any, float64) { return s, 1 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	res, err := negate.Optimize(cat, "A", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.TotalCost)
	assert.False(t, res.NegativeCycleObserved)
}

func TestOptimize_Unreachable(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "Isolated"}}
	cat, err := category.BuildCategory(objs, nil)
	require.NoError(t, err)

	_, err = negate.Optimize(cat, "A", "Isolated", 0)
	assert.ErrorIs(t, err, negate.ErrUnreachable)
}

func TestOptimize_UnknownObject(t *testing.T) {
	objs := []*category.Object{{ID: "A"}}
	cat, err := category.BuildCategory(objs, nil)
	require.NoError(t, err)

	_, err = negate.Optimize(cat, "Ghost", "A", 0)
	assert.ErrorIs(t, err, negate.ErrUnknownObject)
}

func TestOptimizeInfallible_NegativeCycleSetsFlagInsteadOfErroring(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}, {ID: "Bp"}, {ID: "C"}}
	mors := []*category.Morphism{
		{ID: "ab", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "loop1", Source: "B", Target: "Bp", Apply: func(s any) (any, float64) { return s, -10 }},
		{ID: "loop2", Source: "Bp", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "bc", Source: "B", Target: "C", Apply: func(s any) (any, float64) { return s, 1 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	res, err := negate.OptimizeInfallible(cat, "A", "C", 1)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycleObserved)
}

func TestOptimizeInfallible_UnreachableStillErrors(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "Isolated"}}
	cat, err := category.BuildCategory(objs, nil)
	require.NoError(t, err)

	_, err = negate.OptimizeInfallible(cat, "A", "Isolated", 0)
	assert.ErrorIs(t, err, negate.ErrUnreachable)
}

func TestOptimize_DeclarationOrderBreaksTiesRegardlessOfAlphabeticalID(t *testing.T) {
	// "zfirst" is declared (rank 0) before "afirst" (rank 1), deliberately
	// out of alphabetical order, so a fix that quietly sorts morphisms by ID
	// instead of preserving declaration order would pick afirst and this
	// test would catch it.
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{
		{ID: "zfirst", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
		{ID: "afirst", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	res, err := negate.Optimize(cat, "A", "B", 0)
	require.NoError(t, err)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, "zfirst", res.Steps[0].MorphismID)
}

func TestOptimize_NilCategory(t *testing.T) {
	_, err := negate.Optimize(nil, "A", "B", 0)
	assert.ErrorIs(t, err, negate.ErrNilCategory)
}
