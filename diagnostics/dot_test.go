package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimorph/optimorph/category"
	"github.com/optimorph/optimorph/diagnostics"
)

func TestToDOT_ContainsObjectsAndMorphisms(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{
		{ID: "f", Source: "A", Target: "B", Apply: func(s any) (any, float64) { return s, 1 }},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	dot := diagnostics.ToDOT(cat, diagnostics.Options{})
	assert.Contains(t, dot, "digraph G {")
	assert.Contains(t, dot, `"obj:A"`)
	assert.Contains(t, dot, `"obj:B"`)
	assert.Contains(t, dot, `"mor:f"`)
	assert.Contains(t, dot, `"obj:A" -> "mor:f"`)
	assert.Contains(t, dot, `"mor:f" -> "obj:B"`)
}

func TestToDOT_EmptyCategoryStillValid(t *testing.T) {
	cat, err := category.BuildCategory(nil, nil)
	require.NoError(t, err)

	dot := diagnostics.ToDOT(cat, diagnostics.Options{})
	assert.Contains(t, dot, "digraph G {")
	assert.Contains(t, dot, "}\n")
}

func TestToDOT_DeterministicAcrossCalls(t *testing.T) {
	objs := []*category.Object{{ID: "Z"}, {ID: "A"}, {ID: "M"}}
	cat, err := category.BuildCategory(objs, nil)
	require.NoError(t, err)

	first := diagnostics.ToDOT(cat, diagnostics.Options{})
	second := diagnostics.ToDOT(cat, diagnostics.Options{})
	assert.Equal(t, first, second)
}
