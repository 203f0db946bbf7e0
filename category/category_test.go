package category_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimorph/optimorph/category"
)

func identity(s any) (any, float64) { return s, 0 }

func TestBuildCategory_EmptyObjectID(t *testing.T) {
	_, err := category.BuildCategory([]*category.Object{{ID: ""}}, nil)
	assert.ErrorIs(t, err, category.ErrEmptyObjectID)
}

func TestBuildCategory_DuplicateObjectID(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "A"}}
	_, err := category.BuildCategory(objs, nil)
	assert.ErrorIs(t, err, category.ErrDuplicateID)
}

func TestBuildCategory_EmptyMorphismID(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{{ID: "", Source: "A", Target: "B", Apply: identity}}
	_, err := category.BuildCategory(objs, mors)
	assert.ErrorIs(t, err, category.ErrEmptyMorphismID)
}

func TestBuildCategory_NilApply(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B"}}
	_, err := category.BuildCategory(objs, mors)
	assert.ErrorIs(t, err, category.ErrNilApply)
}

func TestBuildCategory_DanglingSource(t *testing.T) {
	objs := []*category.Object{{ID: "B"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B", Apply: identity}}
	_, err := category.BuildCategory(objs, mors)
	assert.ErrorIs(t, err, category.ErrDanglingReference)
}

func TestBuildCategory_DanglingTarget(t *testing.T) {
	objs := []*category.Object{{ID: "A"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B", Apply: identity}}
	_, err := category.BuildCategory(objs, mors)
	assert.ErrorIs(t, err, category.ErrDanglingReference)
}

func TestBuildCategory_MorphismCollidesWithObjectID(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}, {ID: "f"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B", Apply: identity}}
	_, err := category.BuildCategory(objs, mors)
	assert.ErrorIs(t, err, category.ErrDuplicateID)
}

func TestBuildCategory_ParallelMorphismsPreserveDeclarationOrder(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{
		{ID: "f1", Source: "A", Target: "B", Apply: identity},
		{ID: "f2", Source: "A", Target: "B", Apply: identity},
	}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	out, ok := cat.Outgoing("A")
	require.True(t, ok)
	assert.Equal(t, []string{"f1", "f2"}, out)
}

func TestCategory_GettersAndContains(t *testing.T) {
	objs := []*category.Object{{ID: "A", Payload: 1}, {ID: "B"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B", Apply: identity}}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	obj, ok := cat.GetObject("A")
	require.True(t, ok)
	assert.Equal(t, 1, obj.Payload)

	_, ok = cat.GetObject("Z")
	assert.False(t, ok)

	mor, ok := cat.GetMorphism("f")
	require.True(t, ok)
	assert.Equal(t, "A", mor.Source)
	assert.Equal(t, "B", mor.Target)

	assert.True(t, cat.Contains("A"))
	assert.True(t, cat.Contains("f"))
	assert.False(t, cat.Contains("nope"))

	_, ok = cat.Outgoing("nonexistent")
	assert.False(t, ok)
}

func TestCategory_OutgoingReturnsACopy(t *testing.T) {
	objs := []*category.Object{{ID: "A"}, {ID: "B"}}
	mors := []*category.Morphism{{ID: "f", Source: "A", Target: "B", Apply: identity}}
	cat, err := category.BuildCategory(objs, mors)
	require.NoError(t, err)

	out1, _ := cat.Outgoing("A")
	out1[0] = "tampered"
	out2, _ := cat.Outgoing("A")
	assert.Equal(t, "f", out2[0])
}

func TestBuildCategory_ErrorsAreSentinelsNotStrings(t *testing.T) {
	_, err := category.BuildCategory([]*category.Object{{ID: ""}}, nil)
	assert.True(t, errors.Is(err, category.ErrEmptyObjectID))
}
