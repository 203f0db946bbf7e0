package ids_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimorph/optimorph/ids"
)

func TestNew_ProducesDistinctValues(t *testing.T) {
	a := ids.New()
	b := ids.New()
	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)
	assert.NotEqual(t, a, b)
}

func TestOrNew_HonorsExistingID(t *testing.T) {
	assert.Equal(t, "explicit", ids.OrNew("explicit"))
}

func TestOrNew_GeneratesWhenEmpty(t *testing.T) {
	assert.NotEmpty(t, ids.OrNew(""))
}
