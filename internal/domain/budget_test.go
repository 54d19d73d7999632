package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetAllows(t *testing.T) {
	b, err := Hours(30)
	require.NoError(t, err)

	assert.True(t, b.Allows(0))
	assert.True(t, b.Allows(30))
	assert.False(t, b.Allows(30.01))

	u := Unbounded()
	assert.True(t, u.Allows(1e12))
	assert.Equal(t, "unbounded", u.String())
}

func TestBudgetZeroAllowsOnlyNoTime(t *testing.T) {
	b, err := Hours(0)
	require.NoError(t, err)

	assert.True(t, b.Bounded)
	assert.True(t, b.Allows(0))
	assert.False(t, b.Allows(0.25))
}

func TestBudgetRejectsInvalidLimits(t *testing.T) {
	_, err := Hours(-1)
	assert.Error(t, err)

	_, err = Hours(math.NaN())
	assert.Error(t, err)

	b, err := Hours(math.Inf(1))
	require.NoError(t, err)
	assert.False(t, b.Bounded)
}
