package FD1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdlab/utils"
)

func TestBoundaryModes(t *testing.T) {
	// ghost slots hold junk (9) before Apply
	u := utils.NewVector(6, []float64{9, 1, 2, 3, 4, 9})

	r, err := WrapBoundary(1, 1).Apply(u)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 2, 3, 4, 1}, r.Data())

	r, err = Boundary{Type: Edge, Left: 1, Right: 1}.Apply(u)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 3, 4, 4}, r.Data())

	r, err = Boundary{Type: Constant, Left: 1, Right: 1, Fill: 7}.Apply(u)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 1, 2, 3, 4, 7}, r.Data())

	// the downwind default: one right ghost, cyclic from the left end
	r, err = WrapBoundary(0, 1).Apply(utils.NewVector(5, []float64{0, 1, 2, 3, 9}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 0}, r.Data())

	// source untouched
	assert.Equal(t, 9., u.AtVec(0))
}

func TestBoundaryIdempotent(t *testing.T) {
	u := utils.NewVector(6, []float64{9, 1, 2, 3, 4, 9})
	for _, b := range []Boundary{
		WrapBoundary(1, 1),
		{Type: Edge, Left: 1, Right: 1},
		{Type: Constant, Left: 2, Right: 1, Fill: -3},
		WrapBoundary(0, 0), // identity
	} {
		once, err := b.Apply(u)
		require.NoError(t, err)
		twice, err := b.Apply(once)
		require.NoError(t, err)
		assert.Equal(t, once.Data(), twice.Data(), "mode %v", b.Type)
	}
}

func TestBoundaryValidate(t *testing.T) {
	var ce *ConfigError

	err := Boundary{Type: Wrap, Left: -1}.Validate(10)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	// margins must leave a real interior: 2*margin < N
	err = WrapBoundary(5, 0).Validate(10)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	// margins together may not squeeze the interior below the margin width
	err = WrapBoundary(4, 4).Validate(10)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	require.NoError(t, WrapBoundary(2, 2).Validate(10))

	_, err = WrapBoundary(3, 3).Apply(utils.NewVector(4))
	require.Error(t, err)
}
