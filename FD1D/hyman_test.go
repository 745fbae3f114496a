package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdlab/utils"
)

func TestHymanAdvanceConstantField(t *testing.T) {
	// a constant field is a fixed point of both the self-start and the
	// predictor-corrector branches
	var (
		xx  = utils.NewVector(50).Linspace(-2.6, 2.6)
		f   = utils.NewVector(50).Set(1.5)
		cfg = DefaultConfig()
		dth = 0.01
	)
	f1, st, err := HymanAdvance(xx, f, dth, ConstCoeff(0.5), nil, cfg)
	require.NoError(t, err)
	require.Equal(t, dth, st.DtOld)
	require.Equal(t, 50, st.FOld.Len())
	for i := 0; i < 50; i++ {
		assert.InDelta(t, 1.5, f1.AtVec(i), 1.e-13)
	}

	f2, st2, err := HymanAdvance(xx, f1, dth, ConstCoeff(0.5), &st, cfg)
	require.NoError(t, err)
	assert.Equal(t, dth, st2.DtOld)
	for i := 0; i < 50; i++ {
		assert.InDelta(t, 1.5, f2.AtVec(i), 1.e-13)
	}
}

func TestHymanAdvanceHistory(t *testing.T) {
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		f   = wavePacket(xx)
		cfg = DefaultConfig()
		dth = 0.005
	)
	f1, st, err := HymanAdvance(xx, f, dth, ConstCoeff(-0.3), nil, cfg)
	require.NoError(t, err)
	requireFinite(t, f1)
	// history carries the pre-update field
	assert.Equal(t, f.Data(), st.FOld.Data())

	f2, st2, err := HymanAdvance(xx, f1, dth, ConstCoeff(-0.3), &st, cfg)
	require.NoError(t, err)
	requireFinite(t, f2)
	assert.Equal(t, f1.Data(), st2.FOld.Data())
	// one small step leaves the field near its start
	assert.True(t, f2.AbsMax() < 2*f.AbsMax())
}
