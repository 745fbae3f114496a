package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdlab/utils"
)

// The four combinators share a counter-propagating pair of advective
// coefficients; the Lax averaging dissipates the packet at a rate that
// differs per composition.
func TestSplittingCombinators(t *testing.T) {
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx)
		a   = ConstCoeff(0.7)
		b   = ConstCoeff(-0.3)
		cfg = DefaultConfig()
		nt  = 301
	)
	for _, tc := range []struct {
		name   string
		run    func() (*TimeSeries, error)
		absMax float64
	}{
		{"add", func() (*TimeSeries, error) { return OpsLaxAdd(xx, hh, nt, a, b, cfg) }, 0.015616},
		{"lie", func() (*TimeSeries, error) { return OpsLaxLie(xx, hh, nt, a, b, cfg) }, 0.160925},
		{"strang", func() (*TimeSeries, error) { return OpsLaxStrang(xx, hh, nt, a, b, cfg) }, 0.118591},
		{"strang-hyman", func() (*TimeSeries, error) { return OpsLaxHymanStrang(xx, hh, nt, a, b, cfg) }, 0.014360},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := tc.run()
			require.NoError(t, err)
			require.Equal(t, nt, ts.Steps())
			requireFinite(t, ts.Final())
			assert.InDelta(t, tc.absMax, ts.Final().AbsMax(), 1.e-3)
			for i := 1; i < ts.Steps(); i++ {
				assert.True(t, ts.T[i] > ts.T[i-1])
			}
		})
	}
}

func TestSplitDt(t *testing.T) {
	xx := utils.NewVector(100).Linspace(-2.6, 2.6)
	dx := xx.AtVec(1) - xx.AtVec(0)

	// the slower term never widens the step; the faster one limits it
	dt, err := splitDt(xx, ConstCoeff(0.7), ConstCoeff(-0.3), 0.98)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5*0.98*dx/0.7, dt, 1.e-12)

	// either coefficient identically zero is rejected
	_, err = splitDt(xx, ConstCoeff(0), ConstCoeff(1), 0.98)
	require.Error(t, err)
}
