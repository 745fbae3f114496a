package FD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdlab/utils"
)

func TestStepRieConservation(t *testing.T) {
	// flux differencing telescopes over the periodic index, so a single
	// raw candidate conserves the discrete sum to rounding
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx).AddScalar(0.5)
		cfg = ConfigFor(Upw)
	)
	dt, next, err := StepRie(xx, hh, cfg)
	require.NoError(t, err)
	assert.True(t, dt > 0)
	assert.InDelta(t, hh.Sum(), next.Sum(), 1.e-10)
}

func TestEvolveRie(t *testing.T) {
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx).AddScalar(0.5)
		cfg = ConfigFor(Upw)
	)
	ts, err := EvolveRie(xx, hh, 200, cfg)
	require.NoError(t, err)
	requireFinite(t, ts.Final())
	// the ghost re-pad perturbs the sum slightly; the run stays bounded
	assert.True(t, ts.Final().AbsMax() < 2)
	assert.InDelta(t, hh.Sum(), ts.Final().Sum(), 0.5)
	for i := 1; i < ts.Steps(); i++ {
		assert.True(t, ts.T[i] > ts.T[i-1])
	}
}

func TestFluxLimiter(t *testing.T) {
	// smooth data (r near 1) leaves the limiter fully open
	assert.Equal(t, 1., fluxLimiter([]float64{1, 1, 1}))
	// any extremum (negative ratio) closes it
	assert.Equal(t, 0., fluxLimiter([]float64{1, -0.5, 1}))
	// steep monotone data saturates at the larger limiter constant
	phi := fluxLimiter([]float64{3, 3})
	assert.InDelta(t, 2., phi, 1.e-12)
}

func TestEvolveLaxRie(t *testing.T) {
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx).AddScalar(0.5)
		cfg = ConfigFor(Upw)
	)
	ts, err := EvolveLaxRie(xx, hh, 100, cfg)
	require.NoError(t, err)
	requireFinite(t, ts.Final())
	assert.True(t, ts.Final().AbsMax() < 2)
	assert.True(t, math.Abs(ts.Final().Sum()-hh.Sum()) < 1)
}
