package FD1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fdlab/utils"
)

func TestStepDiff(t *testing.T) {
	xx := utils.NewVector(5).Linspace(0, 4)
	hh := utils.NewVector(5, []float64{0, 1, 4, 9, 16})
	rhs, err := StepDiff(xx, hh, ConstCoeff(1))
	require.NoError(t, err)
	// interior second difference of x² is exactly 2
	assert.InDelta(t, 2., rhs.AtVec(1), 1.e-12)
	assert.InDelta(t, 2., rhs.AtVec(2), 1.e-12)
	assert.InDelta(t, 2., rhs.AtVec(3), 1.e-12)

	// non-uniform grids are rejected
	bad := utils.NewVector(5, []float64{0, 1, 2.5, 3, 4})
	_, err = StepDiff(bad, hh, ConstCoeff(1))
	require.Error(t, err)
}

func TestEvolveDiffExplicit(t *testing.T) {
	var (
		xx  = utils.NewVector(100).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx)
		cfg = DefaultConfig()
	)
	ts, err := EvolveDiffExplicit(xx, hh, 100, ConstCoeff(0.5), cfg)
	require.NoError(t, err)
	requireFinite(t, ts.Final())
	// diffusion flattens the packet: the peak decays monotonically
	prev := ts.Field(0).AbsMax()
	for i := 1; i < ts.Steps(); i++ {
		cur := ts.Field(i).AbsMax()
		assert.True(t, cur <= prev+1.e-12, "peak grew at step %d", i)
		prev = cur
	}
}

func TestNewtonStepContraction(t *testing.T) {
	// a large implicit step from the packet: each Newton iteration shrinks
	// the convergence metric
	var (
		xx  = utils.NewVector(64).Linspace(-2.6, 2.6)
		hh  = wavePacket(xx)
		a   = ConstCoeff(1)
		bnd = WrapBoundary(1, 1)
		tol = 1.e-5
	)
	uo := hh.Copy()
	ug := hh.Copy()
	var metrics []float64
	for k := 0; k < 6; k++ {
		un, metric, err := NewtonStep(xx, ug, uo, a, 0.1, tol, bnd)
		require.NoError(t, err)
		metrics = append(metrics, metric)
		ug = un
	}
	assert.InDelta(t, 1.072, metrics[0], 1.e-2)
	for k := 1; k < len(metrics); k++ {
		assert.True(t, metrics[k] < metrics[k-1],
			"metric stalled at iteration %d: %v", k, metrics)
	}
}

func TestNewtonRaphsonConverges(t *testing.T) {
	// lifting the field off zero keeps the relative metric meaningful, and
	// the linear problem converges within a few iterations
	var (
		xx = utils.NewVector(64).Linspace(-2.6, 2.6)
		hh = wavePacket(xx).AddScalar(1)
	)
	ts, diag, err := NewtonRaphson(xx, hh, ConstCoeff(1), 0.05, 2, 1.e-5, 15, WrapBoundary(1, 1))
	require.NoError(t, err)
	require.NotNil(t, diag)
	assert.True(t, diag.Converged[0])
	assert.True(t, diag.Converged[1], "err = %v", diag.Err[1])
	assert.True(t, diag.Count[1] >= 2 && diag.Count[1] <= 4, "count = %d", diag.Count[1])
	assert.True(t, diag.Err[1] < 1.e-5)
	requireFinite(t, ts.Final())
}

func TestNewtonRaphsonIterationCap(t *testing.T) {
	// a tight cap is not fatal: the best iterate is accepted and the step
	// is flagged unconverged
	var (
		xx = utils.NewVector(64).Linspace(-2.6, 2.6)
		hh = wavePacket(xx)
	)
	ts, diag, err := NewtonRaphson(xx, hh, ConstCoeff(1), 0.1, 5, 1.e-5, 2, WrapBoundary(1, 1))
	require.NoError(t, err)
	requireFinite(t, ts.Final())
	for i := 1; i < 5; i++ {
		assert.Equal(t, 2, diag.Count[i])
		assert.False(t, diag.Converged[i])
		assert.True(t, diag.Err[i] >= 1.e-5)
	}
}

func TestNewtonRaphsonSelf(t *testing.T) {
	// nonlinear coefficient a = u: the positive lifted field keeps the
	// problem diffusive and the run finite
	var (
		xx = utils.NewVector(64).Linspace(-2.6, 2.6)
		hh = wavePacket(xx).AddScalar(1)
	)
	ts, diag, err := NewtonRaphsonSelf(xx, hh, 0.05, 5, 1.e-5, 15, WrapBoundary(1, 1))
	require.NoError(t, err)
	require.NotNil(t, diag)
	requireFinite(t, ts.Final())
	assert.Equal(t, 5, ts.Steps())
}

func TestNewtonValidation(t *testing.T) {
	var (
		xx = utils.NewVector(64).Linspace(-2.6, 2.6)
		hh = wavePacket(xx)
	)
	_, _, err := NewtonRaphson(xx, hh, ConstCoeff(1), 0, 5, 1.e-5, 2, WrapBoundary(1, 1))
	require.Error(t, err)
	_, _, err = NewtonRaphson(xx, hh, ConstCoeff(1), 0.1, 1, 1.e-5, 2, WrapBoundary(1, 1))
	require.Error(t, err)
}
