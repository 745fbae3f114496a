package FD1D

import (
	"math"

	"github.com/notargets/fdlab/utils"
)

// TauSTS is the super-time-stepping substep weight
// [(ν-1)·cos(π(2i-1)/2n) + ν + 1]⁻¹ for substep i of n, with ν in (0,1)
// controlling the stability-accuracy trade-off.
func TauSTS(nu float64, n, i int) float64 {
	return 1.0 / ((nu-1)*math.Cos(math.Pi*(2*float64(i)-1)/(2*float64(n))) + nu + 1)
}

// EvolveSTS advances the diffusive term with super-time-stepping: each
// outer step accumulates nSub explicit diffusion substeps weighted by the
// Chebyshev-like schedule, applying the boundary policy once per outer
// step. A CFL cut of 0.45 is the customary safety factor here.
func EvolveSTS(xx, hh utils.Vector, nt int, a Coefficient, nu float64, nSub int, cfg SchemeConfig) (*TimeSeries, error) {
	if nu <= 0 || nu >= 1 {
		return nil, configErrorf("STS nu must lie in (0,1), have %v", nu)
	}
	if nSub < 1 {
		return nil, configErrorf("STS needs at least 1 substep, have %d", nSub)
	}
	op, err := newDiffOperator(xx)
	if err != nil {
		return nil, err
	}
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dtExp, err := CFLDiff(a, xx)
		if err != nil {
			return
		}
		dtExp *= cfg.CFLCut
		next = hh.Copy()
		for j := 1; j <= nSub; j++ {
			tau := dtExp * TauSTS(nu, nSub, j)
			next.Add(op.rhs(next, a).Scale(tau))
			dt += tau
		}
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}
