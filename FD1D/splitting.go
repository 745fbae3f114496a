package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// Operator-splitting combinators for two simultaneous advective terms a
// and b. The sub-step formulas, including the shared-averaging correction
// of the additive variant and the half-step factors of the Strang
// variants, are experimental relative to canonical splitting theory and
// kept exactly as formulated.

// splitDt is the shared step size: half the smaller of the two advective
// CFL limits, each scaled by the safety factor.
func splitDt(xx utils.Vector, a, b Coefficient, cflCut float64) (dt float64, err error) {
	dtA, err := CFLAdv(a, xx)
	if err != nil {
		return
	}
	dtB, err := CFLAdv(b, xx)
	if err != nil {
		return
	}
	dt = dtA
	if dtB < dt {
		dt = dtB
	}
	dt *= 0.5 * cflCut
	return
}

// laxSub is one Lax partial update on a uniform grid:
// ½(u[i+1]+u[i-1]) - c[i]·dt/(factor·dx)·(u[i+1]-u[i-1]).
func laxSub(h []float64, c Coefficient, dt, dx, factor float64) (next []float64) {
	n := len(h)
	next = make([]float64, n)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		next[i] = 0.5*(h[ip]+h[im]) - c.At(i)*dt/(factor*dx)*(h[ip]-h[im])
	}
	return
}

// OpsLaxAdd advances both advective terms from the same prior state and
// combines them additively, subtracting the shared neighbor average.
func OpsLaxAdd(xx, hh utils.Vector, nt int, a, b Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dx, err := uniformDx(xx)
		if err != nil {
			return
		}
		dt, err = splitDt(xx, a, b, cfg.CFLCut)
		if err != nil {
			return
		}
		var (
			n = hh.Len()
			h = hh.Data()
		)
		unn := laxSub(h, a, dt, dx, 2)
		vnn := laxSub(h, b, dt, dx, 2)
		next = utils.NewVector(n)
		d := next.Data()
		for i := 0; i < n; i++ {
			ip := i + 1
			if ip == n {
				ip = 0
			}
			im := i - 1
			if im < 0 {
				im = n - 1
			}
			d[i] = unn[i] + vnn[i] - 0.5*h[ip] - 0.5*h[im]
		}
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// OpsLaxLie advances sequentially: a full Lax sub-step with a into an
// intermediate state, then a full sub-step with b from that state.
func OpsLaxLie(xx, hh utils.Vector, nt int, a, b Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dx, err := uniformDx(xx)
		if err != nil {
			return
		}
		dt, err = splitDt(xx, a, b, cfg.CFLCut)
		if err != nil {
			return
		}
		w := laxSub(hh.Data(), a, dt, dx, 2)
		next = utils.NewVector(len(w), laxSub(w, b, dt, dx, 2))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// OpsLaxStrang advances symmetrically: half-step with a, full step with b,
// half-step with a again, all Lax sub-steps.
func OpsLaxStrang(xx, hh utils.Vector, nt int, a, b Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dx, err := uniformDx(xx)
		if err != nil {
			return
		}
		dt, err = splitDt(xx, a, b, cfg.CFLCut)
		if err != nil {
			return
		}
		w := laxSub(hh.Data(), a, dt, dx, 4)
		v := laxSub(w, b, dt, dx, 2)
		next = utils.NewVector(len(v), laxSub(v, a, dt, dx, 4))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// OpsLaxHymanStrang is the Strang composition with the middle b step
// driven by the Hyman predictor-corrector at dt/2, threading the
// integrator history across outer steps.
func OpsLaxHymanStrang(xx, hh utils.Vector, nt int, a, b Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	var state *HymanState
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dx, err := uniformDx(xx)
		if err != nil {
			return
		}
		dt, err = splitDt(xx, a, b, cfg.CFLCut)
		if err != nil {
			return
		}
		un := utils.NewVector(hh.Len(), laxSub(hh.Data(), a, dt, dx, 4))
		vn, newState, err := HymanAdvance(xx, un, dt/2, b, state, cfg)
		if err != nil {
			return
		}
		state = &newState
		next = utils.NewVector(vn.Len(), laxSub(vn.Data(), a, dt, dx, 4))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}
