package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// StepAdv returns the CFL-limited step size and the right hand side
// -a du/dx of the advective term, using the configured stencil.
func StepAdv(xx, hh utils.Vector, a Coefficient, cfg SchemeConfig) (dt float64, rhs utils.Vector, err error) {
	dt, err = CFLAdv(a, xx)
	if err != nil {
		return
	}
	dt *= cfg.CFLCut
	rhs = cfg.Deriv.Apply(xx, hh)
	d := rhs.Data()
	for i := range d {
		d[i] *= -a.At(i)
	}
	return
}

// StepSelfAdv is StepAdv with the field itself as the advective
// coefficient (Burgers nonlinearity).
func StepSelfAdv(xx, hh utils.Vector, cfg SchemeConfig) (dt float64, rhs utils.Vector, err error) {
	return StepAdv(xx, hh, CoeffFromVector(hh), cfg)
}

// EvolveAdv advances the advection equation nt-1 steps with the plain
// explicit update u + dt*rhs.
func EvolveAdv(xx, hh utils.Vector, nt int, a Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dt, rhs, err := StepAdv(xx, hh, a, cfg)
		if err != nil {
			return
		}
		next = hh.Copy().Add(rhs.Scale(dt))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// EvolveSelfAdv advances the self-advecting (a = u) Burgers equation with
// the plain explicit update.
func EvolveSelfAdv(xx, hh utils.Vector, nt int, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dt, rhs, err := StepSelfAdv(xx, hh, cfg)
		if err != nil {
			return
		}
		next = hh.Copy().Add(rhs.Scale(dt))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// laxAverage returns the Lax candidate state
// ½(u[i+1]+u[i-1]) - c[i]*dt/(x[i+1]-x[i-1])*(u[i+1]-u[i-1]),
// the neighbor-averaged update that trades accuracy for stability.
func laxAverage(xx, hh utils.Vector, c func(i int) float64, dt float64) (next utils.Vector) {
	var (
		n = hh.Len()
		x = xx.Data()
		h = hh.Data()
	)
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
		d[i] = 0.5*(h[ip]+h[im]) - c(i)*dt/(x[ip]-x[im])*(h[ip]-h[im])
	}
	return
}

// EvolveLaxAdv advances constant/array-coefficient advection with the Lax
// method: neighbor-averaged state plus dt times the stencil RHS.
func EvolveLaxAdv(xx, hh utils.Vector, nt int, a Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dt, rhs, err := StepAdv(xx, hh, a, cfg)
		if err != nil {
			return
		}
		var (
			n = hh.Len()
			h = hh.Data()
		)
		next = utils.NewVector(n)
		d := next.Data()
		r := rhs.Data()
		for i := 0; i < n; i++ {
			ip := i + 1
			if ip == n {
				ip = 0
			}
			im := i - 1
			if im < 0 {
				im = n - 1
			}
			d[i] = 0.5*(h[ip]+h[im]) + r[i]*dt
		}
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// EvolveLaxSelfAdv advances the self-advecting equation with the Lax
// averaged-neighbor formula, the step size taken from the CFL of u itself.
func EvolveLaxSelfAdv(xx, hh utils.Vector, nt int, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dt, err = CFLAdv(CoeffFromVector(hh), xx)
		if err != nil {
			return
		}
		dt *= cfg.CFLCut
		h := hh.Data()
		next = laxAverage(xx, hh, func(i int) float64 { return h[i] }, dt)
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}
