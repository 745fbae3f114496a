package FD1D

import (
	"math"

	"github.com/notargets/fdlab/utils"
)

// rusanovFlux fills fi with the interface fluxes F[i+1/2] for the Burgers
// flux F = u²/2, using the local max wave speed as the diffusive penalty,
// and va with that wave speed per interface.
func rusanovFlux(h []float64, fi, va []float64) {
	n := len(h)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		uL, uR := h[i], h[ip]
		fL, fR := 0.5*uL*uL, 0.5*uR*uR
		v := math.Abs(uL)
		if vr := math.Abs(uR); vr > v {
			v = vr
		}
		va[i] = v
		fi[i] = 0.5*(fL+fR) - 0.5*v*(uR-uL)
	}
}

// StepRie computes one Rusanov-flux Riemann update candidate. The update
// is flux-differencing, so the discrete sum of the candidate equals that
// of the input up to rounding. Requires a uniform grid.
func StepRie(xx, hh utils.Vector, cfg SchemeConfig) (dt float64, next utils.Vector, err error) {
	dx, err := uniformDx(xx)
	if err != nil {
		return
	}
	var (
		n  = hh.Len()
		h  = hh.Data()
		fi = make([]float64, n)
		va = make([]float64, n)
	)
	rusanovFlux(h, fi, va)
	dt, err = CFLAdv(VarCoeff(va), xx)
	if err != nil {
		return
	}
	dt *= cfg.CFLCut
	next = utils.NewVector(n)
	d := next.Data()
	for i := 0; i < n; i++ {
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		d[i] = h[i] - dt*(fi[i]-fi[im])/dx
	}
	return
}

// EvolveRie advances the self-advecting Burgers equation with the Rusanov
// Riemann solver. Default boundary for this scheme is wrap [1,0].
func EvolveRie(xx, hh utils.Vector, nt int, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		return StepRie(xx, hh, cfg)
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// fluxLimiter is the scalar limiter value φ over the smoothness ratios r:
// the max over the fixed limiter constants θ ∈ {1, 2} of
// min(min(θ·r), min((1+r)/2), θ), clamped non-negative.
func fluxLimiter(r []float64) (phi float64) {
	var (
		thetas = [2]float64{1, 2}
	)
	for _, theta := range thetas {
		m := theta
		for _, ri := range r {
			if v := theta * ri; v < m {
				m = v
			}
			if v := 0.5 * (1 + ri); v < m {
				m = v
			}
		}
		if m > phi {
			phi = m
		}
	}
	return
}

// EvolveLaxRie advances the Burgers equation with the flux-limited hybrid
// of the Riemann and Lax schemes: the interface flux is the Riemann flux
// plus φ times the difference to the Lax-implied flux, so φ=0 degenerates
// to the Riemann solver and large φ to the more diffusive Lax behavior.
func EvolveLaxRie(xx, hh utils.Vector, nt int, cfg SchemeConfig) (*TimeSeries, error) {
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dx, err := uniformDx(xx)
		if err != nil {
			return
		}
		var (
			n  = hh.Len()
			h  = hh.Data()
			fi = make([]float64, n)
			va = make([]float64, n)
			r  = make([]float64, n)
		)
		rusanovFlux(h, fi, va)
		dt, err = CFLAdv(VarCoeff(va), xx)
		if err != nil {
			return
		}
		dt *= cfg.CFLCut
		// The Lax-implied flux here is the averaged-neighbor state
		// itself, not a physical flux.
		fLax := laxAverage(xx, hh, func(i int) float64 { return h[i] }, dt)
		fl := fLax.Data()
		for i := 0; i < n; i++ {
			ip := i + 1
			if ip == n {
				ip = 0
			}
			im := i - 1
			if im < 0 {
				im = n - 1
			}
			r[i] = (h[i] - h[im]) / (h[ip] + h[i])
		}
		phi := fluxLimiter(r)
		hyb := make([]float64, n)
		for i := 0; i < n; i++ {
			hyb[i] = fi[i] + phi*(fl[i]-fi[i])
		}
		next = utils.NewVector(n)
		d := next.Data()
		for i := 0; i < n; i++ {
			im := i - 1
			if im < 0 {
				im = n - 1
			}
			d[i] = h[i] - dt*(hyb[i]-hyb[im])/dx
		}
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}
