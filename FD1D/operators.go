package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// DerivType selects the finite-difference stencil used for the advective
// spatial derivative.
type DerivType uint8

const (
	Dnw DerivType = iota // (f[i+1]-f[i]) / (x[i+1]-x[i]), first order
	Upw                  // (f[i]-f[i-1]) / (x[i]-x[i-1]), first order
	Cent                 // (f[i+1]-f[i-1]) / (x[i+1]-x[i-1]), second order
)

func (d DerivType) String() string {
	switch d {
	case Dnw:
		return "downwind"
	case Upw:
		return "upwind"
	case Cent:
		return "centered"
	}
	return "unknown"
}

// BndLimits returns the default ghost margins for the stencil: the points
// it leaves under-resolved at each end of the grid.
func (d DerivType) BndLimits() (left, right int) {
	switch d {
	case Upw:
		return 1, 0
	case Cent:
		return 1, 1
	default: // Dnw
		return 0, 1
	}
}

func (d DerivType) Apply(xx, hh utils.Vector) utils.Vector {
	switch d {
	case Upw:
		return DerivUpw(xx, hh)
	case Cent:
		return DerivCent(xx, hh)
	default:
		return DerivDnw(xx, hh)
	}
}

// DerivDnw is the downwind first derivative of hh with respect to xx. The
// index space wraps, so the last point is computed across the periodic
// seam and is only meaningful for periodic data.
func DerivDnw(xx, hh utils.Vector) (hp utils.Vector) {
	var (
		n = hh.Len()
		x = xx.Data()
		h = hh.Data()
	)
	hp = utils.NewVector(n)
	d := hp.Data()
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		d[i] = (h[ip] - h[i]) / (x[ip] - x[i])
	}
	return
}

// DerivUpw is the upwind first derivative of hh with respect to xx. The
// first point wraps.
func DerivUpw(xx, hh utils.Vector) (hp utils.Vector) {
	var (
		n = hh.Len()
		x = xx.Data()
		h = hh.Data()
	)
	hp = utils.NewVector(n)
	d := hp.Data()
	for i := 0; i < n; i++ {
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		d[i] = (h[i] - h[im]) / (x[i] - x[im])
	}
	return
}

// DerivCent is the centered, second-order first derivative of hh with
// respect to xx. Both end points wrap.
func DerivCent(xx, hh utils.Vector) (hp utils.Vector) {
	var (
		n = hh.Len()
		x = xx.Data()
		h = hh.Data()
	)
	hp = utils.NewVector(n)
	d := hp.Data()
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		d[i] = (h[ip] - h[im]) / (x[ip] - x[im])
	}
	return
}
