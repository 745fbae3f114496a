package FD1D

import (
	"math"

	"github.com/notargets/fdlab/utils"
)

// gridSpacing returns per-point spacing: central differences in the
// interior, one-sided at the ends.
func gridSpacing(xx utils.Vector) (dx []float64) {
	var (
		n = xx.Len()
		x = xx.Data()
	)
	dx = make([]float64, n)
	dx[0] = x[1] - x[0]
	dx[n-1] = x[n-1] - x[n-2]
	for i := 1; i < n-1; i++ {
		dx[i] = 0.5 * (x[i+1] - x[i-1])
	}
	return
}

// CFLAdv returns the advective stability limit min(dx/|a|) over the grid.
// The caller scales by its safety factor. An identically zero coefficient
// yields a DomainError.
func CFLAdv(a Coefficient, xx utils.Vector) (dt float64, err error) {
	if a.IsZero() {
		return 0, domainErrorf("advective CFL undefined for an all-zero coefficient")
	}
	var (
		dx = gridSpacing(xx)
	)
	dt = math.Inf(1)
	for i, d := range dx {
		av := math.Abs(a.At(i))
		if av == 0 {
			continue
		}
		if r := d / av; r < dt {
			dt = r
		}
	}
	return
}

// CFLDiff returns the diffusive stability limit min(dx²/(2|a|)).
func CFLDiff(a Coefficient, xx utils.Vector) (dt float64, err error) {
	if a.IsZero() {
		return 0, domainErrorf("diffusive CFL undefined for an all-zero coefficient")
	}
	var (
		dx = gridSpacing(xx)
	)
	dt = math.Inf(1)
	for i, d := range dx {
		av := math.Abs(a.At(i))
		if av == 0 {
			continue
		}
		if r := d * d / (2 * av); r < dt {
			dt = r
		}
	}
	return
}
