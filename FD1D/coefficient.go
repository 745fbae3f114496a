package FD1D

import (
	"math"

	"github.com/notargets/fdlab/utils"
)

// Coefficient is an advective or diffusive coefficient, either uniform
// over the grid or varying per point. A uniform coefficient broadcasts
// from At regardless of index.
type Coefficient struct {
	vals    []float64
	uniform float64
}

func ConstCoeff(c float64) Coefficient {
	return Coefficient{uniform: c}
}

func VarCoeff(vals []float64) Coefficient {
	return Coefficient{vals: vals}
}

func CoeffFromVector(v utils.Vector) Coefficient {
	return Coefficient{vals: v.Data()}
}

func (a Coefficient) IsUniform() bool { return a.vals == nil }

func (a Coefficient) At(i int) float64 {
	if a.vals == nil {
		return a.uniform
	}
	return a.vals[i]
}

func (a Coefficient) AbsMax() (max float64) {
	if a.vals == nil {
		return math.Abs(a.uniform)
	}
	for _, v := range a.vals {
		if av := math.Abs(v); av > max {
			max = av
		}
	}
	return
}

// IsZero reports whether the coefficient is exactly zero everywhere, which
// leaves the CFL step size undefined.
func (a Coefficient) IsZero() bool {
	if a.vals == nil {
		return a.uniform == 0
	}
	for _, v := range a.vals {
		if v != 0 {
			return false
		}
	}
	return true
}
