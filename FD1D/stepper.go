package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// TimeSeries is the full time history of a run: T[i] pairs with column i
// of U, an N x nt snapshot matrix.
type TimeSeries struct {
	T []float64
	U utils.Matrix
}

func newTimeSeries(n, nt int) *TimeSeries {
	return &TimeSeries{
		T: make([]float64, nt),
		U: utils.NewMatrix(n, nt),
	}
}

func (ts *TimeSeries) Steps() int { return len(ts.T) }

// Field returns a copy of the solution at time level i.
func (ts *TimeSeries) Field(i int) utils.Vector { return ts.U.Col(i) }

// Final returns a copy of the last solution column.
func (ts *TimeSeries) Final() utils.Vector { return ts.U.Col(len(ts.T) - 1) }

// StepFunc computes one candidate update: the CFL-limited step size and
// the full-width next state, before the boundary policy is applied.
type StepFunc func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error)

// Evolve is the shared explicit marching loop: for each of nt-1 steps,
// compute the candidate next state, re-pad the ghost points, store the
// snapshot and accumulate time. The loop always runs the full nt-1 steps;
// the caller chooses nt to reach its target final time.
func Evolve(xx, hh utils.Vector, nt int, step StepFunc, bnd Boundary) (ts *TimeSeries, err error) {
	if err = ValidateGrid(xx); err != nil {
		return nil, err
	}
	if err = validateField(xx, hh); err != nil {
		return nil, err
	}
	if err = validateSteps(nt); err != nil {
		return nil, err
	}
	if err = bnd.Validate(xx.Len()); err != nil {
		return nil, err
	}
	ts = newTimeSeries(xx.Len(), nt)
	ts.U.SetCol(0, hh)
	cur := hh.Copy()
	for i := 0; i < nt-1; i++ {
		dt, next, errS := step(xx, cur)
		if errS != nil {
			return nil, errS
		}
		padded, errB := bnd.Apply(next)
		if errB != nil {
			return nil, errB
		}
		ts.U.SetCol(i+1, padded)
		ts.T[i+1] = ts.T[i] + dt
		cur = padded
	}
	return ts, nil
}
