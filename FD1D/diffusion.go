package FD1D

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/fdlab/utils"
)

// diffOperator holds the periodic second-difference operator assembled
// once as a sparse CSR matrix, plus the uniform spacing it assumes.
type diffOperator struct {
	lap *sparse.CSR
	dx  float64
}

func newDiffOperator(xx utils.Vector) (op *diffOperator, err error) {
	dx, err := uniformDx(xx)
	if err != nil {
		return
	}
	n := xx.Len()
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		ip := i + 1
		if ip == n {
			ip = 0
		}
		im := i - 1
		if im < 0 {
			im = n - 1
		}
		dok.Set(i, i, -2)
		dok.Set(i, ip, 1)
		dok.Set(i, im, 1)
	}
	op = &diffOperator{lap: dok.ToCSR(), dx: dx}
	return
}

// apply returns the second difference (f[i+1]-2f[i]+f[i-1]) per point.
func (op *diffOperator) apply(h utils.Vector) (d2 utils.Vector) {
	d2 = utils.NewVector(h.Len())
	d2.V.MulVec(op.lap, h.V)
	return
}

// rhs is the diffusive right hand side a·D²u/dx².
func (op *diffOperator) rhs(h utils.Vector, a Coefficient) (rhs utils.Vector) {
	rhs = op.apply(h)
	d := rhs.Data()
	inv := 1 / (op.dx * op.dx)
	for i := range d {
		d[i] *= a.At(i) * inv
	}
	return
}

// StepDiff returns the diffusive right hand side of the Burgers equation,
// a·(u[i+1]-2u[i]+u[i-1])/dx². Requires a uniform grid.
func StepDiff(xx, hh utils.Vector, a Coefficient) (rhs utils.Vector, err error) {
	op, err := newDiffOperator(xx)
	if err != nil {
		return
	}
	rhs = op.rhs(hh, a)
	return
}

// EvolveDiffExplicit advances the diffusive term explicitly with the
// diffusive CFL step size.
func EvolveDiffExplicit(xx, hh utils.Vector, nt int, a Coefficient, cfg SchemeConfig) (*TimeSeries, error) {
	op, err := newDiffOperator(xx)
	if err != nil {
		return nil, err
	}
	step := func(xx, hh utils.Vector) (dt float64, next utils.Vector, err error) {
		dt, err = CFLDiff(a, xx)
		if err != nil {
			return
		}
		dt *= cfg.CFLCut
		next = hh.Copy().Add(op.rhs(hh, a).Scale(dt))
		return
	}
	return Evolve(xx, hh, nt, step, cfg.Bnd)
}

// NewtonDiag records the per-time-step implicit solver diagnostics: the
// final convergence metric, the number of Newton iterations taken, and
// whether the tolerance was reached before the iteration cap. Exhausting
// the cap is not fatal; the best iterate is accepted and flagged here.
type NewtonDiag struct {
	Err       []float64
	Count     []int
	Converged []bool
}

// NewtonStep performs one Newton iteration of the fully implicit
// diffusion update F(u) = u - uo - a·dt·D²u/dx² = 0: it builds the
// analytic tridiagonal Jacobian, solves J·Δ = F(ug) directly, applies the
// boundary policy to the improved iterate and returns it together with
// the convergence metric max(|un-ug| / (|un|+tol)).
func NewtonStep(xx, ug, uo utils.Vector, a Coefficient, dt, tol float64, bnd Boundary) (un utils.Vector, metric float64, err error) {
	op, err := newDiffOperator(xx)
	if err != nil {
		return
	}
	var (
		n   = ug.Len()
		inv = dt / (op.dx * op.dx)
		dl  = make([]float64, n-1)
		dm  = make([]float64, n)
		du  = make([]float64, n-1)
		ugd = ug.Data()
		uod = uo.Data()
	)
	for i := 0; i < n; i++ {
		al := a.At(i) * inv
		dm[i] = 1 + 2*al
		if i < n-1 {
			du[i] = -al
		}
		if i > 0 {
			dl[i-1] = -al
		}
	}
	d2 := op.apply(ug)
	f := utils.NewVector(n)
	fd := f.Data()
	d2d := d2.Data()
	for i := 0; i < n; i++ {
		fd[i] = ugd[i] - uod[i] - a.At(i)*d2d[i]*inv
	}
	var delta mat.VecDense
	jac := mat.NewTridiag(n, dl, dm, du)
	if errS := jac.SolveVecTo(&delta, false, f.V); errS != nil {
		err = &LinearAlgebraError{Msg: "tridiagonal Jacobian solve failed", Err: errS}
		return
	}
	un = utils.NewVector(n)
	und := un.Data()
	metric = 0
	for i := 0; i < n; i++ {
		und[i] = ugd[i] - delta.AtVec(i)
		if m := math.Abs(und[i]-ugd[i]) / (math.Abs(und[i]) + tol); m > metric {
			metric = m
		}
	}
	un, err = bnd.Apply(un)
	return
}

// newtonEvolve is the shared implicit marching loop. coeff selects the
// Jacobian/residual coefficient for the current iterate, which lets the
// nonlinear variant substitute the local field value.
func newtonEvolve(xx, hh utils.Vector, coeff func(ug utils.Vector) Coefficient, dt float64, nt int,
	tol float64, maxIter int, bnd Boundary) (ts *TimeSeries, diag *NewtonDiag, err error) {
	if err = ValidateGrid(xx); err != nil {
		return nil, nil, err
	}
	if err = validateField(xx, hh); err != nil {
		return nil, nil, err
	}
	if err = validateSteps(nt); err != nil {
		return nil, nil, err
	}
	if err = bnd.Validate(xx.Len()); err != nil {
		return nil, nil, err
	}
	if dt <= 0 {
		return nil, nil, configErrorf("implicit solver needs dt > 0, have %v", dt)
	}
	ts = newTimeSeries(xx.Len(), nt)
	ts.U.SetCol(0, hh)
	diag = &NewtonDiag{
		Err:       make([]float64, nt),
		Count:     make([]int, nt),
		Converged: make([]bool, nt),
	}
	diag.Converged[0] = true
	for it := 1; it < nt; it++ {
		uo := ts.U.Col(it - 1)
		ug := uo.Copy()
		// The convergence state is reset unconditionally per step so a
		// stale value can never skip the first iteration.
		metric := math.Inf(1)
		count := 0
		for metric >= tol && count < maxIter {
			var un utils.Vector
			un, metric, err = NewtonStep(xx, ug, uo, coeff(ug), dt, tol, bnd)
			if err != nil {
				return nil, nil, err
			}
			count++
			ug = un
		}
		diag.Err[it] = metric
		diag.Count[it] = count
		diag.Converged[it] = metric < tol
		ts.T[it] = ts.T[it-1] + dt
		ts.U.SetCol(it, ug)
	}
	return
}

// NewtonRaphson solves the linear implicit diffusion update with constant
// or per-point coefficient a, at a fixed step size dt, reporting per-step
// convergence diagnostics.
func NewtonRaphson(xx, hh utils.Vector, a Coefficient, dt float64, nt int,
	tol float64, maxIter int, bnd Boundary) (*TimeSeries, *NewtonDiag, error) {
	return newtonEvolve(xx, hh, func(utils.Vector) Coefficient { return a }, dt, nt, tol, maxIter, bnd)
}

// NewtonRaphsonSelf solves the nonlinear variant where the diffusion
// coefficient is the field itself: the Jacobian diagonal uses the local
// iterate value in place of a constant coefficient.
func NewtonRaphsonSelf(xx, hh utils.Vector, dt float64, nt int,
	tol float64, maxIter int, bnd Boundary) (*TimeSeries, *NewtonDiag, error) {
	return newtonEvolve(xx, hh, func(ug utils.Vector) Coefficient { return CoeffFromVector(ug) }, dt, nt, tol, maxIter, bnd)
}
