package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.Data(), m.Data())
	return
}

// Col returns a copy of column j as a Vector.
func (m Matrix) Col(j int) (v Vector) {
	var (
		nr, _ = m.Dims()
	)
	v = NewVector(nr)
	mat.Col(v.Data(), j, m.M)
	return
}

func (m Matrix) SetCol(j int, v Vector) Matrix {
	m.M.SetCol(j, v.Data())
	return m
}

func (m Matrix) Row(i int) (v Vector) {
	var (
		_, nc = m.Dims()
	)
	v = NewVector(nc)
	mat.Row(v.Data(), i, m.M)
	return
}

func (m Matrix) Sum() (sum float64) {
	return mat.Sum(m.M)
}
