package FD1D

import (
	"fmt"

	"github.com/notargets/fdlab/utils"
)

// ConfigError reports an invalid grid, boundary, or step-count setup.
// The call producing it returns no partial results.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports inputs for which a scheme quantity is mathematically
// undefined, e.g. a CFL step size for an identically zero coefficient.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "domain: " + e.Msg }

func domainErrorf(format string, args ...interface{}) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// LinearAlgebraError reports a failed linear solve, e.g. a singular
// Jacobian inside the implicit diffusion solver.
type LinearAlgebraError struct {
	Msg string
	Err error
}

func (e *LinearAlgebraError) Error() string {
	if e.Err != nil {
		return "linalg: " + e.Msg + ": " + e.Err.Error()
	}
	return "linalg: " + e.Msg
}

func (e *LinearAlgebraError) Unwrap() error { return e.Err }

// ValidateGrid checks that xx is a strictly increasing axis of at least
// three points.
func ValidateGrid(xx utils.Vector) error {
	var (
		x = xx.Data()
	)
	if len(x) < 3 {
		return configErrorf("grid needs at least 3 points, have %d", len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return configErrorf("grid not strictly increasing at index %d: %v >= %v", i, x[i-1], x[i])
		}
	}
	return nil
}

func validateSteps(nt int) error {
	if nt < 2 {
		return configErrorf("need at least 2 time levels, have nt = %d", nt)
	}
	return nil
}

func validateField(xx, hh utils.Vector) error {
	if xx.Len() != hh.Len() {
		return configErrorf("field length %d does not match grid length %d", hh.Len(), xx.Len())
	}
	return nil
}

// uniformDx returns the grid spacing for schemes that require a uniform
// grid, or a ConfigError when the spacing varies.
func uniformDx(xx utils.Vector) (dx float64, err error) {
	var (
		x = xx.Data()
	)
	dx = x[1] - x[0]
	for i := 2; i < len(x); i++ {
		if d := x[i] - x[i-1]; d < dx*(1-1.e-10) || d > dx*(1+1.e-10) {
			return 0, configErrorf("scheme requires uniform spacing: dx[0] = %v, dx[%d] = %v", dx, i-1, d)
		}
	}
	return
}
