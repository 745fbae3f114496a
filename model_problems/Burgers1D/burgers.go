package Burgers1D

import (
	"math"

	"github.com/notargets/fdlab/FD1D"
	"github.com/notargets/fdlab/utils"
)

type SchemeType uint8

const (
	Advect SchemeType = iota
	SelfAdvect
	Lax
	LaxSelf
	Riemann
	LaxRiemann
	SplitAdd
	SplitLie
	SplitStrang
	SplitStrangHyman
	DiffExplicit
	DiffNewton
	DiffNewtonSelf
	DiffSTS
)

var schemeNames = []string{
	"advect", "self-advect", "lax", "lax-self", "riemann", "lax-riemann",
	"split-add", "split-lie", "split-strang", "split-strang-hyman",
	"diff-explicit", "diff-newton", "diff-newton-self", "diff-sts",
}

func (s SchemeType) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "unknown"
}

// Burgers1D is the model problem driver: a uniform grid on [XMin,XMax],
// the wave-packet initial profile, and one of the catalog schemes.
type Burgers1D struct {
	Scheme     SchemeType
	Nx, Nt     int
	XMin, XMax float64
	A, B       float64 // advective or diffusive coefficients
	CFL        float64
	Nu         float64 // STS stability-accuracy parameter
	NSub       int     // STS substeps per outer step
	Tol        float64 // Newton-Raphson tolerance
	MaxIter    int     // Newton-Raphson iteration cap
	Dt         float64 // fixed step for the implicit solver
	Config     FD1D.SchemeConfig
}

// NewBurgers1D fills in the defaults from the reference problem set.
func NewBurgers1D(scheme SchemeType, nx, nt int, a, b, cfl float64) (c *Burgers1D) {
	c = &Burgers1D{
		Scheme:  scheme,
		Nx:      nx,
		Nt:      nt,
		XMin:    -2.6,
		XMax:    2.6,
		A:       a,
		B:       b,
		CFL:     cfl,
		Nu:      0.9,
		NSub:    10,
		Tol:     1.e-5,
		MaxIter: 2,
		Config:  FD1D.DefaultConfig(),
	}
	switch scheme {
	case Riemann, LaxRiemann:
		c.Config = FD1D.ConfigFor(FD1D.Upw)
	case DiffNewton, DiffNewtonSelf:
		c.Config.Bnd = FD1D.WrapBoundary(1, 1)
		c.Dt = 0.1
	case DiffSTS:
		c.Config.CFLCut = 0.45
	}
	if cfl > 0 {
		c.Config.CFLCut = cfl
	}
	return
}

// Grid returns the uniform spatial axis.
func (c *Burgers1D) Grid() utils.Vector {
	return utils.NewVector(c.Nx).Linspace(c.XMin, c.XMax)
}

// Run integrates the configured scheme and returns the time history plus,
// for the implicit schemes, the Newton diagnostics.
func (c *Burgers1D) Run() (ts *FD1D.TimeSeries, diag *FD1D.NewtonDiag, err error) {
	var (
		xx  = c.Grid()
		hh  = WavePacket(xx)
		a   = FD1D.ConstCoeff(c.A)
		b   = FD1D.ConstCoeff(c.B)
		cfg = c.Config
	)
	switch c.Scheme {
	case Advect:
		ts, err = FD1D.EvolveAdv(xx, hh, c.Nt, a, cfg)
	case SelfAdvect:
		ts, err = FD1D.EvolveSelfAdv(xx, hh, c.Nt, cfg)
	case Lax:
		ts, err = FD1D.EvolveLaxAdv(xx, hh, c.Nt, a, cfg)
	case LaxSelf:
		ts, err = FD1D.EvolveLaxSelfAdv(xx, hh, c.Nt, cfg)
	case Riemann:
		ts, err = FD1D.EvolveRie(xx, hh, c.Nt, cfg)
	case LaxRiemann:
		ts, err = FD1D.EvolveLaxRie(xx, hh, c.Nt, cfg)
	case SplitAdd:
		ts, err = FD1D.OpsLaxAdd(xx, hh, c.Nt, a, b, cfg)
	case SplitLie:
		ts, err = FD1D.OpsLaxLie(xx, hh, c.Nt, a, b, cfg)
	case SplitStrang:
		ts, err = FD1D.OpsLaxStrang(xx, hh, c.Nt, a, b, cfg)
	case SplitStrangHyman:
		ts, err = FD1D.OpsLaxHymanStrang(xx, hh, c.Nt, a, b, cfg)
	case DiffExplicit:
		ts, err = FD1D.EvolveDiffExplicit(xx, hh, c.Nt, a, cfg)
	case DiffNewton:
		ts, diag, err = FD1D.NewtonRaphson(xx, hh, a, c.Dt, c.Nt, c.Tol, c.MaxIter, cfg.Bnd)
	case DiffNewtonSelf:
		ts, diag, err = FD1D.NewtonRaphsonSelf(xx, hh, c.Dt, c.Nt, c.Tol, c.MaxIter, cfg.Bnd)
	case DiffSTS:
		ts, err = FD1D.EvolveSTS(xx, hh, c.Nt, a, c.Nu, c.NSub, cfg)
	default:
		err = &FD1D.ConfigError{Msg: "unknown scheme " + c.Scheme.String()}
	}
	return
}

// WavePacket is the reference initial profile cos²(6πx/5)/cosh(5x²).
func WavePacket(xx utils.Vector) (hh utils.Vector) {
	return xx.Copy().Apply(func(x float64) float64 {
		c := math.Cos(6 * math.Pi * x / 5)
		return c * c / math.Cosh(5*x*x)
	})
}

// ShiftedWavePacket is the analytic advection solution: the initial
// profile evaluated on the grid shifted periodically by a·t over
// [x0, xf].
func ShiftedWavePacket(xx utils.Vector, t, a, x0, xf float64) (hh utils.Vector) {
	shifted := xx.Copy().Apply(func(x float64) float64 {
		return math.Mod(math.Mod(x-a*t-x0, xf-x0)+(xf-x0), xf-x0) + x0
	})
	return WavePacket(shifted)
}
