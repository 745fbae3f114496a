package FD1D

// SchemeConfig enumerates every per-scheme option with documented
// defaults. It is passed by value to every scheme call.
type SchemeConfig struct {
	Deriv  DerivType // spatial stencil for advective terms
	CFLCut float64   // safety factor on the CFL step, default 0.98
	Bnd    Boundary  // ghost-point policy, default wrap with the stencil's margins
}

// DefaultConfig is the downwind-stencil configuration used throughout the
// reference problems: wrap boundary, margins [0,1], CFL cut 0.98.
func DefaultConfig() SchemeConfig {
	return ConfigFor(Dnw)
}

// ConfigFor builds the default configuration for a stencil, taking the
// ghost margins from the stencil's bias.
func ConfigFor(d DerivType) SchemeConfig {
	l, r := d.BndLimits()
	return SchemeConfig{
		Deriv:  d,
		CFLCut: 0.98,
		Bnd:    WrapBoundary(l, r),
	}
}
