package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// BndType selects how ghost points are refilled after an interior update.
type BndType uint8

const (
	Wrap     BndType = iota // cyclic from the retained interior
	Edge                    // replicate the outermost retained value
	Constant                // caller-supplied fill value
)

func (b BndType) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Edge:
		return "edge"
	case Constant:
		return "constant"
	}
	return "unknown"
}

// Boundary is a padding policy: Left and Right ghost widths plus the mode
// used to refill them. Fill is only read for Constant.
type Boundary struct {
	Type        BndType
	Left, Right int
	Fill        float64
}

func WrapBoundary(left, right int) Boundary {
	return Boundary{Type: Wrap, Left: left, Right: right}
}

func (b Boundary) Validate(n int) error {
	if b.Left < 0 || b.Right < 0 {
		return configErrorf("boundary margins must be non-negative, have [%d,%d]", b.Left, b.Right)
	}
	if 2*b.Left >= n || 2*b.Right >= n {
		return configErrorf("boundary margins [%d,%d] must be < N/2 for N = %d", b.Left, b.Right, n)
	}
	// the retained interior must be wide enough to source each margin
	if m := n - b.Left - b.Right; m < b.Left || m < b.Right {
		return configErrorf("boundary margins [%d,%d] leave a %d-wide interior for N = %d", b.Left, b.Right, n-b.Left-b.Right, n)
	}
	return nil
}

// Apply slices the margins off a full-width candidate state and re-pads it
// to the original width using the policy mode. Idempotent for an already
// consistent array.
func (b Boundary) Apply(u utils.Vector) (r utils.Vector, err error) {
	var (
		n = u.Len()
	)
	if err = b.Validate(n); err != nil {
		return
	}
	r = u.Copy()
	d := r.Data()
	m := n - b.Left - b.Right
	core := d[b.Left : b.Left+m]
	for i := 0; i < b.Left; i++ {
		switch b.Type {
		case Wrap:
			d[i] = core[m-b.Left+i]
		case Edge:
			d[i] = core[0]
		case Constant:
			d[i] = b.Fill
		}
	}
	for i := 0; i < b.Right; i++ {
		j := b.Left + m + i
		switch b.Type {
		case Wrap:
			d[j] = core[i]
		case Edge:
			d[j] = core[m-1]
		case Constant:
			d[j] = b.Fill
		}
	}
	return
}
