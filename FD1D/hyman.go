package FD1D

import (
	"github.com/notargets/fdlab/utils"
)

// HymanState carries the one step of history the Hyman multistep formula
// needs: the previous field and the previous step size. A nil prior state
// triggers the self-starting half-step.
type HymanState struct {
	FOld  utils.Vector
	DtOld float64
}

// HymanAdvance advances the advective term one step of size dth with the
// third-order Hyman predictor-corrector. The returned state must be fed
// back into the next call; the first call passes prior = nil.
func HymanAdvance(xx, f utils.Vector, dth float64, a Coefficient, prior *HymanState, cfg SchemeConfig) (fNew utils.Vector, state HymanState, err error) {
	_, rhs, err := StepAdv(xx, f, a, cfg)
	if err != nil {
		return
	}
	if prior == nil {
		// Self-start: averaged neighbors plus a half-weighted RHS step.
		state.FOld = f.Copy()
		fNew = f.Roll(1).Add(f.Roll(-1)).Scale(0.5).Add(rhs.Scale(dth))
	} else {
		var (
			ratio = dth / prior.DtOld
			den   = 2 + 3*ratio
			a1    = ratio * ratio
			b1    = dth * (1 + ratio)
			a2    = 2 * (1 + ratio) / den
			b2    = dth * (1 + ratio*ratio) / den
			c2    = dth * (1 + ratio) / den
			n     = f.Len()
			fd    = f.Data()
			od    = prior.FOld.Data()
			rd    = rhs.Data()
		)
		pred := utils.NewVector(n)
		fsav := utils.NewVector(n)
		pd := pred.Data()
		sd := fsav.Data()
		for i := 0; i < n; i++ {
			pd[i] = fd[i] + a1*(od[i]-fd[i]) + b1*rd[i]
			sd[i] = pd[i] + a2*(fd[i]-pd[i]) + b2*rd[i]
		}
		state.FOld = f.Copy()
		if pred, err = cfg.Bnd.Apply(pred); err != nil {
			return
		}
		if _, rhs, err = StepAdv(xx, pred, a, cfg); err != nil {
			return
		}
		fNew = fsav.Add(rhs.Scale(c2))
	}
	if fNew, err = cfg.Bnd.Apply(fNew); err != nil {
		return
	}
	state.DtOld = dth
	return
}
