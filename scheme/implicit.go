package scheme

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/solver"
	"github.com/gofdm/gofdm/tridiag"
)

// Implicit is the backward-Euler scheme: (I - dt*L) f(t+dt) = f(t). It
// requires a linear solver, supplied at construction time through
// NewImplicit. A zero-value Implicit has no solver; its Solve returns an
// error instead of stepping.
type Implicit struct {
	solver solver.Solver
}

// NewImplicit builds an Implicit scheme backed by s.
func NewImplicit(s solver.Solver) Implicit {
	return Implicit{solver: s}
}

// Solve implements Scheme.
func (o Implicit) Solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator) ([]float64, error) {
	return o.solve(f, bcs, timeGrid, L, nil, nil)
}

// SolveAndSave implements Scheme.
func (o Implicit) SolveAndSave(f []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, L tridiag.Operator, sink Recorder) ([]float64, error) {
	if err := recordLevel(sink, timeGrid[0], spatialGrid, f); err != nil {
		return nil, err
	}
	return o.solve(f, bcs, timeGrid, L, spatialGrid, sink)
}

func (o Implicit) solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator, spatialGrid []float64, sink Recorder) ([]float64, error) {
	if o.solver == nil {
		return nil, chk.Err("scheme: implicit scheme has no solver")
	}
	n := L.Size()
	if len(f) != n {
		return nil, chk.Err("scheme: initial condition length %d does not match operator size %d", len(f), n)
	}
	ident := tridiag.I(n)
	for i := 0; i < len(timeGrid)-1; i++ {
		dt := timeGrid[i+1] - timeGrid[i]
		m, err := ident.Sub(L.Scale(dt))
		if err != nil {
			return nil, err
		}
		for _, c := range bcs {
			if err := c.BeforeImplicitStep(&m, f, timeGrid[i]); err != nil {
				return nil, err
			}
		}
		f, err = o.solver.Solve(m, f)
		if err != nil {
			return nil, err
		}
		for _, c := range bcs {
			if err := c.AfterImplicitStep(f, timeGrid[i]); err != nil {
				return nil, err
			}
		}
		if sink != nil {
			if err := recordLevel(sink, timeGrid[i+1], spatialGrid, f); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
