package scheme

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/tridiag"
)

// Explicit is the forward-Euler scheme: f(t+dt) = (I + dt*L) f(t). It needs
// no linear solver.
type Explicit struct{}

// Solve implements Scheme.
func (Explicit) Solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator) ([]float64, error) {
	return explicitSolve(f, bcs, timeGrid, L, nil, nil)
}

// SolveAndSave implements Scheme.
func (Explicit) SolveAndSave(f []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, L tridiag.Operator, sink Recorder) ([]float64, error) {
	if err := recordLevel(sink, timeGrid[0], spatialGrid, f); err != nil {
		return nil, err
	}
	return explicitSolve(f, bcs, timeGrid, L, spatialGrid, sink)
}

func explicitSolve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator, spatialGrid []float64, sink Recorder) ([]float64, error) {
	n := L.Size()
	if len(f) != n {
		return nil, chk.Err("scheme: initial condition length %d does not match operator size %d", len(f), n)
	}
	ident := tridiag.I(n)
	for i := 0; i < len(timeGrid)-1; i++ {
		dt := timeGrid[i+1] - timeGrid[i]
		e, err := ident.Add(L.Scale(dt))
		if err != nil {
			return nil, err
		}
		for _, c := range bcs {
			if err := c.BeforeExplicitStep(&e); err != nil {
				return nil, err
			}
		}
		f, err = e.MatVec(f)
		if err != nil {
			return nil, err
		}
		for _, c := range bcs {
			if err := c.AfterExplicitStep(f, timeGrid[i]); err != nil {
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
