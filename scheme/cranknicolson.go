package scheme

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/solver"
	"github.com/gofdm/gofdm/tridiag"
)

// CrankNicolson advances df/dt = Lf with an explicit half-step of dt/2
// followed by an implicit half-step of dt/2, the average of forward and
// backward Euler. It is unconditionally stable and second-order accurate
// in time.
type CrankNicolson struct {
	solver solver.Solver
}

// NewCrankNicolson builds a CrankNicolson scheme backed by s.
func NewCrankNicolson(s solver.Solver) CrankNicolson {
	return CrankNicolson{solver: s}
}

// Solve implements Scheme.
func (o CrankNicolson) Solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator) ([]float64, error) {
	return o.solve(f, bcs, timeGrid, L, nil, nil)
}

// SolveAndSave implements Scheme.
func (o CrankNicolson) SolveAndSave(f []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, L tridiag.Operator, sink Recorder) ([]float64, error) {
	if err := recordLevel(sink, timeGrid[0], spatialGrid, f); err != nil {
		return nil, err
	}
	return o.solve(f, bcs, timeGrid, L, spatialGrid, sink)
}

func (o CrankNicolson) solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator, spatialGrid []float64, sink Recorder) ([]float64, error) {
	if o.solver == nil {
		return nil, chk.Err("scheme: crank-nicolson scheme has no solver")
	}
	n := L.Size()
	if len(f) != n {
		return nil, chk.Err("scheme: initial condition length %d does not match operator size %d", len(f), n)
	}
	ident := tridiag.I(n)
	for i := 0; i < len(timeGrid)-1; i++ {
		dt := timeGrid[i+1] - timeGrid[i]
		half := L.Scale(0.5 * dt)

		e, err := ident.Add(half)
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

		m, err := ident.Sub(half)
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
