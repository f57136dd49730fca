// Package scheme implements the time-integration schemes that advance
// df/dt = Lf over a time grid: Explicit (forward Euler), Implicit
// (backward Euler) and Crank-Nicolson (half-explicit, half-implicit).
package scheme

import (
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/tridiag"
)

// Recorder receives one (t, s, f) sample per grid node per time level,
// the same shape the reference implementation's CSV sink captures. csvio.Writer
// implements this; the core scheme package has no CSV dependency of its own.
type Recorder interface {
	Record(t, s, f float64) error
}

// Scheme advances an initial condition f over time_grid under the linear
// operator L, subject to the given boundary conditions.
type Scheme interface {
	// Solve returns f(., time_grid[len(time_grid)-1]).
	Solve(f []float64, bcs []bc.Condition, timeGrid []float64, L tridiag.Operator) ([]float64, error)

	// SolveAndSave does the same, additionally recording every (t, s, f)
	// sample at every time level through sink. spatialGrid labels the
	// nodes of f for the recorded samples; it plays no role in the solve
	// itself.
	SolveAndSave(f []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, L tridiag.Operator, sink Recorder) ([]float64, error)
}

func recordLevel(sink Recorder, t float64, spatialGrid, f []float64) error {
	for j, s := range spatialGrid {
		if err := sink.Record(t, s, f[j]); err != nil {
			return err
		}
	}
	return nil
}
