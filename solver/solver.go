// Package solver implements tridiagonal linear system solvers used to take
// an implicit (or Crank-Nicolson) step in the finite-difference engine.
package solver

import "github.com/gofdm/gofdm/tridiag"

// Solver solves the tridiagonal system A*v = w for v.
type Solver interface {
	Solve(A tridiag.Operator, w []float64) ([]float64, error)
}
