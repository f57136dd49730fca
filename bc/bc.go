// Package bc implements boundary conditions for the finite-difference
// schemes in package scheme: hooks that rewrite the tridiagonal operator
// and/or the solution vector at the edges of the grid before and after
// each explicit or implicit step.
package bc

import "github.com/gofdm/gofdm/tridiag"

// Side identifies which edge of the grid a condition applies to.
type Side int

const (
	Low  Side = iota // the first grid node
	Upp              // the last grid node
	Free             // no boundary treatment
)

// Condition is the four-hook protocol every boundary condition implements.
// A scheme calls these around every explicit or implicit sub-step so a
// condition can rewrite the boundary rows of the operator and pin the
// boundary value of the solution.
type Condition interface {
	BeforeExplicitStep(L *tridiag.Operator) error
	AfterExplicitStep(f []float64, t float64) error
	BeforeImplicitStep(L *tridiag.Operator, f []float64, t float64) error
	AfterImplicitStep(f []float64, t float64) error
}
