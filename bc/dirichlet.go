package bc

import (
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/gofdm/gofdm/tridiag"
)

// Dirichlet pins the solution to Value(t) on Side, the way gofem's elements
// carry a time-dependent fun.Func for a source or gravity term (e.g.
// ele/diffusion.Diffusion's Sfun field).
type Dirichlet struct {
	Side  Side
	Value fun.Func
}

// Constant returns a Dirichlet value fixed for all t, built from gosl's own
// constant function the way inp/func.go builds a fun.Func from dbf.Params.
func Constant(value float64) (fun.Func, error) {
	return fun.New("cte", dbf.Params{&dbf.P{N: "c", V: value}})
}

// BeforeExplicitStep implements Condition: the boundary row is rewritten to
// an identity row; FREE leaves the operator untouched.
func (d Dirichlet) BeforeExplicitStep(L *tridiag.Operator) error {
	switch d.Side {
	case Low:
		L.SetFirstRow(1, 0)
	case Upp:
		L.SetLastRow(0, 1)
	}
	return nil
}

// AfterExplicitStep implements Condition: the boundary entry of f is pinned
// to Value(t).
func (d Dirichlet) AfterExplicitStep(f []float64, t float64) error {
	switch d.Side {
	case Low:
		f[0] = d.Value.F(t, nil)
	case Upp:
		f[len(f)-1] = d.Value.F(t, nil)
	}
	return nil
}

// BeforeImplicitStep implements Condition: both the operator's boundary row
// and f's boundary entry are pinned, since the implicit solve reads both.
func (d Dirichlet) BeforeImplicitStep(L *tridiag.Operator, f []float64, t float64) error {
	switch d.Side {
	case Low:
		L.SetFirstRow(1, 0)
		f[0] = d.Value.F(t, nil)
	case Upp:
		L.SetLastRow(0, 1)
		f[len(f)-1] = d.Value.F(t, nil)
	}
	return nil
}

// AfterImplicitStep implements Condition. No adjustment is needed: the
// implicit solve already produced a boundary entry consistent with the row
// BeforeImplicitStep rewrote.
func (d Dirichlet) AfterImplicitStep(f []float64, t float64) error {
	return nil
}
