package tridiag

import "github.com/cpmech/gosl/chk"

// I returns the size-n identity operator.
func I(n int) Operator {
	o := NewFilled(n, 0, 1, 0)
	o.SetFirstRow(1, 0)
	o.SetLastRow(0, 1)
	return o
}

// DPlus returns the forward-difference first-derivative operator on a
// uniform grid of spacing h: (u[i+1]-u[i])/h.
func DPlus(n int, h float64) Operator {
	o := New(n)
	inv := 1.0 / h
	o.SetFirstRow(1, 0)
	o.SetMidRows(0, -inv, inv)
	o.SetLastRow(0, 1)
	return o
}

// DMinus returns the backward-difference first-derivative operator on a
// uniform grid of spacing h: (u[i]-u[i-1])/h.
func DMinus(n int, h float64) Operator {
	o := New(n)
	inv := 1.0 / h
	o.SetFirstRow(1, 0)
	o.SetMidRows(-inv, inv, 0)
	o.SetLastRow(0, 1)
	return o
}

// DZero returns the central-difference first-derivative operator on a
// uniform grid of spacing h: (u[i+1]-u[i-1])/(2h).
func DZero(n int, h float64) Operator {
	o := New(n)
	inv := 1.0 / (2.0 * h)
	o.SetFirstRow(1, 0)
	o.SetMidRows(-inv, 0, inv)
	o.SetLastRow(0, 1)
	return o
}

// DPlusMinus returns the central second-derivative operator on a uniform
// grid of spacing h: (u[i+1]-2u[i]+u[i-1])/h^2.
func DPlusMinus(n int, h float64) Operator {
	o := New(n)
	inv := 1.0 / (h * h)
	o.SetFirstRow(1, 0)
	o.SetMidRows(inv, -2.0*inv, inv)
	o.SetLastRow(0, 1)
	return o
}

func validateGrid(grid []float64) error {
	n := len(grid)
	if n < 2 {
		return chk.Err("tridiag: grid must have at least 2 points, got %d", n)
	}
	for i := 1; i < n; i++ {
		if grid[i] <= grid[i-1] {
			return chk.Err("tridiag: grid must be strictly increasing, grid[%d]=%g <= grid[%d]=%g", i, grid[i], i-1, grid[i-1])
		}
	}
	return nil
}

// IGrid returns the identity operator sized to match grid, after validating
// that grid is a legal strictly increasing node sequence.
func IGrid(grid []float64) (Operator, error) {
	if err := validateGrid(grid); err != nil {
		return Operator{}, err
	}
	return I(len(grid)), nil
}

// DZeroGrid returns the central-difference first-derivative operator on a
// (possibly non-uniform) grid.
func DZeroGrid(grid []float64) (Operator, error) {
	if err := validateGrid(grid); err != nil {
		return Operator{}, err
	}
	n := len(grid)
	o := New(n)
	o.SetFirstRow(1, 0)
	for r := 1; r <= n-2; r++ {
		hm := grid[r] - grid[r-1]
		hp := grid[r+1] - grid[r]
		d := hm * hp * (hp + hm)
		o.SetMidRow(r, -hp*hp/d, (hp*hp-hm*hm)/d, hm*hm/d)
	}
	o.SetLastRow(0, 1)
	return o, nil
}

// DPlusMinusGrid returns the central second-derivative operator on a
// (possibly non-uniform) grid.
//
// The reference implementation this is grounded on only fills rows
// 1..N-3, leaving row N-2 as an unset zero row (the grid-based DZero loop
// does not share that bound). That narrower range is not repeated here:
// every interior row 1..N-2 is filled, matching the uniform-grid factories
// and the DZeroGrid stencil above.
func DPlusMinusGrid(grid []float64) (Operator, error) {
	if err := validateGrid(grid); err != nil {
		return Operator{}, err
	}
	n := len(grid)
	o := New(n)
	o.SetFirstRow(1, 0)
	for r := 1; r <= n-2; r++ {
		hm := grid[r] - grid[r-1]
		hp := grid[r+1] - grid[r]
		d := hm * hp * (hp + hm)
		o.SetMidRow(r, 2.0*hp/d, -2.0*(hp+hm)/d, 2.0*hm/d)
	}
	o.SetLastRow(0, 1)
	return o, nil
}
