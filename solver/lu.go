package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/tridiag"
)

// LU solves a tridiagonal system with the Thomas algorithm: LU decomposition
// of the tridiagonal matrix without pivoting, forward elimination followed
// by back substitution.
type LU struct{}

// Solve implements Solver.
func (LU) Solve(A tridiag.Operator, w []float64) ([]float64, error) {
	n := A.Size()
	if len(w) != n {
		return nil, chk.Err("solver: system size %d does not match right-hand side length %d", n, len(w))
	}
	if n == 0 {
		return nil, nil
	}
	ret := make([]float64, n)
	temp := make([]float64, n)

	bet := A.Mid(0)
	if bet == 0 {
		return nil, chk.Err("solver: zero pivot at row 0")
	}
	ret[0] = w[0] / bet

	for j := 1; j <= n-1; j++ {
		temp[j] = A.Upp(j-1) / bet
		bet = A.Mid(j) - A.Low(j-1)*temp[j]
		if bet == 0 {
			return nil, chk.Err("solver: zero pivot at row %d", j)
		}
		ret[j] = (w[j] - A.Low(j-1)*ret[j-1]) / bet
	}

	for j := n - 2; j > 0; j-- {
		ret[j] -= temp[j+1] * ret[j+1]
	}
	if n > 1 {
		ret[0] -= temp[1] * ret[1]
	}

	for _, v := range ret {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, chk.Err("solver: non-finite result, system is numerically singular")
		}
	}
	return ret, nil
}
