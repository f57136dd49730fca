package solver

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/gofdm/gofdm/tridiag"
)

func Test_lu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu01: solve identity system")

	A := tridiag.I(4)
	w := []float64{1, 2, 3, 4}

	v, err := LU{}.Solve(A, w)
	if err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}
	chk.Array(tst, "v", 1e-14, v, w)
}

func Test_lu02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu02: solve against a known tridiagonal system")

	// A has mid=2, low=upp=-1 everywhere except the boundary rows, which
	// are left as identity rows (as every scheme in this module does).
	A := tridiag.NewFilled(5, -1, 2, -1)
	A.SetFirstRow(1, 0)
	A.SetLastRow(0, 1)

	v := []float64{0, 1, 2, 3, 4}
	w, err := A.MatVec(v)
	if err != nil {
		tst.Errorf("MatVec failed: %v", err)
		return
	}

	back, err := LU{}.Solve(A, w)
	if err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}
	chk.Array(tst, "round-trip", 1e-12, back, v)

	// residual check: A*back - w should vanish within solver tolerance.
	check, err := A.MatVec(back)
	if err != nil {
		tst.Errorf("MatVec failed: %v", err)
		return
	}
	residual := make([]float64, len(w))
	for i := range residual {
		residual[i] = check[i] - w[i]
	}
	if norm := la.VecNorm(residual); norm > 1e-10 {
		tst.Errorf("residual norm too large: %g", norm)
	}
}

func Test_lu03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu03: size mismatch and zero pivot")

	A := tridiag.I(3)
	if _, err := (LU{}).Solve(A, []float64{1, 2}); err == nil {
		tst.Errorf("Solve should reject a mismatched right-hand side")
	}

	singular := tridiag.NewFilled(3, 1, 0, 1)
	if _, err := (LU{}).Solve(singular, []float64{1, 1, 1}); err == nil {
		tst.Errorf("Solve should reject a zero pivot")
	}
}
