package bc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/tridiag"
)

func Test_dirichlet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dirichlet01: low and upp boundary rows and values")

	val, err := Constant(5)
	if err != nil {
		tst.Errorf("Constant failed: %v", err)
		return
	}

	low := Dirichlet{Side: Low, Value: val}
	upp := Dirichlet{Side: Upp, Value: val}

	L := tridiag.DPlusMinus(5, 1.0)
	if err := low.BeforeExplicitStep(&L); err != nil {
		tst.Errorf("BeforeExplicitStep failed: %v", err)
		return
	}
	chk.Scalar(tst, "L.mid[0]", 1e-15, L.Mid(0), 1)
	chk.Scalar(tst, "L.upp[0]", 1e-15, L.Upp(0), 0)

	if err := upp.BeforeExplicitStep(&L); err != nil {
		tst.Errorf("BeforeExplicitStep failed: %v", err)
		return
	}
	chk.Scalar(tst, "L.mid[last]", 1e-15, L.Mid(4), 1)
	chk.Scalar(tst, "L.low[last]", 1e-15, L.Low(4), 0)

	f := []float64{9, 9, 9, 9, 9}
	if err := low.AfterExplicitStep(f, 0); err != nil {
		tst.Errorf("AfterExplicitStep failed: %v", err)
		return
	}
	if err := upp.AfterExplicitStep(f, 0); err != nil {
		tst.Errorf("AfterExplicitStep failed: %v", err)
		return
	}
	chk.Scalar(tst, "f[0]", 1e-15, f[0], 5)
	chk.Scalar(tst, "f[last]", 1e-15, f[len(f)-1], 5)
}

func Test_dirichlet02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dirichlet02: free side is a no-op")

	val, _ := Constant(1)
	free := Dirichlet{Side: Free, Value: val}

	L := tridiag.DPlusMinus(5, 1.0)
	origMid0 := L.Mid(0)
	if err := free.BeforeExplicitStep(&L); err != nil {
		tst.Errorf("BeforeExplicitStep failed: %v", err)
		return
	}
	chk.Scalar(tst, "L.mid[0] unchanged", 1e-15, L.Mid(0), origMid0)

	f := []float64{9, 9, 9}
	if err := free.AfterExplicitStep(f, 0); err != nil {
		tst.Errorf("AfterExplicitStep failed: %v", err)
		return
	}
	chk.Array(tst, "f unchanged", 1e-15, f, []float64{9, 9, 9})
}
