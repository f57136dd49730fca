package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01: uniform grid endpoints and spacing")

	g, err := Uniform{}.BuildGrid(0, 10, 5, 0)
	if err != nil {
		tst.Errorf("BuildGrid failed: %v", err)
		return
	}
	chk.Array(tst, "uniform grid", 1e-13, g, []float64{0, 2.5, 5, 7.5, 10})

	if _, err := (Uniform{}).BuildGrid(0, 10, 1, 0); err == nil {
		tst.Errorf("BuildGrid should reject n < 2")
	}
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02: hsine grid endpoints and concentration")

	h := HSine{C: 0.1}
	g, err := h.BuildGrid(10, 200, 50, 100)
	if err != nil {
		tst.Errorf("BuildGrid failed: %v", err)
		return
	}
	chk.Scalar(tst, "g[0]", 1e-9, g[0], 10)
	chk.Scalar(tst, "g[last]", 1e-13, g[len(g)-1], 200)

	// nodes must be strictly increasing
	for i := 1; i < len(g); i++ {
		if g[i] <= g[i-1] {
			tst.Errorf("grid not increasing at %d: %g <= %g", i, g[i], g[i-1])
		}
	}

	// the narrowest spacing must bracket the concentration point
	imin := 1
	for i := 2; i < len(g); i++ {
		if g[i]-g[i-1] < g[imin]-g[imin-1] {
			imin = i
		}
	}
	if g[imin-1] > 100 || g[imin] < 100 {
		tst.Errorf("narrowest cell [%g, %g] does not contain the concentration point 100", g[imin-1], g[imin])
	}

	if _, err := (HSine{C: 0}).BuildGrid(10, 200, 50, 100); err == nil {
		tst.Errorf("BuildGrid should reject c <= 0")
	}
	if _, err := (HSine{C: -1}).BuildGrid(10, 200, 50, 100); err == nil {
		tst.Errorf("BuildGrid should reject c <= 0")
	}
}
