package pde

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/grid"
	"github.com/gofdm/gofdm/scheme"
	"github.com/gofdm/gofdm/solver"
)

// mass-conservation scenario: a forward Kolmogorov solve of a pure
// diffusion (no decay, no convection) under zero Dirichlet boundaries far
// from the probability mass should not drift far from the initial total
// mass over a short horizon.
func Test_pde01_mass_conservation(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pde01: forward Kolmogorov mass conservation")

	process := ConvectionDiffusion{Diffusion: 0.2, Convection: 0.0, Decay: 0.0}
	fk := NewForwardKolmogorov(process)

	sgrid, err := grid.Uniform{}.BuildGrid(-5, 5, 101, 0)
	if err != nil {
		tst.Errorf("BuildGrid failed: %v", err)
		return
	}
	tgrid, err := grid.Uniform{}.BuildGrid(0, 0.2, 41, 0)
	if err != nil {
		tst.Errorf("BuildGrid failed: %v", err)
		return
	}

	init := make([]float64, len(sgrid))
	var total0 float64
	for i, x := range sgrid {
		init[i] = math.Exp(-x * x / 2) / math.Sqrt(2*math.Pi)
		total0 += init[i]
	}

	zero, _ := bc.Constant(0)
	bcs := []bc.Condition{
		bc.Dirichlet{Side: bc.Low, Value: zero},
		bc.Dirichlet{Side: bc.Upp, Value: zero},
	}

	cn := scheme.NewCrankNicolson(solver.LU{})
	sol, err := fk.Solve(cn, init, bcs, sgrid, tgrid)
	if err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}

	var total1 float64
	for _, v := range sol {
		total1 += v
	}
	ratio := total1 / total0
	if ratio < 0.95 || ratio > 1.05 {
		tst.Errorf("mass not conserved: total0=%g total1=%g ratio=%g", total0, total1, ratio)
	}
}

func Test_pde02_backward_reverses_time(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pde02: backward Kolmogorov reverses the time grid without mutating the caller's slice")

	process := ConvectionDiffusion{Diffusion: 0.2, Convection: 0.05, Decay: 0.05}
	bk := NewBackwardKolmogorov(process)

	sgrid, _ := grid.Uniform{}.BuildGrid(1, 100, 51, 0)
	tgrid, _ := grid.Uniform{}.BuildGrid(0, 1, 21, 0)
	tgridCopy := append([]float64(nil), tgrid...)

	init := make([]float64, len(sgrid))
	for i := range init {
		init[i] = 1
	}
	zero, _ := bc.Constant(0)
	bcs := []bc.Condition{
		bc.Dirichlet{Side: bc.Low, Value: zero},
		bc.Dirichlet{Side: bc.Upp, Value: zero},
	}

	imp := scheme.NewImplicit(solver.LU{})
	if _, err := bk.Solve(imp, init, bcs, sgrid, tgrid); err != nil {
		tst.Errorf("Solve failed: %v", err)
		return
	}
	chk.Array(tst, "time grid unmodified", 1e-15, tgrid, tgridCopy)
}
