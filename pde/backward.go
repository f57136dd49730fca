package pde

import (
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/scheme"
	"github.com/gofdm/gofdm/tridiag"
)

// BackwardKolmogorov solves dp/dt = (-1/2 σ² d²/dx² - μ d/dx + γ) p, the
// equation that underlies pricing a European payoff backward from
// maturity (the diffusion term flips sign relative to Forward).
type BackwardKolmogorov struct {
	Process ConvectionDiffusion
}

// NewBackwardKolmogorov builds a BackwardKolmogorov assembler for process.
func NewBackwardKolmogorov(process ConvectionDiffusion) BackwardKolmogorov {
	return BackwardKolmogorov{Process: process}
}

// GetOperator assembles the discretized operator on spatialGrid.
func (o BackwardKolmogorov) GetOperator(spatialGrid []float64) (tridiag.Operator, error) {
	d0, err := tridiag.IGrid(spatialGrid)
	if err != nil {
		return tridiag.Operator{}, err
	}
	d1, err := tridiag.DZeroGrid(spatialGrid)
	if err != nil {
		return tridiag.Operator{}, err
	}
	d2, err := tridiag.DPlusMinusGrid(spatialGrid)
	if err != nil {
		return tridiag.Operator{}, err
	}
	L := d2.Scale(-0.5 * o.Process.Diffusion * o.Process.Diffusion)
	L, err = L.Sub(d1.Scale(o.Process.Convection))
	if err != nil {
		return tridiag.Operator{}, err
	}
	L, err = L.Add(d0.Scale(o.Process.Decay))
	if err != nil {
		return tridiag.Operator{}, err
	}
	return L, nil
}

// reverse returns a reversed copy of grid, leaving the caller's slice intact.
func reverse(grid []float64) []float64 {
	n := len(grid)
	r := make([]float64, n)
	for i, v := range grid {
		r[n-1-i] = v
	}
	return r
}

// Solve reverses timeGrid internally (the terminal condition at timeGrid's
// last entry becomes the starting level) and runs sch over it.
func (o BackwardKolmogorov) Solve(sch scheme.Scheme, init []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64) ([]float64, error) {
	L, err := o.GetOperator(spatialGrid)
	if err != nil {
		return nil, err
	}
	return sch.Solve(init, bcs, reverse(timeGrid), L)
}

// SolveAndSave is Solve plus a full (t, s, f) trace through sink.
func (o BackwardKolmogorov) SolveAndSave(sch scheme.Scheme, init []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, sink scheme.Recorder) ([]float64, error) {
	L, err := o.GetOperator(spatialGrid)
	if err != nil {
		return nil, err
	}
	return sch.SolveAndSave(init, bcs, spatialGrid, reverse(timeGrid), L, sink)
}
