package pde

import (
	"github.com/gofdm/gofdm/bc"
	"github.com/gofdm/gofdm/scheme"
	"github.com/gofdm/gofdm/tridiag"
)

// ForwardKolmogorov solves dp/dt = (1/2 σ² d²/dx² - μ d/dx + γ) p, the
// Fokker-Planck equation governing the transition density of
// dX_t = μ dt + σ dW_t.
type ForwardKolmogorov struct {
	Process ConvectionDiffusion
}

// NewForwardKolmogorov builds a ForwardKolmogorov assembler for process.
func NewForwardKolmogorov(process ConvectionDiffusion) ForwardKolmogorov {
	return ForwardKolmogorov{Process: process}
}

// GetOperator assembles the discretized operator on spatialGrid.
func (o ForwardKolmogorov) GetOperator(spatialGrid []float64) (tridiag.Operator, error) {
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
	L := d2.Scale(0.5 * o.Process.Diffusion * o.Process.Diffusion)
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

// Solve runs sch over time_grid in its natural (forward) order.
func (o ForwardKolmogorov) Solve(sch scheme.Scheme, init []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64) ([]float64, error) {
	L, err := o.GetOperator(spatialGrid)
	if err != nil {
		return nil, err
	}
	return sch.Solve(init, bcs, timeGrid, L)
}

// SolveAndSave is Solve plus a full (t, s, f) trace through sink.
func (o ForwardKolmogorov) SolveAndSave(sch scheme.Scheme, init []float64, bcs []bc.Condition, spatialGrid, timeGrid []float64, sink scheme.Recorder) ([]float64, error) {
	L, err := o.GetOperator(spatialGrid)
	if err != nil {
		return nil, err
	}
	return sch.SolveAndSave(init, bcs, spatialGrid, timeGrid, L, sink)
}
