// Package fin implements the option-pricing façade built on top of
// tridiag/solver/grid/bc/scheme/pde: Market data, the Option/Factory pair
// that turns a contract into boundary/initial conditions, and FDMPricer,
// the strategy-pattern driver that ties a scheme, a solver and two grid
// builders together the way gofem's fem.Domain ties elements, solvers and
// meshes together.
package fin

import "github.com/gofdm/gofdm/pde"

// Market holds the data describing the underlying asset and the discount
// rate used to price a derivative on it.
type Market struct {
	Spot float64 // price of the underlying
	Vol  float64 // volatility
	Rate float64 // risk-free rate
}

// mktToProcess converts market data to the log-space Black-Scholes
// convection-diffusion process: dV/dt + 1/2 σ² d²V/dx² + (r-σ²/2) dV/dx - rV = 0,
// a Backward Kolmogorov equation with diffusion σ, convection r-σ²/2 and
// decay r, where x = ln S.
func mktToProcess(mkt Market) pde.ConvectionDiffusion {
	return pde.ConvectionDiffusion{
		Diffusion:  mkt.Vol,
		Convection: mkt.Rate - 0.5*mkt.Vol*mkt.Vol,
		Decay:      mkt.Rate,
	}
}
