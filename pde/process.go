// Package pde assembles the tridiagonal operator for a 1D convection-
// diffusion process and drives its forward or backward Kolmogorov solve
// over a scheme.Scheme.
package pde

// ConvectionDiffusion holds the coefficients of
//
//	dX_t = Convection(t,X) dt + Diffusion dW_t
//
// Decay scales the probability mass gain/loss term (e.g. a discount rate
// in the backward/pricing equation).
type ConvectionDiffusion struct {
	Diffusion  float64
	Convection float64
	Decay      float64
}
