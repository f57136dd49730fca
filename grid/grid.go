// Package grid builds the 1D spatial (or temporal) node sequences the FDM
// engine discretizes over: a plain uniform spacing, or a hyperbolic-sine
// grid concentrated around a point of interest (e.g. an option's strike).
package grid

// Builder discretizes the interval [low, upp] into n nodes. concentration
// is only meaningful to grids that cluster nodes around a point (HSine);
// Uniform ignores it.
type Builder interface {
	BuildGrid(low, upp float64, n int, concentration float64) ([]float64, error)
}
