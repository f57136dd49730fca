package fin

import "github.com/gofdm/gofdm/bc"

// Option is a priceable financial derivative: enough to build its own
// Factory and to report its own maturity. Mirrors the source's
// allocateFactory()/getT() pair without the C++ virtual-copy-constructor
// machinery Go's interfaces make unnecessary.
type Option interface {
	// Maturity returns the option's expiry, in years.
	Maturity() float64

	// Factory builds the Factory that parametrizes the FDM solve for
	// this option.
	Factory() Factory
}

// Factory turns an Option, together with Market data and a chosen spot
// range, into the concrete inputs the FDM engine needs: boundary and
// initial conditions, grid limits and a concentration point for
// non-uniform grids. One Factory implementation per option family (only
// EuroOpt's is implemented here).
type Factory interface {
	// BoundarySpotConditions returns the Dirichlet conditions to apply
	// at the low and upp spot levels (not log-space).
	BoundarySpotConditions(mkt Market, low, upp float64) ([]bc.Condition, error)

	// InitialCondition evaluates the option's payoff on spotGrid (plain
	// spot levels, already exponentiated out of log-space).
	InitialCondition(spotGrid []float64) []float64

	// LowerSpotLmt returns the option's natural lower spot limit, or 0
	// to signal "unbounded below" (approximate with a RangeSetup).
	LowerSpotLmt() float64

	// UpperSpotLmt returns the option's natural upper spot limit, or
	// +Inf to signal "unbounded above" (approximate with a RangeSetup).
	UpperSpotLmt() float64

	// ConcentrationPoint returns the spot level a non-uniform grid
	// builder should cluster nodes around.
	ConcentrationPoint() float64
}
