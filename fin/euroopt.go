package fin

import (
	"math"

	"github.com/gofdm/gofdm/bc"
)

// OptionType distinguishes calls from puts.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// EuroOpt is a vanilla European call or put.
type EuroOpt struct {
	Strike float64
	Tenor  float64
	Type   OptionType
}

// Maturity implements Option.
func (o EuroOpt) Maturity() float64 {
	return o.Tenor
}

// Factory implements Option.
func (o EuroOpt) Factory() Factory {
	return euroOptFactory{strike: o.Strike, optType: o.Type}
}

// Payoff returns the option's intrinsic value at spot.
func (o EuroOpt) Payoff(spot float64) float64 {
	switch o.Type {
	case Call:
		if spot > o.Strike {
			return spot - o.Strike
		}
		return 0
	default:
		if spot < o.Strike {
			return o.Strike - spot
		}
		return 0
	}
}

// euroOptFactory implements Factory for EuroOpt. Boundary conditions:
//
//	call: low -> 0, upp -> upp-K
//	put:  low -> K-low, upp -> 0
//
// lower spot limit is 0 (unbounded below approximated by RangeSetup), upper
// is +Inf (ditto); the strike is the concentration point for non-uniform
// grids since that is where the payoff kinks.
type euroOptFactory struct {
	strike  float64
	optType OptionType
}

// BoundarySpotConditions implements Factory.
func (f euroOptFactory) BoundarySpotConditions(mkt Market, low, upp float64) ([]bc.Condition, error) {
	k := f.strike
	switch f.optType {
	case Call:
		lowVal, err := bc.Constant(0)
		if err != nil {
			return nil, err
		}
		uppVal, err := bc.Constant(upp - k)
		if err != nil {
			return nil, err
		}
		return []bc.Condition{
			bc.Dirichlet{Side: bc.Low, Value: lowVal},
			bc.Dirichlet{Side: bc.Upp, Value: uppVal},
		}, nil
	default:
		lowVal, err := bc.Constant(k - low)
		if err != nil {
			return nil, err
		}
		uppVal, err := bc.Constant(0)
		if err != nil {
			return nil, err
		}
		return []bc.Condition{
			bc.Dirichlet{Side: bc.Low, Value: lowVal},
			bc.Dirichlet{Side: bc.Upp, Value: uppVal},
		}, nil
	}
}

// InitialCondition implements Factory: the option's payoff on spotGrid.
func (f euroOptFactory) InitialCondition(spotGrid []float64) []float64 {
	ret := make([]float64, len(spotGrid))
	for i, s := range spotGrid {
		switch f.optType {
		case Call:
			if s > f.strike {
				ret[i] = s - f.strike
			}
		default:
			if s < f.strike {
				ret[i] = f.strike - s
			}
		}
	}
	return ret
}

// LowerSpotLmt implements Factory.
func (f euroOptFactory) LowerSpotLmt() float64 {
	return 0.0
}

// UpperSpotLmt implements Factory.
func (f euroOptFactory) UpperSpotLmt() float64 {
	return math.Inf(1)
}

// ConcentrationPoint implements Factory: the strike.
func (f euroOptFactory) ConcentrationPoint() float64 {
	return f.strike
}
