package fin

// RangeSetup approximates an option's infinite grid limits with finite
// ones. Some factories report a natural bound of 0 or +Inf (see
// Factory.LowerSpotLmt/UpperSpotLmt); FDMPricer calls RangeSetup only for
// the bound(s) that need approximating.
type RangeSetup interface {
	UpperBound(mkt Market, o Option) float64
	LowerBound(mkt Market, o Option) float64
}

// SpotRelatedRange approximates the grid limits as multiples of the
// current spot: low*Spot and upp*Spot.
type SpotRelatedRange struct {
	Low float64
	Upp float64
}

// NewSpotRelatedRange builds a SpotRelatedRange with the default
// multipliers (0.5, 2.0).
func NewSpotRelatedRange() SpotRelatedRange {
	return SpotRelatedRange{Low: 0.5, Upp: 2.0}
}

// UpperBound implements RangeSetup.
func (r SpotRelatedRange) UpperBound(mkt Market, _ Option) float64 {
	return mkt.Spot * r.Upp
}

// LowerBound implements RangeSetup.
func (r SpotRelatedRange) LowerBound(mkt Market, _ Option) float64 {
	return mkt.Spot * r.Low
}
