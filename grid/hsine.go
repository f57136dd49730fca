package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// HSine builds a grid concentrated around a point of interest using a
// hyperbolic-sine transform of an underlying uniform grid, following
// Tavella & Randall. The control parameter C must be strictly positive;
// smaller values concentrate nodes more tightly around concentration.
type HSine struct {
	C float64
}

// BuildGrid implements Builder.
func (h HSine) BuildGrid(low, upp float64, n int, concentration float64) ([]float64, error) {
	if h.C <= 0 {
		return nil, chk.Err("grid: hsine control parameter must be > 0, got %g", h.C)
	}
	if n < 2 {
		return nil, chk.Err("grid: hsine grid needs at least 2 points, got %d", n)
	}
	k := (concentration - low) / (upp - low)
	alpha := math.Asinh(-k / h.C)
	beta := math.Asinh((1.0 - k) / h.C)
	delta := (beta - alpha) / float64(n)

	result := make([]float64, n)
	for i := 0; i < n-1; i++ {
		result[i] = low + (k+h.C*math.Sinh(alpha+float64(i)*delta))*(upp-low)
	}
	result[n-1] = upp
	return result, nil
}
