package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Uniform builds a grid with constant spacing between nodes.
type Uniform struct{}

// BuildGrid implements Builder. concentration is ignored. n must be at
// least 2, since a single node has no spacing to derive.
func (Uniform) BuildGrid(low, upp float64, n int, concentration float64) ([]float64, error) {
	if n < 2 {
		return nil, chk.Err("grid: uniform grid needs at least 2 points, got %d", n)
	}
	return utl.LinSpace(low, upp, n), nil
}
