package num

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Interp linearly interpolates the value at t from the sorted sample points
// x and matching values y. t must lie within [x[0], x[len(x)-1]]; outside
// that range there is nothing to interpolate between, and a DOMAIN error is
// returned instead of extrapolating.
func Interp(x, y []float64, t float64) (float64, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return 0, chk.Err("num: interp needs matching x, y of length >= 2, got len(x)=%d len(y)=%d", n, len(y))
	}
	if t < x[0] || t > x[n-1] {
		return 0, chk.Err("num: interp argument %g outside grid range [%g, %g]", t, x[0], x[n-1])
	}
	position := sort.SearchFloat64s(x, t)
	if position == 0 {
		return y[0], nil
	}
	xl, xu := x[position-1], x[position]
	if xu == xl {
		return y[position-1], nil
	}
	return (y[position-1]*(xu-t) + y[position]*(t-xl)) / (xu - xl), nil
}
