// Package tridiag implements TridiagonalOperator, the three-band matrix
// representation used throughout the finite-difference engine to express
// spatial differencing operators (D+, D-, D0, D+-, I) over a 1D grid.
//
// A tridiagonal operator of size N is stored as three bands: low (N-1),
// mid (N) and upp (N-1). Row 0 and row N-1 are reserved for boundary
// conditions and start out as identity rows; interior rows 1..N-2 carry
// the actual differencing stencil.
package tridiag

import "github.com/cpmech/gosl/chk"

// Operator is a tridiagonal matrix. The zero value is not usable; build one
// with New, NewFilled, NewFromBands or one of the named factories.
type Operator struct {
	low []float64 // length n-1
	mid []float64 // length n
	upp []float64 // length n-1
}

// New returns a size-n operator with every band entry set to zero.
func New(n int) Operator {
	if n <= 0 {
		return Operator{}
	}
	return Operator{
		low: make([]float64, n-1),
		mid: make([]float64, n),
		upp: make([]float64, n-1),
	}
}

// NewFilled returns a size-n operator with every entry of each band set to
// the given constant.
func NewFilled(n int, low, mid, upp float64) Operator {
	o := New(n)
	for i := range o.low {
		o.low[i] = low
		o.upp[i] = upp
	}
	for i := range o.mid {
		o.mid[i] = mid
	}
	return o
}

// NewFromBands builds an operator directly from its three bands. len(mid)
// fixes the size; len(low) and len(upp) must be exactly len(mid)-1, or a
// SIZE_MISMATCH error is returned.
func NewFromBands(low, mid, upp []float64) (Operator, error) {
	n := len(mid)
	if len(low) != n-1 || len(upp) != n-1 {
		return Operator{}, chk.Err("tridiag: band length mismatch: len(low)=%d len(mid)=%d len(upp)=%d, want len(low)=len(upp)=len(mid)-1", len(low), n, len(upp))
	}
	o := Operator{
		low: append([]float64(nil), low...),
		mid: append([]float64(nil), mid...),
		upp: append([]float64(nil), upp...),
	}
	return o, nil
}

// Size returns the number of rows (and columns) of the operator.
func (o Operator) Size() int { return len(o.mid) }

// Low returns the lower-diagonal entry feeding row r (1 <= r <= Size()-1).
func (o Operator) Low(r int) float64 { return o.low[r-1] }

// Mid returns the main-diagonal entry of row r (0 <= r <= Size()-1).
func (o Operator) Mid(r int) float64 { return o.mid[r] }

// Upp returns the upper-diagonal entry feeding row r (0 <= r <= Size()-2).
func (o Operator) Upp(r int) float64 { return o.upp[r] }

// SetFirstRow sets the boundary row 0 (mid, upp); low is implicitly absent.
func (o *Operator) SetFirstRow(mid, upp float64) {
	o.mid[0] = mid
	o.upp[0] = upp
}

// SetMidRow sets interior row r (1 <= r <= Size()-2).
func (o *Operator) SetMidRow(r int, low, mid, upp float64) {
	o.low[r-1] = low
	o.mid[r] = mid
	o.upp[r] = upp
}

// SetMidRows sets every interior row (1..Size()-2) to the same triple.
func (o *Operator) SetMidRows(low, mid, upp float64) {
	for r := 1; r <= o.Size()-2; r++ {
		o.SetMidRow(r, low, mid, upp)
	}
}

// SetLastRow sets the boundary row Size()-1 (low, mid); upp is implicitly absent.
func (o *Operator) SetLastRow(low, mid float64) {
	n := o.Size()
	o.low[n-2] = low
	o.mid[n-1] = mid
}

// Add returns o+b, entry by entry. Returns a SIZE_MISMATCH error if the
// operators have different sizes.
func (o Operator) Add(b Operator) (Operator, error) {
	if o.Size() != b.Size() {
		return Operator{}, chk.Err("tridiag: cannot add operators of size %d and %d", o.Size(), b.Size())
	}
	r := New(o.Size())
	for i := range r.low {
		r.low[i] = o.low[i] + b.low[i]
		r.upp[i] = o.upp[i] + b.upp[i]
	}
	for i := range r.mid {
		r.mid[i] = o.mid[i] + b.mid[i]
	}
	return r, nil
}

// Sub returns o-b, entry by entry. Returns a SIZE_MISMATCH error if the
// operators have different sizes.
func (o Operator) Sub(b Operator) (Operator, error) {
	if o.Size() != b.Size() {
		return Operator{}, chk.Err("tridiag: cannot subtract operators of size %d and %d", o.Size(), b.Size())
	}
	r := New(o.Size())
	for i := range r.low {
		r.low[i] = o.low[i] - b.low[i]
		r.upp[i] = o.upp[i] - b.upp[i]
	}
	for i := range r.mid {
		r.mid[i] = o.mid[i] - b.mid[i]
	}
	return r, nil
}

// Scale returns alpha*o, entry by entry. Always succeeds.
func (o Operator) Scale(alpha float64) Operator {
	r := New(o.Size())
	for i := range r.low {
		r.low[i] = alpha * o.low[i]
		r.upp[i] = alpha * o.upp[i]
	}
	for i := range r.mid {
		r.mid[i] = alpha * o.mid[i]
	}
	return r
}

// Div returns o/alpha, entry by entry. Returns a NUMERIC error if alpha is zero.
func (o Operator) Div(alpha float64) (Operator, error) {
	if alpha == 0 {
		return Operator{}, chk.Err("tridiag: division by zero")
	}
	return o.Scale(1.0 / alpha), nil
}

// MatVec returns A*v. Returns a SIZE_MISMATCH error if len(v) != o.Size().
func (o Operator) MatVec(v []float64) ([]float64, error) {
	n := o.Size()
	if len(v) != n {
		return nil, chk.Err("tridiag: cannot multiply size-%d operator by length-%d vector", n, len(v))
	}
	w := make([]float64, n)
	if n == 0 {
		return w, nil
	}
	if n == 1 {
		w[0] = o.mid[0] * v[0]
		return w, nil
	}
	w[0] = o.mid[0]*v[0] + o.upp[0]*v[1]
	for j := 1; j <= n-2; j++ {
		w[j] = o.low[j-1]*v[j-1] + o.mid[j]*v[j] + o.upp[j]*v[j+1]
	}
	w[n-1] = o.low[n-2]*v[n-2] + o.mid[n-1]*v[n-1]
	return w, nil
}
