// Package csvio reads option and market tables and writes solve traces, all
// as purely numeric columns through gosl/io's table reader (the same way
// the teacher's plot drivers load .dat/.cmp tables), rather than reaching
// for encoding/csv directly. Option type is encoded as a numeric code
// (1=Call, 2=Put) so every column fits io.ReadTable's float64-only model.
package csvio

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gofdm/gofdm/fin"
)

// Option type codes used in the "Type" column of an options table.
const (
	TypeCall = 1.0
	TypePut  = 2.0
)

// ReadOptions reads a table with columns Strike, Tenor, Type from path.
func ReadOptions(path string) ([]fin.EuroOpt, error) {
	_, cols, err := io.ReadTable(path)
	if err != nil {
		return nil, chk.Err("csvio: failed to read options table %q: %v", path, err)
	}
	strike, ok1 := cols["Strike"]
	tenor, ok2 := cols["Tenor"]
	typ, ok3 := cols["Type"]
	if !ok1 || !ok2 || !ok3 {
		return nil, chk.Err("csvio: options table %q must have Strike, Tenor and Type columns", path)
	}
	n := len(strike)
	if len(tenor) != n || len(typ) != n {
		return nil, chk.Err("csvio: options table %q has mismatched column lengths", path)
	}
	opts := make([]fin.EuroOpt, n)
	for i := 0; i < n; i++ {
		optType := fin.Call
		if typ[i] == TypePut {
			optType = fin.Put
		} else if typ[i] != TypeCall {
			io.PfRed("csvio: unknown option type code %g at row %d, defaulting to Call\n", typ[i], i)
		}
		opts[i] = fin.EuroOpt{Strike: strike[i], Tenor: tenor[i], Type: optType}
	}
	return opts, nil
}

// ReadMarkets reads a table with columns Spot, Vol, Rate from path.
func ReadMarkets(path string) ([]fin.Market, error) {
	_, cols, err := io.ReadTable(path)
	if err != nil {
		return nil, chk.Err("csvio: failed to read markets table %q: %v", path, err)
	}
	spot, ok1 := cols["Spot"]
	vol, ok2 := cols["Vol"]
	rate, ok3 := cols["Rate"]
	if !ok1 || !ok2 || !ok3 {
		return nil, chk.Err("csvio: markets table %q must have Spot, Vol and Rate columns", path)
	}
	n := len(spot)
	if len(vol) != n || len(rate) != n {
		return nil, chk.Err("csvio: markets table %q has mismatched column lengths", path)
	}
	mkts := make([]fin.Market, n)
	for i := 0; i < n; i++ {
		mkts[i] = fin.Market{Spot: spot[i], Vol: vol[i], Rate: rate[i]}
	}
	return mkts, nil
}
