// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/gofdm/gofdm/fin"
	"github.com/gofdm/gofdm/num"
)

// BSPrice computes the closed-form Black-Scholes price of a European
// option, the reference oracle used to check the FDM pricer's output in
// tests. It never participates in the numerical solve itself.
func BSPrice(mkt fin.Market, opt fin.EuroOpt) float64 {
	sqrtT := math.Sqrt(opt.Tenor)
	d1 := (math.Log(mkt.Spot/opt.Strike) + (mkt.Rate+0.5*mkt.Vol*mkt.Vol)*opt.Tenor) / (mkt.Vol * sqrtT)
	d2 := (math.Log(mkt.Spot/opt.Strike) + (mkt.Rate-0.5*mkt.Vol*mkt.Vol)*opt.Tenor) / (mkt.Vol * sqrtT)
	discount := math.Exp(-mkt.Rate * opt.Tenor)

	switch opt.Type {
	case fin.Call:
		return mkt.Spot*num.NormalCDF(d1) - opt.Strike*discount*num.NormalCDF(d2)
	default:
		return -mkt.Spot*num.NormalCDF(-d1) + opt.Strike*discount*num.NormalCDF(-d2)
	}
}
