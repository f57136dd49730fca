package fin

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gofdm/gofdm/bc"
)

func Test_fin01_euroopt_payoff(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fin01: EuroOpt payoff")

	call := EuroOpt{Strike: 100, Tenor: 1, Type: Call}
	chk.Scalar(tst, "call ITM", 1e-15, call.Payoff(120), 20)
	chk.Scalar(tst, "call OTM", 1e-15, call.Payoff(80), 0)

	put := EuroOpt{Strike: 100, Tenor: 1, Type: Put}
	chk.Scalar(tst, "put ITM", 1e-15, put.Payoff(80), 20)
	chk.Scalar(tst, "put OTM", 1e-15, put.Payoff(120), 0)
}

func Test_fin02_euroopt_factory_limits(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fin02: EuroOpt factory limits and concentration")

	call := EuroOpt{Strike: 100, Tenor: 1, Type: Call}
	f := call.Factory()
	chk.Scalar(tst, "lower limit", 1e-15, f.LowerSpotLmt(), 0)
	if !math.IsInf(f.UpperSpotLmt(), 1) {
		tst.Errorf("expected +Inf upper limit, got %g", f.UpperSpotLmt())
	}
	chk.Scalar(tst, "concentration is strike", 1e-15, f.ConcentrationPoint(), 100)
}

func Test_fin03_euroopt_boundary_conditions(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fin03: EuroOpt boundary conditions match call/put payoff at the edges")

	mkt := Market{Spot: 100, Vol: 0.2, Rate: 0.05}

	call := EuroOpt{Strike: 100, Tenor: 1, Type: Call}
	bcs, err := call.Factory().BoundarySpotConditions(mkt, 10, 500)
	if err != nil {
		tst.Errorf("BoundarySpotConditions failed: %v", err)
		return
	}
	if len(bcs) != 2 {
		tst.Errorf("expected 2 boundary conditions, got %d", len(bcs))
		return
	}
	checkEdgeValues(tst, "call", bcs, call.Payoff(10), call.Payoff(500))

	put := EuroOpt{Strike: 100, Tenor: 1, Type: Put}
	bcs, err = put.Factory().BoundarySpotConditions(mkt, 10, 500)
	if err != nil {
		tst.Errorf("BoundarySpotConditions failed: %v", err)
		return
	}
	if len(bcs) != 2 {
		tst.Errorf("expected 2 boundary conditions, got %d", len(bcs))
		return
	}
	checkEdgeValues(tst, "put", bcs, put.Payoff(10), put.Payoff(500))
}

// checkEdgeValues asserts that bcs is a low Dirichlet condition with value
// low followed by an upp Dirichlet condition with value upp.
func checkEdgeValues(tst *testing.T, name string, bcs []bc.Condition, low, upp float64) {
	want := []float64{low, upp}
	for i, c := range bcs {
		d, ok := c.(bc.Dirichlet)
		if !ok {
			tst.Errorf("%s: condition %d is not a Dirichlet condition", name, i)
			continue
		}
		chk.Scalar(tst, name+" edge value", 1e-15, d.Value.F(0, nil), want[i])
	}
}

func Test_fin04_mkt_to_process(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fin04: mktToProcess maps market data to the log-space Black-Scholes process")

	mkt := Market{Spot: 100, Vol: 0.2, Rate: 0.05}
	p := mktToProcess(mkt)
	chk.Scalar(tst, "diffusion = vol", 1e-15, p.Diffusion, 0.2)
	chk.Scalar(tst, "convection = r - vol^2/2", 1e-15, p.Convection, 0.05-0.5*0.2*0.2)
	chk.Scalar(tst, "decay = r", 1e-15, p.Decay, 0.05)
}
