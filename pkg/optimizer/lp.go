package optimizer

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// LinearProgram maximizes sum(profit*suitability*area) subject to the water
// quota, the field area and per-crop bounds. Areas are shifted by their
// minimum so the program is in standard form:
//
//	y_i = area_i - min_i >= 0
//	sum(w_i*y_i) + s_w            = quota - sum(w_i*min_i)
//	sum(y_i)           + s_a      = total - sum(min_i)
//	y_i                      + u_i = max_i - min_i
//
// A solver failure other than infeasibility falls back to Greedy and the
// result is reported as feasible.
func LinearProgram(crops []CropInput, cons Constraints) Result {
	if len(crops) == 0 {
		return infeasible(StrategyLP, "no crops to allocate")
	}
	issues := Validate(crops, cons)
	if HasInfeasible(issues) {
		return infeasible(StrategyLP, joinIssues(issues, KindInfeasible))
	}

	p := prepare(crops, cons, issues)
	if msg := p.overcommitted(cons); msg != "" {
		return infeasible(StrategyLP, msg)
	}
	n := len(p.crops)
	if n == 0 {
		return finish(StrategyLP, p, nil, issues, cons)
	}

	rows, cols := n+2, 2*n+2
	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	c := make([]float64, cols)
	waterLeft, areaLeft := cons.TotalWaterQuotaMM, cons.TotalAreaHa
	for i, cr := range p.crops {
		c[i] = -cr.ExpectedProfitPerHa * cr.SuitabilityScore
		A.Set(0, i, cr.WaterReqMMPerHa)
		A.Set(1, i, 1)
		A.Set(2+i, i, 1)
		A.Set(2+i, n+2+i, 1)
		b[2+i] = cr.MaxAreaHa - cr.MinAreaHa
		waterLeft -= cr.MinAreaHa * cr.WaterReqMMPerHa
		areaLeft -= cr.MinAreaHa
	}
	A.Set(0, n, 1)
	A.Set(1, n+1, 1)
	b[0] = clampTiny(waterLeft)
	b[1] = clampTiny(areaLeft)

	_, x, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return infeasible(StrategyLP, "Infeasible: no allocation satisfies the water, area and crop bounds")
		}
		res := Greedy(crops, cons)
		if res.Status == StatusOptimal {
			res.Status = StatusFeasible
		}
		res.Message = fmt.Sprintf("lp solver failed (%v), greedy fallback: %s", err, res.Message)
		return res
	}

	areas := make([]float64, n)
	for i, cr := range p.crops {
		extra := x[i]
		if extra < Epsilon {
			extra = 0
		}
		if span := cr.MaxAreaHa - cr.MinAreaHa; extra > span {
			extra = span
		}
		areas[i] = cr.MinAreaHa + extra
	}
	return finish(StrategyLP, p, areas, issues, cons)
}

func clampTiny(v float64) float64 {
	if v < 0 && v > -Epsilon {
		return 0
	}
	return v
}
