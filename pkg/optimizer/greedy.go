package optimizer

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Greedy allocates by efficiency: every crop first gets its minimum area,
// then the remaining area and water go to crops in descending efficiency
// order, each up to its own maximum. Ties keep input order.
func Greedy(crops []CropInput, cons Constraints) Result {
	if len(crops) == 0 {
		return infeasible(StrategyGreedy, "no crops to allocate")
	}
	issues := Validate(crops, cons)
	if HasInfeasible(issues) {
		return infeasible(StrategyGreedy, joinIssues(issues, KindInfeasible))
	}

	p := prepare(crops, cons, issues)
	if msg := p.overcommitted(cons); msg != "" {
		return infeasible(StrategyGreedy, msg)
	}
	areas := make([]float64, len(p.crops))
	remArea := cons.TotalAreaHa
	remWater := cons.TotalWaterQuotaMM
	for i, c := range p.crops {
		areas[i] = c.MinAreaHa
		remArea -= c.MinAreaHa
		remWater -= c.MinAreaHa * c.WaterReqMMPerHa
	}

	for i, c := range p.crops {
		if remArea <= 0 || remWater <= 0 {
			break
		}
		extra := math.Min(c.MaxAreaHa-c.MinAreaHa, remArea)
		if c.WaterReqMMPerHa > 0 {
			extra = math.Min(extra, remWater/c.WaterReqMMPerHa)
		}
		if extra <= 0 {
			continue
		}
		areas[i] += extra
		remArea -= extra
		remWater -= extra * c.WaterReqMMPerHa
	}
	return finish(StrategyGreedy, p, areas, issues, cons)
}

type prepared struct {
	crops []CropInput
	notes []string
}

// prepare drops crops that cannot be allocated, orders the rest by
// efficiency and applies the MaxCrops limit.
func prepare(crops []CropInput, cons Constraints, issues []Issue) prepared {
	skip := blocked(issues)
	var p prepared
	for _, c := range crops {
		if skip[c.CropID] {
			p.notes = append(p.notes, fmt.Sprintf("%s skipped: invalid bounds", c.CropID))
			continue
		}
		if cons.MinProfitThreshold != nil && c.ExpectedProfitPerHa < *cons.MinProfitThreshold {
			p.notes = append(p.notes, fmt.Sprintf("%s skipped: profit %.0f/ha below threshold %.0f", c.CropID, c.ExpectedProfitPerHa, *cons.MinProfitThreshold))
			continue
		}
		p.crops = append(p.crops, c)
	}
	sortByEfficiency(p.crops)
	if cons.MaxCrops > 0 && len(p.crops) > cons.MaxCrops {
		p.notes = append(p.notes, fmt.Sprintf("limited to the %d most efficient crops", cons.MaxCrops))
		p.crops = p.crops[:cons.MaxCrops]
	}
	return p
}

// overcommitted re-checks the minimum reservations of the eligible crops;
// blocked crops may have hidden a shortfall from Validate.
func (p prepared) overcommitted(cons Constraints) string {
	var area, water float64
	for _, c := range p.crops {
		area += c.MinAreaHa
		water += c.MinAreaHa * c.WaterReqMMPerHa
	}
	if water > cons.TotalWaterQuotaMM+Epsilon {
		return fmt.Sprintf("Infeasible: minimum water demand %.1f mm exceeds quota %.1f mm", water, cons.TotalWaterQuotaMM)
	}
	if area > cons.TotalAreaHa+Epsilon {
		return fmt.Sprintf("Infeasible: minimum area %.2f ha exceeds total area %.2f ha", area, cons.TotalAreaHa)
	}
	return ""
}

func sortByEfficiency(crops []CropInput) {
	key := func(c CropInput) float64 {
		e := c.Efficiency()
		if math.IsNaN(e) {
			return math.Inf(-1)
		}
		return e
	}
	sort.SliceStable(crops, func(i, j int) bool { return key(crops[i]) > key(crops[j]) })
}

func finish(s Strategy, p prepared, areas []float64, issues []Issue, cons Constraints) Result {
	res := Result{Allocations: map[string]float64{}, Strategy: s}
	for i, c := range p.crops {
		a := areas[i]
		if a <= 0 {
			continue
		}
		res.Allocations[c.CropID] += a
		res.TotalProfit += a * c.ExpectedProfitPerHa
		res.TotalWaterUsedMM += a * c.WaterReqMMPerHa
	}

	var msg []string
	if len(res.Allocations) == 0 {
		res.Status = StatusInfeasible
		reason := "no crop received a positive area"
		switch {
		case cons.TotalAreaHa <= 0:
			reason += " (total area is zero)"
		case cons.TotalWaterQuotaMM <= 0:
			reason += " (water quota is zero)"
		case len(p.crops) == 0:
			reason += " (no eligible crops)"
		}
		msg = append(msg, reason)
	} else {
		res.Status = StatusOptimal
		msg = append(msg, fmt.Sprintf("allocated %.2f of %.2f ha to %d crop(s), using %.1f of %.1f mm water",
			res.AllocatedArea(), cons.TotalAreaHa, len(res.Allocations), res.TotalWaterUsedMM, cons.TotalWaterQuotaMM))
	}
	if w := joinIssues(issues, KindNegativeArea, KindMinAboveMax, KindNegativeWater); w != "" {
		msg = append(msg, "warnings: "+w)
	}
	msg = append(msg, p.notes...)
	res.Message = strings.Join(msg, "; ")
	return res
}
