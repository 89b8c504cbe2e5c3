package optimizer

import "math"

// Epsilon absorbs floating-point rounding when checking resource limits.
const Epsilon = 1e-6

// CropInput is one crop as seen by the allocator.
type CropInput struct {
	CropID              string  `json:"crop_id"`
	MinAreaHa           float64 `json:"min_area_ha"`
	MaxAreaHa           float64 `json:"max_area_ha"`
	ExpectedProfitPerHa float64 `json:"expected_profit_per_ha"`
	WaterReqMMPerHa     float64 `json:"water_req_mm_per_ha"`
	SuitabilityScore    float64 `json:"suitability_score"`
}

// ProfitPerWaterUnit is +Inf when the crop needs no water.
func (c CropInput) ProfitPerWaterUnit() float64 {
	if c.WaterReqMMPerHa == 0 {
		return math.Inf(1)
	}
	return c.ExpectedProfitPerHa / c.WaterReqMMPerHa
}

// Efficiency is profit per water unit weighted by suitability. A water-free
// crop with zero suitability gets 0 instead of Inf*0.
func (c CropInput) Efficiency() float64 {
	ppw := c.ProfitPerWaterUnit()
	if math.IsInf(ppw, 0) && c.SuitabilityScore == 0 {
		return 0
	}
	return ppw * c.SuitabilityScore
}

type Constraints struct {
	TotalWaterQuotaMM  float64  `json:"total_water_quota_mm"`
	TotalAreaHa        float64  `json:"total_area_ha"`
	MaxCrops           int      `json:"max_crops,omitempty"`
	MinProfitThreshold *float64 `json:"min_profit_threshold,omitempty"`
}

type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusFeasible   Status = "feasible"
	StatusInfeasible Status = "infeasible"
)

// Result is produced once per optimization call and never mutated afterwards.
// Allocations only holds crops with a positive area.
type Result struct {
	Allocations      map[string]float64 `json:"allocations"`
	TotalProfit      float64            `json:"total_profit"`
	TotalWaterUsedMM float64            `json:"total_water_used_mm"`
	Status           Status             `json:"status"`
	Message          string             `json:"message"`
	Strategy         Strategy           `json:"strategy"`
}

// AllocatedArea sums the allocated hectares.
func (r Result) AllocatedArea() float64 {
	var sum float64
	for _, a := range r.Allocations {
		sum += a
	}
	return sum
}

func infeasible(s Strategy, msg string) Result {
	return Result{
		Allocations: map[string]float64{},
		Status:      StatusInfeasible,
		Message:     msg,
		Strategy:    s,
	}
}
