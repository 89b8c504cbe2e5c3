package risk

import (
	"cropplan/pkg/profit"
	"cropplan/pkg/suitability"
)

type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Rules classifies crop risk from water coverage, sensitivity and economics.
type Rules struct {
	// coverage below which a crop is high risk regardless of sensitivity
	CriticalCoverage float64
	// coverage below which a crop is at least medium risk
	ComfortCoverage float64
}

func NewRules() *Rules { return &Rules{CriticalCoverage: 0.6, ComfortCoverage: 0.9} }

func (r *Rules) Classify(c suitability.CropCandidate, p profit.Profitability) Level {
	cov := c.WaterCoverageRatio
	switch {
	case cov < r.CriticalCoverage:
		return High
	case c.WaterSensitivity == suitability.SensitivityHigh && cov < r.ComfortCoverage:
		return High
	case p.DataComplete && p.ProfitPerHa < 0:
		return High
	case cov < r.ComfortCoverage:
		return Medium
	case c.WaterSensitivity == suitability.SensitivityMedium && cov < 1:
		return Medium
	case !p.DataComplete:
		return Medium
	}
	return Low
}
