package suitability

import (
	"fmt"
	"math"
	"strings"
)

type WaterSensitivity string

const (
	SensitivityLow    WaterSensitivity = "low"
	SensitivityMedium WaterSensitivity = "medium"
	SensitivityHigh   WaterSensitivity = "high"
)

// ParseWaterSensitivity accepts low|medium|high in any case.
func ParseWaterSensitivity(s string) (WaterSensitivity, error) {
	switch v := WaterSensitivity(strings.ToLower(strings.TrimSpace(s))); v {
	case SensitivityLow, SensitivityMedium, SensitivityHigh:
		return v, nil
	}
	return "", fmt.Errorf("unknown water sensitivity %q", s)
}

// Numeric is a benefit encoding: low sensitivity scores highest.
func (w WaterSensitivity) Numeric() float64 {
	switch w {
	case SensitivityLow:
		return 1.0
	case SensitivityHigh:
		return 0.2
	default:
		return 0.5
	}
}

// CropCandidate is one crop's criteria for a single scoring run.
type CropCandidate struct {
	CropID             string           `json:"crop_id"`
	CropName           string           `json:"crop_name"`
	SoilSuitability    float64          `json:"soil_suitability"`
	WaterCoverageRatio float64          `json:"water_coverage_ratio"`
	HistoricalYieldTHa float64          `json:"historical_yield_t_ha"`
	WaterSensitivity   WaterSensitivity `json:"water_sensitivity"`
	GrowthDurationDays int              `json:"growth_duration_days"`
}

// Validate rejects records the scorer cannot use. It runs once at the
// feature-source boundary, never inside the math.
func (c CropCandidate) Validate() error {
	if c.CropID == "" {
		return fmt.Errorf("crop candidate: empty crop_id")
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"soil_suitability", c.SoilSuitability},
		{"water_coverage_ratio", c.WaterCoverageRatio},
		{"historical_yield_t_ha", c.HistoricalYieldTHa},
	}
	for _, ck := range checks {
		if math.IsNaN(ck.v) || math.IsInf(ck.v, 0) {
			return fmt.Errorf("crop %s: %s is not finite", c.CropID, ck.name)
		}
		if ck.v < 0 {
			return fmt.Errorf("crop %s: %s must be >= 0, got %g", c.CropID, ck.name, ck.v)
		}
	}
	if c.SoilSuitability > 1 {
		return fmt.Errorf("crop %s: soil_suitability must be <= 1, got %g", c.CropID, c.SoilSuitability)
	}
	if _, err := ParseWaterSensitivity(string(c.WaterSensitivity)); err != nil {
		return fmt.Errorf("crop %s: %w", c.CropID, err)
	}
	if c.GrowthDurationDays <= 0 {
		return fmt.Errorf("crop %s: growth_duration_days must be > 0, got %d", c.CropID, c.GrowthDurationDays)
	}
	return nil
}

// criteria returns the decision-matrix row in fixed column order.
func (c CropCandidate) criteria() []float64 {
	return []float64{
		c.SoilSuitability,
		c.WaterCoverageRatio,
		c.HistoricalYieldTHa,
		c.WaterSensitivity.Numeric(),
		float64(c.GrowthDurationDays),
	}
}

const numCriteria = 5

// Weights holds one weight per criterion. They need not sum to 1.
type Weights struct {
	Soil             float64 `json:"soil"`
	WaterCoverage    float64 `json:"water_coverage"`
	HistoricalYield  float64 `json:"historical_yield"`
	WaterSensitivity float64 `json:"water_sensitivity"`
	GrowthDuration   float64 `json:"growth_duration"`
}

func DefaultWeights() Weights {
	return Weights{
		Soil:             0.25,
		WaterCoverage:    0.25,
		HistoricalYield:  0.20,
		WaterSensitivity: 0.15,
		GrowthDuration:   0.15,
	}
}

func (w Weights) vector() []float64 {
	return []float64{w.Soil, w.WaterCoverage, w.HistoricalYield, w.WaterSensitivity, w.GrowthDuration}
}

func (w Weights) Validate() error {
	for _, v := range w.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid weight: %v", v)
		}
	}
	return nil
}
