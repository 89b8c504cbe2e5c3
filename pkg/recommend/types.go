package recommend

import (
	"context"
	"errors"

	"cropplan/pkg/optimizer"
	"cropplan/pkg/profit"
	"cropplan/pkg/risk"
	"cropplan/pkg/suitability"
)

var (
	// ErrInputShape marks malformed feature or scenario data. It aborts the
	// run before any computation.
	ErrInputShape    = errors.New("input shape error")
	ErrFieldNotFound = errors.New("field not found")
)

// Scenario overrides the field's stored constraints for one run.
type Scenario struct {
	WaterQuotaMM   *float64           `json:"water_quota_mm,omitempty"`
	PriceOverrides map[string]float64 `json:"price_overrides,omitempty"`
}

// CropFeatures is the per-crop record a FeatureSource returns: the scoring
// criteria plus what the allocator and profitability step need.
type CropFeatures struct {
	Candidate       suitability.CropCandidate `json:"candidate"`
	WaterReqMMPerHa float64                   `json:"water_req_mm_per_ha"`
	CostPerHa       float64                   `json:"cost_per_ha"`
	MinAreaHa       float64                   `json:"min_area_ha"`
	MaxAreaHa       float64                   `json:"max_area_ha"`
}

type FieldFeatures struct {
	FieldID      uint                    `json:"field_id"`
	Season       string                  `json:"season"`
	TotalAreaHa  float64                 `json:"total_area_ha"`
	WaterQuotaMM float64                 `json:"water_quota_mm"`
	Crops        map[string]CropFeatures `json:"crops"`
}

type FeatureSource interface {
	GetFieldFeatures(ctx context.Context, fieldID uint, season string, sc *Scenario) (*FieldFeatures, error)
}

// YieldPredictor returns nil when it has no estimate.
type YieldPredictor interface {
	Predict(ctx context.Context, fieldID uint, cropID string, f CropFeatures) (*float64, error)
}

// PricePredictor returns price per kg, or nil when it has no estimate.
type PricePredictor interface {
	Predict(ctx context.Context, cropID, season string) (*float64, error)
}

type RiskClassifier interface {
	Classify(c suitability.CropCandidate, p profit.Profitability) risk.Level
}

type Recommendation struct {
	Rank               int                  `json:"rank"`
	CropID             string               `json:"crop_id"`
	CropName           string               `json:"crop_name"`
	SuitabilityScore   float64              `json:"suitability_score"`
	AllocatedAreaHa    float64              `json:"allocated_area_ha"`
	WaterCoverageRatio float64              `json:"water_coverage_ratio"`
	ExpectedYieldTHa   *float64             `json:"expected_yield_t_ha,omitempty"`
	PricePerKg         *float64             `json:"price_per_kg,omitempty"`
	Profitability      profit.Profitability `json:"profitability"`
	DataComplete       bool                 `json:"data_complete"`
	Risk               risk.Level           `json:"risk"`
	Rationale          string               `json:"rationale"`
	Revised            bool                 `json:"revised,omitempty"`
}

// RankedList is the pipeline output. Recommendations are ordered by
// suitability; Allocation is the optimizer's plan and may order crops
// differently.
type RankedList struct {
	FieldID         uint               `json:"field_id"`
	Season          string             `json:"season"`
	WaterQuotaMM    float64            `json:"water_quota_mm"`
	TotalAreaHa     float64            `json:"total_area_ha"`
	Scenario        *Scenario          `json:"scenario,omitempty"`
	Recommendations []Recommendation   `json:"recommendations"`
	Scores          map[string]float64 `json:"scores"`
	Allocation      optimizer.Result   `json:"allocation"`
	Issues          []optimizer.Issue  `json:"issues,omitempty"`
	Message         string             `json:"message"`
}

// Top returns the first recommendation, or nil for an empty list.
func (l *RankedList) Top() *Recommendation {
	if l == nil || len(l.Recommendations) == 0 {
		return nil
	}
	return &l.Recommendations[0]
}
