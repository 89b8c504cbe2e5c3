package replan

import (
	"context"
	"fmt"
	"strings"

	"cropplan/pkg/recommend"
)

const revisedTag = "[Plan B: revised scenario] "

type Recommender interface {
	Recommend(ctx context.Context, fieldID uint, season string, sc *recommend.Scenario) (*recommend.RankedList, error)
}

// Outcome holds the adjusted plan with the baseline it was compared against.
type Outcome struct {
	Message      string                `json:"message"`
	AdjustedPlan *recommend.RankedList `json:"adjusted_plan"`
	Baseline     *recommend.RankedList `json:"baseline"`
}

type Replanner struct {
	rec Recommender
}

func New(rec Recommender) *Replanner { return &Replanner{rec: rec} }

// Replan re-runs the pipeline with the given overrides and explains the
// difference against the field's stored constraints.
func (r *Replanner) Replan(ctx context.Context, fieldID uint, season string, quota *float64, prices map[string]float64) (*Outcome, error) {
	sc := &recommend.Scenario{WaterQuotaMM: quota, PriceOverrides: prices}
	adjusted, err := r.rec.Recommend(ctx, fieldID, season, sc)
	if err != nil {
		return nil, err
	}
	baseline, err := r.rec.Recommend(ctx, fieldID, season, nil)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	for i := range adjusted.Recommendations {
		rec := &adjusted.Recommendations[i]
		rec.Revised = true
		if !strings.HasPrefix(rec.Rationale, revisedTag) {
			rec.Rationale = revisedTag + rec.Rationale
		}
	}
	return &Outcome{
		Message:      Describe(baseline, adjusted, quota, prices),
		AdjustedPlan: adjusted,
		Baseline:     baseline,
	}, nil
}

// Describe renders what changed between two runs as one line.
func Describe(baseline, adjusted *recommend.RankedList, quota *float64, prices map[string]float64) string {
	var parts []string
	if quota != nil {
		delta := adjusted.WaterQuotaMM - baseline.WaterQuotaMM
		parts = append(parts, fmt.Sprintf("water quota %.0f -> %.0f mm (%+.0f mm)", baseline.WaterQuotaMM, adjusted.WaterQuotaMM, delta))
	} else {
		parts = append(parts, fmt.Sprintf("water quota unchanged at %.0f mm", adjusted.WaterQuotaMM))
	}
	if n := len(prices); n > 0 {
		parts = append(parts, fmt.Sprintf("%d price override(s) applied", n))
	}

	before, after := baseline.Top(), adjusted.Top()
	switch {
	case after == nil:
		parts = append(parts, "no crop can be recommended under the revised scenario")
	case before == nil:
		parts = append(parts, fmt.Sprintf("new top crop: %s", label(after)))
	case before.CropID != after.CropID:
		parts = append(parts, fmt.Sprintf("top crop changed from %s to %s", label(before), label(after)))
	default:
		parts = append(parts, fmt.Sprintf("top crop unchanged: %s", label(after)))
	}

	db := adjusted.Allocation.TotalProfit - baseline.Allocation.TotalProfit
	parts = append(parts, fmt.Sprintf("planned profit %.0f -> %.0f (%+.0f)", baseline.Allocation.TotalProfit, adjusted.Allocation.TotalProfit, db))
	if adjusted.Allocation.Status != baseline.Allocation.Status {
		parts = append(parts, fmt.Sprintf("allocation status %s -> %s", baseline.Allocation.Status, adjusted.Allocation.Status))
	}
	return "Plan B: " + strings.Join(parts, "; ")
}

func label(r *recommend.Recommendation) string {
	if r.CropName != "" && r.CropName != r.CropID {
		return fmt.Sprintf("%s (%s)", r.CropName, r.CropID)
	}
	return r.CropID
}
