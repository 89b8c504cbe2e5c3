package recommend

import (
	"fmt"
	"strings"

	"cropplan/pkg/risk"
)

// SuitabilityTier buckets a closeness score.
func SuitabilityTier(score float64) string {
	switch {
	case score >= 0.7:
		return "highly suitable"
	case score >= 0.4:
		return "moderately suitable"
	}
	return "marginally suitable"
}

func coveragePhrase(ratio float64) string {
	pct := ratio * 100
	switch {
	case ratio >= 1:
		return fmt.Sprintf("water supply fully covers demand (%.0f%%)", pct)
	case ratio >= 0.6:
		return fmt.Sprintf("water supply covers %.0f%% of demand", pct)
	}
	return fmt.Sprintf("water supply covers only %.0f%% of demand", pct)
}

// Rationale is the one-line explanation attached to a recommendation.
func Rationale(r Recommendation) string {
	parts := []string{
		fmt.Sprintf("%s is %s (score %.2f)", name(r), SuitabilityTier(r.SuitabilityScore), r.SuitabilityScore),
		coveragePhrase(r.WaterCoverageRatio),
	}
	if r.Risk != "" {
		parts = append(parts, fmt.Sprintf("%s risk", r.Risk))
	}
	if r.AllocatedAreaHa > 0 {
		parts = append(parts, fmt.Sprintf("plant %.2f ha", r.AllocatedAreaHa))
	} else {
		parts = append(parts, "no area allocated under current limits")
	}
	if !r.DataComplete {
		parts = append(parts, "profit estimated from suitability (yield or price unavailable)")
	}
	s := strings.Join(parts, "; ")
	if r.Risk == risk.High {
		s += ". Consider a fallback crop"
	}
	return s + "."
}

func name(r Recommendation) string {
	if r.CropName != "" {
		return r.CropName
	}
	return r.CropID
}
