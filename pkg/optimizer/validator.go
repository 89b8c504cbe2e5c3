package optimizer

import (
	"fmt"
	"strings"
)

type IssueKind string

const (
	KindNegativeArea  IssueKind = "NegativeArea"
	KindMinAboveMax   IssueKind = "MinAboveMax"
	KindNegativeWater IssueKind = "NegativeWater"
	// KindInfeasible is a hard stop for every optimizer.
	KindInfeasible IssueKind = "Infeasible"
)

type Issue struct {
	Kind    IssueKind `json:"kind"`
	CropID  string    `json:"crop_id,omitempty"`
	Message string    `json:"message"`
}

func (i Issue) String() string { return i.Message }

// Validate runs every static feasibility check and reports all findings.
// Only KindInfeasible issues block optimization; the rest are warnings.
func Validate(crops []CropInput, cons Constraints) []Issue {
	issues := []Issue{}
	var minArea, minWater float64
	for _, c := range crops {
		if c.MaxAreaHa < 0 || c.MinAreaHa < 0 {
			issues = append(issues, Issue{
				Kind:    KindNegativeArea,
				CropID:  c.CropID,
				Message: fmt.Sprintf("crop %s: area bounds must be >= 0 (min %.2f, max %.2f)", c.CropID, c.MinAreaHa, c.MaxAreaHa),
			})
		}
		if c.MinAreaHa > c.MaxAreaHa {
			issues = append(issues, Issue{
				Kind:    KindMinAboveMax,
				CropID:  c.CropID,
				Message: fmt.Sprintf("crop %s: min area %.2f ha exceeds max area %.2f ha", c.CropID, c.MinAreaHa, c.MaxAreaHa),
			})
		}
		if c.WaterReqMMPerHa < 0 {
			issues = append(issues, Issue{
				Kind:    KindNegativeWater,
				CropID:  c.CropID,
				Message: fmt.Sprintf("crop %s: water requirement must be >= 0, got %.2f", c.CropID, c.WaterReqMMPerHa),
			})
		}
		minArea += c.MinAreaHa
		minWater += c.MinAreaHa * c.WaterReqMMPerHa
	}
	if minWater > cons.TotalWaterQuotaMM {
		issues = append(issues, Issue{
			Kind:    KindInfeasible,
			Message: fmt.Sprintf("Infeasible: minimum water demand %.1f mm exceeds quota %.1f mm", minWater, cons.TotalWaterQuotaMM),
		})
	}
	if minArea > cons.TotalAreaHa {
		issues = append(issues, Issue{
			Kind:    KindInfeasible,
			Message: fmt.Sprintf("Infeasible: minimum area %.2f ha exceeds total area %.2f ha", minArea, cons.TotalAreaHa),
		})
	}
	return issues
}

func HasInfeasible(issues []Issue) bool {
	for _, i := range issues {
		if i.Kind == KindInfeasible {
			return true
		}
	}
	return false
}

func joinIssues(issues []Issue, kinds ...IssueKind) string {
	var parts []string
	for _, i := range issues {
		for _, k := range kinds {
			if i.Kind == k {
				parts = append(parts, i.Message)
				break
			}
		}
	}
	return strings.Join(parts, "; ")
}

// blocked lists crops with per-crop issues; they are left out of the
// allocation so the produced result keeps its bounds invariants.
func blocked(issues []Issue) map[string]bool {
	out := map[string]bool{}
	for _, i := range issues {
		if i.CropID != "" {
			out[i.CropID] = true
		}
	}
	return out
}
