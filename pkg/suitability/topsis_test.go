package suitability

import (
	"math"
	"testing"
)

func sampleCandidates() map[string]CropCandidate {
	return map[string]CropCandidate{
		"maize": {CropID: "maize", CropName: "Maize", SoilSuitability: 0.9, WaterCoverageRatio: 1.0, HistoricalYieldTHa: 5.0, WaterSensitivity: SensitivityLow, GrowthDurationDays: 120},
		"beans": {CropID: "beans", CropName: "Beans", SoilSuitability: 0.6, WaterCoverageRatio: 0.7, HistoricalYieldTHa: 1.5, WaterSensitivity: SensitivityMedium, GrowthDurationDays: 90},
		"rice":  {CropID: "rice", CropName: "Rice", SoilSuitability: 0.4, WaterCoverageRatio: 0.5, HistoricalYieldTHa: 3.0, WaterSensitivity: SensitivityHigh, GrowthDurationDays: 110},
	}
}

func TestScoreEmpty(t *testing.T) {
	got := Score(map[string]CropCandidate{}, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %v", got)
	}
	if got := Score(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty map for nil input, got %v", got)
	}
}

func TestScoreBounded(t *testing.T) {
	scores := Score(sampleCandidates(), nil)
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	for id, s := range scores {
		if s < 0 || s > 1 || math.IsNaN(s) {
			t.Errorf("score for %s out of range: %v", id, s)
		}
	}
}

func TestDominatingCropScoresHighest(t *testing.T) {
	cands := sampleCandidates()
	// strictly better on every benefit criterion
	cands["sorghum"] = CropCandidate{CropID: "sorghum", SoilSuitability: 1.0, WaterCoverageRatio: 1.2, HistoricalYieldTHa: 6.0, WaterSensitivity: SensitivityLow, GrowthDurationDays: 130}
	scores := Score(cands, nil)
	for id, s := range scores {
		if id != "sorghum" && s >= scores["sorghum"] {
			t.Errorf("%s scored %v >= dominating crop %v", id, s, scores["sorghum"])
		}
	}
	if math.Abs(scores["sorghum"]-1) > 1e-12 {
		t.Errorf("dominating crop should sit on the ideal point, got %v", scores["sorghum"])
	}
	ranked := Rank(scores)
	if ranked[0].CropID != "sorghum" {
		t.Errorf("expected sorghum first, got %s", ranked[0].CropID)
	}
}

func TestScoreIdempotent(t *testing.T) {
	a := Score(sampleCandidates(), nil)
	b := Score(sampleCandidates(), nil)
	for id := range a {
		if a[id] != b[id] {
			t.Errorf("score for %s differs between calls: %v vs %v", id, a[id], b[id])
		}
	}
}

func TestSingleCandidateTiesIdeal(t *testing.T) {
	scores := Score(map[string]CropCandidate{
		"maize": sampleCandidates()["maize"],
	}, nil)
	if scores["maize"] != 0.5 {
		t.Fatalf("expected 0.5 for a lone candidate, got %v", scores["maize"])
	}
}

func TestZeroColumnDoesNotPanic(t *testing.T) {
	cands := map[string]CropCandidate{
		"a": {CropID: "a", SoilSuitability: 0.8, WaterCoverageRatio: 0, HistoricalYieldTHa: 0, WaterSensitivity: SensitivityLow, GrowthDurationDays: 100},
		"b": {CropID: "b", SoilSuitability: 0.4, WaterCoverageRatio: 0, HistoricalYieldTHa: 0, WaterSensitivity: SensitivityLow, GrowthDurationDays: 100},
	}
	scores := Score(cands, nil)
	if scores["a"] != 1 || scores["b"] != 0 {
		t.Fatalf("expected a=1 b=0, got %v", scores)
	}
}

func TestScoresAreSetRelative(t *testing.T) {
	base := sampleCandidates()
	before := Score(base, nil)
	base["cassava"] = CropCandidate{CropID: "cassava", SoilSuitability: 0.7, WaterCoverageRatio: 1.3, HistoricalYieldTHa: 9, WaterSensitivity: SensitivityLow, GrowthDurationDays: 300}
	after := Score(base, nil)
	if before["beans"] == after["beans"] {
		t.Errorf("expected beans score to move when the candidate set changes")
	}
}

func TestCustomWeights(t *testing.T) {
	// only soil matters
	w := Weights{Soil: 1}
	scores := Score(sampleCandidates(), &w)
	if !(scores["maize"] > scores["beans"] && scores["beans"] > scores["rice"]) {
		t.Fatalf("expected ordering by soil suitability, got %v", scores)
	}
}

func TestCandidateValidate(t *testing.T) {
	good := sampleCandidates()["maize"]
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*CropCandidate)
	}{
		{"empty id", func(c *CropCandidate) { c.CropID = "" }},
		{"nan soil", func(c *CropCandidate) { c.SoilSuitability = math.NaN() }},
		{"soil above one", func(c *CropCandidate) { c.SoilSuitability = 1.5 }},
		{"negative yield", func(c *CropCandidate) { c.HistoricalYieldTHa = -1 }},
		{"inf coverage", func(c *CropCandidate) { c.WaterCoverageRatio = math.Inf(1) }},
		{"unknown sensitivity", func(c *CropCandidate) { c.WaterSensitivity = "extreme" }},
		{"zero duration", func(c *CropCandidate) { c.GrowthDurationDays = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestSensitivityEncoding(t *testing.T) {
	if SensitivityLow.Numeric() != 1.0 || SensitivityMedium.Numeric() != 0.5 || SensitivityHigh.Numeric() != 0.2 {
		t.Fatal("unexpected sensitivity encoding")
	}
	if v, err := ParseWaterSensitivity(" HIGH "); err != nil || v != SensitivityHigh {
		t.Fatalf("ParseWaterSensitivity: %v %v", v, err)
	}
}
