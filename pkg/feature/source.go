package feature

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"cropplan/entities"
	croprepo "cropplan/pkg/crop/repository"
	fieldrepo "cropplan/pkg/field/repository"
	"cropplan/pkg/recommend"
	"cropplan/pkg/suitability"
)

const maxCoverage = 1.5

// Source builds pipeline features from the field row and the crop catalogue.
type Source struct {
	fields fieldrepo.FieldRepository
	crops  croprepo.CropRepository
}

func NewSource(fields fieldrepo.FieldRepository, crops croprepo.CropRepository) *Source {
	return &Source{fields: fields, crops: crops}
}

func (s *Source) GetFieldFeatures(ctx context.Context, fieldID uint, season string, sc *recommend.Scenario) (*recommend.FieldFeatures, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fields.Get(fieldID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", recommend.ErrFieldNotFound, fieldID)
	}
	if err != nil {
		return nil, err
	}
	catalogue, err := s.crops.List()
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}

	quota := f.WaterQuotaMM
	if sc != nil && sc.WaterQuotaMM != nil {
		quota = *sc.WaterQuotaMM
	}
	out := &recommend.FieldFeatures{
		FieldID:      f.FieldID,
		Season:       season,
		TotalAreaHa:  f.AreaHa,
		WaterQuotaMM: quota,
		Crops:        make(map[string]recommend.CropFeatures, len(catalogue)),
	}
	for i := range catalogue {
		c := &catalogue[i]
		hy, err := s.meanYield(f.FieldID, c.CropID)
		if err != nil {
			return nil, err
		}
		out.Crops[c.CropID] = recommend.CropFeatures{
			Candidate: suitability.CropCandidate{
				CropID:             c.CropID,
				CropName:           c.Name,
				SoilSuitability:    SoilSuitability(f.SoilTexture, c.PreferredSoils),
				WaterCoverageRatio: CoverageRatio(quota, c.WaterReqMM),
				HistoricalYieldTHa: hy,
				WaterSensitivity:   suitability.WaterSensitivity(strings.ToLower(c.WaterSensitivity)),
				GrowthDurationDays: c.GrowthDays,
			},
			WaterReqMMPerHa: c.WaterReqMM,
			CostPerHa:       c.CostPerHa,
			MinAreaHa:       math.Min(c.MinAreaHa, f.AreaHa),
			MaxAreaHa:       maxArea(c.MaxAreaShare, f.AreaHa),
		}
	}
	return out, nil
}

func (s *Source) meanYield(fieldID uint, cropID string) (float64, error) {
	hs, err := s.crops.FieldHistory(fieldID, cropID)
	if err != nil {
		return 0, fmt.Errorf("history %s: %w", cropID, err)
	}
	v, _ := Mean(hs)
	return v, nil
}

// SoilSuitability scores how well the field's soil suits the crop.
func SoilSuitability(soil string, preferred []string) float64 {
	soil = strings.ToLower(strings.TrimSpace(soil))
	for _, p := range preferred {
		if strings.EqualFold(p, soil) {
			return 1.0
		}
	}
	if soil == "loam" {
		return 0.6
	}
	return 0.3
}

// CoverageRatio is quota over requirement, capped at 1.5.
func CoverageRatio(quotaMM, reqMM float64) float64 {
	if reqMM <= 0 {
		return 1.0
	}
	return math.Min(quotaMM/reqMM, maxCoverage)
}

func maxArea(share, area float64) float64 {
	if share <= 0 || share > 1 {
		return area
	}
	return share * area
}

// Mean averages history yields; ok is false for an empty history.
func Mean(hs []entities.FieldCropHistory) (float64, bool) {
	if len(hs) == 0 {
		return 0, false
	}
	var sum float64
	for _, h := range hs {
		sum += h.YieldTHa
	}
	return sum / float64(len(hs)), true
}
