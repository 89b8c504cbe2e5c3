package serviceImp

import (
	"fmt"
	"math"
	"strings"

	"cropplan/entities"
	repo "cropplan/pkg/crop/repository"
	"cropplan/pkg/crop/service"
	"cropplan/pkg/suitability"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) List() ([]entities.Crop, error) { return s.r.List() }

func (s *cropSvc) Get(id string) (*entities.Crop, error) {
	return s.r.Get(strings.ToLower(strings.TrimSpace(id)))
}

// Upsert normalises ids and enums the same way the CSV loader does, then
// replaces any existing entry with the same id.
func (s *cropSvc) Upsert(c *entities.Crop) (*entities.Crop, error) {
	c.CropID = strings.ToLower(strings.TrimSpace(c.CropID))
	c.WaterSensitivity = strings.ToLower(strings.TrimSpace(c.WaterSensitivity))
	if c.WaterSensitivity == "" {
		c.WaterSensitivity = string(suitability.SensitivityMedium)
	}
	if c.Name == "" {
		c.Name = c.CropID
	}
	soils := c.PreferredSoils[:0]
	for _, so := range c.PreferredSoils {
		if so = strings.ToLower(strings.TrimSpace(so)); so != "" {
			soils = append(soils, so)
		}
	}
	c.PreferredSoils = soils
	if err := validate(c); err != nil {
		return nil, err
	}
	if err := s.r.Upsert(c); err != nil {
		return nil, err
	}
	return c, nil
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) || v < 0 }

func validate(c *entities.Crop) error {
	if c.CropID == "" {
		return fmt.Errorf("%w: crop_id is required", service.ErrInvalidCrop)
	}
	if _, err := suitability.ParseWaterSensitivity(c.WaterSensitivity); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidCrop, err)
	}
	switch {
	case c.GrowthDays <= 0:
		return fmt.Errorf("%w: growth_days must be > 0", service.ErrInvalidCrop)
	case bad(c.WaterReqMM):
		return fmt.Errorf("%w: water_req_mm must be >= 0", service.ErrInvalidCrop)
	case bad(c.CostPerHa):
		return fmt.Errorf("%w: cost_per_ha must be >= 0", service.ErrInvalidCrop)
	case bad(c.MinAreaHa):
		return fmt.Errorf("%w: min_area_ha must be >= 0", service.ErrInvalidCrop)
	case bad(c.MaxAreaShare) || c.MaxAreaShare > 1:
		return fmt.Errorf("%w: max_area_share must be within [0, 1]", service.ErrInvalidCrop)
	}
	return nil
}
