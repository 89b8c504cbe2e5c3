package serviceImp

import (
	"fmt"
	"math"
	"strings"

	"cropplan/entities"
	repo "cropplan/pkg/field/repository"
	"cropplan/pkg/field/service"
)

var soils = map[string]bool{"sand": true, "loam": true, "clay": true}

type fieldSvc struct{ r repo.FieldRepository }

func NewFieldService(r repo.FieldRepository) service.FieldService { return &fieldSvc{r} }

func (s *fieldSvc) CreateField(f *entities.Field) (*entities.Field, error) {
	f.SoilTexture = strings.ToLower(strings.TrimSpace(f.SoilTexture))
	if err := validate(f); err != nil {
		return nil, err
	}
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fieldSvc) GetFieldByID(id uint, uid string) (*entities.Field, error) {
	return s.r.FindByID(id, uid)
}

func validate(f *entities.Field) error {
	switch {
	case math.IsNaN(f.AreaHa) || math.IsInf(f.AreaHa, 0) || f.AreaHa <= 0:
		return fmt.Errorf("%w: area_ha must be > 0", service.ErrInvalidField)
	case math.IsNaN(f.WaterQuotaMM) || math.IsInf(f.WaterQuotaMM, 0) || f.WaterQuotaMM < 0:
		return fmt.Errorf("%w: water_quota_mm must be >= 0", service.ErrInvalidField)
	case f.SoilTexture != "" && !soils[f.SoilTexture]:
		return fmt.Errorf("%w: soil_texture must be sand, loam or clay", service.ErrInvalidField)
	}
	return nil
}
