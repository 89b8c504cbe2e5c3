package serviceImp

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"cropplan/entities"
	croprepo "cropplan/pkg/crop/repository"
	"cropplan/pkg/history/service"
)

type historySvc struct{ crops croprepo.CropRepository }

func NewHistoryService(crops croprepo.CropRepository) service.HistoryService {
	return &historySvc{crops}
}

func (s *historySvc) Record(h *entities.FieldCropHistory) (*entities.FieldCropHistory, error) {
	h.CropID = strings.ToLower(strings.TrimSpace(h.CropID))
	h.Season = strings.ToLower(strings.TrimSpace(h.Season))
	if h.Year == 0 {
		h.Year = time.Now().Year()
	}
	if math.IsNaN(h.YieldTHa) || math.IsInf(h.YieldTHa, 0) || h.YieldTHa < 0 {
		return nil, fmt.Errorf("%w: yield_t_ha must be >= 0", service.ErrInvalidRecord)
	}
	if _, err := s.crops.Get(h.CropID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown crop %q", service.ErrInvalidRecord, h.CropID)
	} else if err != nil {
		return nil, err
	}
	if err := s.crops.AddHistory(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *historySvc) List(fieldID uint, cropID string) ([]entities.FieldCropHistory, error) {
	return s.crops.FieldHistory(fieldID, strings.ToLower(strings.TrimSpace(cropID)))
}
