package yield

import (
	"context"

	croprepo "cropplan/pkg/crop/repository"
	"cropplan/pkg/feature"
	"cropplan/pkg/recommend"
)

// Historical predicts yield from recorded harvests: the field's own mean,
// then the crop's mean over all fields, else no estimate.
type Historical struct{ crops croprepo.CropRepository }

func NewHistorical(crops croprepo.CropRepository) *Historical { return &Historical{crops} }

func (h *Historical) Predict(_ context.Context, fieldID uint, cropID string, _ recommend.CropFeatures) (*float64, error) {
	hs, err := h.crops.FieldHistory(fieldID, cropID)
	if err != nil {
		return nil, err
	}
	if v, ok := feature.Mean(hs); ok {
		return &v, nil
	}
	hs, err = h.crops.CropHistory(cropID)
	if err != nil {
		return nil, err
	}
	if v, ok := feature.Mean(hs); ok {
		return &v, nil
	}
	return nil, nil
}
