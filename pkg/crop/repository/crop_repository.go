package repository

import "cropplan/entities"

type CropRepository interface {
	Upsert(c *entities.Crop) error
	Get(id string) (*entities.Crop, error)
	// List returns the whole catalogue ordered by crop id.
	List() ([]entities.Crop, error)

	AddHistory(h *entities.FieldCropHistory) error
	// FieldHistory lists a field's records; an empty cropID matches every crop.
	FieldHistory(fieldID uint, cropID string) ([]entities.FieldCropHistory, error)
	CropHistory(cropID string) ([]entities.FieldCropHistory, error)
}
