package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cropplan/entities"
	"cropplan/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Upsert(c *entities.Crop) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(c).Error
}

func (r *cropRepo) Get(id string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.First(&c, "crop_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) List() ([]entities.Crop, error) {
	var cs []entities.Crop
	if err := r.db.Order("crop_id ASC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *cropRepo) AddHistory(h *entities.FieldCropHistory) error { return r.db.Create(h).Error }

func (r *cropRepo) FieldHistory(fieldID uint, cropID string) ([]entities.FieldCropHistory, error) {
	var hs []entities.FieldCropHistory
	q := r.db.Where("field_id = ?", fieldID)
	if cropID != "" {
		q = q.Where("crop_id = ?", cropID)
	}
	err := q.Order("id ASC").Find(&hs).Error
	return hs, err
}

func (r *cropRepo) CropHistory(cropID string) ([]entities.FieldCropHistory, error) {
	var hs []entities.FieldCropHistory
	err := r.db.Where("crop_id = ?", cropID).Order("id ASC").Find(&hs).Error
	return hs, err
}
