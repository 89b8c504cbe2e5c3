package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) Add(prices []entities.MarketPrice) error {
	if len(prices) == 0 {
		return nil
	}
	return r.db.CreateInBatches(prices, 200).Error
}

func (r *marketRepo) Latest(cropID, season string) (*entities.MarketPrice, error) {
	q := r.db.Where("crop_id = ?", cropID)
	if season != "" {
		q = q.Where("season = ?", season)
	}
	var p entities.MarketPrice
	err := q.Order("observed_at DESC").Order("id DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *marketRepo) List(cropID string) ([]entities.MarketPrice, error) {
	q := r.db.Order("observed_at DESC").Order("id DESC")
	if cropID != "" {
		q = q.Where("crop_id = ?", cropID)
	}
	var ps []entities.MarketPrice
	if err := q.Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}
