package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cropplan/entities"
	"cropplan/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.Plan) error { return r.db.Create(p).Error }

func (r *planRepo) LatestByField(fieldID uint) (*entities.Plan, error) {
	var p entities.Plan
	err := r.db.Where("field_id = ?", fieldID).Order("version DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ListByField(fieldID uint) ([]entities.Plan, error) {
	var ps []entities.Plan
	if err := r.db.Where("field_id = ?", fieldID).Order("version ASC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *planRepo) CreateReplanLog(l *entities.ReplanLog) error { return r.db.Create(l).Error }

func (r *planRepo) ReplanLogs(fieldID uint) ([]entities.ReplanLog, error) {
	var ls []entities.ReplanLog
	if err := r.db.Where("field_id = ?", fieldID).Order("id ASC").Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}
