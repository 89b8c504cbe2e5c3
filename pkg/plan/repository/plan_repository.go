package repository

import "cropplan/entities"

type PlanRepository interface {
	Create(p *entities.Plan) error
	// LatestByField returns nil when the field has no plan yet.
	LatestByField(fieldID uint) (*entities.Plan, error)
	ListByField(fieldID uint) ([]entities.Plan, error)
	CreateReplanLog(l *entities.ReplanLog) error
	ReplanLogs(fieldID uint) ([]entities.ReplanLog, error)
}
