package repository

import "cropplan/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	FindByID(id uint, uid string) (*entities.Field, error)
	// Get ignores ownership; used by the recommendation pipeline and batch runs.
	Get(id uint) (*entities.Field, error)
	List() ([]entities.Field, error)
}
