package service

import (
	"errors"

	"cropplan/entities"
)

var ErrInvalidField = errors.New("invalid field")

type FieldService interface {
	CreateField(f *entities.Field) (*entities.Field, error)
	GetFieldByID(id uint, uid string) (*entities.Field, error)
}
