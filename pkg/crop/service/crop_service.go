package service

import (
	"errors"

	"cropplan/entities"
)

var ErrInvalidCrop = errors.New("invalid crop")

type CropService interface {
	List() ([]entities.Crop, error)
	Get(id string) (*entities.Crop, error)
	Upsert(c *entities.Crop) (*entities.Crop, error)
}
