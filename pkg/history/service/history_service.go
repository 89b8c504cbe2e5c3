package service

import (
	"errors"

	"cropplan/entities"
)

var ErrInvalidRecord = errors.New("invalid history record")

// HistoryService records realised yields per field. They feed the
// historical yield predictor.
type HistoryService interface {
	Record(h *entities.FieldCropHistory) (*entities.FieldCropHistory, error)
	List(fieldID uint, cropID string) ([]entities.FieldCropHistory, error)
}
