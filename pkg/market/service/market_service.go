package service

import (
	"context"
	"errors"

	"cropplan/entities"
)

var ErrDomainNotAllowed = errors.New("domain not allowed")

type MarketService interface {
	IngestURL(ctx context.Context, url string) ([]entities.MarketPrice, error)
	Prices(cropID string) ([]entities.MarketPrice, error)
}
