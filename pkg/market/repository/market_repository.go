package repository

import "cropplan/entities"

type MarketRepository interface {
	Add(prices []entities.MarketPrice) error
	// Latest returns the newest observation for crop and season; an empty
	// season matches any. Nil when there is none.
	Latest(cropID, season string) (*entities.MarketPrice, error)
	List(cropID string) ([]entities.MarketPrice, error)
}
