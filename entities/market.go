package entities

import "time"

type MarketPrice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CropID     string    `gorm:"index" json:"crop_id"`
	Season     string    `gorm:"index" json:"season"`
	PricePerKg float64   `json:"price_per_kg"`
	Source     string    `json:"source"`
	ObservedAt time.Time `json:"observed_at"`
	CreatedAt  time.Time
}
