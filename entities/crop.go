package entities

import "time"

// Crop is one catalogue entry. CropID is the stable key used across runs.
type Crop struct {
	CropID           string   `gorm:"primaryKey" json:"crop_id"`
	Name             string   `json:"name"`
	WaterReqMM       float64  `json:"water_req_mm"`      // per ha per season
	WaterSensitivity string   `json:"water_sensitivity"` // low|medium|high
	GrowthDays       int      `json:"growth_days"`
	CostPerHa        float64  `json:"cost_per_ha"`
	MinAreaHa        float64  `json:"min_area_ha"`
	MaxAreaShare     float64  `json:"max_area_share"` // 0 = whole field
	PreferredSoils   []string `gorm:"serializer:json" json:"preferred_soils"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type FieldCropHistory struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FieldID   uint    `gorm:"index:idx_hist_field_crop" json:"field_id"`
	CropID    string  `gorm:"index:idx_hist_field_crop" json:"crop_id"`
	Season    string  `json:"season"`
	Year      int     `json:"year"`
	YieldTHa  float64 `json:"yield_t_ha"`
	CreatedAt time.Time
}
