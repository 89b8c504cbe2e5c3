package entities

import "time"

type Field struct {
	FieldID       uint    `gorm:"primaryKey" json:"field_id"`
	UserID        string  `json:"user_id" gorm:"index"`
	Name          string  `json:"name"`
	AreaHa        float64 `json:"area_ha"`
	Province      string  `json:"province"`
	District      string  `json:"district"`
	SoilTexture   string  `json:"soil_texture"`   // sand|loam|clay
	IrrigationSrc string  `json:"irrigation_src"` // well|surface|none
	// seasonal water allocation for the whole field
	WaterQuotaMM float64 `json:"water_quota_mm"`
	Season       string  `json:"season"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
