package entities

import "time"

type Plan struct {
	PlanID         uint    `gorm:"primaryKey" json:"plan_id"`
	RunID          string  `gorm:"index" json:"run_id"`
	FieldID        uint    `json:"field_id" gorm:"index"`
	Season         string  `json:"season"`
	Version        int     `json:"version"`
	Strategy       string  `json:"strategy"`
	Status         string  `json:"status"`
	WaterQuotaMM   float64 `json:"water_quota_mm"`
	TotalProfit    float64 `json:"total_profit"`
	TotalWaterMM   float64 `json:"total_water_mm"`
	ItemsJSON      string  `json:"items_json"`
	AllocationJSON string  `json:"allocation_json"`
	SummaryMD      string  `json:"summary_md"`
	Revised        bool    `json:"revised"`
	CreatedAt      time.Time
}

type ReplanLog struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	FieldID        uint               `json:"field_id" gorm:"index"`
	PlanID         uint               `json:"plan_id"`
	Reason         string             `json:"reason"`
	DeltaMD        string             `json:"delta_md"`
	QuotaMM        *float64           `json:"quota_mm,omitempty"`
	PriceOverrides map[string]float64 `gorm:"serializer:json" json:"price_overrides,omitempty"`
	CreatedAt      time.Time
}
