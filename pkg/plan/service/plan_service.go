package service

import (
	"context"

	"cropplan/entities"
	"cropplan/pkg/recommend"
	"cropplan/pkg/replan"
)

type ReplanRequest struct {
	Season         string             `json:"season"`
	WaterQuotaMM   *float64           `json:"water_quota_mm"`
	PriceOverrides map[string]float64 `json:"price_overrides"`
	Reason         string             `json:"reason"`
}

type RecommendResult struct {
	Plan *entities.Plan       `json:"plan"`
	List *recommend.RankedList `json:"recommendations"`
}

type ReplanResult struct {
	Message string              `json:"message"`
	Plan    *entities.Plan      `json:"plan"`
	Log     *entities.ReplanLog `json:"replan"`
	Outcome *replan.Outcome     `json:"-"`
}

type PlanService interface {
	Recommend(ctx context.Context, f *entities.Field, season string) (*RecommendResult, error)
	Replan(ctx context.Context, f *entities.Field, req ReplanRequest) (*ReplanResult, error)
	List(fieldID uint) ([]entities.Plan, error)
}
