package serviceImp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"cropplan/entities"
	"cropplan/pkg/ai"
	planrepo "cropplan/pkg/plan/repository"
	"cropplan/pkg/plan/service"
	"cropplan/pkg/recommend"
	"cropplan/pkg/replan"
)

type PlanSvc struct {
	rec      replan.Recommender
	replan   *replan.Replanner
	llm      ai.Client
	repoPlan planrepo.PlanRepository
	strategy string
}

// NewPlanService wires the pipeline, a replanner over it and plan storage.
// strategy is recorded on every stored plan.
func NewPlanService(rec replan.Recommender, llm ai.Client, pr planrepo.PlanRepository, strategy string) *PlanSvc {
	if llm == nil {
		llm = ai.NewMock()
	}
	return &PlanSvc{rec: rec, replan: replan.New(rec), llm: llm, repoPlan: pr, strategy: strategy}
}

var _ service.PlanService = (*PlanSvc)(nil)

func seasonOf(f *entities.Field, season string) string {
	if s := strings.TrimSpace(season); s != "" {
		return strings.ToLower(s)
	}
	return f.Season
}

func (s *PlanSvc) Recommend(ctx context.Context, f *entities.Field, season string) (*service.RecommendResult, error) {
	season = seasonOf(f, season)
	list, err := s.rec.Recommend(ctx, f.FieldID, season, nil)
	if err != nil {
		return nil, err
	}
	p, err := s.save(f, season, list, false)
	if err != nil {
		return nil, err
	}
	return &service.RecommendResult{Plan: p, List: list}, nil
}

func (s *PlanSvc) Replan(ctx context.Context, f *entities.Field, req service.ReplanRequest) (*service.ReplanResult, error) {
	season := seasonOf(f, req.Season)
	out, err := s.replan.Replan(ctx, f.FieldID, season, req.WaterQuotaMM, req.PriceOverrides)
	if err != nil {
		return nil, err
	}
	p, err := s.save(f, season, out.AdjustedPlan, true)
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = "scenario change"
	}
	rl := &entities.ReplanLog{
		FieldID:        f.FieldID,
		PlanID:         p.PlanID,
		Reason:         reason,
		DeltaMD:        out.Message,
		QuotaMM:        req.WaterQuotaMM,
		PriceOverrides: req.PriceOverrides,
	}
	if err := s.repoPlan.CreateReplanLog(rl); err != nil {
		return nil, fmt.Errorf("save replan log: %w", err)
	}
	log.Printf("[plan] field=%d replanned to v%d: %s", f.FieldID, p.Version, out.Message)
	return &service.ReplanResult{Message: out.Message, Plan: p, Log: rl, Outcome: out}, nil
}

func (s *PlanSvc) List(fieldID uint) ([]entities.Plan, error) {
	return s.repoPlan.ListByField(fieldID)
}

func (s *PlanSvc) save(f *entities.Field, season string, list *recommend.RankedList, revised bool) (*entities.Plan, error) {
	prev, err := s.repoPlan.LatestByField(f.FieldID)
	if err != nil {
		return nil, fmt.Errorf("latest plan: %w", err)
	}
	version := 1
	if prev != nil {
		version = prev.Version + 1
	}
	items, err := json.Marshal(list.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}
	alloc, err := json.Marshal(list.Allocation)
	if err != nil {
		return nil, fmt.Errorf("encode allocation: %w", err)
	}
	p := &entities.Plan{
		RunID:          uuid.NewString(),
		FieldID:        f.FieldID,
		Season:         season,
		Version:        version,
		Strategy:       s.strategy,
		Status:         string(list.Allocation.Status),
		WaterQuotaMM:   list.WaterQuotaMM,
		TotalProfit:    list.Allocation.TotalProfit,
		TotalWaterMM:   list.Allocation.TotalWaterUsedMM,
		ItemsJSON:      string(items),
		AllocationJSON: string(alloc),
		SummaryMD:      s.llm.SummarizePlan(f, list),
		Revised:        revised,
	}
	if err := s.repoPlan.Create(p); err != nil {
		return nil, err
	}
	log.Printf("[plan] field=%d v%d run=%s status=%s", f.FieldID, p.Version, p.RunID, p.Status)
	return p, nil
}
