package recommend

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"cropplan/pkg/optimizer"
	"cropplan/pkg/profit"
	"cropplan/pkg/suitability"
)

type Options struct {
	TopN               int
	ProxyProfitPerHa   float64
	MaxCrops           int
	MinProfitThreshold *float64
	Weights            *suitability.Weights
}

func DefaultOptions() Options {
	return Options{TopN: 3, ProxyProfitPerHa: 100000}
}

// Pipeline runs features -> suitability -> predictions -> profitability ->
// allocation -> ranking. It keeps no state between calls; collaborators are
// injected once at startup.
type Pipeline struct {
	features FeatureSource
	yields   YieldPredictor
	prices   PricePredictor
	risk     RiskClassifier
	opt      optimizer.Optimizer
	opts     Options
}

func NewPipeline(fs FeatureSource, yp YieldPredictor, pp PricePredictor, rc RiskClassifier, opt optimizer.Optimizer, opts Options) *Pipeline {
	if opt == nil {
		opt = optimizer.New(optimizer.StrategyGreedy)
	}
	if opts.TopN <= 0 {
		opts.TopN = 3
	}
	return &Pipeline{features: fs, yields: yp, prices: pp, risk: rc, opt: opt, opts: opts}
}

type cropEval struct {
	id    string
	feat  CropFeatures
	score float64
	yield *float64
	price *float64
	prof  profit.Profitability
}

func (p *Pipeline) Recommend(ctx context.Context, fieldID uint, season string, sc *Scenario) (*RankedList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateScenario(sc); err != nil {
		return nil, err
	}
	ff, err := p.features.GetFieldFeatures(ctx, fieldID, season, sc)
	if err != nil {
		return nil, fmt.Errorf("field features: %w", err)
	}
	if err := validateFeatures(ff); err != nil {
		return nil, err
	}

	quota := ff.WaterQuotaMM
	if sc != nil && sc.WaterQuotaMM != nil {
		quota = *sc.WaterQuotaMM
	}
	out := &RankedList{
		FieldID:         fieldID,
		Season:          season,
		WaterQuotaMM:    quota,
		TotalAreaHa:     ff.TotalAreaHa,
		Scenario:        sc,
		Recommendations: []Recommendation{},
	}

	cands := make(map[string]suitability.CropCandidate, len(ff.Crops))
	for id, cf := range ff.Crops {
		cands[id] = cf.Candidate
	}
	out.Scores = suitability.Score(cands, p.opts.Weights)

	ranked := suitability.Rank(out.Scores)
	evals := make([]cropEval, 0, len(ranked))
	for _, r := range ranked {
		cf := ff.Crops[r.CropID]
		ev := cropEval{id: r.CropID, feat: cf, score: r.Score}
		ev.yield = p.predictYield(ctx, fieldID, r.CropID, cf)
		ev.price = p.predictPrice(ctx, r.CropID, season, sc)
		ev.prof = profit.Compute(ev.yield, ev.price, cf.CostPerHa, r.Score, p.opts.ProxyProfitPerHa)
		evals = append(evals, ev)
	}

	// allocator input follows suitability order, which also settles
	// efficiency ties
	inputs := make([]optimizer.CropInput, len(evals))
	for i, ev := range evals {
		inputs[i] = optimizer.CropInput{
			CropID:              ev.id,
			MinAreaHa:           ev.feat.MinAreaHa,
			MaxAreaHa:           ev.feat.MaxAreaHa,
			ExpectedProfitPerHa: ev.prof.ProfitPerHa,
			WaterReqMMPerHa:     ev.feat.WaterReqMMPerHa,
			SuitabilityScore:    ev.score,
		}
	}
	cons := optimizer.Constraints{
		TotalWaterQuotaMM:  quota,
		TotalAreaHa:        ff.TotalAreaHa,
		MaxCrops:           p.opts.MaxCrops,
		MinProfitThreshold: p.opts.MinProfitThreshold,
	}
	out.Issues = optimizer.Validate(inputs, cons)
	out.Allocation = p.opt.Optimize(inputs, cons)

	n := p.opts.TopN
	if n > len(evals) {
		n = len(evals)
	}
	for i := 0; i < n; i++ {
		ev := evals[i]
		rec := Recommendation{
			Rank:               i + 1,
			CropID:             ev.id,
			CropName:           ev.feat.Candidate.CropName,
			SuitabilityScore:   ev.score,
			AllocatedAreaHa:    out.Allocation.Allocations[ev.id],
			WaterCoverageRatio: ev.feat.Candidate.WaterCoverageRatio,
			ExpectedYieldTHa:   ev.yield,
			PricePerKg:         ev.price,
			Profitability:      ev.prof,
			DataComplete:       ev.prof.DataComplete,
		}
		if p.risk != nil {
			rec.Risk = p.risk.Classify(ev.feat.Candidate, ev.prof)
		}
		rec.Rationale = Rationale(rec)
		out.Recommendations = append(out.Recommendations, rec)
	}

	if len(out.Recommendations) == 0 {
		out.Message = "no recommendations could be generated: no candidate crops for this field"
	} else {
		out.Message = out.Allocation.Message
	}
	return out, nil
}

func (p *Pipeline) predictYield(ctx context.Context, fieldID uint, cropID string, cf CropFeatures) *float64 {
	if p.yields == nil {
		return nil
	}
	v, err := p.yields.Predict(ctx, fieldID, cropID, cf)
	if err != nil {
		log.Printf("[recommend] yield prediction field=%d crop=%s: %v", fieldID, cropID, err)
		return nil
	}
	return v
}

func (p *Pipeline) predictPrice(ctx context.Context, cropID, season string, sc *Scenario) *float64 {
	if sc != nil {
		if v, ok := sc.PriceOverrides[cropID]; ok {
			return &v
		}
	}
	if p.prices == nil {
		return nil
	}
	v, err := p.prices.Predict(ctx, cropID, season)
	if err != nil {
		log.Printf("[recommend] price prediction crop=%s season=%s: %v", cropID, season, err)
		return nil
	}
	return v
}

func validateScenario(sc *Scenario) error {
	if sc == nil {
		return nil
	}
	if q := sc.WaterQuotaMM; q != nil && (!finite(*q) || *q < 0) {
		return fmt.Errorf("%w: water quota must be a finite value >= 0", ErrInputShape)
	}
	ids := make([]string, 0, len(sc.PriceOverrides))
	for id := range sc.PriceOverrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if v := sc.PriceOverrides[id]; !finite(v) || v < 0 {
			return fmt.Errorf("%w: price override for %s must be a finite value >= 0", ErrInputShape, id)
		}
	}
	return nil
}

func validateFeatures(ff *FieldFeatures) error {
	if ff == nil {
		return fmt.Errorf("%w: nil field features", ErrInputShape)
	}
	if !finite(ff.TotalAreaHa) || !finite(ff.WaterQuotaMM) {
		return fmt.Errorf("%w: field %d has non-finite area or quota", ErrInputShape, ff.FieldID)
	}
	ids := make([]string, 0, len(ff.Crops))
	for id := range ff.Crops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cf := ff.Crops[id]
		if cf.Candidate.CropID != id {
			return fmt.Errorf("%w: crop key %q does not match candidate id %q", ErrInputShape, id, cf.Candidate.CropID)
		}
		if err := cf.Candidate.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInputShape, err)
		}
		for _, v := range []float64{cf.WaterReqMMPerHa, cf.CostPerHa, cf.MinAreaHa, cf.MaxAreaHa} {
			if !finite(v) {
				return fmt.Errorf("%w: crop %s has a non-finite numeric field", ErrInputShape, id)
			}
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
