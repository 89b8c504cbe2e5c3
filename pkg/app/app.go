package app

import (
	"fmt"

	"gorm.io/gorm"

	"cropplan/config"
	"cropplan/pkg/ai"
	"cropplan/pkg/crop/catalog"
	croprepo "cropplan/pkg/crop/repository"
	cropRepoImp "cropplan/pkg/crop/repositoryImp"
	"cropplan/pkg/feature"
	fieldrepo "cropplan/pkg/field/repository"
	fieldRepoImp "cropplan/pkg/field/repositoryImp"
	marketrepo "cropplan/pkg/market/repository"
	marketRepoImp "cropplan/pkg/market/repositoryImp"
	marketSvcImp "cropplan/pkg/market/serviceImp"
	"cropplan/pkg/optimizer"
	planrepo "cropplan/pkg/plan/repository"
	planRepoImp "cropplan/pkg/plan/repositoryImp"
	"cropplan/pkg/recommend"
	"cropplan/pkg/risk"
	"cropplan/pkg/yield"
)

// App holds the repositories and the recommendation pipeline shared by the
// HTTP server and the batch CLI.
type App struct {
	DB       *gorm.DB
	Fields   fieldrepo.FieldRepository
	Crops    croprepo.CropRepository
	Market   marketrepo.MarketRepository
	Plans    planrepo.PlanRepository
	Pipeline *recommend.Pipeline
	LLM      ai.Client
	Strategy optimizer.Strategy
}

func New(cfg config.AppConfig, db *gorm.DB) (*App, error) {
	strategy, err := optimizer.ParseStrategy(cfg.Optimizer)
	if err != nil {
		return nil, err
	}
	a := &App{
		DB:       db,
		Fields:   fieldRepoImp.New(db),
		Crops:    cropRepoImp.New(db),
		Market:   marketRepoImp.New(db),
		Plans:    planRepoImp.New(db),
		LLM:      ai.New(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel),
		Strategy: strategy,
	}
	if err := catalog.SeedFiles(a.Crops, a.Market, cfg.CropCatalogCSV, cfg.MarketPricesXLSX); err != nil {
		return nil, fmt.Errorf("seed catalogue: %w", err)
	}

	opts := recommend.DefaultOptions()
	if cfg.TopN > 0 {
		opts.TopN = cfg.TopN
	}
	if cfg.ProxyProfitPerHa > 0 {
		opts.ProxyProfitPerHa = cfg.ProxyProfitPerHa
	}
	opts.MaxCrops = cfg.MaxCrops
	opts.MinProfitThreshold = cfg.MinProfitThreshold

	a.Pipeline = recommend.NewPipeline(
		feature.NewSource(a.Fields, a.Crops),
		yield.NewHistorical(a.Crops),
		marketSvcImp.NewPricer(a.Market),
		risk.NewRules(),
		optimizer.New(strategy),
		opts,
	)
	return a, nil
}
