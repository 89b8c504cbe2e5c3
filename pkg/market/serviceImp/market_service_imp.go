package serviceImp

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"cropplan/entities"
	"cropplan/pkg/market/repository"
	"cropplan/pkg/market/scraper"
	"cropplan/pkg/market/service"
)

type fetchFunc func(ctx context.Context, url string, maxBytes int) ([]entities.MarketPrice, error)

type marketSvc struct {
	repo     repository.MarketRepository
	allow    map[string]bool
	maxBytes int
	fetch    fetchFunc
}

func New(repo repository.MarketRepository, allowed []string, maxBytes int) service.MarketService {
	allow := map[string]bool{}
	for _, h := range allowed {
		allow[strings.ToLower(strings.TrimSpace(h))] = true
	}
	return &marketSvc{repo: repo, allow: allow, maxBytes: maxBytes, fetch: scraper.FetchBoard}
}

func (s *marketSvc) IngestURL(ctx context.Context, raw string) ([]entities.MarketPrice, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("bad url %q", raw)
	}
	if !s.allow[strings.ToLower(u.Hostname())] {
		return nil, fmt.Errorf("%w: %s", service.ErrDomainNotAllowed, u.Hostname())
	}
	prices, err := s.fetch(ctx, raw, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("fetch board: %w", err)
	}
	if err := s.repo.Add(prices); err != nil {
		return nil, err
	}
	log.Printf("[market] ingested %d prices from %s", len(prices), u.Hostname())
	return prices, nil
}

func (s *marketSvc) Prices(cropID string) ([]entities.MarketPrice, error) {
	return s.repo.List(strings.ToLower(strings.TrimSpace(cropID)))
}

// Pricer predicts a crop's price per kg from the latest observation.
type Pricer struct{ repo repository.MarketRepository }

func NewPricer(repo repository.MarketRepository) *Pricer { return &Pricer{repo} }

// Predict prefers a same-season observation and falls back to the latest one
// from any season.
func (p *Pricer) Predict(_ context.Context, cropID, season string) (*float64, error) {
	if season != "" {
		mp, err := p.repo.Latest(cropID, season)
		if err != nil {
			return nil, err
		}
		if mp != nil {
			return &mp.PricePerKg, nil
		}
	}
	mp, err := p.repo.Latest(cropID, "")
	if err != nil || mp == nil {
		return nil, err
	}
	return &mp.PricePerKg, nil
}
