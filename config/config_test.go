package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "OPTIMIZER", "TOP_N", "PROXY_PROFIT_PER_HA", "MAX_CROPS", "MIN_PROFIT_THRESHOLD", "MARKET_ALLOWED_DOMAINS", "MARKET_MAX_BYTES"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.DBPath != "cropplan.db" || cfg.Optimizer != "greedy" {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.TopN != 3 || cfg.ProxyProfitPerHa != 100000 || cfg.MaxCrops != 0 || cfg.MarketMaxBytes != 1500000 {
		t.Errorf("numeric defaults: %+v", cfg)
	}
	if cfg.MinProfitThreshold != nil || len(cfg.MarketAllowed) != 0 {
		t.Errorf("optional values should be unset: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPTIMIZER", "LP")
	t.Setenv("TOP_N", "5")
	t.Setenv("MAX_CROPS", "abc")
	t.Setenv("MIN_PROFIT_THRESHOLD", "-250.5")
	t.Setenv("MARKET_ALLOWED_DOMAINS", " Prices.example.org, ,oae.go.th")
	cfg := Load()
	if cfg.Optimizer != "lp" || cfg.TopN != 5 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.MaxCrops != 0 {
		t.Errorf("bad integer should fall back, got %d", cfg.MaxCrops)
	}
	if cfg.MinProfitThreshold == nil || *cfg.MinProfitThreshold != -250.5 {
		t.Errorf("threshold = %v", cfg.MinProfitThreshold)
	}
	if len(cfg.MarketAllowed) != 2 || cfg.MarketAllowed[0] != "prices.example.org" {
		t.Errorf("allowed = %v", cfg.MarketAllowed)
	}
}
