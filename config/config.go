package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	Timezone           string
	DBPath             string
	CropCatalogCSV     string
	MarketPricesXLSX   string
	Optimizer          string
	TopN               int
	ProxyProfitPerHa   float64
	MaxCrops           int
	MinProfitThreshold *float64
	LLMEndpoint        string
	LLMAPIKey          string
	LLMModel           string
	EnableLIFF         bool
	MarketAllowed      []string
	MarketMaxBytes     int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		Timezone:         get("TZ", "Asia/Bangkok"),
		DBPath:           get("DB_PATH", "cropplan.db"),
		CropCatalogCSV:   get("CROP_CATALOG_CSV", ""),
		MarketPricesXLSX: get("MARKET_PRICES_XLSX", ""),
		Optimizer:        strings.ToLower(get("OPTIMIZER", "greedy")),
		TopN:             atoi("TOP_N", get("TOP_N", ""), 3),
		ProxyProfitPerHa: atof("PROXY_PROFIT_PER_HA", get("PROXY_PROFIT_PER_HA", ""), 100000),
		MaxCrops:         atoi("MAX_CROPS", get("MAX_CROPS", ""), 0),
		LLMEndpoint:      get("LLM_ENDPOINT", ""),
		LLMAPIKey:        get("LLM_API_KEY", ""),
		LLMModel:         get("LLM_MODEL", "gpt-4o-mini"),
		EnableLIFF:       get("ENABLE_LIFF", "false") == "true",
		MarketMaxBytes:   atoi("MARKET_MAX_BYTES", get("MARKET_MAX_BYTES", ""), 1500000),
	}
	if v := get("MIN_PROFIT_THRESHOLD", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MinProfitThreshold = &f
		} else {
			log.Printf("[cfg] MIN_PROFIT_THRESHOLD=%q ignored: %v", v, err)
		}
	}
	for _, h := range strings.Split(get("MARKET_ALLOWED_DOMAINS", ""), ",") {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			cfg.MarketAllowed = append(cfg.MarketAllowed, h)
		}
	}

	shown := cfg
	if shown.LLMAPIKey != "" {
		shown.LLMAPIKey = "***"
	}
	log.Printf("[cfg] %+v", shown)
	return cfg
}

func atoi(k, v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[cfg] %s=%q is not an integer, using %d", k, v, def)
		return def
	}
	return n
}

func atof(k, v string, def float64) float64 {
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[cfg] %s=%q is not a number, using %g", k, v, def)
		return def
	}
	return f
}
