package profit

import (
	"math"

	"github.com/shopspring/decimal"
)

var kgPerTonne = decimal.NewFromInt(1000)

// Profitability is the per-hectare economics of one crop.
type Profitability struct {
	GrossRevenuePerHa float64 `json:"gross_revenue_per_ha"`
	ProfitPerHa       float64 `json:"profit_per_ha"`
	Margin            float64 `json:"margin"`
	// DataComplete is false when yield or price was missing and the
	// profit is a suitability proxy.
	DataComplete bool `json:"data_complete"`
}

// Compute derives revenue, profit and margin per hectare. When yield or
// price is missing (or not finite) it falls back to suitability*proxyPerHa so
// the optimizer always has a signal.
func Compute(yieldTHa, pricePerKg *float64, costPerHa, suitability, proxyPerHa float64) Profitability {
	if !usable(yieldTHa) || !usable(pricePerKg) {
		return Proxy(suitability, proxyPerHa)
	}
	cost := decimal.Zero
	if finite(costPerHa) {
		cost = decimal.NewFromFloat(costPerHa)
	}
	revenue := decimal.NewFromFloat(*yieldTHa).Mul(kgPerTonne).Mul(decimal.NewFromFloat(*pricePerKg)).Round(2)
	prof := revenue.Sub(cost).Round(2)
	margin := decimal.Zero
	if !revenue.IsZero() {
		margin = prof.DivRound(revenue, 4)
	}
	return Profitability{
		GrossRevenuePerHa: revenue.InexactFloat64(),
		ProfitPerHa:       prof.InexactFloat64(),
		Margin:            margin.InexactFloat64(),
		DataComplete:      true,
	}
}

// Proxy is the fallback estimate used when predictions are unavailable.
func Proxy(suitability, proxyPerHa float64) Profitability {
	if !finite(suitability) || !finite(proxyPerHa) {
		return Profitability{}
	}
	p := decimal.NewFromFloat(suitability).Mul(decimal.NewFromFloat(proxyPerHa)).Round(2)
	return Profitability{ProfitPerHa: p.InexactFloat64()}
}

func usable(v *float64) bool { return v != nil && finite(*v) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
