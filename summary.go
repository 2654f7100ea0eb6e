package finboard

import "github.com/shopspring/decimal"

// PortfolioSummary is the derived aggregate over the current asset set. It
// has no identity of its own: it is recomputed from scratch whenever the
// asset list changes.
//
// The three allocations are computed independently and are not guaranteed to
// sum to exactly 100.
type PortfolioSummary struct {
	TotalValue         Money   `json:"totalValue"`
	TotalChange        Money   `json:"totalChange"`
	TotalChangePercent Percent `json:"totalChangePercent"`
	StocksAllocation   Percent `json:"stocksAllocation"`
	CryptoAllocation   Percent `json:"cryptoAllocation"`
	BondsAllocation    Percent `json:"bondsAllocation"`
}

// Summarize computes the portfolio summary for an asset list. Pure and
// deterministic.
//
// An empty list (or a zero total value) yields zero for every percentage
// field; the division is special-cased so no NaN can escape.
func Summarize(assets []Asset) PortfolioSummary {
	currency := "USD"
	if len(assets) > 0 {
		currency = assets[0].Value.Currency()
	}

	total := decimal.Zero
	change := decimal.Zero
	byClass := make(map[AssetClass]decimal.Decimal, 3)
	for _, a := range assets {
		total = total.Add(a.Value.value)
		change = change.Add(a.Change.value)
		byClass[a.Class] = byClass[a.Class].Add(a.Value.value)
	}

	s := PortfolioSummary{
		TotalValue:  M(total, currency),
		TotalChange: M(change, currency),
	}
	if total.IsZero() {
		// nothing to divide by: every percentage stays 0
		return s
	}

	pct := func(part decimal.Decimal) Percent {
		return Percent(part.Div(total).InexactFloat64() * 100)
	}
	s.TotalChangePercent = pct(change)
	s.StocksAllocation = pct(byClass[Stock])
	s.CryptoAllocation = pct(byClass[Crypto])
	s.BondsAllocation = pct(byClass[Bond])
	return s
}
