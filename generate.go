package finboard

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PreferredAssetsKey is the onboarding slide under which the wizard stores
// the preferred asset-class tags.
const PreferredAssetsKey = "slide2"

// Preferences holds the raw onboarding wizard answers, keyed by slide.
type Preferences map[string][]string

// assetTags returns the preferred asset-class tags, or the full default set
// when the wizard did not capture any.
func (p Preferences) assetTags() []string {
	if tags := p[PreferredAssetsKey]; len(tags) > 0 {
		return tags
	}
	return []string{"stock", "crypto", "bond"}
}

// portfolioSize is the target number of assets per generation. The actual
// count is floor(portfolioSize / classes) per class: with 5 requested classes
// the remainder is dropped and only 10 assets come out. The truncation is
// deliberate.
const portfolioSize = 12

// GenerateAssets fabricates a synthetic asset list from onboarding
// preferences. Duplicate class tags are permitted and their order is
// preserved; unknown tags are rejected at this boundary. Every call produces
// a fresh random portfolio.
func GenerateAssets(prefs Preferences) ([]Asset, error) {
	tags := prefs.assetTags()
	classes := make([]AssetClass, 0, len(tags))
	for _, tag := range tags {
		c, err := ParseAssetClass(tag)
		if err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
		classes = append(classes, c)
	}

	perClass := portfolioSize / len(classes)
	assets := make([]Asset, 0, perClass*len(classes))
	for _, c := range classes {
		for range perClass {
			assets = append(assets, newRandomAsset(c))
		}
	}
	return assets, nil
}

func newRandomAsset(c AssetClass) Asset {
	return Asset{
		ID:            uuid.New(),
		Symbol:        pick(symbols[c]),
		Name:          pick(namePrefixes) + " " + pick(nameSuffixes),
		Price:         randMoney(10, 1000),
		Change:        randMoney(-50, 50),
		ChangePercent: Percent(randFloat(-10, 10)),
		Quantity:      rand.Int64N(1000) + 1,
		Value:         randMoney(1000, 100000),
		Class:         c,
	}
}

// randFloat returns a uniform random value in [min, max).
func randFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// randMoney returns a uniform random USD amount in [min, max), rounded to cents.
func randMoney(min, max float64) Money {
	return M(decimal.NewFromFloat(randFloat(min, max)).Round(2), "USD")
}

func pick[T any](pool []T) T { return pool[rand.IntN(len(pool))] }

// symbols holds ticker-style symbol pools per class. Symbols may repeat
// within a portfolio; only the asset ID is unique.
var symbols = map[AssetClass][]string{
	Stock: {
		"AAPL", "MSFT", "GOOG", "AMZN", "NVDA", "META", "TSLA", "AMD",
		"NFLX", "ORCL", "CRM", "INTC", "ADBE", "SHOP", "UBER", "SQ",
	},
	Crypto: {
		"BTC", "ETH", "SOL", "ADA", "DOT", "AVAX", "LINK", "XRP",
		"MATIC", "ATOM", "LTC", "UNI",
	},
	Bond: {
		"US2Y", "US5Y", "US10Y", "US30Y", "DE10Y", "FR10Y", "UK10Y",
		"CORPA", "CORPB", "MUNI",
	},
}

var namePrefixes = []string{
	"Aurora", "Granite", "Meridian", "Blue Harbor", "Summit", "Vertex",
	"Cascade", "Northwind", "Atlas", "Pioneer", "Lumen", "Redwood",
	"Silverline", "Horizon", "Beacon", "Crestview",
}

var nameSuffixes = []string{
	"Holdings", "Industries", "Capital", "Labs", "Networks", "Systems",
	"Partners", "Group", "Dynamics", "Ventures", "Technologies", "Trust",
}
