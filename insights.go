package finboard

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// Impact classifies the expected effect of a market insight on the portfolio.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// Insight is one synthetic market update. The content is canned text drawn
// from a fixed pool; only the selection and the recency are randomized.
type Insight struct {
	ID       uuid.UUID  `json:"id"`
	Headline string     `json:"headline"`
	Body     string     `json:"body"`
	Impact   Impact     `json:"impact"`
	Class    AssetClass `json:"type"`
	Age      string     `json:"age"`
}

const (
	insightCount        = 4
	recommendationCount = 3
)

// GenerateInsights draws a fixed-size random selection from the canned
// insight pool, stamping each with a fresh ID and a randomized recency.
func GenerateInsights() []Insight {
	order := rand.Perm(len(insightPool))
	insights := make([]Insight, 0, insightCount)
	for _, i := range order[:insightCount] {
		in := insightPool[i]
		in.ID = uuid.New()
		in.Age = fmt.Sprintf("%dh ago", rand.IntN(12)+1)
		insights = append(insights, in)
	}
	return insights
}

// SampleRecommendations returns a random subset of at most three assets,
// without repetition. Fewer assets than that and the whole list comes back,
// shuffled.
func SampleRecommendations(assets []Asset) []Asset {
	n := min(recommendationCount, len(assets))
	sample := make([]Asset, 0, n)
	for _, i := range rand.Perm(len(assets))[:n] {
		sample = append(sample, assets[i])
	}
	return sample
}

// MarketStats summarizes the dispersion of percent changes across the
// portfolio. Derived, render-side data; never stored.
type MarketStats struct {
	MeanChangePercent Percent
	Volatility        Percent // population standard deviation of percent changes
	TopMover          string  // symbol with the largest absolute percent change
}

// NewMarketStats computes dispersion stats over an asset list. The empty
// list yields the zero value, same policy as Summarize.
func NewMarketStats(assets []Asset) MarketStats {
	if len(assets) == 0 {
		return MarketStats{}
	}

	changes := make([]float64, len(assets))
	top := assets[0]
	for i, a := range assets {
		changes[i] = float64(a.ChangePercent)
		if abs(a.ChangePercent) > abs(top.ChangePercent) {
			top = a
		}
	}

	mean, err := stats.Mean(changes)
	if err != nil {
		return MarketStats{}
	}
	stddev, err := stats.StdDevP(changes)
	if err != nil {
		return MarketStats{}
	}
	return MarketStats{
		MeanChangePercent: Percent(mean),
		Volatility:        Percent(stddev),
		TopMover:          top.Symbol,
	}
}

func abs(p Percent) Percent {
	if p < 0 {
		return -p
	}
	return p
}

// insightPool is the canned market-update pool, modeled on the demo's
// original copy. IDs and ages are stamped at generation time.
var insightPool = []Insight{
	{
		Headline: "Tech Sector Showing Strong Recovery",
		Body:     "Technology stocks are rebounding after last week's selloff, presenting potential buying opportunities.",
		Impact:   ImpactPositive,
		Class:    Stock,
	},
	{
		Headline: "Fed Signals Potential Rate Hike",
		Body:     "Federal Reserve minutes indicate considerations for a rates increase in response to inflation concerns.",
		Impact:   ImpactNegative,
		Class:    Bond,
	},
	{
		Headline: "Cryptocurrency Market Volatility",
		Body:     "Digital assets continue to swing on regulatory headlines; position sizing matters more than timing.",
		Impact:   ImpactNeutral,
		Class:    Crypto,
	},
	{
		Headline: "Treasury Yields Edge Higher",
		Body:     "Long-dated government bond yields climbed this week, pressuring existing bond valuations.",
		Impact:   ImpactNegative,
		Class:    Bond,
	},
	{
		Headline: "Earnings Season Beats Expectations",
		Body:     "A majority of reporting companies topped consensus estimates, lifting broad equity indices.",
		Impact:   ImpactPositive,
		Class:    Stock,
	},
	{
		Headline: "Stablecoin Flows Hint at Accumulation",
		Body:     "On-chain data shows exchange inflows of stablecoins, often a precursor to crypto buying pressure.",
		Impact:   ImpactPositive,
		Class:    Crypto,
	},
	{
		Headline: "Energy Prices Cool Inflation Prints",
		Body:     "Softer energy costs fed through to headline inflation, easing pressure on rate-sensitive assets.",
		Impact:   ImpactNeutral,
		Class:    Stock,
	},
	{
		Headline: "Municipal Bonds See Steady Demand",
		Body:     "Tax-advantaged issues remain well bid as investors rotate toward defensive income.",
		Impact:   ImpactPositive,
		Class:    Bond,
	},
}
