package renderer

import (
	"bytes"
	"fmt"

	"finboard"
	md "github.com/nao1215/markdown"
)

// InsightsView is the input to InsightsMarkdown.
type InsightsView struct {
	Insights        []finboard.Insight
	Recommendations []finboard.Asset
	Stats           finboard.MarketStats
}

// InsightsMarkdown renders the market insights view: the portfolio stats
// line, the canned market updates, and the recommendation sample.
func InsightsMarkdown(v InsightsView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Insights")

	if v.Stats.TopMover != "" {
		doc.PlainText(fmt.Sprintf("Average move %s, volatility %s, top mover %s.",
			v.Stats.MeanChangePercent.SignedString(), v.Stats.Volatility, v.Stats.TopMover))
	}

	if len(v.Insights) == 0 {
		doc.LF()
		doc.PlainText("No insights yet. Refresh to fetch the latest market updates.")
	}
	for _, in := range v.Insights {
		doc.H2(in.Headline)
		doc.PlainText(in.Body)
		doc.LF()
		doc.PlainText(fmt.Sprintf("Impact: %s for %s holdings (%s)", in.Impact, in.Class, in.Age))
	}

	if len(v.Recommendations) > 0 {
		doc.H2("Recommended For You")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Symbol", "Name", "Change %"},
		}
		for _, a := range v.Recommendations {
			table.Rows = append(table.Rows, []string{a.Symbol, a.Name, a.ChangePercent.SignedString()})
		}
		doc.Table(table)
	}

	return doc.String()
}
