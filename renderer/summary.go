// Package renderer turns finboard records into markdown views, one file per
// view. The cmd package decides how the markdown reaches the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"finboard"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio overview: totals and the per-class
// allocation table.
func SummaryMarkdown(s finboard.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(fmt.Sprintf("Total Value: %s", s.TotalValue))
	doc.LF()
	doc.PlainText(fmt.Sprintf("Total Change: %s (%s)", s.TotalChange.SignedString(), s.TotalChangePercent.SignedString()))

	doc.H2("Allocation")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Class", "Allocation"},
		Rows: [][]string{
			{"Stocks", s.StocksAllocation.String()},
			{"Crypto", s.CryptoAllocation.String()},
			{"Bonds", s.BondsAllocation.String()},
		},
	})

	return doc.String()
}
