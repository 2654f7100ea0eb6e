package renderer

import (
	"bytes"
	"strings"

	"finboard"
	md "github.com/nao1215/markdown"
)

// barWidth is the width of the widest revenue bar, in characters.
const barWidth = 20

// RevenueMarkdown renders the revenue history view: a month-by-month table
// with a text bar chart column, oldest first.
func RevenueMarkdown(points []finboard.RevenuePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Revenue History")

	if len(points) == 0 {
		doc.PlainText("No revenue history yet.")
		return doc.String()
	}

	max := points[0].Revenue.AsFloat()
	for _, p := range points[1:] {
		if v := p.Revenue.AsFloat(); v > max {
			max = v
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Month", "Revenue", ""},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Label,
			p.Revenue.String(),
			bar(p.Revenue.AsFloat(), max),
		})
	}
	doc.Table(table)

	return doc.String()
}

// bar scales value against max into a barWidth-wide block run. Positive
// revenue always gets at least one block.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
