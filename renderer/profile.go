package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"finboard"
	md "github.com/nao1215/markdown"
)

// ProfileMarkdown renders the onboarding capture review.
func ProfileMarkdown(p finboard.UserProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investor Profile")
	doc.BulletList(
		fmt.Sprintf("Name: %s", p.Name),
		fmt.Sprintf("Monthly budget: %s", orDash(p.MonthlyBudget)),
		fmt.Sprintf("Experience: %s", orDash(p.Experience)),
		fmt.Sprintf("Risk tolerance: %s", orDash(p.RiskTolerance)),
		fmt.Sprintf("Goals: %s", orDash(strings.Join(p.Goals, ", "))),
		fmt.Sprintf("Preferred assets: %s", orDash(strings.Join(p.PreferredAssets, ", "))),
	)

	return doc.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
