package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard"
	"finboard/renderer"
	"github.com/google/subcommands"
)

// insightsCmd holds the flags for the 'insights' subcommand.
type insightsCmd struct {
	refresh bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display market insights and recommendations" }
func (*insightsCmd) Usage() string {
	return `fbd insights [-refresh]

  Displays market insights, portfolio statistics and recommended assets.
  With -refresh, a new batch of insights is drawn first.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Draw a fresh batch of insights before displaying.")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.refresh || len(store.Insights()) == 0 {
		store.RefreshInsights()
		if err := SaveSession(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving session %q: %v\n", *sessionFile, err)
			return subcommands.ExitFailure
		}
	}

	view := renderer.InsightsView{
		Insights:        store.Insights(),
		Recommendations: store.Recommendations(),
		Stats:           finboard.NewMarketStats(store.Assets()),
	}
	printMarkdown(renderer.InsightsMarkdown(view))
	return subcommands.ExitSuccess
}
