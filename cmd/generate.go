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

// generateCmd holds the flags for the 'generate' subcommand.
type generateCmd struct {
	assets string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a fresh mock portfolio" }
func (*generateCmd) Usage() string {
	return `fbd generate [-assets <t1,t2>]

  Replaces the portfolio with freshly generated assets and revenue history,
  and resets any search or class filter. Without -assets, the preferred
  classes from the stored profile are used when available.
`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assets, "assets", "", "Comma-separated list of preferred asset classes.")
}

func (c *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadOrNewSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading session %q: %v\n", *sessionFile, err)
		return subcommands.ExitFailure
	}

	prefs := finboard.Preferences{}
	if tags := splitTags(c.assets); len(tags) > 0 {
		prefs[finboard.PreferredAssetsKey] = tags
	} else if profile, ok := store.Profile(); ok && len(profile.PreferredAssets) > 0 {
		prefs[finboard.PreferredAssetsKey] = profile.PreferredAssets
	}

	if err := store.Generate(prefs); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating portfolio: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.RefreshInsights()

	if err := SaveSession(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session %q: %v\n", *sessionFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(store.Summary()))
	return subcommands.ExitSuccess
}
