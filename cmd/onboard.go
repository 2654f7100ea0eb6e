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

// onboardCmd holds the flags for the 'onboard' subcommand.
type onboardCmd struct {
	name       string
	budget     string
	experience string
	risk       string
	goals      string
	assets     string
}

func (*onboardCmd) Name() string     { return "onboard" }
func (*onboardCmd) Synopsis() string { return "capture the investor profile and build the first portfolio" }
func (*onboardCmd) Usage() string {
	return `fbd onboard [-name <name>] [-budget <amount>] [-experience <level>] [-risk <level>] [-goals <g1,g2>] [-assets <t1,t2>]

  Records the investor profile, generates a portfolio honoring the preferred
  asset classes, and starts a new dashboard session.

  Example:
    fbd onboard -name "Ada" -budget 500 -risk moderate -assets stocks,crypto
`
}

func (c *onboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Investor name.")
	f.StringVar(&c.budget, "budget", "", "Monthly investment budget, free form.")
	f.StringVar(&c.experience, "experience", "", "Investment experience (e.g. beginner, intermediate, advanced).")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance (e.g. conservative, moderate, aggressive).")
	f.StringVar(&c.goals, "goals", "", "Comma-separated list of investment goals.")
	f.StringVar(&c.assets, "assets", "", "Comma-separated list of preferred asset classes.")
}

func (c *onboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile := finboard.UserProfile{
		Name:            c.name,
		MonthlyBudget:   c.budget,
		Experience:      c.experience,
		RiskTolerance:   c.risk,
		Goals:           splitTags(c.goals),
		PreferredAssets: splitTags(c.assets),
	}

	store := finboard.NewStore()
	store.SetProfile(profile)

	prefs := finboard.Preferences{}
	if len(profile.PreferredAssets) > 0 {
		prefs[finboard.PreferredAssetsKey] = profile.PreferredAssets
	}
	if err := store.Generate(prefs); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating portfolio: %v\n", err)
		return subcommands.ExitUsageError
	}
	store.RefreshInsights()
	store.CompleteOnboarding()

	if err := SaveSession(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session %q: %v\n", *sessionFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(store.Summary()))
	fmt.Printf("Dashboard session started in %q.\n", *sessionFile)
	return subcommands.ExitSuccess
}
