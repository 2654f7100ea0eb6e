package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "display the stored investor profile" }
func (*profileCmd) Usage() string {
	return `fbd profile

  Displays the investor profile captured during onboarding.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	profile, ok := store.Profile()
	if !ok {
		fmt.Fprintln(os.Stderr, "no profile captured yet, run 'fbd onboard' first")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProfileMarkdown(profile))
	return subcommands.ExitSuccess
}
