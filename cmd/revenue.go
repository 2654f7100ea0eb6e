package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"
	"github.com/google/subcommands"
)

type revenueCmd struct{}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "display the monthly revenue history" }
func (*revenueCmd) Usage() string {
	return `fbd revenue

  Displays the last twelve months of mock revenue as a table with bars.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RevenueMarkdown(store.Revenue()))
	return subcommands.ExitSuccess
}
