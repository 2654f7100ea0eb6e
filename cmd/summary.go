package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `fbd summary

  Displays the total portfolio value, daily change and allocation by class.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(store.Summary()))
	return subcommands.ExitSuccess
}
