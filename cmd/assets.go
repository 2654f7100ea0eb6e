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

// assetsCmd holds the flags for the 'assets' subcommand.
type assetsCmd struct {
	search string
	class  string
	sort   string
	desc   bool
}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list portfolio assets, with optional search and class filter" }
func (*assetsCmd) Usage() string {
	return `fbd assets [-q <term>] [-t <class>] [-sort <key>] [-desc]

  Lists the assets matching the session's search term and class filter.
  Passing -q or -t updates the session criteria; omitting them keeps the
  criteria from the previous invocation.

  Examples:
    fbd assets -q bit
    fbd assets -t crypto -sort value -desc
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Search term matched against symbol and name.")
	f.StringVar(&c.class, "t", "", "Class filter: all, stock, crypto or bond.")
	f.StringVar(&c.sort, "sort", "symbol", "Sort key: symbol, value or change.")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order.")
}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := LoadSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Only criteria flags the user actually passed mutate the session.
	var parseErr error
	changed := false
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "q":
			store.SetSearchTerm(c.search)
			changed = true
		case "t":
			filter, err := finboard.ParseClassFilter(c.class)
			if err != nil {
				parseErr = err
				return
			}
			store.SetClassFilter(filter)
			changed = true
		}
	})
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "Error parsing class filter: %v\n", parseErr)
		return subcommands.ExitUsageError
	}

	sortKey, err := renderer.ParseSortKey(c.sort)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sort key: %v\n", err)
		return subcommands.ExitUsageError
	}

	view := renderer.AssetsView{
		Assets:     store.FilteredAssets(),
		SearchTerm: store.SearchTerm(),
		Class:      store.SelectedClass(),
		SortBy:     sortKey,
		Desc:       c.desc,
	}
	printMarkdown(renderer.AssetsMarkdown(view))

	if changed {
		if err := SaveSession(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving session %q: %v\n", *sessionFile, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
