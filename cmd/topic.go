package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"finboard/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a documentation topic" }
func (*topicCmd) Usage() string {
	return `fbd topic [<name>]

  Displays the named documentation topic, or lists the available topics
  when no name is given.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		topics, err := docs.AllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		var sb strings.Builder
		sb.WriteString("# Topics\n\n")
		for _, t := range topics {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
		printMarkdown(sb.String())
		return subcommands.ExitSuccess
	}

	content, err := docs.GetTopic(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
