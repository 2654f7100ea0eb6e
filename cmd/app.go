// Package cmd implements the CLI application for the finboard dashboard.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"finboard"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sessionFile = flag.String("f", "dashboard.json", "Path to the dashboard session file (JSON)")

// Commands lists every subcommand. A main package registers them on a
// Commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&onboardCmd{},
	&generateCmd{},
	&summaryCmd{},
	&assetsCmd{},
	&revenueCmd{},
	&insightsCmd{},
	&profileCmd{},
	&topicCmd{},
}

var errNoSession = errors.New("no dashboard session")

// LoadSession reads the session file into a store.
func LoadSession() (*finboard.Store, error) {
	f, err := os.Open(*sessionFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w at %q, run 'fbd onboard' or 'fbd generate' first", errNoSession, *sessionFile)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finboard.DecodeSession(f)
}

// LoadOrNewSession reads the session file, or starts a fresh store when none
// exists yet.
func LoadOrNewSession() (*finboard.Store, error) {
	store, err := LoadSession()
	if errors.Is(err, errNoSession) {
		return finboard.NewStore(), nil
	}
	return store, err
}

// SaveSession writes the store snapshot back to the session file.
func SaveSession(store *finboard.Store) error {
	f, err := os.Create(*sessionFile)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	defer f.Close()
	return finboard.EncodeSession(f, store)
}

// splitTags splits a comma-separated flag value into trimmed, non-empty tags.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
