// Package finboard implements the state core of a synthetic
// financial-portfolio dashboard: a mock-data generator fabricating assets and
// revenue history, a pure aggregator deriving portfolio totals and
// allocations, and a Store owning the session state (assets, filtered view,
// criteria, onboarding profile, market insights).
//
// Everything is fabricated in memory. There is no market-data source, no
// network and no database; the only I/O is the optional session codec used by
// the CLI in the fbd and cmd packages.
package finboard
