package finboard

import (
	"fmt"
	"slices"
)

// Store owns the canonical dashboard state and is its only mutation surface.
// Construct one per session with NewStore and pass it to collaborators; there
// is no package-level instance.
//
// The store is single-writer by contract: every entry point is a synchronous
// call that runs to completion, so no locking is needed. Derived state (the
// summary and the filtered view) is recomputed from scratch on every relevant
// mutation rather than updated incrementally.
type Store struct {
	assets          []Asset
	filtered        []Asset
	summary         PortfolioSummary
	revenue         []RevenuePoint
	searchTerm      string
	classFilter     ClassFilter
	onboarded       bool
	profile         *UserProfile
	insights        []Insight
	recommendations []Asset
}

// NewStore returns an empty store: no assets, empty summary, no profile,
// class filter set to all.
func NewStore() *Store {
	return &Store{classFilter: FilterAll}
}

// Generate replaces the asset list and revenue series with freshly fabricated
// data and recomputes the summary. The search term and class filter are reset
// to their defaults, so the filtered view is the full new list: regeneration
// starts a fresh view rather than reapplying stale criteria.
//
// On a preferences error nothing changes.
func (s *Store) Generate(prefs Preferences) error {
	assets, err := GenerateAssets(prefs)
	if err != nil {
		return fmt.Errorf("generate mock data: %w", err)
	}
	s.assets = assets
	s.revenue = GenerateRevenue()
	s.summary = Summarize(assets)
	s.searchTerm = ""
	s.classFilter = FilterAll
	s.recomputeFiltered()
	return nil
}

// SetSearchTerm stores the search term and recomputes the filtered view.
func (s *Store) SetSearchTerm(term string) {
	s.searchTerm = term
	s.recomputeFiltered()
}

// SetClassFilter stores the class filter and recomputes the filtered view.
func (s *Store) SetClassFilter(f ClassFilter) {
	s.classFilter = f
	s.recomputeFiltered()
}

func (s *Store) recomputeFiltered() {
	match := ByTerm(s.searchTerm)
	filtered := make([]Asset, 0, len(s.assets))
	for _, a := range s.assets {
		if match(a) && s.classFilter.Matches(a) {
			filtered = append(filtered, a)
		}
	}
	s.filtered = filtered
}

// CompleteOnboarding marks onboarding as done. There is no way back within a
// session.
func (s *Store) CompleteOnboarding() { s.onboarded = true }

// SetProfile stores the onboarding capture verbatim. Slice fields are
// cloned so the caller's retained slices cannot reach store state.
func (s *Store) SetProfile(p UserProfile) {
	p.Goals = slices.Clone(p.Goals)
	p.PreferredAssets = slices.Clone(p.PreferredAssets)
	s.profile = &p
}

// RefreshInsights regenerates the market insights and samples a new set of
// recommendations from the current assets. Assets, summary and filtered view
// are untouched.
func (s *Store) RefreshInsights() {
	s.insights = GenerateInsights()
	s.recommendations = SampleRecommendations(s.assets)
}

// Read surface. Collections come back as copies: callers cannot reach the
// store's internal slices.

// Assets returns the full current asset list.
func (s *Store) Assets() []Asset { return slices.Clone(s.assets) }

// FilteredAssets returns the assets matching the current search term and
// class filter.
func (s *Store) FilteredAssets() []Asset { return slices.Clone(s.filtered) }

// Summary returns the derived portfolio summary.
func (s *Store) Summary() PortfolioSummary { return s.summary }

// Revenue returns the current revenue series, oldest first.
func (s *Store) Revenue() []RevenuePoint { return slices.Clone(s.revenue) }

// SearchTerm returns the current search term.
func (s *Store) SearchTerm() string { return s.searchTerm }

// SelectedClass returns the current class filter.
func (s *Store) SelectedClass() ClassFilter { return s.classFilter }

// Onboarded reports whether onboarding has completed.
func (s *Store) Onboarded() bool { return s.onboarded }

// Profile returns the stored profile, if any. Slice fields come back as
// copies, like every other collection getter.
func (s *Store) Profile() (UserProfile, bool) {
	if s.profile == nil {
		return UserProfile{}, false
	}
	p := *s.profile
	p.Goals = slices.Clone(p.Goals)
	p.PreferredAssets = slices.Clone(p.PreferredAssets)
	return p, true
}

// Insights returns the current market insights.
func (s *Store) Insights() []Insight { return slices.Clone(s.insights) }

// Recommendations returns the current recommendation sample.
func (s *Store) Recommendations() []Asset { return slices.Clone(s.recommendations) }
