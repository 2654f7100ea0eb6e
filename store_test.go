package finboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPopulatedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Generate(nil))
	return s
}

func TestStore_Generate(t *testing.T) {
	s := newPopulatedStore(t)

	assert.Len(t, s.Assets(), 12)
	assert.Len(t, s.Revenue(), 12)
	assert.Equal(t, s.Assets(), s.FilteredAssets(), "filtered view should start as the full list")
	assert.True(t, s.Summary().TotalValue.IsPositive())
}

func TestStore_GenerateResetsCriteria(t *testing.T) {
	s := newPopulatedStore(t)
	s.SetSearchTerm("BTC")
	s.SetClassFilter(ClassFilter(Crypto))

	require.NoError(t, s.Generate(nil))

	assert.Empty(t, s.SearchTerm())
	assert.Equal(t, FilterAll, s.SelectedClass())
	assert.Equal(t, s.Assets(), s.FilteredAssets())
}

func TestStore_GenerateErrorLeavesStateUntouched(t *testing.T) {
	s := newPopulatedStore(t)
	before := s.Assets()
	summary := s.Summary()

	err := s.Generate(Preferences{PreferredAssetsKey: {"beanie babies"}})

	require.Error(t, err)
	assert.Equal(t, before, s.Assets())
	assert.Equal(t, summary, s.Summary())
}

func TestStore_FilterOrderIndependence(t *testing.T) {
	s := newPopulatedStore(t)

	s.SetClassFilter(ClassFilter(Crypto))
	s.SetSearchTerm("")
	typeFirst := s.FilteredAssets()

	s.SetClassFilter(FilterAll) // back to defaults, same asset list
	s.SetSearchTerm("")
	termFirst := s.FilteredAssets()
	require.Len(t, termFirst, 12)

	s.SetSearchTerm("")
	s.SetClassFilter(ClassFilter(Crypto))
	reversed := s.FilteredAssets()

	assert.Equal(t, typeFirst, reversed)
	assert.Len(t, typeFirst, 4)
	for _, a := range typeFirst {
		assert.Equal(t, Crypto, a.Class)
	}
}

func TestStore_SearchIsCaseInsensitive(t *testing.T) {
	s := newPopulatedStore(t)
	symbol := s.Assets()[0].Symbol

	s.SetSearchTerm(strings.ToLower(symbol))
	lower := s.FilteredAssets()
	s.SetSearchTerm(strings.ToUpper(symbol))
	upper := s.FilteredAssets()

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}

func TestStore_SearchAndClassCombine(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Generate(Preferences{PreferredAssetsKey: {"stock", "crypto"}}))

	s.SetSearchTerm(s.Assets()[0].Symbol) // a stock symbol
	s.SetClassFilter(ClassFilter(Crypto))

	for _, a := range s.FilteredAssets() {
		assert.Equal(t, Crypto, a.Class)
		assert.True(t, ByTerm(s.SearchTerm())(a))
	}
}

func TestStore_OnboardingIsMonotone(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Onboarded())

	s.CompleteOnboarding()
	require.True(t, s.Onboarded())

	require.NoError(t, s.Generate(nil))
	s.SetSearchTerm("x")
	s.SetClassFilter(FilterAll)
	s.SetProfile(UserProfile{Name: "Ada"})
	s.RefreshInsights()
	s.CompleteOnboarding()

	assert.True(t, s.Onboarded())
}

func TestStore_Profile(t *testing.T) {
	s := NewStore()
	_, ok := s.Profile()
	assert.False(t, ok)

	p := UserProfile{Name: "Ada", RiskTolerance: "balanced", Goals: []string{"retirement"}}
	s.SetProfile(p)

	got, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestStore_RefreshInsights(t *testing.T) {
	s := newPopulatedStore(t)
	assets := s.Assets()
	summary := s.Summary()
	filtered := s.FilteredAssets()

	s.RefreshInsights()

	assert.Len(t, s.Insights(), 4)
	assert.Len(t, s.Recommendations(), 3)
	assert.Equal(t, assets, s.Assets(), "insights must not touch assets")
	assert.Equal(t, summary, s.Summary())
	assert.Equal(t, filtered, s.FilteredAssets())
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := newPopulatedStore(t)

	snapshot := s.Assets()
	snapshot[0].Symbol = "HACKED"
	assert.NotEqual(t, "HACKED", s.Assets()[0].Symbol)

	filtered := s.FilteredAssets()
	filtered[0].Symbol = "HACKED"
	assert.NotEqual(t, "HACKED", s.FilteredAssets()[0].Symbol)

	revenue := s.Revenue()
	revenue[0].Label = "never"
	assert.NotEqual(t, "never", s.Revenue()[0].Label)

	// profile slices are copied on both write and read
	retained := []string{"retirement"}
	s.SetProfile(UserProfile{Name: "Ada", Goals: retained})
	retained[0] = "HACKED"
	got, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, []string{"retirement"}, got.Goals)

	got.Goals[0] = "HACKED"
	again, _ := s.Profile()
	assert.Equal(t, []string{"retirement"}, again.Goals)
}

func TestStore_EmptyStoreReads(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Assets())
	assert.Empty(t, s.FilteredAssets())
	assert.Empty(t, s.Revenue())
	assert.Empty(t, s.Insights())
	assert.Empty(t, s.Recommendations())
	assert.True(t, s.Summary().TotalValue.IsZero())

	// criteria mutations on an empty store are harmless
	s.SetSearchTerm("anything")
	s.SetClassFilter(ClassFilter(Bond))
	assert.Empty(t, s.FilteredAssets())
}
