package finboard

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// sessionJSON is the serialized snapshot of a store's canonical state.
// Derived state (summary and filtered view) is never persisted; it is
// recomputed on decode. Recommendations persist as asset IDs and are
// resolved against the decoded asset list.
type sessionJSON struct {
	Assets          []Asset        `json:"assets"`
	Revenue         []RevenuePoint `json:"revenue"`
	SearchTerm      string         `json:"searchTerm,omitempty"`
	ClassFilter     ClassFilter    `json:"classFilter,omitempty"`
	Onboarded       bool           `json:"onboarded"`
	Profile         *UserProfile   `json:"profile,omitempty"`
	Insights        []Insight      `json:"insights,omitempty"`
	Recommendations []uuid.UUID    `json:"recommendations,omitempty"`
}

// EncodeSession writes a JSON snapshot of the store's canonical state.
func EncodeSession(w io.Writer, s *Store) error {
	snap := sessionJSON{
		Assets:      s.assets,
		Revenue:     s.revenue,
		SearchTerm:  s.searchTerm,
		ClassFilter: s.classFilter,
		Onboarded:   s.onboarded,
		Insights:    s.insights,
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	for _, a := range s.recommendations {
		snap.Recommendations = append(snap.Recommendations, a.ID)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return nil
}

// DecodeSession reads a session snapshot and rebuilds a store from it,
// recomputing the summary and the filtered view under the saved criteria.
// Unknown asset classes or class filters are a decode error.
func DecodeSession(r io.Reader) (*Store, error) {
	var snap sessionJSON
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	for _, a := range snap.Assets {
		if err := knownClass(a.Class); err != nil {
			return nil, fmt.Errorf("decode session: asset %s: %w", a.Symbol, err)
		}
	}
	for _, in := range snap.Insights {
		if err := knownClass(in.Class); err != nil {
			return nil, fmt.Errorf("decode session: insight %q: %w", in.Headline, err)
		}
	}
	filter, err := ParseClassFilter(string(snap.ClassFilter))
	if err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	s := NewStore()
	s.assets = snap.Assets
	s.revenue = snap.Revenue
	s.searchTerm = snap.SearchTerm
	s.classFilter = filter
	s.onboarded = snap.Onboarded
	s.profile = snap.Profile
	s.insights = snap.Insights

	byID := make(map[uuid.UUID]Asset, len(s.assets))
	for _, a := range s.assets {
		byID[a.ID] = a
	}
	for _, id := range snap.Recommendations {
		// recommendations referencing assets gone from the list are dropped
		if a, ok := byID[id]; ok {
			s.recommendations = append(s.recommendations, a)
		}
	}

	s.summary = Summarize(s.assets)
	s.recomputeFiltered()
	return s, nil
}

func knownClass(c AssetClass) error {
	switch c {
	case Stock, Crypto, Bond:
		return nil
	}
	return fmt.Errorf("unknown asset class %q", string(c))
}
