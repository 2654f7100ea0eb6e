package finboard

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAssets_UniqueIDs(t *testing.T) {
	assets, err := GenerateAssets(nil)
	if err != nil {
		t.Fatalf("GenerateAssets() error = %v", err)
	}
	seen := make(map[uuid.UUID]bool, len(assets))
	for _, a := range assets {
		if seen[a.ID] {
			t.Fatalf("duplicate asset ID %s", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestGenerateAssets_CountPolicy(t *testing.T) {
	testCases := []struct {
		name     string
		tags     []string
		perClass int
		total    int
	}{
		{name: "default three classes", tags: nil, perClass: 4, total: 12},
		{name: "single class", tags: []string{"stock"}, perClass: 12, total: 12},
		{name: "three classes", tags: []string{"stock", "crypto", "bond"}, perClass: 4, total: 12},
		// 5 tags: floor(12/5)=2 per tag, remainder dropped
		{name: "five tags with duplicates", tags: []string{"stock", "crypto", "bond", "stock", "crypto"}, perClass: 2, total: 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var prefs Preferences
			if tc.tags != nil {
				prefs = Preferences{PreferredAssetsKey: tc.tags}
			}
			assets, err := GenerateAssets(prefs)
			if err != nil {
				t.Fatalf("GenerateAssets() error = %v", err)
			}
			if len(assets) != tc.total {
				t.Fatalf("got %d assets, want %d", len(assets), tc.total)
			}
			// assets come out batched in tag order
			i := 0
			tags := tc.tags
			if tags == nil {
				tags = []string{"stock", "crypto", "bond"}
			}
			for _, tag := range tags {
				want, _ := ParseAssetClass(tag)
				for j := 0; j < tc.perClass; j++ {
					if assets[i].Class != want {
						t.Errorf("asset %d class = %v, want %v", i, assets[i].Class, want)
					}
					i++
				}
			}
		})
	}
}

func TestGenerateAssets_RejectsUnknownTags(t *testing.T) {
	_, err := GenerateAssets(Preferences{PreferredAssetsKey: {"stock", "x", "y"}})
	if err == nil {
		t.Fatal("GenerateAssets() with unknown tags expected an error")
	}
}

func TestGenerateAssets_EmptyPreferenceListFallsBack(t *testing.T) {
	assets, err := GenerateAssets(Preferences{PreferredAssetsKey: {}})
	if err != nil {
		t.Fatalf("GenerateAssets() error = %v", err)
	}
	if len(assets) != 12 {
		t.Errorf("got %d assets, want 12 from the default class set", len(assets))
	}
}

func TestGenerateAssets_FieldRanges(t *testing.T) {
	assets, err := GenerateAssets(nil)
	if err != nil {
		t.Fatalf("GenerateAssets() error = %v", err)
	}
	for _, a := range assets {
		if a.Symbol == "" || a.Name == "" {
			t.Errorf("asset %s has empty symbol or name", a.ID)
		}
		if !a.Price.IsPositive() {
			t.Errorf("asset %s price %s is not positive", a.Symbol, a.Price)
		}
		if !a.Value.IsPositive() {
			t.Errorf("asset %s value %s is not positive", a.Symbol, a.Value)
		}
		if a.Quantity < 1 || a.Quantity > 1000 {
			t.Errorf("asset %s quantity %d out of range", a.Symbol, a.Quantity)
		}
		if a.ChangePercent < -10 || a.ChangePercent > 10 {
			t.Errorf("asset %s change percent %v out of range", a.Symbol, a.ChangePercent)
		}
	}
}
