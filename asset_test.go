package finboard

import "testing"

func TestParseAssetClass(t *testing.T) {
	testCases := []struct {
		tag     string
		want    AssetClass
		wantErr bool
	}{
		{tag: "stock", want: Stock},
		{tag: "stocks", want: Stock},
		{tag: "Equities", want: Stock},
		{tag: "crypto", want: Crypto},
		{tag: "cryptocurrency", want: Crypto},
		{tag: "bond", want: Bond},
		{tag: " Bonds ", want: Bond},
		{tag: "gold", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "x", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.tag, func(t *testing.T) {
			got, err := ParseAssetClass(tc.tag)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseAssetClass(%q) expected an error, got %v", tc.tag, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAssetClass(%q) error = %v", tc.tag, err)
			}
			if got != tc.want {
				t.Errorf("ParseAssetClass(%q) = %v, want %v", tc.tag, got, tc.want)
			}
		})
	}
}

func TestByTerm(t *testing.T) {
	a := Asset{Symbol: "BTC", Name: "Aurora Labs"}

	testCases := []struct {
		term string
		want bool
	}{
		{term: "", want: true},
		{term: "btc", want: true},
		{term: "BTC", want: true},
		{term: "aurora", want: true},
		{term: "LABS", want: true},
		{term: "eth", want: false},
	}
	for _, tc := range testCases {
		if got := ByTerm(tc.term)(a); got != tc.want {
			t.Errorf("ByTerm(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestByClass(t *testing.T) {
	a := Asset{Class: Crypto}
	if !ByClass(Crypto)(a) {
		t.Error("ByClass(Crypto) should match a crypto asset")
	}
	if ByClass(Stock)(a) {
		t.Error("ByClass(Stock) should not match a crypto asset")
	}
}

func TestParseClassFilter(t *testing.T) {
	testCases := []struct {
		tag     string
		want    ClassFilter
		wantErr bool
	}{
		{tag: "all", want: FilterAll},
		{tag: "", want: FilterAll},
		{tag: "stock", want: ClassFilter(Stock)},
		{tag: "bonds", want: ClassFilter(Bond)},
		{tag: "everything", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseClassFilter(tc.tag)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClassFilter(%q) expected an error", tc.tag)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClassFilter(%q) error = %v", tc.tag, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClassFilter(%q) = %v, want %v", tc.tag, got, tc.want)
		}
	}
}

func TestClassFilterMatches(t *testing.T) {
	bond := Asset{Class: Bond}
	if !FilterAll.Matches(bond) {
		t.Error("FilterAll should match every asset")
	}
	if !ClassFilter(Bond).Matches(bond) {
		t.Error("bond filter should match a bond asset")
	}
	if ClassFilter(Crypto).Matches(bond) {
		t.Error("crypto filter should not match a bond asset")
	}
}
