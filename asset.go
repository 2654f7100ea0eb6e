package finboard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AssetClass identifies the kind of holding an Asset represents.
type AssetClass string

const (
	Stock  AssetClass = "stock"
	Crypto AssetClass = "crypto"
	Bond   AssetClass = "bond"
)

// Classes lists every known asset class, in display order.
func Classes() []AssetClass { return []AssetClass{Stock, Crypto, Bond} }

func (c AssetClass) String() string { return string(c) }

// ParseAssetClass normalizes a user-supplied class tag into one of the known
// classes. Recognized aliases ("stocks", "bonds", "cryptocurrency", ...) are
// folded; anything else is an error.
func ParseAssetClass(tag string) (AssetClass, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "stock", "stocks", "equity", "equities":
		return Stock, nil
	case "crypto", "cryptos", "cryptocurrency", "cryptocurrencies":
		return Crypto, nil
	case "bond", "bonds":
		return Bond, nil
	}
	return "", fmt.Errorf("unknown asset class %q", tag)
}

// Asset is one synthetic portfolio holding.
//
// Every field is randomized independently by the generator: Value is not
// Price times Quantity, and ChangePercent does not derive from Change. The
// inconsistency is part of the mock-data contract, not something to repair.
type Asset struct {
	ID            uuid.UUID  `json:"id"`
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name"`
	Price         Money      `json:"price"`
	Change        Money      `json:"change"`
	ChangePercent Percent    `json:"changePercent"`
	Quantity      int64      `json:"quantity"`
	Value         Money      `json:"value"`
	Class         AssetClass `json:"type"`
}

// ByTerm returns a predicate matching assets whose name or symbol contains
// term, case-insensitively. The empty term matches everything.
func ByTerm(term string) func(Asset) bool {
	term = strings.ToLower(term)
	return func(a Asset) bool {
		return strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.Symbol), term)
	}
}

// ByClass returns a predicate matching assets of the given class.
func ByClass(c AssetClass) func(Asset) bool {
	return func(a Asset) bool { return a.Class == c }
}

// ClassFilter selects either a single asset class or every class.
type ClassFilter string

// FilterAll is the class filter matching every asset.
const FilterAll ClassFilter = "all"

// ParseClassFilter parses a class filter tag: "all" (or empty) selects every
// class, anything else must be a known asset class tag.
func ParseClassFilter(tag string) (ClassFilter, error) {
	if t := strings.ToLower(strings.TrimSpace(tag)); t == "" || t == string(FilterAll) {
		return FilterAll, nil
	}
	c, err := ParseAssetClass(tag)
	if err != nil {
		return "", err
	}
	return ClassFilter(c), nil
}

// Matches reports whether the asset passes the filter.
func (f ClassFilter) Matches(a Asset) bool {
	return f == FilterAll || AssetClass(f) == a.Class
}

func (f ClassFilter) String() string { return string(f) }
