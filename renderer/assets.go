package renderer

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"finboard"
	md "github.com/nao1215/markdown"
)

// SortKey selects the asset table ordering.
type SortKey string

const (
	SortBySymbol SortKey = "symbol"
	SortByValue  SortKey = "value"
	SortByChange SortKey = "change"
)

// ParseSortKey parses a sort key tag. Empty means "keep the incoming order".
func ParseSortKey(tag string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(tag))); k {
	case "", SortBySymbol, SortByValue, SortByChange:
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q, want symbol, value or change", tag)
}

// AssetsView is the input to AssetsMarkdown: the filtered assets plus the
// criteria that produced them, echoed in the caption.
type AssetsView struct {
	Assets     []finboard.Asset
	SearchTerm string
	Class      finboard.ClassFilter
	SortBy     SortKey
	Desc       bool
}

// AssetsMarkdown renders the asset table view.
func AssetsMarkdown(v AssetsView) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	doc.PlainText(caption(v))

	if len(v.Assets) == 0 {
		doc.LF()
		doc.PlainText("No assets match the current filters.")
		return doc.String()
	}

	assets := slices.Clone(v.Assets)
	sortAssets(assets, v.SortBy, v.Desc)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Class", "Price", "Change", "Change %", "Qty", "Value"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.Symbol,
			a.Name,
			a.Class.String(),
			a.Price.String(),
			a.Change.SignedString(),
			a.ChangePercent.SignedString(),
			strconv.FormatInt(a.Quantity, 10),
			a.Value.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

func caption(v AssetsView) string {
	parts := []string{fmt.Sprintf("%d assets", len(v.Assets))}
	if v.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search %q", v.SearchTerm))
	}
	if v.Class != "" && v.Class != finboard.FilterAll {
		parts = append(parts, "class "+v.Class.String())
	}
	return strings.Join(parts, ", ")
}

func sortAssets(assets []finboard.Asset, key SortKey, desc bool) {
	var less func(a, b finboard.Asset) int
	switch key {
	case SortBySymbol:
		less = func(a, b finboard.Asset) int { return strings.Compare(a.Symbol, b.Symbol) }
	case SortByValue:
		less = func(a, b finboard.Asset) int { return a.Value.Cmp(b.Value) }
	case SortByChange:
		less = func(a, b finboard.Asset) int {
			return cmp.Compare(a.ChangePercent, b.ChangePercent)
		}
	default:
		return // keep the store's order
	}
	if desc {
		inner := less
		less = func(a, b finboard.Asset) int { return -inner(a, b) }
	}
	slices.SortStableFunc(assets, less)
}
