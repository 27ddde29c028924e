package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"cloudcost/core/types"
)

// TableFormatter renders a human-readable comparison table
type TableFormatter struct {
	// ShowBreakdown includes every category row, not just totals
	ShowBreakdown bool

	// ShowRecommendations appends the derived recommendations
	ShowRecommendations bool

	// Currency labels the figures; empty means USD
	Currency types.Currency
}

func (f *TableFormatter) symbol() string {
	switch f.Currency {
	case types.CurrencyEUR:
		return "€"
	case types.CurrencyGBP:
		return "£"
	default:
		return "$"
	}
}

// Format returns the format type
func (f *TableFormatter) Format() Format {
	return FormatTable
}

// Render writes the comparison as an aligned text table, providers as
// columns, cheapest first.
func (f *TableFormatter) Render(w io.Writer, result *types.ComparisonResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	sym := f.symbol()

	header := "Category"
	for _, p := range result.Providers {
		header += "\t" + p.Name
	}
	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw, strings.Repeat("-", 8)+strings.Repeat("\t--------", len(result.Providers)))

	if f.ShowBreakdown {
		for _, category := range types.AllCategories() {
			if allZero(result.Providers, category) {
				continue
			}
			row := category.String()
			for _, p := range result.Providers {
				row += "\t" + sym + p.Category(category).StringFixed(2)
			}
			fmt.Fprintln(tw, row)
		}
	}

	totalRow := "total"
	for _, p := range result.Providers {
		totalRow += "\t" + sym + p.Total.StringFixed(2)
	}
	fmt.Fprintln(tw, totalRow)

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCheapest: %s (%s%s/month)\n", result.Cheapest.Name, sym, result.Cheapest.Total.StringFixed(2))
	fmt.Fprintf(w, "Most expensive: %s (%s%s/month)\n", result.MostExpensive.Name, sym, result.MostExpensive.Total.StringFixed(2))
	fmt.Fprintf(w, "Potential savings: %s%s/month\n", sym, result.PotentialSavings.StringFixed(2))

	fmt.Fprintf(w, "Multi-cloud blend: %s%s/month", sym, result.MultiCloud.Cost.StringFixed(2))
	if f.ShowBreakdown {
		parts := make([]string, 0, len(types.BlendCategories()))
		for _, category := range types.BlendCategories() {
			parts = append(parts, fmt.Sprintf("%s: %s", category, result.MultiCloud.Breakdown[category]))
		}
		fmt.Fprintf(w, " (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)

	if f.ShowRecommendations && len(result.Recommendations) > 0 {
		fmt.Fprintln(w)
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w, "  * %s\n", rec)
		}
	}

	return nil
}

// allZero reports whether every provider prices the category at zero.
// Presentation filters by value: every category is always present in
// the breakdown, so zero means unused.
func allZero(providers []types.ProviderCost, category types.Category) bool {
	for _, p := range providers {
		if !p.Category(category).IsZero() {
			return false
		}
	}
	return true
}
