package output

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// ConvertCurrency returns a copy of the result with every cost figure
// scaled by a static exchange rate and re-rounded to 2 decimals. Rates
// come from configuration, not a market feed; costs are always
// calculated in USD and converted at output time only.
func ConvertCurrency(result *types.ComparisonResult, rate decimal.Decimal) *types.ComparisonResult {
	converted := &types.ComparisonResult{
		Providers:     make([]types.ProviderCost, len(result.Providers)),
		Cheapest:      convertProvider(result.Cheapest, rate),
		MostExpensive: convertProvider(result.MostExpensive, rate),
		MultiCloud: types.MultiCloudOption{
			Cost:      result.MultiCloud.Cost.Mul(rate).Round(2),
			Breakdown: result.MultiCloud.Breakdown,
		},
		Recommendations: result.Recommendations,
	}
	for i, p := range result.Providers {
		converted.Providers[i] = convertProvider(p, rate)
	}
	// Derived figures are recomputed from the converted endpoints so the
	// comparison stays internally consistent after rounding.
	converted.PotentialSavings = converted.MostExpensive.Total.Sub(converted.Cheapest.Total)
	return converted
}

// convertProvider scales each category and recomputes the total from the
// converted values. Totals are always the sum of the rounded categories;
// rounding the scaled total independently could drift a cent away.
func convertProvider(p types.ProviderCost, rate decimal.Decimal) types.ProviderCost {
	categories := make(map[types.Category]decimal.Decimal, len(p.Categories))
	total := decimal.Zero
	for c, v := range p.Categories {
		converted := v.Mul(rate).Round(2)
		categories[c] = converted
		total = total.Add(converted)
	}
	return types.ProviderCost{
		Provider:   p.Provider,
		Name:       p.Name,
		Categories: categories,
		Total:      total,
	}
}
