package costing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// derive computes the cross-provider optimization results from the
// already-calculated per-provider costs. Pure and side-effect-free:
// linear scans plus one stable sort, so equal totals keep their
// first-encountered order.
func derive(providers []types.ProviderCost, req *types.Requirements) *types.ComparisonResult {
	sorted := make([]types.ProviderCost, len(providers))
	copy(sorted, providers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.LessThan(sorted[j].Total)
	})

	cheapest := sorted[0]
	mostExpensive := sorted[len(sorted)-1]
	savings := mostExpensive.Total.Sub(cheapest.Total).Round(2)

	blend := multiCloud(sorted)

	return &types.ComparisonResult{
		Providers:        sorted,
		Cheapest:         cheapest,
		MostExpensive:    mostExpensive,
		PotentialSavings: savings,
		MultiCloud:       blend,
		Recommendations:  recommendations(sorted, cheapest, mostExpensive, savings, blend, req),
	}
}

// multiCloud picks the cheapest provider independently for each blended
// category. Ties go to the first provider encountered.
func multiCloud(providers []types.ProviderCost) types.MultiCloudOption {
	breakdown := make(map[types.Category]types.Provider, len(types.BlendCategories()))
	cost := decimal.Zero

	for _, category := range types.BlendCategories() {
		best := providers[0]
		bestValue := best.Category(category)
		for _, p := range providers[1:] {
			if v := p.Category(category); v.LessThan(bestValue) {
				best = p
				bestValue = v
			}
		}
		breakdown[category] = best.Provider
		cost = cost.Add(bestValue)
	}

	return types.MultiCloudOption{
		Cost:      cost.Round(2),
		Breakdown: breakdown,
	}
}

// recommendations derives human-readable guidance from the computed
// comparison.
func recommendations(providers []types.ProviderCost, cheapest, mostExpensive types.ProviderCost, savings decimal.Decimal, blend types.MultiCloudOption, req *types.Requirements) []string {
	recs := []string{
		fmt.Sprintf("%s offers the lowest total monthly cost at $%s.", cheapest.Name, cheapest.Total.StringFixed(2)),
	}

	if savings.IsPositive() && mostExpensive.Total.IsPositive() {
		pct := savings.Div(mostExpensive.Total).Mul(decInt(100)).Round(1)
		recs = append(recs, fmt.Sprintf(
			"Switching from %s to %s would save $%s per month (%s%%).",
			mostExpensive.Name, cheapest.Name, savings.StringFixed(2), pct.String()))
	}

	if blend.Cost.LessThan(cheapest.Total) {
		blendSavings := cheapest.Total.Sub(blend.Cost).Round(2)
		recs = append(recs, fmt.Sprintf(
			"A multi-cloud split across core categories would cost $%s per month, $%s below the best single provider.",
			blend.Cost.StringFixed(2), blendSavings.StringFixed(2)))
	}

	if req != nil && (req.Optimization.ReservedInstances == "" || req.Optimization.ReservedInstances == "none") {
		if compute := cheapest.Category(types.CategoryCompute); compute.GreaterThan(decInt(100)) {
			recs = append(recs, "Consider reserved capacity: a 1-year commitment typically reduces instance compute cost by 35-40%.")
		}
	}

	return recs
}
