package types

import "github.com/shopspring/decimal"

// ProviderCost is one provider's monthly cost breakdown. Every category
// is always present; unused categories hold exactly zero. Total equals
// the sum of the listed category values at 2-decimal precision.
type ProviderCost struct {
	// Provider identifies the cloud provider
	Provider Provider `json:"provider"`

	// Name is the human-readable provider name
	Name string `json:"name"`

	// Categories maps each billable category to its rounded monthly cost
	Categories map[Category]decimal.Decimal `json:"categories"`

	// Total is the sum of the rounded category values
	Total decimal.Decimal `json:"total"`
}

// Category returns the cost for a single category (zero when absent,
// which only happens for a hand-built record).
func (p *ProviderCost) Category(c Category) decimal.Decimal {
	if v, ok := p.Categories[c]; ok {
		return v
	}
	return decimal.Zero
}

// MultiCloudOption is a synthetic blend choosing the cheapest provider
// independently per blended category.
type MultiCloudOption struct {
	// Cost is the sum of the per-category minima
	Cost decimal.Decimal `json:"cost"`

	// Breakdown names the winning provider per category
	Breakdown map[Category]Provider `json:"breakdown"`
}

// ComparisonResult is the complete cross-provider cost comparison.
// Computed fresh per request; immutable.
type ComparisonResult struct {
	// Providers is sorted ascending by total, stable on ties
	Providers []ProviderCost `json:"providers"`

	// Cheapest is Providers[0]
	Cheapest ProviderCost `json:"cheapest"`

	// MostExpensive is Providers[len-1]
	MostExpensive ProviderCost `json:"mostExpensive"`

	// PotentialSavings is MostExpensive.Total - Cheapest.Total
	PotentialSavings decimal.Decimal `json:"potentialSavings"`

	// MultiCloud is the synthetic best-of-breed blend
	MultiCloud MultiCloudOption `json:"multiCloudOption"`

	// Recommendations is derived human-readable guidance
	Recommendations []string `json:"recommendations"`
}
