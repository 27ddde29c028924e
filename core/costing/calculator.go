// Package costing implements the multi-provider cost-normalization
// engine: one canonical requirements document in, one directly
// comparable monthly cost per provider out.
package costing

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// HoursPerMonth is the flat monthly hour count used by every hourly
// rate (24 hours x 30 days).
const HoursPerMonth = 720

// Calculator computes comparable monthly costs across providers.
// Calculate is a pure function of the requirements and the table: no
// I/O, no randomness, no time dependence. A single Calculator is safe
// for concurrent use.
type Calculator struct {
	table *pricing.Table
}

// New creates a calculator. A missing pricing table is fatal; the
// calculator cannot be constructed without one.
func New(table *pricing.Table) (*Calculator, error) {
	if table == nil {
		return nil, errors.New(errors.TypeConfig, "pricing table is required")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{table: table}, nil
}

// modifiers are the cross-category multiplicative adjustments resolved
// once per calculation.
type modifiers struct {
	// region scales every category except storage, networking and backup
	region decimal.Decimal

	// reservedTerm is the commitment term applied to instance compute
	reservedTerm string

	// byol suppresses the OS licensing surcharge
	byol bool
}

// Calculate produces the full cross-provider comparison for one
// requirements document. Any unresolvable field aborts the whole
// calculation; a comparison never reports some providers and silently
// omits others.
func (c *Calculator) Calculate(req *types.Requirements) (*types.ComparisonResult, error) {
	if req == nil {
		return nil, errors.Input("requirements document is required")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	region, err := c.table.RegionMultiplier(req.Compute.Region)
	if err != nil {
		return nil, err
	}

	mods := modifiers{
		region:       region,
		reservedTerm: req.Optimization.ReservedInstances,
		byol:         req.Licensing.BYOL,
	}

	providers := make([]types.ProviderCost, 0, len(types.AllProviders()))
	for _, p := range types.AllProviders() {
		rates, err := c.table.Rates(p)
		if err != nil {
			return nil, err
		}

		cost, err := c.providerCost(p, req, rates, mods)
		if err != nil {
			return nil, err
		}
		providers = append(providers, cost)
	}

	return derive(providers, req), nil
}

// providerCost walks every category for one provider. Categories are
// strictly additive: each is rounded to 2 decimals independently and
// the total is the sum of those rounded values. Summing rounded values
// is the documented contract, cumulative rounding drift included.
func (c *Calculator) providerCost(p types.Provider, req *types.Requirements, rates *pricing.ProviderRates, mods modifiers) (types.ProviderCost, error) {
	breakdown := make(map[types.Category]decimal.Decimal, len(types.AllCategories()))
	total := decimal.Zero

	for _, category := range types.AllCategories() {
		fn, ok := categoryFuncs[category]
		if !ok {
			return types.ProviderCost{}, errors.Newf(errors.TypeInternal, "no cost routine for category %q", category)
		}

		raw, err := fn(req, rates, mods)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				return types.ProviderCost{}, e.
					WithContext("provider", p.String()).
					WithContext("category", category.String())
			}
			return types.ProviderCost{}, err
		}

		rounded := raw.Round(2)
		breakdown[category] = rounded
		total = total.Add(rounded)
	}

	return types.ProviderCost{
		Provider:   p,
		Name:       p.DisplayName(),
		Categories: breakdown,
		Total:      total.Round(2),
	}, nil
}
