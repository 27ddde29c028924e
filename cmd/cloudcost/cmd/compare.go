// Package cmd - compare command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloudcost/core/costing"
	"cloudcost/core/output"
	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/config"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

var (
	outputFormat        string
	tablePath           string
	currencyCode        string
	showBreakdown       bool
	showRecommendations bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [requirements.json]",
	Short: "Compare monthly costs across cloud providers",
	Long: `Price a requirements document against every supported provider and
report the comparison: per-category breakdowns, the cheapest and most
expensive provider, and a multi-cloud blend.

Without an argument the default requirements document is priced, which
is all zeroes and costs nothing on every provider.

Examples:
  cloudcost compare requirements.json
  cloudcost compare --format json requirements.json
  cloudcost compare --format csv requirements.json > costs.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (table, json, csv)")
	compareCmd.Flags().StringVarP(&tablePath, "pricing-table", "t", "", "pricing table file (defaults to built-in rates)")
	compareCmd.Flags().StringVar(&currencyCode, "currency", "", "report currency (USD, EUR, GBP)")
	compareCmd.Flags().BoolVar(&showBreakdown, "breakdown", true, "show per-category cost breakdown")
	compareCmd.Flags().BoolVar(&showRecommendations, "recommendations", true, "show cost recommendations")
}

func runCompare(cmd *cobra.Command, args []string) error {
	req := types.DefaultRequirements()
	if len(args) > 0 {
		loaded, err := loadRequirements(args[0])
		if err != nil {
			return err
		}
		req = loaded
	}

	result, err := calculate(req)
	if err != nil {
		return err
	}

	return render(result)
}

// loadRequirements reads a requirements document, layering it over the
// defaults so absent sections keep their zero semantics.
func loadRequirements(path string) (*types.Requirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}

	req := types.DefaultRequirements()
	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("failed to parse requirements: %w", err)
	}
	return req, nil
}

// loadTable resolves the pricing table: the --pricing-table flag wins,
// then the configured table path, then the built-in rates.
func loadTable() (*pricing.Table, error) {
	path := tablePath
	if path == "" {
		path = config.Get().Pricing.TablePath
	}
	if path == "" {
		return pricing.Default(), nil
	}

	logging.Component(logging.StagePricing).Info("loading pricing table",
		zap.String("path", path))
	return pricing.Load(path)
}

func calculate(req *types.Requirements) (*types.ComparisonResult, error) {
	table, err := loadTable()
	if err != nil {
		return nil, err
	}

	calc, err := costing.New(table)
	if err != nil {
		return nil, err
	}

	return calc.Calculate(req)
}

func render(result *types.ComparisonResult) error {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	formatter, err := output.New(format)
	if err != nil {
		return err
	}

	currency := types.Currency(currencyCode)
	if currency == "" {
		currency = cfg.Pricing.DefaultCurrency
	}
	result, err = convertCurrency(result, currency, cfg.Pricing.ExchangeRates)
	if err != nil {
		return err
	}

	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.ShowBreakdown = showBreakdown && cfg.Output.ShowBreakdown
		tf.ShowRecommendations = showRecommendations && cfg.Output.ShowRecommendations
		tf.Currency = currency
	}

	return formatter.Render(os.Stdout, result)
}

// convertCurrency applies the configured exchange rate. Calculation is
// always done in USD; conversion happens only at output time.
func convertCurrency(result *types.ComparisonResult, currency types.Currency, rates map[types.Currency]float64) (*types.ComparisonResult, error) {
	if currency == "" || currency == types.CurrencyUSD {
		return result, nil
	}
	rate, ok := rates[currency]
	if !ok || rate <= 0 {
		return nil, errors.Inputf("no exchange rate configured for currency %q", currency)
	}
	return output.ConvertCurrency(result, decimal.NewFromFloat(rate)), nil
}
