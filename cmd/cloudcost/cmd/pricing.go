// Package cmd - pricing table operations
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudcost/core/pricing"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Pricing table management",
	Long: `Inspect and validate the pricing tables used for cost comparison.

Rates are representative list prices, not a live feed. Custom tables can
be supplied to compare with negotiated or updated rates.`,
}

var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active pricing table as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	},
}

var pricingValidateCmd = &cobra.Command{
	Use:   "validate <table.json>",
	Short: "Validate a pricing table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := pricing.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Pricing table %s is valid (version %s, %d providers, %d region multipliers)\n",
			args[0], table.Version, len(table.Providers), len(table.RegionMultipliers))
		return nil
	},
}

func init() {
	pricingCmd.AddCommand(pricingShowCmd)
	pricingCmd.AddCommand(pricingValidateCmd)
	pricingCmd.PersistentFlags().StringVarP(&tablePath, "pricing-table", "t", "", "pricing table file (defaults to built-in rates)")
}
