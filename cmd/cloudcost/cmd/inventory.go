// Package cmd - inventory command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cloudcost/core/inventory"
	"cloudcost/core/types"
	"cloudcost/internal/errors"

	// Register the provider normalizers.
	_ "cloudcost/clouds/aws"
	_ "cloudcost/clouds/azure"
	_ "cloudcost/clouds/gcp"
	_ "cloudcost/clouds/oci"
)

var (
	inventoryProvider string
	inventoryOnly     bool
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory <records.json>",
	Short: "Normalize a provider inventory export and compare its costs",
	Long: `Read raw resource records exported from a cloud provider, normalize
them into the unified resource model, derive a requirements document from
the inventory, and compare what that footprint would cost on every
supported provider.

The records file is a JSON array of raw records as exported by the
provider scan tooling.

Examples:
  cloudcost inventory --provider aws resources.json
  cloudcost inventory --provider oci --summary-only resources.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().StringVarP(&inventoryProvider, "provider", "p", "", "source provider (aws, azure, gcp, oci) [REQUIRED]")
	inventoryCmd.Flags().BoolVar(&inventoryOnly, "summary-only", false, "print the inventory summary without cost comparison")
	inventoryCmd.MarkFlagRequired("provider")
}

func runInventory(cmd *cobra.Command, args []string) error {
	provider := types.Provider(inventoryProvider)
	if !provider.IsValid() {
		return errors.Inputf("unknown provider %q (use aws, azure, gcp, or oci)", inventoryProvider)
	}

	records, err := loadRecords(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	resources, err := inventory.Normalize(provider, records)
	if err != nil {
		return err
	}

	inv := inventory.New(resources, start, time.Since(start))
	printSummary(inv)

	if inventoryOnly {
		return nil
	}

	req := inventory.Aggregate(inv.Resources)
	result, err := calculate(req)
	if err != nil {
		return err
	}

	fmt.Println()
	return render(result)
}

func loadRecords(path string) ([]types.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []types.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Parsing("failed to parse records file", err)
	}
	return records, nil
}

func printSummary(inv *inventory.Inventory) {
	fmt.Printf("Normalized %d resources\n", inv.Summary.Total)

	if len(inv.Summary.ByService) > 0 {
		fmt.Println("\nBy service:")
		for service, count := range inv.Summary.ByService {
			fmt.Printf("  %-20s %d\n", service, count)
		}
	}

	if len(inv.Summary.ByLocation) > 0 {
		fmt.Println("\nBy location:")
		for location, count := range inv.Summary.ByLocation {
			fmt.Printf("  %-20s %d\n", location, count)
		}
	}
}
