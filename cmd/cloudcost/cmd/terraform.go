// Package cmd - terraform command
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cloudcost/adapters/terraform"
	"cloudcost/core/inventory"
	"cloudcost/core/types"
)

// terraformCmd represents the terraform command
var terraformCmd = &cobra.Command{
	Use:   "terraform <path>",
	Short: "Compare costs for Terraform-managed infrastructure",
	Long: `Reconcile Terraform-managed resources into the unified resource model
and compare what they would cost on every supported provider.

The path can be a state file (terraform.tfstate) or a directory of .tf
configuration files. State is authoritative when available; scanning
configuration covers resources not yet applied.

Examples:
  cloudcost terraform terraform.tfstate
  cloudcost terraform ./infrastructure`,
	Args: cobra.ExactArgs(1),
	RunE: runTerraform,
}

func init() {
	terraformCmd.Flags().BoolVar(&inventoryOnly, "summary-only", false, "print the inventory summary without cost comparison")
}

func runTerraform(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", path)
	}

	start := time.Now()

	var resources []types.UnifiedResource
	if info.IsDir() {
		resources, err = terraform.ReconcileDir(path)
	} else if strings.HasSuffix(path, ".tfstate") || strings.HasSuffix(path, ".json") {
		resources, err = terraform.ReconcileStateFile(path)
	} else {
		return fmt.Errorf("unsupported path: %s (expected a directory or state file)", path)
	}
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
