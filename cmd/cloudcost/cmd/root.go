// Package cmd provides the CLI commands for cloudcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudcost/internal/config"
	"cloudcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudcost",
	Short: "Compare infrastructure costs across cloud providers",
	Long: `cloudcost estimates and compares monthly infrastructure costs
across AWS, Azure, GCP and Oracle Cloud from a single requirements document.

It can also build the requirements from existing infrastructure: provider
inventory exports or Terraform state and configuration.

Examples:
  cloudcost compare requirements.json
  cloudcost compare --format json requirements.json
  cloudcost inventory --provider aws resources.json
  cloudcost terraform ./infrastructure`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cloudcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(terraformCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloudcost version 0.1.0")
	},
}
