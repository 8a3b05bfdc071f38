// Package cmd provides the CLI commands for gomeet-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gomeet-cost/internal/config"
	"gomeet-cost/internal/logging"
)

// version is the tool version stamped into reports.
const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gomeet-cost",
	Short: "Cost model and ROI projection for the GoMeet deployment",
	Long: `gomeet-cost computes the month-by-month infrastructure cost model and
ROI projection for a 500-participant GoMeet video-conferencing deployment.

All topology counts and unit prices are embedded; a plain run writes the
full JSON report and prints a summary.

Examples:
  gomeet-cost report
  gomeet-cost report --format json
  gomeet-cost report --pricing overrides.hcl --scenarios growth.yml
  gomeet-cost pricing show`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gomeet-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
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
		fmt.Println("gomeet-cost version " + version)
	},
}
