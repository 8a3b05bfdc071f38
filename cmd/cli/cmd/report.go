// Package cmd - report command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gomeet-cost/core/cost"
	"gomeet-cost/core/output"
	"gomeet-cost/core/pricing"
	"gomeet-cost/core/report"
	"gomeet-cost/core/roi"
	"gomeet-cost/core/types"
	"gomeet-cost/internal/config"
	"gomeet-cost/internal/logging"
)

var (
	outputPath    string
	outputFormat  string
	pricingFile   string
	scenariosFile string
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the cost analysis report",
	Long: `Evaluate the full cost model and write the nested JSON report.

With no flags, the run is fully self-contained: every price and topology
count comes from the embedded configuration, the report lands in
gomeet_cost_analysis.json, and a summary prints to stdout.

Examples:
  gomeet-cost report
  gomeet-cost report --output costs.json
  gomeet-cost report --format json
  gomeet-cost report --pricing overrides.hcl --scenarios growth.yml`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report file path (default from config)")
	reportCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "stdout format (cli, json)")
	reportCmd.Flags().StringVar(&pricingFile, "pricing", "", "HCL pricing override file")
	reportCmd.Flags().StringVar(&scenariosFile, "scenarios", "", "YAML growth scenario override file")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	book, err := loadPriceBook()
	if err != nil {
		return err
	}

	scenarios := roi.DefaultScenarios()
	if scenariosFile != "" {
		scenarios, err = config.LoadScenarioOverrides(scenariosFile)
		if err != nil {
			return err
		}
		logging.Info("scenario overrides applied",
			zap.String("path", scenariosFile),
			zap.Int("scenarios", len(scenarios)))
	}

	logging.Info("building cost analysis report")
	engine := cost.NewEngine(book)
	r := report.Build(engine, scenarios, version)

	path := cfg.Output.ReportPath
	if outputPath != "" {
		path = outputPath
	}
	if err := report.WriteFile(r, path); err != nil {
		return err
	}

	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}

	switch format {
	case "json":
		return report.Encode(r, os.Stdout)
	default:
		output.RenderSummary(os.Stdout, r)
		fmt.Printf("\nDetailed report saved to: %s\n", path)
		return nil
	}
}

// loadPriceBook returns the default catalog, with the override file
// applied when one was given.
func loadPriceBook() (types.PriceBook, error) {
	book := pricing.DefaultPriceBook()
	if pricingFile == "" {
		return book, nil
	}

	overrides, err := config.LoadPricingOverrides(pricingFile)
	if err != nil {
		return book, err
	}
	book, err = overrides.Apply(book)
	if err != nil {
		return book, err
	}

	logging.Info("pricing overrides applied", zap.String("path", pricingFile))
	return book, nil
}
