// Package cmd - pricing inspection commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gomeet-cost/core/output"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect the unit price catalog",
}

// pricingShowCmd prints the active price book, including any overrides,
// without running the model.
var pricingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active price book",
	Long: `Print the unit price catalog the model would run against.

Pass --pricing to preview an override file before using it with report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		book, err := loadPriceBook()
		if err != nil {
			return err
		}
		output.RenderPriceBook(os.Stdout, book)
		return nil
	},
}

func init() {
	pricingShowCmd.Flags().StringVar(&pricingFile, "pricing", "", "HCL pricing override file")
	pricingCmd.AddCommand(pricingShowCmd)
}
