// Package output renders human-readable summaries to the terminal.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"gomeet-cost/core/report"
	"gomeet-cost/core/types"
)

// RenderSummary prints the headline numbers of a report.
func RenderSummary(w io.Writer, r *report.Report) {
	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                      GOMEET COST ANALYSIS SUMMARY                       │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	row(w, "Infrastructure monthly cost", money(r.InfrastructureCosts.TotalMonthly))
	row(w, "Operational monthly cost", money(r.OperationalCosts.TotalMonthly))
	row(w, "Total monthly burn", money(r.ROIAnalysis.MonthlyBurn))
	row(w, "One-time implementation cost", money(r.OneTimeCosts.Total))
	row(w, "Potential annual savings", money(r.CostOptimization.TotalAnnualSavings))

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintln(w, "│ ROI scenarios                                                           │")

	for _, name := range sortedScenarios(r) {
		result := r.ROIAnalysis.Scenarios[name]
		breakEven := "no break-even within 36 months"
		if result.BreakEvenMonth != nil {
			breakEven = fmt.Sprintf("break-even in month %d", *result.BreakEvenMonth)
		}
		row(w, "  "+capitalize(name), breakEven)
	}

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintln(w, "│ Resource summary                                                        │")

	res := r.ResourceSummary
	row(w, "  Total vCPU", fmt.Sprintf("%d", res.TotalVCPU))
	row(w, "  Total RAM", fmt.Sprintf("%dGB", res.TotalRAMGB))
	row(w, "  Total storage", fmt.Sprintf("%.0fGB", res.TotalStorageGB))
	row(w, "  Participant capacity", fmt.Sprintf("%d", res.ParticipantCapacity))
	row(w, "  Cost per participant", fmt.Sprintf("$%.4f/month", res.CostPerParticipant.InexactFloat64()))

	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
}

// RenderPriceBook prints the active unit price catalog.
func RenderPriceBook(w io.Writer, book types.PriceBook) {
	fmt.Fprintf(w, "Price book (%s)\n\n", book.Currency)

	fmt.Fprintln(w, "Instance tiers:")
	for _, class := range []types.InstanceClass{
		types.ClassLarge, types.ClassMedium, types.ClassSmall, types.ClassXSmall, types.ClassMicro,
	} {
		spec := book.Instance(class)
		fmt.Fprintf(w, "  %-8s %2d vCPU / %3dGB RAM  %s/month\n",
			class, spec.VCPU, spec.RAMGB, money(spec.MonthlyPrice))
	}

	fmt.Fprintf(w, "\nBlock storage: %s/GB-month\n", money(book.BlockStoragePerGB))

	fmt.Fprintln(w, "Bandwidth tiers:")
	for _, tier := range book.BandwidthTiers {
		if tier.UpToTB == 0 {
			fmt.Fprintf(w, "  above previous tier    %s/GB\n", money(tier.RatePerGB))
			continue
		}
		fmt.Fprintf(w, "  up to %6.0f TB        %s/GB\n", tier.UpToTB, money(tier.RatePerGB))
	}

	fmt.Fprintf(w, "Load balancer: %s/month\n", money(book.LoadBalancer))
	fmt.Fprintf(w, "CDN: %s/GB\n", money(book.CDNPerGB))
}

func sortedScenarios(r *report.Report) []string {
	names := make([]string, 0, len(r.ROIAnalysis.Scenarios))
	for name := range r.ROIAnalysis.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "│ %-44s %26s │\n", truncate(label, 44), truncate(value, 26))
}

func money(d decimal.Decimal) string {
	return fmt.Sprintf("$%.2f", d.InexactFloat64())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
