// Package optimize models cost-reduction levers against the component
// breakdown.
package optimize

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// Lever is one cost-reduction measure with the components it applies to.
type Lever struct {
	Name        string   `json:"optimization"`
	Description string   `json:"description"`
	Savings     float64  `json:"savings_percentage"`
	Components  []string `json:"applicable_components"`
}

// DefaultLevers returns the embedded optimization levers.
func DefaultLevers() []Lever {
	return []Lever{
		{
			Name:        "reserved_instances",
			Description: "30% discount for 1-year commitment",
			Savings:     0.30,
			Components:  []string{types.ComponentSFU, types.ComponentServices, types.ComponentDatabase, types.ComponentRedis},
		},
		{
			Name:        "spot_instances",
			Description: "70% discount for non-critical services",
			Savings:     0.70,
			Components:  []string{types.ComponentMonitoring},
		},
		{
			Name:        "storage_optimization",
			Description: "Compression and tiered storage",
			Savings:     0.50,
			Components:  []string{types.ComponentRecordings},
		},
		{
			Name:        "network_optimization",
			Description: "CDN integration and compression",
			Savings:     0.30,
			Components:  []string{types.ComponentBandwidth},
		},
	}
}

// LeverResult is the priced effect of one lever.
type LeverResult struct {
	Optimization   string          `json:"optimization"`
	Description    string          `json:"description"`
	ApplicableCost decimal.Decimal `json:"applicable_cost"`
	Savings        float64         `json:"savings_percentage"`
	MonthlySavings decimal.Decimal `json:"monthly_savings"`
	AnnualSavings  decimal.Decimal `json:"annual_savings"`
}

// Analysis is the combined optimization outlook.
type Analysis struct {
	BaseMonthlyCost      decimal.Decimal `json:"base_monthly_cost"`
	Optimizations        []LeverResult   `json:"optimizations"`
	TotalMonthlySavings  decimal.Decimal `json:"total_monthly_savings"`
	OptimizedMonthlyCost decimal.Decimal `json:"optimized_monthly_cost"`
	TotalAnnualSavings   decimal.Decimal `json:"total_annual_savings"`
}

// Analyze applies each lever to the component totals it names and
// reports the optimized monthly cost.
func Analyze(infra types.InfrastructureCosts, levers []Lever) Analysis {
	componentMonthly := infra.ComponentMonthly()

	results := make([]LeverResult, 0, len(levers))
	totalSavings := decimal.Zero

	for _, lever := range levers {
		applicable := decimal.Zero
		for _, name := range lever.Components {
			// Components without a pooled monthly total (bandwidth)
			// contribute nothing to the lever base.
			if monthly, ok := componentMonthly[name]; ok {
				applicable = applicable.Add(monthly)
			}
		}

		monthlySavings := applicable.Mul(decimal.NewFromFloat(lever.Savings))
		totalSavings = totalSavings.Add(monthlySavings)

		results = append(results, LeverResult{
			Optimization:   lever.Name,
			Description:    lever.Description,
			ApplicableCost: applicable,
			Savings:        lever.Savings,
			MonthlySavings: monthlySavings,
			AnnualSavings:  types.Annual(monthlySavings),
		})
	}

	return Analysis{
		BaseMonthlyCost:      infra.TotalMonthly,
		Optimizations:        results,
		TotalMonthlySavings:  totalSavings,
		OptimizedMonthlyCost: infra.TotalMonthly.Sub(totalSavings),
		TotalAnnualSavings:   types.Annual(totalSavings),
	}
}
