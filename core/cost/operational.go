// Package cost - operational and one-time costs
package cost

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// One-time implementation cost constants.
const developmentMonths = 4

var (
	infrastructureSetupCost = decimal.NewFromInt(50000)
	testingQACost           = decimal.NewFromInt(30000)
	marketingLaunchCost     = decimal.NewFromInt(50000)
)

// OperationalMonthly prices the recurring team and business spend.
func (e *Engine) OperationalMonthly() types.OperationalCost {
	teamMonthly := decimal.Zero
	lines := make([]types.TeamLine, 0, len(e.Operational.Team))

	for _, role := range e.Operational.Team {
		monthly := role.MonthlySalary.Mul(decimal.NewFromInt(int64(role.Count)))
		teamMonthly = teamMonthly.Add(monthly)
		lines = append(lines, types.TeamLine{
			Role:          role.Role,
			Count:         role.Count,
			MonthlySalary: role.MonthlySalary,
			MonthlyCost:   monthly,
		})
	}

	total := teamMonthly.
		Add(e.Operational.MarketingSales).
		Add(e.Operational.OperationsSupport)

	return types.OperationalCost{
		Component:         "Operational Costs",
		TeamCosts:         lines,
		TeamMonthly:       teamMonthly,
		MarketingSales:    e.Operational.MarketingSales,
		OperationsSupport: e.Operational.OperationsSupport,
		TotalMonthly:      total,
		TotalAnnual:       types.Annual(total),
	}
}

// OneTime prices the up-front implementation: the full team for the
// development window, plus setup, QA, and launch.
func (e *Engine) OneTime() types.OneTimeCosts {
	teamMonthly := decimal.Zero
	for _, role := range e.Operational.Team {
		teamMonthly = teamMonthly.Add(role.MonthlySalary.Mul(decimal.NewFromInt(int64(role.Count))))
	}
	development := teamMonthly.Mul(decimal.NewFromInt(developmentMonths))

	total := development.
		Add(infrastructureSetupCost).
		Add(testingQACost).
		Add(marketingLaunchCost)

	return types.OneTimeCosts{
		Development:         development,
		InfrastructureSetup: infrastructureSetupCost,
		TestingQA:           testingQACost,
		MarketingLaunch:     marketingLaunchCost,
		Total:               total,
	}
}
