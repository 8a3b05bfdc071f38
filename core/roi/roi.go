// Package roi projects revenue scenarios against the cost model and
// finds the break-even point for each.
package roi

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

const (
	// horizonMonths bounds the break-even scan (3 years)
	horizonMonths = 36

	// professionalShare is the fixed professional-tier share of meetings
	professionalShare = 0.3

	// billableDaysPerMonth scales daily meetings to monthly revenue
	billableDaysPerMonth = 30
)

// PlanTier is one subscription plan.
type PlanTier struct {
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	MaxParticipants int             `json:"max_participants"`
}

// DefaultPlanTiers returns the subscription plans: per-meeting monthly
// prices keyed to participant limits.
func DefaultPlanTiers() []PlanTier {
	return []PlanTier{
		{Name: "basic", Price: decimal.NewFromInt(10), MaxParticipants: 50},
		{Name: "professional", Price: decimal.NewFromInt(50), MaxParticipants: 200},
		{Name: "enterprise", Price: decimal.NewFromInt(200), MaxParticipants: 500},
	}
}

// GrowthScenario describes meeting volume growth over three years and
// the enterprise share of the mix.
type GrowthScenario struct {
	Name                string  `yaml:"name" json:"-"`
	Year1MeetingsPerDay float64 `yaml:"year1_meetings_per_day" json:"year1_meetings_per_day"`
	Year2MeetingsPerDay float64 `yaml:"year2_meetings_per_day" json:"year2_meetings_per_day"`
	Year3MeetingsPerDay float64 `yaml:"year3_meetings_per_day" json:"year3_meetings_per_day"`
	EnterpriseRatio     float64 `yaml:"enterprise_ratio" json:"enterprise_ratio"`
}

func (s GrowthScenario) meetingsPerDay(year int) float64 {
	switch year {
	case 1:
		return s.Year1MeetingsPerDay
	case 2:
		return s.Year2MeetingsPerDay
	default:
		return s.Year3MeetingsPerDay
	}
}

// DefaultScenarios returns the three embedded growth scenarios.
func DefaultScenarios() []GrowthScenario {
	return []GrowthScenario{
		{Name: "conservative", Year1MeetingsPerDay: 100, Year2MeetingsPerDay: 500, Year3MeetingsPerDay: 1000, EnterpriseRatio: 0.2},
		{Name: "moderate", Year1MeetingsPerDay: 200, Year2MeetingsPerDay: 1000, Year3MeetingsPerDay: 2000, EnterpriseRatio: 0.25},
		{Name: "aggressive", Year1MeetingsPerDay: 500, Year2MeetingsPerDay: 2000, Year3MeetingsPerDay: 5000, EnterpriseRatio: 0.3},
	}
}

// ScenarioResult is the projection for one growth scenario.
type ScenarioResult struct {
	// YearlyRevenue maps year (1..3) to annual revenue
	YearlyRevenue map[int]decimal.Decimal `json:"yearly_revenue"`

	// YearlyProfit maps year (1..3) to annual profit net of burn
	YearlyProfit map[int]decimal.Decimal `json:"yearly_profit"`

	// BreakEvenMonth is the first month cumulative profit turns
	// positive; nil when it never does within the horizon
	BreakEvenMonth *int `json:"break_even_month,omitempty"`

	// ThreeYearProfit is total profit over the horizon net of
	// one-time costs
	ThreeYearProfit decimal.Decimal `json:"total_3_year_profit"`
}

// Analysis is the full ROI projection across scenarios.
type Analysis struct {
	Scenarios    map[string]ScenarioResult `json:"scenarios"`
	MonthlyBurn  decimal.Decimal           `json:"monthly_burn"`
	OneTimeCosts types.OneTimeCosts        `json:"one_time_costs"`
}

// Analyze projects each scenario against the monthly burn and one-time
// costs.
func Analyze(monthlyBurn decimal.Decimal, oneTime types.OneTimeCosts, scenarios []GrowthScenario) Analysis {
	tiers := DefaultPlanTiers()
	byName := make(map[string]PlanTier, len(tiers))
	for _, tier := range tiers {
		byName[tier.Name] = tier
	}

	yearlyBurn := types.Annual(monthlyBurn)
	results := make(map[string]ScenarioResult, len(scenarios))

	for _, scenario := range scenarios {
		revenue := make(map[int]decimal.Decimal, 3)
		profit := make(map[int]decimal.Decimal, 3)

		for year := 1; year <= 3; year++ {
			meetings := scenario.meetingsPerDay(year)

			enterpriseMeetings := meetings * scenario.EnterpriseRatio
			professionalMeetings := meetings * professionalShare
			basicMeetings := meetings - enterpriseMeetings - professionalMeetings

			dailyRevenue := byName["enterprise"].Price.Mul(decimal.NewFromFloat(enterpriseMeetings)).
				Add(byName["professional"].Price.Mul(decimal.NewFromFloat(professionalMeetings))).
				Add(byName["basic"].Price.Mul(decimal.NewFromFloat(basicMeetings)))
			monthlyRevenue := dailyRevenue.Mul(decimal.NewFromInt(billableDaysPerMonth))

			revenue[year] = types.Annual(monthlyRevenue)
			profit[year] = revenue[year].Sub(yearlyBurn)
		}

		threeYear := profit[1].Add(profit[2]).Add(profit[3]).Sub(oneTime.Total)

		results[scenario.Name] = ScenarioResult{
			YearlyRevenue:   revenue,
			YearlyProfit:    profit,
			BreakEvenMonth:  BreakEvenMonth(profit, oneTime.Total),
			ThreeYearProfit: threeYear,
		}
	}

	return Analysis{
		Scenarios:    results,
		MonthlyBurn:  monthlyBurn,
		OneTimeCosts: oneTime,
	}
}

// BreakEvenMonth scans cumulative profit month by month. One-time costs
// land in month 1; the scan stops at the first month the running total
// turns positive and returns nil when it never does within the horizon.
func BreakEvenMonth(yearlyProfit map[int]decimal.Decimal, oneTimeTotal decimal.Decimal) *int {
	cumulative := decimal.Zero

	for month := 1; month <= horizonMonths; month++ {
		year := (month-1)/12 + 1
		monthlyProfit := yearlyProfit[year].Div(types.MonthsPerYear)

		if month == 1 {
			cumulative = monthlyProfit.Sub(oneTimeTotal)
		} else {
			cumulative = cumulative.Add(monthlyProfit)
		}

		if cumulative.IsPositive() {
			m := month
			return &m
		}
	}

	return nil
}
