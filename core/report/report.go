// Package report assembles the complete cost analysis report.
package report

import (
	"time"

	"github.com/google/uuid"

	"gomeet-cost/core/cost"
	"gomeet-cost/core/optimize"
	"gomeet-cost/core/resources"
	"gomeet-cost/core/roi"
	"gomeet-cost/core/types"
)

// Metadata identifies one report run.
type Metadata struct {
	// RunID is a unique identifier for this run
	RunID string `json:"run_id"`

	// Timestamp is when the report was generated (RFC3339)
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`

	// Duration is how long generation took
	Duration string `json:"duration"`

	// Currency is the report currency
	Currency types.Currency `json:"currency"`
}

// Report is the complete nested cost analysis.
type Report struct {
	Metadata            Metadata                  `json:"metadata"`
	InfrastructureCosts types.InfrastructureCosts `json:"infrastructure_costs"`
	OperationalCosts    types.OperationalCost     `json:"operational_costs"`
	OneTimeCosts        types.OneTimeCosts        `json:"one_time_costs"`
	ROIAnalysis         roi.Analysis              `json:"roi_analysis"`
	CostOptimization    optimize.Analysis         `json:"cost_optimization"`
	ResourceSummary     resources.Summary         `json:"resource_summary"`
}

// Build evaluates the full model: component costs, operational and
// one-time costs, the ROI projection, the optimization outlook, and the
// resource summary.
func Build(engine *cost.Engine, scenarios []roi.GrowthScenario, version string) *Report {
	start := time.Now()

	infra := engine.Infrastructure()
	operational := engine.OperationalMonthly()
	oneTime := engine.OneTime()

	monthlyBurn := operational.TotalMonthly.Add(infra.TotalMonthly)

	return &Report{
		Metadata: Metadata{
			RunID:     uuid.NewString(),
			Timestamp: start.Format(time.RFC3339),
			Version:   version,
			Duration:  time.Since(start).String(),
			Currency:  engine.Book.Currency,
		},
		InfrastructureCosts: infra,
		OperationalCosts:    operational,
		OneTimeCosts:        oneTime,
		ROIAnalysis:         roi.Analyze(monthlyBurn, oneTime, scenarios),
		CostOptimization:    optimize.Analyze(infra, optimize.DefaultLevers()),
		ResourceSummary:     resources.Summarize(engine.Book, engine.Topology, infra.TotalMonthly),
	}
}
