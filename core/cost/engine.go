// Package cost implements the per-component cost calculators and the
// infrastructure aggregate for the GoMeet deployment model.
package cost

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// contingencyRate is the buffer applied on top of the raw component sum.
var contingencyRate = decimal.NewFromFloat(0.15)

// Engine evaluates the cost model. It holds the price book, the topology,
// and the usage assumption tables; every calculator is a pure function of
// this state.
type Engine struct {
	Book        types.PriceBook
	Topology    types.Topology
	Operational types.OperationalCosts
	Bandwidth   types.BandwidthAssumptions
	Recording   types.RecordingAssumptions
}

// NewEngine builds an engine over the given price book and the embedded
// deployment configuration.
func NewEngine(book types.PriceBook) *Engine {
	return &Engine{
		Book:        book,
		Topology:    DefaultTopology(),
		Operational: DefaultOperationalCosts(),
		Bandwidth:   DefaultBandwidthAssumptions(),
		Recording:   DefaultRecordingAssumptions(),
	}
}

// InstanceCost prices a node group: nodes x unit price, with the pooled
// vCPU and RAM totals carried alongside.
func (e *Engine) InstanceCost(class types.InstanceClass, nodes int) types.InstanceCost {
	spec := e.Book.Instance(class)
	monthly := spec.MonthlyPrice.Mul(decimal.NewFromInt(int64(nodes)))

	return types.InstanceCost{
		InstanceType: class,
		Nodes:        nodes,
		VCPUTotal:    nodes * spec.VCPU,
		RAMTotalGB:   nodes * spec.RAMGB,
		MonthlyCost:  monthly,
		AnnualCost:   types.Annual(monthly),
	}
}

// StorageCost prices a block storage quantity in GB.
func (e *Engine) StorageCost(storageGB float64) types.StorageCost {
	monthly := decimal.NewFromFloat(storageGB).Mul(e.Book.BlockStoragePerGB)

	return types.StorageCost{
		StorageGB:   storageGB,
		MonthlyCost: monthly,
		AnnualCost:  types.Annual(monthly),
	}
}

// Infrastructure evaluates every component and applies the contingency.
// Bandwidth is reported in the breakdown but stays out of the pooled sum
// and the contingency base.
func (e *Engine) Infrastructure() types.InfrastructureCosts {
	costs := types.InfrastructureCosts{
		SFU:        e.SFU(),
		Services:   e.APIServices(),
		Database:   e.Database(),
		Redis:      e.Redis(),
		Gateway:    e.Gateway(),
		Monitoring: e.Monitoring(),
		Bandwidth:  e.BandwidthEgress(),
		Recordings: e.RecordingStorage(),
	}

	raw := decimal.Zero
	for _, monthly := range costs.ComponentMonthly() {
		raw = raw.Add(monthly)
	}

	contingency := raw.Mul(contingencyRate)
	total := raw.Add(contingency)

	costs.InfrastructureMonthly = raw
	costs.ContingencyMonthly = contingency
	costs.TotalMonthly = total
	costs.TotalAnnual = types.Annual(total)
	return costs
}
