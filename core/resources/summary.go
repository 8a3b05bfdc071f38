// Package resources summarizes the compute and storage footprint of the
// deployment topology.
package resources

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// Nameplate capacity of the priced deployment.
const (
	participantCapacity = 50000
	meetingsCapacity    = 100
)

// Summary is the pooled resource footprint with unit economics.
type Summary struct {
	TotalVCPU           int             `json:"total_vcpu"`
	TotalRAMGB          int             `json:"total_ram_gb"`
	TotalStorageGB      float64         `json:"total_storage_gb"`
	ParticipantCapacity int             `json:"participant_capacity"`
	MeetingsCapacity    int             `json:"meetings_capacity"`
	CostPerParticipant  decimal.Decimal `json:"cost_per_participant_monthly"`
	CostPerMeeting      decimal.Decimal `json:"cost_per_meeting_monthly"`
}

// Summarize pools vCPU, RAM, and storage across the topology and divides
// the monthly infrastructure total into per-participant and per-meeting
// unit costs.
func Summarize(book types.PriceBook, topo types.Topology, totalMonthly decimal.Decimal) Summary {
	var vcpu, ram int
	var storage float64

	addGroup := func(class types.InstanceClass, nodes int) {
		spec := book.Instance(class)
		vcpu += nodes * spec.VCPU
		ram += nodes * spec.RAMGB
	}

	// SFU: storage is per node
	addGroup(topo.SFU.Class, topo.SFU.Nodes)
	storage += topo.SFU.StorageGB * float64(topo.SFU.Nodes)

	for _, svc := range topo.Services {
		addGroup(svc.Class, svc.Replicas)
	}

	// Database: primary volume once, replica volumes per node
	db := topo.Database
	addGroup(db.Primary.Class, db.Primary.Nodes+db.Replicas.Nodes)
	addGroup(db.PgBouncer.Class, db.PgBouncer.Nodes)
	storage += db.Primary.StorageGB + db.Replicas.StorageGB*float64(db.Replicas.Nodes)

	// Redis: storage is per node on both groups
	addGroup(topo.Redis.Masters.Class, topo.Redis.Masters.Nodes+topo.Redis.Replicas.Nodes)
	storage += topo.Redis.Masters.StorageGB*float64(topo.Redis.Masters.Nodes) +
		topo.Redis.Replicas.StorageGB*float64(topo.Redis.Replicas.Nodes)

	addGroup(topo.Gateway.Traefik.Class, topo.Gateway.Traefik.Nodes)

	// Monitoring: component storage is a single volume
	for _, comp := range topo.Monitoring {
		addGroup(comp.Class, comp.Nodes)
		storage += comp.StorageGB
	}

	return Summary{
		TotalVCPU:           vcpu,
		TotalRAMGB:          ram,
		TotalStorageGB:      storage,
		ParticipantCapacity: participantCapacity,
		MeetingsCapacity:    meetingsCapacity,
		CostPerParticipant:  totalMonthly.Div(decimal.NewFromInt(participantCapacity)),
		CostPerMeeting:      totalMonthly.Div(decimal.NewFromInt(meetingsCapacity)),
	}
}
