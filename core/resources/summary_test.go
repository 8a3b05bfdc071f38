package resources

import (
	"testing"

	"github.com/shopspring/decimal"

	"gomeet-cost/core/cost"
	"gomeet-cost/core/pricing"
)

// TestSummarizeFootprint checks the pooled vCPU, RAM, and storage for
// the embedded topology.
func TestSummarizeFootprint(t *testing.T) {
	got := Summarize(pricing.DefaultPriceBook(), cost.DefaultTopology(), decimal.NewFromInt(50000))

	if got.TotalVCPU != 936 {
		t.Errorf("total vcpu = %d, want 936", got.TotalVCPU)
	}
	if got.TotalRAMGB != 3744 {
		t.Errorf("total ram = %d, want 3744", got.TotalRAMGB)
	}
	if got.TotalStorageGB != 19570 {
		t.Errorf("total storage = %v, want 19570", got.TotalStorageGB)
	}
}

// TestSummarizeUnitEconomics checks per-participant and per-meeting
// division against the nameplate capacity.
func TestSummarizeUnitEconomics(t *testing.T) {
	got := Summarize(pricing.DefaultPriceBook(), cost.DefaultTopology(), decimal.NewFromInt(50000))

	if got.ParticipantCapacity != 50000 {
		t.Errorf("participant capacity = %d, want 50000", got.ParticipantCapacity)
	}
	if got.MeetingsCapacity != 100 {
		t.Errorf("meetings capacity = %d, want 100", got.MeetingsCapacity)
	}
	if !got.CostPerParticipant.Equal(decimal.NewFromInt(1)) {
		t.Errorf("cost per participant = %s, want 1", got.CostPerParticipant)
	}
	if !got.CostPerMeeting.Equal(decimal.NewFromInt(500)) {
		t.Errorf("cost per meeting = %s, want 500", got.CostPerMeeting)
	}
}
