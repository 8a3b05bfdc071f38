// Package cost - embedded deployment configuration
package cost

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// DefaultTopology returns the 500-participant deployment the model prices.
func DefaultTopology() types.Topology {
	return types.Topology{
		SFU: types.SFUCluster{
			NodeGroup: types.NodeGroup{
				Nodes:     25,
				Class:     types.ClassLarge,
				StorageGB: 200, // per node
			},
			AutoScalingMin: 15,
			AutoScalingMax: 50,
		},
		Services: []types.ServiceTier{
			{Name: "auth_service", Replicas: 8, Class: types.ClassSmall},
			{Name: "meeting_service", Replicas: 12, Class: types.ClassSmall},
			{Name: "signaling_service", Replicas: 25, Class: types.ClassMedium},
			{Name: "chat_service", Replicas: 10, Class: types.ClassXSmall},
			{Name: "turn_service", Replicas: 8, Class: types.ClassXSmall},
		},
		Database: types.DatabaseTopology{
			Primary:   types.NodeGroup{Nodes: 1, Class: types.ClassLarge, StorageGB: 2000},
			Replicas:  types.NodeGroup{Nodes: 3, Class: types.ClassLarge, StorageGB: 2000},
			PgBouncer: types.NodeGroup{Nodes: 6, Class: types.ClassXSmall},
		},
		Redis: types.RedisTopology{
			Masters:  types.NodeGroup{Nodes: 6, Class: types.ClassMedium, StorageGB: 500},
			Replicas: types.NodeGroup{Nodes: 6, Class: types.ClassMedium, StorageGB: 500},
		},
		Gateway: types.GatewayTopology{
			Traefik:       types.NodeGroup{Nodes: 6, Class: types.ClassSmall},
			LoadBalancers: 3,
		},
		Monitoring: []types.MonitoringComponent{
			{Name: "prometheus", Nodes: 2, Class: types.ClassMedium, StorageGB: 500},
			{Name: "grafana", Nodes: 3, Class: types.ClassXSmall, StorageGB: 50},
			{Name: "alertmanager", Nodes: 2, Class: types.ClassMicro, StorageGB: 20},
		},
	}
}

// DefaultOperationalCosts returns the recurring team and business spend.
func DefaultOperationalCosts() types.OperationalCosts {
	return types.OperationalCosts{
		Team: []types.TeamRole{
			{Role: "backend_dev", Count: 2, MonthlySalary: decimal.NewFromInt(5000)},
			{Role: "devops", Count: 1, MonthlySalary: decimal.NewFromInt(5000)},
		},
		MarketingSales:    decimal.NewFromInt(5000),
		OperationsSupport: decimal.NewFromInt(3000),
	}
}

// DefaultBandwidthAssumptions returns the egress quantity assumptions.
func DefaultBandwidthAssumptions() types.BandwidthAssumptions {
	return types.BandwidthAssumptions{
		ParticipantsPerMeeting: 500,
		ConcurrentMeetings:     100,
		ActiveSpeakersRatio:    0.1,
		VideoBitrateMbps:       2,
		AudioBitrateKbps:       64,
		PeakHoursPerDay:        8,
		DaysPerMonth:           30,
		OverheadFactor:         1.3,
	}
}

// DefaultRecordingAssumptions returns the recording storage assumptions.
func DefaultRecordingAssumptions() types.RecordingAssumptions {
	return types.RecordingAssumptions{
		VideoBitrateMbps:        2,
		ParticipantsPerMeeting:  500,
		AvgMeetingDurationHours: 2,
		ConcurrentMeetings:      100,
		CompressionRatio:        0.3,
		HotStorageDays:          30,
		ColdStoragePerGB:        decimal.NewFromFloat(0.004),
	}
}
