// Package types - deployment topology and assumption tables
package types

import "github.com/shopspring/decimal"

// NodeGroup is a homogeneous set of nodes of one instance class.
type NodeGroup struct {
	// Nodes is the node count
	Nodes int `json:"nodes"`

	// Class is the instance tier
	Class InstanceClass `json:"instance_type"`

	// StorageGB is attached block storage in GB. Whether it is per node
	// or per group follows the component that owns the group.
	StorageGB float64 `json:"storage_gb,omitempty"`
}

// SFUCluster is the media-routing (SFU) cluster topology.
type SFUCluster struct {
	NodeGroup

	// AutoScalingMin is the scale-in floor
	AutoScalingMin int `json:"auto_scaling_min"`

	// AutoScalingMax is the scale-out ceiling
	AutoScalingMax int `json:"auto_scaling_max"`
}

// ServiceTier is one stateless API service deployment.
type ServiceTier struct {
	// Name identifies the service
	Name string `json:"service"`

	// Replicas is the replica count
	Replicas int `json:"replicas"`

	// Class is the instance tier
	Class InstanceClass `json:"instance_type"`
}

// DatabaseTopology is the PostgreSQL layer: primary, read replicas,
// and the pgbouncer connection pool.
type DatabaseTopology struct {
	// Primary node group; StorageGB is the total primary volume
	Primary NodeGroup `json:"primary"`

	// Replicas node group; StorageGB is per replica
	Replicas NodeGroup `json:"replicas"`

	// PgBouncer connection pool nodes (no attached storage)
	PgBouncer NodeGroup `json:"pgbouncer"`
}

// RedisTopology is the Redis cluster; StorageGB is per node for both groups.
type RedisTopology struct {
	Masters  NodeGroup `json:"masters"`
	Replicas NodeGroup `json:"replicas"`
}

// GatewayTopology is the edge: traefik nodes plus managed load balancers.
type GatewayTopology struct {
	Traefik       NodeGroup `json:"traefik"`
	LoadBalancers int       `json:"load_balancers"`
}

// MonitoringComponent is one monitoring stack member; StorageGB is the
// total volume for the component, not per node.
type MonitoringComponent struct {
	Name      string        `json:"component_name"`
	Nodes     int           `json:"nodes"`
	Class     InstanceClass `json:"instance_type"`
	StorageGB float64       `json:"storage_gb"`
}

// Topology is the full deployment the model prices.
type Topology struct {
	SFU        SFUCluster            `json:"livekit_sfu"`
	Services   []ServiceTier         `json:"api_services"`
	Database   DatabaseTopology      `json:"database"`
	Redis      RedisTopology         `json:"redis"`
	Gateway    GatewayTopology       `json:"gateway"`
	Monitoring []MonitoringComponent `json:"monitoring"`
}

// TeamRole is one salaried role on the operating team.
type TeamRole struct {
	Role          string          `json:"role"`
	Count         int             `json:"count"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
}

// OperationalCosts holds the recurring non-infrastructure spend.
type OperationalCosts struct {
	Team              []TeamRole      `json:"team_salaries"`
	MarketingSales    decimal.Decimal `json:"marketing_sales"`
	OperationsSupport decimal.Decimal `json:"operations_support"`
}

// BandwidthAssumptions drive the SFU-optimized egress quantity model.
type BandwidthAssumptions struct {
	ParticipantsPerMeeting int     `json:"participants_per_meeting"`
	ConcurrentMeetings     int     `json:"concurrent_meetings"`
	ActiveSpeakersRatio    float64 `json:"active_speakers_ratio"`
	VideoBitrateMbps       float64 `json:"video_bitrate_mbps"`
	AudioBitrateKbps       float64 `json:"audio_bitrate_kbps"`
	PeakHoursPerDay        int     `json:"peak_hours_per_day"`
	DaysPerMonth           int     `json:"days_per_month"`
	OverheadFactor         float64 `json:"overhead_factor"`
}

// RecordingAssumptions drive the recording storage quantity model.
type RecordingAssumptions struct {
	VideoBitrateMbps        float64 `json:"video_bitrate_mbps"`
	ParticipantsPerMeeting  int     `json:"participants_per_meeting"`
	AvgMeetingDurationHours float64 `json:"avg_meeting_duration_hours"`
	ConcurrentMeetings      int     `json:"concurrent_meetings"`

	// CompressionRatio is the stored fraction after compression
	CompressionRatio float64 `json:"compression_ratio"`

	// HotStorageDays is the block-storage retention window
	HotStorageDays int `json:"hot_storage_days"`

	// ColdStoragePerGB is the archive-tier price per GB per month
	ColdStoragePerGB decimal.Decimal `json:"cold_storage_cost_per_gb"`
}
