// Package types - cost breakdown types
package types

import "github.com/shopspring/decimal"

// Component display names used across breakdowns and optimization levers.
const (
	ComponentSFU        = "LiveKit SFU"
	ComponentServices   = "API Services"
	ComponentDatabase   = "Database Layer"
	ComponentRedis      = "Redis Cluster"
	ComponentGateway    = "API Gateway"
	ComponentMonitoring = "Monitoring Stack"
	ComponentBandwidth  = "Bandwidth"
	ComponentRecordings = "Storage (Recordings)"
)

// MonthsPerYear converts monthly amounts to annual.
var MonthsPerYear = decimal.NewFromInt(12)

// InstanceCost is the priced result of a node group: nodes x unit price.
type InstanceCost struct {
	// Service names the owning API service, when applicable
	Service string `json:"service,omitempty"`

	InstanceType InstanceClass   `json:"instance_type"`
	Nodes        int             `json:"nodes"`
	VCPUTotal    int             `json:"vcpu_total"`
	RAMTotalGB   int             `json:"ram_total_gb"`
	MonthlyCost  decimal.Decimal `json:"monthly_cost"`
	AnnualCost   decimal.Decimal `json:"annual_cost"`
}

// StorageCost is the priced result of a block storage quantity.
type StorageCost struct {
	StorageGB   float64         `json:"storage_gb"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
	AnnualCost  decimal.Decimal `json:"annual_cost"`
}

// SFUCost is the media cluster breakdown: compute, storage, and an
// auto-scaling buffer at half the base compute cost.
type SFUCost struct {
	Component         string          `json:"component"`
	BaseCost          InstanceCost    `json:"base_cost"`
	StorageCost       StorageCost     `json:"storage_cost"`
	AutoScalingBuffer decimal.Decimal `json:"auto_scaling_buffer"`
	TotalMonthly      decimal.Decimal `json:"total_monthly"`
	TotalAnnual       decimal.Decimal `json:"total_annual"`
}

// ServicesCost aggregates the per-service API tier costs.
type ServicesCost struct {
	Component    string          `json:"component"`
	Services     []InstanceCost  `json:"services"`
	TotalMonthly decimal.Decimal `json:"total_monthly"`
	TotalAnnual  decimal.Decimal `json:"total_annual"`
}

// DatabaseCost is the PostgreSQL layer breakdown.
type DatabaseCost struct {
	Component     string          `json:"component"`
	PrimaryCost   InstanceCost    `json:"primary_cost"`
	ReplicasCost  InstanceCost    `json:"replicas_cost"`
	PgBouncerCost InstanceCost    `json:"pgbouncer_cost"`
	StorageCost   StorageCost     `json:"storage_cost"`
	TotalMonthly  decimal.Decimal `json:"total_monthly"`
	TotalAnnual   decimal.Decimal `json:"total_annual"`
}

// RedisCost is the Redis cluster breakdown.
type RedisCost struct {
	Component    string          `json:"component"`
	MastersCost  InstanceCost    `json:"masters_cost"`
	ReplicasCost InstanceCost    `json:"replicas_cost"`
	StorageCost  StorageCost     `json:"storage_cost"`
	TotalMonthly decimal.Decimal `json:"total_monthly"`
	TotalAnnual  decimal.Decimal `json:"total_annual"`
}

// GatewayCost is the edge breakdown: traefik compute plus flat LB fees.
type GatewayCost struct {
	Component        string          `json:"component"`
	TraefikCost      InstanceCost    `json:"traefik_cost"`
	LoadBalancerCost decimal.Decimal `json:"load_balancer_cost"`
	TotalMonthly     decimal.Decimal `json:"total_monthly"`
	TotalAnnual      decimal.Decimal `json:"total_annual"`
}

// MonitoringLine is one monitoring component with its compute and storage.
type MonitoringLine struct {
	ComponentName string          `json:"component_name"`
	Instances     InstanceCost    `json:"instances"`
	Storage       StorageCost     `json:"storage"`
	MonthlyCost   decimal.Decimal `json:"monthly_cost"`
}

// MonitoringCost is the monitoring stack breakdown.
type MonitoringCost struct {
	Component    string           `json:"component"`
	Components   []MonitoringLine `json:"components"`
	TotalMonthly decimal.Decimal  `json:"total_monthly"`
	TotalAnnual  decimal.Decimal  `json:"total_annual"`
}

// BandwidthCost is the egress breakdown with its derived quantities.
type BandwidthCost struct {
	Component          string          `json:"component"`
	PerMeetingMbps     float64         `json:"per_meeting_bandwidth_mbps"`
	PeakBandwidthTB    float64         `json:"peak_bandwidth_tb"`
	OffPeakBandwidthTB float64         `json:"off_peak_bandwidth_tb"`
	TotalBandwidthTB   float64         `json:"total_bandwidth_tb"`
	MonthlyCost        decimal.Decimal `json:"monthly_cost"`
	AnnualCost         decimal.Decimal `json:"annual_cost"`
}

// RecordingStorageCost is the recordings breakdown across hot and cold tiers.
type RecordingStorageCost struct {
	Component              string          `json:"component"`
	PerMeetingGB           float64         `json:"per_meeting_gb"`
	DailyStorageGB         float64         `json:"daily_storage_gb"`
	CompressedDailyGB      float64         `json:"compressed_daily_storage_gb"`
	HotStorageGB           float64         `json:"hot_storage_gb"`
	ColdStorageGB          float64         `json:"cold_storage_gb"`
	HotStorageMonthlyCost  decimal.Decimal `json:"hot_storage_monthly_cost"`
	ColdStorageMonthlyCost decimal.Decimal `json:"cold_storage_monthly_cost"`
	TotalMonthly           decimal.Decimal `json:"total_monthly"`
	TotalAnnual            decimal.Decimal `json:"total_annual"`
}

// TeamLine is one priced team role.
type TeamLine struct {
	Role          string          `json:"role"`
	Count         int             `json:"count"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	MonthlyCost   decimal.Decimal `json:"monthly_cost"`
}

// OperationalCost is the recurring non-infrastructure breakdown.
type OperationalCost struct {
	Component         string          `json:"component"`
	TeamCosts         []TeamLine      `json:"team_costs"`
	TeamMonthly       decimal.Decimal `json:"team_monthly"`
	MarketingSales    decimal.Decimal `json:"marketing_sales"`
	OperationsSupport decimal.Decimal `json:"operations_support"`
	TotalMonthly      decimal.Decimal `json:"total_monthly"`
	TotalAnnual       decimal.Decimal `json:"total_annual"`
}

// OneTimeCosts are the implementation costs paid once, up front.
type OneTimeCosts struct {
	Development         decimal.Decimal `json:"development"`
	InfrastructureSetup decimal.Decimal `json:"infrastructure_setup"`
	TestingQA           decimal.Decimal `json:"testing_qa"`
	MarketingLaunch     decimal.Decimal `json:"marketing_launch"`
	Total               decimal.Decimal `json:"total"`
}

// InfrastructureCosts is the full infrastructure aggregate: every component
// breakdown plus the 15% contingency on top of the raw sum. The bandwidth
// breakdown is reported but excluded from the pooled sum.
type InfrastructureCosts struct {
	SFU        SFUCost              `json:"livekit_sfu"`
	Services   ServicesCost         `json:"api_services"`
	Database   DatabaseCost         `json:"database"`
	Redis      RedisCost            `json:"redis"`
	Gateway    GatewayCost          `json:"gateway"`
	Monitoring MonitoringCost       `json:"monitoring"`
	Bandwidth  BandwidthCost        `json:"bandwidth"`
	Recordings RecordingStorageCost `json:"recordings"`

	InfrastructureMonthly decimal.Decimal `json:"infrastructure_monthly"`
	ContingencyMonthly    decimal.Decimal `json:"contingency_monthly"`
	TotalMonthly          decimal.Decimal `json:"total_monthly"`
	TotalAnnual           decimal.Decimal `json:"total_annual"`
}

// ComponentMonthly returns each pooled component's monthly total keyed
// by its display name, for the aggregate sum and optimization lever
// matching. Bandwidth carries only a reported monthly cost, not a
// pooled total, so it is absent here and contributes nothing to the
// aggregate or to lever bases.
func (c *InfrastructureCosts) ComponentMonthly() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		ComponentSFU:        c.SFU.TotalMonthly,
		ComponentServices:   c.Services.TotalMonthly,
		ComponentDatabase:   c.Database.TotalMonthly,
		ComponentRedis:      c.Redis.TotalMonthly,
		ComponentGateway:    c.Gateway.TotalMonthly,
		ComponentMonitoring: c.Monitoring.TotalMonthly,
		ComponentRecordings: c.Recordings.TotalMonthly,
	}
}

// Annual returns monthly x 12.
func Annual(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(MonthsPerYear)
}
