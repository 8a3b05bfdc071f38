// Package types - pricing types
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// InstanceClass identifies a droplet size tier
type InstanceClass string

const (
	ClassLarge  InstanceClass = "large"
	ClassMedium InstanceClass = "medium"
	ClassSmall  InstanceClass = "small"
	ClassXSmall InstanceClass = "xsmall"
	ClassMicro  InstanceClass = "micro"
)

// InstanceSpec describes one instance tier: its shape and monthly price
type InstanceSpec struct {
	// VCPU is the vCPU count per node
	VCPU int `json:"vcpu"`

	// RAMGB is the memory per node in GB
	RAMGB int `json:"ram_gb"`

	// MonthlyPrice is the on-demand price per node per month
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}

// BandwidthTier is one breakpoint of the tiered egress pricing.
// Tiers are ordered by UpToTB; UpToTB == 0 marks the unlimited tier.
type BandwidthTier struct {
	// UpToTB is the cumulative upper bound of this tier in terabytes
	UpToTB float64 `json:"up_to_tb"`

	// RatePerGB is the unit price per gigabyte within the tier
	RatePerGB decimal.Decimal `json:"rate_per_gb"`
}

// PriceBook holds every unit price the cost model multiplies against.
type PriceBook struct {
	// Instances maps tier name to spec and price
	Instances map[InstanceClass]InstanceSpec `json:"instances"`

	// BlockStoragePerGB is the block storage price per GB per month
	BlockStoragePerGB decimal.Decimal `json:"block_storage_per_gb"`

	// BandwidthTiers is the tiered egress price schedule
	BandwidthTiers []BandwidthTier `json:"bandwidth_tiers"`

	// LoadBalancer is the flat price per load balancer per month
	LoadBalancer decimal.Decimal `json:"load_balancer"`

	// CDNPerGB is the CDN delivery price per GB
	CDNPerGB decimal.Decimal `json:"cdn_per_gb"`

	// Currency is the price book currency
	Currency Currency `json:"currency"`
}

// Instance returns the spec for a tier. Unknown tiers return a zero spec;
// the default catalog covers every class the topology references.
func (b *PriceBook) Instance(class InstanceClass) InstanceSpec {
	return b.Instances[class]
}
