// Package pricing holds the unit price catalog and rate calculations.
// Prices are DigitalOcean Singapore region list prices (2024).
package pricing

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// DefaultPriceBook returns the embedded price catalog.
func DefaultPriceBook() types.PriceBook {
	return types.PriceBook{
		Instances: map[types.InstanceClass]types.InstanceSpec{
			types.ClassLarge:  {VCPU: 16, RAMGB: 64, MonthlyPrice: decimal.NewFromInt(334)},
			types.ClassMedium: {VCPU: 8, RAMGB: 32, MonthlyPrice: decimal.NewFromInt(167)},
			types.ClassSmall:  {VCPU: 4, RAMGB: 16, MonthlyPrice: decimal.NewFromInt(84)},
			types.ClassXSmall: {VCPU: 2, RAMGB: 8, MonthlyPrice: decimal.NewFromInt(42)},
			types.ClassMicro:  {VCPU: 1, RAMGB: 4, MonthlyPrice: decimal.NewFromInt(21)},
		},
		BlockStoragePerGB: decimal.NewFromFloat(0.10),
		BandwidthTiers: []types.BandwidthTier{
			{UpToTB: 100, RatePerGB: decimal.NewFromFloat(0.01)},
			{UpToTB: 500, RatePerGB: decimal.NewFromFloat(0.009)},
			{UpToTB: 0, RatePerGB: decimal.NewFromFloat(0.008)},
		},
		LoadBalancer: decimal.NewFromInt(20),
		CDNPerGB:     decimal.NewFromFloat(0.02),
		Currency:     types.CurrencyUSD,
	}
}
