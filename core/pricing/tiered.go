// Package pricing - tiered bandwidth rates
package pricing

import (
	"github.com/shopspring/decimal"

	"gomeet-cost/core/types"
)

// TieredBandwidthCost computes the monthly egress cost for totalTB of
// transfer against an ordered tier schedule. Each tier charges its per-GB
// rate on the usage that falls inside it; a tier with UpToTB == 0 absorbs
// all remaining usage. The result is continuous and non-decreasing in
// totalTB.
func TieredBandwidthCost(totalTB float64, tiers []types.BandwidthTier) decimal.Decimal {
	if totalTB <= 0 || len(tiers) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := totalTB
	previousLimit := 0.0

	for _, tier := range tiers {
		if remaining <= 0 {
			break
		}

		if tier.UpToTB == 0 {
			// Unlimited tier, all remaining usage lands here
			total = total.Add(gbCost(remaining, tier.RatePerGB))
			remaining = 0
			continue
		}

		tierSize := tier.UpToTB - previousLimit
		usageInTier := remaining
		if tierSize < usageInTier {
			usageInTier = tierSize
		}
		total = total.Add(gbCost(usageInTier, tier.RatePerGB))
		remaining -= usageInTier
		previousLimit = tier.UpToTB
	}

	return total
}

// gbCost converts a TB quantity to GB and applies the per-GB rate.
func gbCost(tb float64, ratePerGB decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(tb * 1024).Mul(ratePerGB)
}
