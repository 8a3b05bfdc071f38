// Package config - price book and scenario override files
package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"gomeet-cost/core/roi"
	"gomeet-cost/core/types"
	"gomeet-cost/internal/errors"
)

// PricingOverrides selectively replaces unit prices in the price book.
// Decoded from an HCL file:
//
//	instance "large" {
//	  price = 320
//	}
//	block_storage_per_gb = 0.09
//	bandwidth_tier {
//	  up_to_tb    = 100
//	  rate_per_gb = 0.01
//	}
type PricingOverrides struct {
	Instances         []InstancePriceOverride `hcl:"instance,block"`
	BlockStoragePerGB *float64                `hcl:"block_storage_per_gb,optional"`
	BandwidthTiers    []BandwidthTierOverride `hcl:"bandwidth_tier,block"`
	LoadBalancer      *float64                `hcl:"load_balancer,optional"`
	CDNPerGB          *float64                `hcl:"cdn_per_gb,optional"`
}

// InstancePriceOverride replaces the monthly price of one tier.
type InstancePriceOverride struct {
	Class string  `hcl:"class,label"`
	Price float64 `hcl:"price"`
}

// BandwidthTierOverride replaces the whole bandwidth tier schedule when
// at least one tier block is present.
type BandwidthTierOverride struct {
	UpToTB    float64 `hcl:"up_to_tb"`
	RatePerGB float64 `hcl:"rate_per_gb"`
}

// LoadPricingOverrides decodes a pricing override file.
func LoadPricingOverrides(path string) (*PricingOverrides, error) {
	var overrides PricingOverrides
	if err := hclsimple.DecodeFile(path, nil, &overrides); err != nil {
		return nil, errors.Pricing("failed to parse pricing overrides", err).WithContext("path", path)
	}
	return &overrides, nil
}

// Apply returns a copy of the price book with the overrides applied.
func (o *PricingOverrides) Apply(book types.PriceBook) (types.PriceBook, error) {
	instances := make(map[types.InstanceClass]types.InstanceSpec, len(book.Instances))
	for class, spec := range book.Instances {
		instances[class] = spec
	}
	book.Instances = instances

	for _, inst := range o.Instances {
		class := types.InstanceClass(inst.Class)
		spec, ok := book.Instances[class]
		if !ok {
			return book, errors.Newf(errors.TypePricing, "unknown instance class %q", inst.Class)
		}
		if inst.Price <= 0 {
			return book, errors.Newf(errors.TypePricing, "instance %q price must be positive", inst.Class)
		}
		spec.MonthlyPrice = decimal.NewFromFloat(inst.Price)
		book.Instances[class] = spec
	}

	if o.BlockStoragePerGB != nil {
		book.BlockStoragePerGB = decimal.NewFromFloat(*o.BlockStoragePerGB)
	}
	if o.LoadBalancer != nil {
		book.LoadBalancer = decimal.NewFromFloat(*o.LoadBalancer)
	}
	if o.CDNPerGB != nil {
		book.CDNPerGB = decimal.NewFromFloat(*o.CDNPerGB)
	}

	if len(o.BandwidthTiers) > 0 {
		tiers := make([]types.BandwidthTier, 0, len(o.BandwidthTiers))
		for _, tier := range o.BandwidthTiers {
			tiers = append(tiers, types.BandwidthTier{
				UpToTB:    tier.UpToTB,
				RatePerGB: decimal.NewFromFloat(tier.RatePerGB),
			})
		}
		book.BandwidthTiers = tiers
	}

	return book, nil
}

// scenarioFile is the YAML shape of a scenario override file.
type scenarioFile struct {
	Scenarios []roi.GrowthScenario `yaml:"scenarios"`
}

// LoadScenarioOverrides decodes growth scenarios from a YAML file.
func LoadScenarioOverrides(path string) ([]roi.GrowthScenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read scenario overrides", err).WithContext("path", path)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Config("failed to parse scenario overrides", err).WithContext("path", path)
	}
	if len(file.Scenarios) == 0 {
		return nil, errors.New(errors.TypeConfig, "scenario overrides contain no scenarios")
	}

	for _, scenario := range file.Scenarios {
		if scenario.Name == "" {
			return nil, errors.New(errors.TypeConfig, "scenario name must not be empty")
		}
		if scenario.EnterpriseRatio < 0 || scenario.EnterpriseRatio > 1 {
			return nil, errors.Newf(errors.TypeConfig,
				"scenario %q enterprise_ratio must be within [0, 1]", scenario.Name)
		}
	}

	return file.Scenarios, nil
}
