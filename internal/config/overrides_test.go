package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"gomeet-cost/core/pricing"
	"gomeet-cost/core/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// TestPricingOverridesApply checks selective price replacement leaves
// the default book untouched.
func TestPricingOverridesApply(t *testing.T) {
	path := writeFile(t, "overrides.hcl", `
instance "large" {
  price = 320
}
block_storage_per_gb = 0.09
`)

	overrides, err := LoadPricingOverrides(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	base := pricing.DefaultPriceBook()
	got, err := overrides.Apply(base)
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if !got.Instance(types.ClassLarge).MonthlyPrice.Equal(decimal.NewFromInt(320)) {
		t.Errorf("large price = %s, want 320", got.Instance(types.ClassLarge).MonthlyPrice)
	}
	if !got.BlockStoragePerGB.Equal(decimal.NewFromFloat(0.09)) {
		t.Errorf("block storage = %s, want 0.09", got.BlockStoragePerGB)
	}

	// Untouched entries and the base book keep their defaults.
	if !got.Instance(types.ClassMicro).MonthlyPrice.Equal(decimal.NewFromInt(21)) {
		t.Errorf("micro price changed: %s", got.Instance(types.ClassMicro).MonthlyPrice)
	}
	if !base.Instance(types.ClassLarge).MonthlyPrice.Equal(decimal.NewFromInt(334)) {
		t.Errorf("base book mutated: %s", base.Instance(types.ClassLarge).MonthlyPrice)
	}
}

// TestPricingOverridesReplaceTiers checks a tier block replaces the
// whole bandwidth schedule.
func TestPricingOverridesReplaceTiers(t *testing.T) {
	path := writeFile(t, "overrides.hcl", `
bandwidth_tier {
  up_to_tb    = 200
  rate_per_gb = 0.012
}
bandwidth_tier {
  up_to_tb    = 0
  rate_per_gb = 0.007
}
`)

	overrides, err := LoadPricingOverrides(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got, err := overrides.Apply(pricing.DefaultPriceBook())
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if len(got.BandwidthTiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(got.BandwidthTiers))
	}
	if got.BandwidthTiers[0].UpToTB != 200 {
		t.Errorf("first tier limit = %v, want 200", got.BandwidthTiers[0].UpToTB)
	}
}

// TestPricingOverridesRejectBadInput checks validation failures.
func TestPricingOverridesRejectBadInput(t *testing.T) {
	unknown := writeFile(t, "overrides.hcl", `
instance "gigantic" {
  price = 999
}
`)
	overrides, err := LoadPricingOverrides(unknown)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := overrides.Apply(pricing.DefaultPriceBook()); err == nil {
		t.Error("expected an error for an unknown instance class")
	}

	negative := writeFile(t, "overrides.hcl", `
instance "large" {
  price = -1
}
`)
	overrides, err = LoadPricingOverrides(negative)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if _, err := overrides.Apply(pricing.DefaultPriceBook()); err == nil {
		t.Error("expected an error for a non-positive price")
	}

	if _, err := LoadPricingOverrides(writeFile(t, "overrides.hcl", `not hcl {{{`)); err == nil {
		t.Error("expected a parse error")
	}
}

// TestLoadScenarioOverrides checks YAML scenario decoding and validation.
func TestLoadScenarioOverrides(t *testing.T) {
	path := writeFile(t, "growth.yml", `
scenarios:
  - name: pilot
    year1_meetings_per_day: 50
    year2_meetings_per_day: 150
    year3_meetings_per_day: 400
    enterprise_ratio: 0.1
`)

	scenarios, err := LoadScenarioOverrides(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}
	if scenarios[0].Name != "pilot" || scenarios[0].Year2MeetingsPerDay != 150 {
		t.Errorf("unexpected scenario: %+v", scenarios[0])
	}
}

// TestLoadScenarioOverridesRejectBadInput checks validation failures.
func TestLoadScenarioOverridesRejectBadInput(t *testing.T) {
	empty := writeFile(t, "growth.yml", "scenarios: []\n")
	if _, err := LoadScenarioOverrides(empty); err == nil {
		t.Error("expected an error for an empty scenario list")
	}

	badRatio := writeFile(t, "growth.yml", `
scenarios:
  - name: broken
    year1_meetings_per_day: 10
    enterprise_ratio: 1.5
`)
	if _, err := LoadScenarioOverrides(badRatio); err == nil {
		t.Error("expected an error for an out-of-range enterprise ratio")
	}

	unnamed := writeFile(t, "growth.yml", `
scenarios:
  - year1_meetings_per_day: 10
    enterprise_ratio: 0.2
`)
	if _, err := LoadScenarioOverrides(unnamed); err == nil {
		t.Error("expected an error for a nameless scenario")
	}
}
