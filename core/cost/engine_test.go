package cost

import (
	"testing"

	"github.com/shopspring/decimal"

	"gomeet-cost/core/pricing"
	"gomeet-cost/core/types"
)

func testEngine() *Engine {
	return NewEngine(pricing.DefaultPriceBook())
}

func wantEqual(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

// TestInstanceCost checks nodes x unit price and the pooled totals.
func TestInstanceCost(t *testing.T) {
	got := testEngine().InstanceCost(types.ClassLarge, 25)

	wantEqual(t, "monthly", got.MonthlyCost, "8350")
	wantEqual(t, "annual", got.AnnualCost, "100200")
	if got.VCPUTotal != 400 {
		t.Errorf("vcpu total = %d, want 400", got.VCPUTotal)
	}
	if got.RAMTotalGB != 1600 {
		t.Errorf("ram total = %d, want 1600", got.RAMTotalGB)
	}
}

// TestStorageCost checks the block storage rate.
func TestStorageCost(t *testing.T) {
	got := testEngine().StorageCost(5000)

	wantEqual(t, "monthly", got.MonthlyCost, "500")
	wantEqual(t, "annual", got.AnnualCost, "6000")
}

// TestSFUCost checks base compute, per-node storage, and the buffer.
func TestSFUCost(t *testing.T) {
	got := testEngine().SFU()

	wantEqual(t, "base", got.BaseCost.MonthlyCost, "8350")
	wantEqual(t, "storage", got.StorageCost.MonthlyCost, "500")
	wantEqual(t, "buffer", got.AutoScalingBuffer, "4175")
	wantEqual(t, "total", got.TotalMonthly, "13025")
	wantEqual(t, "annual", got.TotalAnnual, "156300")
}

// TestAPIServicesCost checks per-service lines and order.
func TestAPIServicesCost(t *testing.T) {
	got := testEngine().APIServices()

	if len(got.Services) != 5 {
		t.Fatalf("expected 5 services, got %d", len(got.Services))
	}
	if got.Services[0].Service != "auth_service" {
		t.Errorf("first service = %s, want auth_service", got.Services[0].Service)
	}
	wantEqual(t, "auth", got.Services[0].MonthlyCost, "672")
	wantEqual(t, "signaling", got.Services[2].MonthlyCost, "4175")
	wantEqual(t, "total", got.TotalMonthly, "6611")
}

// TestDatabaseCost checks primary, replicas, pool, and storage.
func TestDatabaseCost(t *testing.T) {
	got := testEngine().Database()

	wantEqual(t, "primary", got.PrimaryCost.MonthlyCost, "334")
	wantEqual(t, "replicas", got.ReplicasCost.MonthlyCost, "1002")
	wantEqual(t, "pgbouncer", got.PgBouncerCost.MonthlyCost, "252")
	if got.StorageCost.StorageGB != 8000 {
		t.Errorf("storage gb = %v, want 8000", got.StorageCost.StorageGB)
	}
	wantEqual(t, "storage", got.StorageCost.MonthlyCost, "800")
	wantEqual(t, "total", got.TotalMonthly, "2388")
}

// TestRedisCost checks masters, replicas, and per-node storage.
func TestRedisCost(t *testing.T) {
	got := testEngine().Redis()

	wantEqual(t, "masters", got.MastersCost.MonthlyCost, "1002")
	wantEqual(t, "replicas", got.ReplicasCost.MonthlyCost, "1002")
	if got.StorageCost.StorageGB != 6000 {
		t.Errorf("storage gb = %v, want 6000", got.StorageCost.StorageGB)
	}
	wantEqual(t, "total", got.TotalMonthly, "2604")
}

// TestGatewayCost checks traefik plus flat load balancer fees.
func TestGatewayCost(t *testing.T) {
	got := testEngine().Gateway()

	wantEqual(t, "traefik", got.TraefikCost.MonthlyCost, "504")
	wantEqual(t, "lb", got.LoadBalancerCost, "60")
	wantEqual(t, "total", got.TotalMonthly, "564")
}

// TestMonitoringCost checks compute plus single-volume storage per line.
func TestMonitoringCost(t *testing.T) {
	got := testEngine().Monitoring()

	if len(got.Components) != 3 {
		t.Fatalf("expected 3 monitoring components, got %d", len(got.Components))
	}
	wantEqual(t, "prometheus", got.Components[0].MonthlyCost, "384")  // 2x167 + 500GB
	wantEqual(t, "grafana", got.Components[1].MonthlyCost, "131")     // 3x42 + 50GB
	wantEqual(t, "alertmanager", got.Components[2].MonthlyCost, "44") // 2x21 + 20GB
	wantEqual(t, "total", got.TotalMonthly, "559")
}

// TestOperationalMonthly checks team salaries plus business spend.
func TestOperationalMonthly(t *testing.T) {
	got := testEngine().OperationalMonthly()

	wantEqual(t, "team", got.TeamMonthly, "15000")
	wantEqual(t, "total", got.TotalMonthly, "23000")
	wantEqual(t, "annual", got.TotalAnnual, "276000")
}

// TestOneTime checks the development window plus fixed line items.
func TestOneTime(t *testing.T) {
	got := testEngine().OneTime()

	wantEqual(t, "development", got.Development, "60000")
	wantEqual(t, "total", got.Total, "190000")
}

// TestInfrastructureAggregate checks the raw sum, the 15% contingency,
// and annual = monthly x 12.
func TestInfrastructureAggregate(t *testing.T) {
	got := testEngine().Infrastructure()

	raw := decimal.Zero
	for _, monthly := range got.ComponentMonthly() {
		raw = raw.Add(monthly)
	}
	if !got.InfrastructureMonthly.Equal(raw) {
		t.Errorf("raw sum = %s, want %s", got.InfrastructureMonthly, raw)
	}

	wantContingency := raw.Mul(decimal.NewFromFloat(0.15))
	if !got.ContingencyMonthly.Equal(wantContingency) {
		t.Errorf("contingency = %s, want %s", got.ContingencyMonthly, wantContingency)
	}

	if !got.TotalMonthly.Equal(raw.Add(wantContingency)) {
		t.Errorf("total = %s, want %s", got.TotalMonthly, raw.Add(wantContingency))
	}
	if !got.TotalAnnual.Equal(got.TotalMonthly.Mul(decimal.NewFromInt(12))) {
		t.Errorf("annual = %s, want monthly x 12", got.TotalAnnual)
	}
}

// TestInfrastructureTotals pins the headline aggregate for the embedded
// configuration. Bandwidth stays reported in the breakdown but out of
// the pooled sum and the contingency base.
func TestInfrastructureTotals(t *testing.T) {
	got := testEngine().Infrastructure()

	approx(t, "raw monthly", got.InfrastructureMonthly.InexactFloat64(), 26388.875, 0.01)
	approx(t, "contingency", got.ContingencyMonthly.InexactFloat64(), 3958.33, 0.01)
	approx(t, "total monthly", got.TotalMonthly.InexactFloat64(), 30347.21, 0.01)

	approx(t, "bandwidth monthly", got.Bandwidth.MonthlyCost.InexactFloat64(), 11336.34, 0.1)
	if _, ok := got.ComponentMonthly()[types.ComponentBandwidth]; ok {
		t.Error("bandwidth must not pool into the aggregate")
	}
}
