package output

import (
	"bytes"
	"strings"
	"testing"

	"gomeet-cost/core/cost"
	"gomeet-cost/core/pricing"
	"gomeet-cost/core/report"
	"gomeet-cost/core/roi"
)

// TestRenderSummary checks the headline sections land in the output.
func TestRenderSummary(t *testing.T) {
	engine := cost.NewEngine(pricing.DefaultPriceBook())
	r := report.Build(engine, roi.DefaultScenarios(), "test")

	var buf bytes.Buffer
	RenderSummary(&buf, r)
	got := buf.String()

	for _, want := range []string{
		"GOMEET COST ANALYSIS SUMMARY",
		"Infrastructure monthly cost",
		"Total monthly burn",
		"ROI scenarios",
		"Conservative",
		"Moderate",
		"Aggressive",
		"Resource summary",
		"936",
		"3744GB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

// TestRenderSummaryScenarioOrder checks scenario rows render in a
// stable alphabetical order.
func TestRenderSummaryScenarioOrder(t *testing.T) {
	engine := cost.NewEngine(pricing.DefaultPriceBook())
	r := report.Build(engine, roi.DefaultScenarios(), "test")

	var buf bytes.Buffer
	RenderSummary(&buf, r)
	got := buf.String()

	aggressive := strings.Index(got, "Aggressive")
	conservative := strings.Index(got, "Conservative")
	moderate := strings.Index(got, "Moderate")
	if !(aggressive < conservative && conservative < moderate) {
		t.Errorf("scenarios out of order: aggressive=%d conservative=%d moderate=%d",
			aggressive, conservative, moderate)
	}
}

// TestRenderPriceBook checks all catalog entries render.
func TestRenderPriceBook(t *testing.T) {
	var buf bytes.Buffer
	RenderPriceBook(&buf, pricing.DefaultPriceBook())
	got := buf.String()

	for _, want := range []string{
		"Price book (USD)",
		"large",
		"micro",
		"$334.00/month",
		"Block storage: $0.10/GB-month",
		"up to    100 TB",
		"above previous tier",
		"Load balancer: $20.00/month",
		"CDN: $0.02/GB",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("price book missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long label that overflows", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
}
