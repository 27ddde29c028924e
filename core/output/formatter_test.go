package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

func sampleResult() *types.ComparisonResult {
	aws := types.ProviderCost{
		Provider: types.ProviderAWS,
		Name:     "AWS",
		Categories: map[types.Category]decimal.Decimal{
			types.CategoryCompute: decimal.NewFromFloat(120.50),
			types.CategoryStorage: decimal.NewFromFloat(23.00),
		},
		Total: decimal.NewFromFloat(143.50),
	}
	oci := types.ProviderCost{
		Provider: types.ProviderOCI,
		Name:     "Oracle Cloud",
		Categories: map[types.Category]decimal.Decimal{
			types.CategoryCompute: decimal.NewFromFloat(98.20),
			types.CategoryStorage: decimal.NewFromFloat(25.10),
		},
		Total: decimal.NewFromFloat(123.30),
	}

	return &types.ComparisonResult{
		Providers:        []types.ProviderCost{oci, aws},
		Cheapest:         oci,
		MostExpensive:    aws,
		PotentialSavings: decimal.NewFromFloat(20.20),
		MultiCloud: types.MultiCloudOption{
			Cost: decimal.NewFromFloat(121.20),
			Breakdown: map[types.Category]types.Provider{
				types.CategoryCompute:    types.ProviderOCI,
				types.CategoryStorage:    types.ProviderAWS,
				types.CategoryDatabase:   types.ProviderOCI,
				types.CategoryNetworking: types.ProviderOCI,
			},
		},
		Recommendations: []string{"Oracle Cloud offers the lowest total monthly cost at $123.30."},
	}
}

// TestNewFormatter verifies format resolution and the unknown-format
// error.
func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"table", "json", "csv"} {
		f, err := New(format)
		if err != nil {
			t.Errorf("New(%s) failed: %v", format, err)
			continue
		}
		if string(f.Format()) != format {
			t.Errorf("New(%s).Format() = %q", format, f.Format())
		}
	}

	if _, err := New("yaml"); err == nil {
		t.Error("New(yaml) should fail")
	}
}

// TestTableRender verifies the table output names providers, totals and
// the comparison summary.
func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{ShowBreakdown: true, ShowRecommendations: true}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Oracle Cloud",
		"AWS",
		"$143.50",
		"$123.30",
		"compute",
		"Cheapest: Oracle Cloud",
		"Potential savings: $20.20/month",
		"Multi-cloud blend: $121.20/month",
		"lowest total monthly cost",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// Categories nobody uses stay out of the table.
	if strings.Contains(out, "quantum") {
		t.Errorf("table output should omit all-zero categories:\n%s", out)
	}
}

// TestTableRenderSuppression verifies the breakdown and recommendation
// toggles.
func TestTableRenderSuppression(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "compute") {
		t.Error("breakdown rows should be suppressed")
	}
	if strings.Contains(out, "lowest total monthly cost") {
		t.Error("recommendations should be suppressed")
	}
	if !strings.Contains(out, "$123.30") {
		t.Error("totals should still render")
	}
	if !strings.Contains(out, "Multi-cloud blend: $121.20/month\n") {
		t.Errorf("blend total should render without per-category detail:\n%s", out)
	}
}

// TestJSONRender verifies the JSON output round-trips through the
// canonical wire shape.
func TestJSONRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	var decoded types.ComparisonResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Cheapest.Name != "Oracle Cloud" {
		t.Errorf("cheapest = %q", decoded.Cheapest.Name)
	}
	if !decoded.PotentialSavings.Equal(decimal.NewFromFloat(20.20)) {
		t.Errorf("savings = %s", decoded.PotentialSavings)
	}
	if !strings.Contains(buf.String(), `"multiCloudOption"`) {
		t.Error("multi-cloud option missing from wire shape")
	}
}

// TestCSVRender verifies the stable header and one row per provider in
// result order.
func TestCSVRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"Provider", "Compute", "Storage", "Database", "Networking", "Total"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}

	if rows[1][0] != "Oracle Cloud" || rows[2][0] != "AWS" {
		t.Errorf("row order = %q, %q", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "98.20" {
		t.Errorf("oci compute = %q, want 98.20", rows[1][1])
	}
	// Databases were never priced; absent categories render as zero.
	if rows[1][3] != "0.00" {
		t.Errorf("oci database = %q, want 0.00", rows[1][3])
	}
	if rows[2][5] != "143.50" {
		t.Errorf("aws total = %q, want 143.50", rows[2][5])
	}
}

// TestConvertCurrency verifies every figure is scaled by the rate and
// rounded to two decimals, and the original result is left untouched.
func TestConvertCurrency(t *testing.T) {
	original := sampleResult()
	converted := ConvertCurrency(original, decimal.NewFromFloat(0.92))

	if got := converted.Providers[1].Category(types.CategoryCompute).StringFixed(2); got != "110.86" {
		t.Errorf("converted AWS compute = %s, want 110.86", got)
	}
	if got := converted.MultiCloud.Cost.StringFixed(2); got != "111.50" {
		t.Errorf("converted blend = %s, want 111.50", got)
	}

	// Totals remain the sum of the rounded category values after
	// conversion, and savings stay the cheapest/most-expensive gap.
	for _, p := range append(converted.Providers, converted.Cheapest, converted.MostExpensive) {
		sum := decimal.Zero
		for _, v := range p.Categories {
			sum = sum.Add(v)
		}
		if !p.Total.Equal(sum) {
			t.Errorf("%s: converted total %s != category sum %s", p.Name, p.Total, sum)
		}
	}
	if got := converted.Cheapest.Total.StringFixed(2); got != "113.43" {
		t.Errorf("converted cheapest total = %s, want 113.43", got)
	}
	if want := converted.MostExpensive.Total.Sub(converted.Cheapest.Total); !converted.PotentialSavings.Equal(want) {
		t.Errorf("converted savings = %s, want %s", converted.PotentialSavings, want)
	}

	if got := original.Cheapest.Total.StringFixed(2); got != "123.30" {
		t.Errorf("original mutated: cheapest total = %s", got)
	}
	if converted.MultiCloud.Breakdown[types.CategoryCompute] != types.ProviderOCI {
		t.Error("blend breakdown should be preserved")
	}
}

// TestTableRenderCurrencySymbol verifies the table labels figures with
// the configured currency symbol.
func TestTableRenderCurrencySymbol(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{ShowBreakdown: true, Currency: types.CurrencyEUR}
	if err := f.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "€123.30") {
		t.Errorf("output should use the euro symbol:\n%s", out)
	}
	if strings.Contains(out, "$") {
		t.Errorf("output should not mix dollar signs in:\n%s", out)
	}
}
