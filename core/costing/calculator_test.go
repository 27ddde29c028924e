// Package costing - calculation engine tests.
// The engine is pure, so every test prices documents against the
// built-in table and asserts structural properties of the result.
package costing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := New(pricing.Default())
	if err != nil {
		t.Fatalf("New() failed with default table: %v", err)
	}
	return calc
}

// computeOnlyRequirements is a mid-size instance footprint that touches
// only the compute category.
func computeOnlyRequirements() *types.Requirements {
	req := types.DefaultRequirements()
	req.Compute.VCPUs = 8
	req.Compute.RAMGB = 16
	req.Compute.InstanceType = "general-purpose"
	req.Compute.Region = "us-east-1"
	req.Compute.BootVolume = types.BootVolumeRequirements{
		SizeGB: 30,
		Type:   "ssd-gp3",
		IOPS:   3000,
	}
	return req
}

func storageOnlyRequirements() *types.Requirements {
	req := types.DefaultRequirements()
	req.Storage.Object = types.ObjectStorageRequirements{SizeGB: 500, Tier: "standard", Requests: 100000}
	req.Storage.Block = types.BlockStorageRequirements{SizeGB: 200, Type: "ssd-gp3", IOPS: 1000}
	return req
}

// TestZeroRequirementsCostNothing verifies the all-zero document prices
// to zero on every provider: absent workloads never contribute cost.
func TestZeroRequirementsCostNothing(t *testing.T) {
	calc := newCalculator(t)

	result, err := calc.Calculate(types.DefaultRequirements())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	if len(result.Providers) != len(types.AllProviders()) {
		t.Fatalf("expected %d providers, got %d", len(types.AllProviders()), len(result.Providers))
	}

	for _, p := range result.Providers {
		if !p.Total.IsZero() {
			t.Errorf("%s: expected zero total, got %s", p.Provider, p.Total)
		}
		for category, cost := range p.Categories {
			if !cost.IsZero() {
				t.Errorf("%s/%s: expected zero, got %s", p.Provider, category, cost)
			}
		}
	}

	if !result.PotentialSavings.IsZero() {
		t.Errorf("expected zero savings, got %s", result.PotentialSavings)
	}
	if !result.MultiCloud.Cost.IsZero() {
		t.Errorf("expected zero multi-cloud cost, got %s", result.MultiCloud.Cost)
	}
}

// TestComputeOnlyDocument verifies a compute-only footprint bills
// exactly one category and the total equals it.
func TestComputeOnlyDocument(t *testing.T) {
	calc := newCalculator(t)

	result, err := calc.Calculate(computeOnlyRequirements())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	for _, p := range result.Providers {
		compute := p.Category(types.CategoryCompute)
		if !compute.IsPositive() {
			t.Errorf("%s: expected positive compute cost, got %s", p.Provider, compute)
		}
		if !p.Total.Equal(compute) {
			t.Errorf("%s: total %s should equal compute %s", p.Provider, p.Total, compute)
		}
		for _, category := range types.AllCategories() {
			if category == types.CategoryCompute {
				continue
			}
			if cost := p.Category(category); !cost.IsZero() {
				t.Errorf("%s/%s: expected zero, got %s", p.Provider, category, cost)
			}
		}
	}
}

// TestCategoryAdditivity verifies pricing two documents touching
// disjoint categories sums to pricing their union: categories never
// interact.
func TestCategoryAdditivity(t *testing.T) {
	calc := newCalculator(t)

	combined := computeOnlyRequirements()
	combined.Storage = storageOnlyRequirements().Storage

	compute, err := calc.Calculate(computeOnlyRequirements())
	if err != nil {
		t.Fatalf("compute-only Calculate() failed: %v", err)
	}
	storage, err := calc.Calculate(storageOnlyRequirements())
	if err != nil {
		t.Fatalf("storage-only Calculate() failed: %v", err)
	}
	both, err := calc.Calculate(combined)
	if err != nil {
		t.Fatalf("combined Calculate() failed: %v", err)
	}

	for _, p := range types.AllProviders() {
		want := providerTotal(t, compute, p).Add(providerTotal(t, storage, p))
		got := providerTotal(t, both, p)
		if !got.Equal(want) {
			t.Errorf("%s: combined total %s != %s + %s", p, got, providerTotal(t, compute, p), providerTotal(t, storage, p))
		}
	}
}

func providerTotal(t *testing.T, result *types.ComparisonResult, p types.Provider) decimal.Decimal {
	t.Helper()
	for _, pc := range result.Providers {
		if pc.Provider == p {
			return pc.Total
		}
	}
	t.Fatalf("provider %s missing from result", p)
	return decimal.Zero
}

// TestUnknownValuesFailFast verifies unresolvable enums and regions
// abort the whole calculation with a typed error instead of pricing a
// partial comparison.
func TestUnknownValuesFailFast(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *types.Requirements)
		wantType errors.Type
	}{
		{
			name:     "unknown region",
			mutate:   func(req *types.Requirements) { req.Compute.Region = "mars-north-1" },
			wantType: errors.TypeInput,
		},
		{
			name: "unknown instance type",
			mutate: func(req *types.Requirements) {
				req.Compute.VCPUs = 2
				req.Compute.InstanceType = "quantum-optimized"
			},
			wantType: errors.TypePricing,
		},
		{
			name: "unknown block storage type",
			mutate: func(req *types.Requirements) {
				req.Storage.Block.SizeGB = 100
				req.Storage.Block.Type = "tape"
			},
			wantType: errors.TypePricing,
		},
		{
			name: "unknown relational engine",
			mutate: func(req *types.Requirements) {
				req.Database.Relational.InstanceClass = "db.small"
				req.Database.Relational.Engine = "db2"
			},
			wantType: errors.TypePricing,
		},
		{
			name: "unknown nosql engine",
			mutate: func(req *types.Requirements) {
				req.Database.NoSQL.Engine = "graph"
			},
			wantType: errors.TypePricing,
		},
		{
			name: "unknown backup frequency",
			mutate: func(req *types.Requirements) {
				req.Backup.StorageGB = 100
				req.Backup.Frequency = "yearly"
			},
			wantType: errors.TypePricing,
		},
		{
			name: "unknown reservation term",
			mutate: func(req *types.Requirements) {
				req.Compute.VCPUs = 2
				req.Compute.InstanceType = "general-purpose"
				req.Optimization.ReservedInstances = "5yr"
			},
			wantType: errors.TypePricing,
		},
		{
			name:     "negative quantity",
			mutate:   func(req *types.Requirements) { req.Compute.VCPUs = -1 },
			wantType: errors.TypeInput,
		},
		{
			name:     "unknown operating system",
			mutate:   func(req *types.Requirements) { req.Compute.OperatingSystem = "beos" },
			wantType: errors.TypeInput,
		},
	}

	calc := newCalculator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := types.DefaultRequirements()
			tt.mutate(req)

			_, err := calc.Calculate(req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("expected %s, got %v", tt.wantType, err)
			}
		})
	}
}

// TestConstructionFailures verifies the calculator cannot be built
// without a complete table.
func TestConstructionFailures(t *testing.T) {
	if _, err := New(nil); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("New(nil): expected config error, got %v", err)
	}

	incomplete := pricing.Default()
	delete(incomplete.Providers, types.ProviderOCI)
	if _, err := New(incomplete); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("New(incomplete): expected config error, got %v", err)
	}
}

// TestNilRequirements verifies a nil document is rejected
func TestNilRequirements(t *testing.T) {
	calc := newCalculator(t)
	if _, err := calc.Calculate(nil); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error, got %v", err)
	}
}

// TestWindowsSurchargeAndBYOL verifies the OS surcharge raises compute
// and that BYOL suppresses it entirely.
func TestWindowsSurchargeAndBYOL(t *testing.T) {
	calc := newCalculator(t)

	linux := computeOnlyRequirements()

	windows := computeOnlyRequirements()
	windows.Compute.OperatingSystem = "windows"

	byol := computeOnlyRequirements()
	byol.Compute.OperatingSystem = "windows"
	byol.Licensing.BYOL = true

	linuxResult, err := calc.Calculate(linux)
	if err != nil {
		t.Fatalf("linux Calculate() failed: %v", err)
	}
	windowsResult, err := calc.Calculate(windows)
	if err != nil {
		t.Fatalf("windows Calculate() failed: %v", err)
	}
	byolResult, err := calc.Calculate(byol)
	if err != nil {
		t.Fatalf("byol Calculate() failed: %v", err)
	}

	for _, p := range types.AllProviders() {
		l := providerTotal(t, linuxResult, p)
		w := providerTotal(t, windowsResult, p)
		b := providerTotal(t, byolResult, p)

		if !w.GreaterThan(l) {
			t.Errorf("%s: windows %s should exceed linux %s", p, w, l)
		}
		if !b.Equal(l) {
			t.Errorf("%s: byol windows %s should equal linux %s", p, b, l)
		}
	}
}

// TestReservedTermDiscount verifies longer commitments monotonically
// reduce compute cost.
func TestReservedTermDiscount(t *testing.T) {
	calc := newCalculator(t)

	totalFor := func(term string) map[types.Provider]decimal.Decimal {
		req := computeOnlyRequirements()
		req.Optimization.ReservedInstances = term
		result, err := calc.Calculate(req)
		if err != nil {
			t.Fatalf("Calculate(%s) failed: %v", term, err)
		}
		totals := make(map[types.Provider]decimal.Decimal)
		for _, p := range result.Providers {
			totals[p.Provider] = p.Total
		}
		return totals
	}

	none := totalFor("none")
	oneYear := totalFor("1yr")
	threeYear := totalFor("3yr")

	for _, p := range types.AllProviders() {
		if !oneYear[p].LessThan(none[p]) {
			t.Errorf("%s: 1yr %s should be below on-demand %s", p, oneYear[p], none[p])
		}
		if !threeYear[p].LessThan(oneYear[p]) {
			t.Errorf("%s: 3yr %s should be below 1yr %s", p, threeYear[p], oneYear[p])
		}
	}
}

// TestRegionMultiplierScope verifies the multiplier scales compute but
// leaves the region-exempt categories untouched.
func TestRegionMultiplierScope(t *testing.T) {
	calc := newCalculator(t)

	// sa-east-1 carries a multiplier above 1.0
	expensive := "sa-east-1"

	t.Run("compute scales with region", func(t *testing.T) {
		base := computeOnlyRequirements()
		base.Compute.Region = ""

		remote := computeOnlyRequirements()
		remote.Compute.Region = expensive

		baseResult, err := calc.Calculate(base)
		if err != nil {
			t.Fatalf("Calculate() failed: %v", err)
		}
		remoteResult, err := calc.Calculate(remote)
		if err != nil {
			t.Fatalf("Calculate() failed: %v", err)
		}

		for _, p := range types.AllProviders() {
			if !providerTotal(t, remoteResult, p).GreaterThan(providerTotal(t, baseResult, p)) {
				t.Errorf("%s: compute in %s should cost more than the baseline", p, expensive)
			}
		}
	})

	t.Run("storage and backup are region-exempt", func(t *testing.T) {
		base := storageOnlyRequirements()
		base.Backup.StorageGB = 100

		remote := storageOnlyRequirements()
		remote.Backup.StorageGB = 100
		remote.Compute.Region = expensive

		baseResult, err := calc.Calculate(base)
		if err != nil {
			t.Fatalf("Calculate() failed: %v", err)
		}
		remoteResult, err := calc.Calculate(remote)
		if err != nil {
			t.Fatalf("Calculate() failed: %v", err)
		}

		for _, p := range types.AllProviders() {
			b := providerTotal(t, baseResult, p)
			r := providerTotal(t, remoteResult, p)
			if !b.Equal(r) {
				t.Errorf("%s: region-exempt categories changed with region: %s vs %s", p, b, r)
			}
		}
	})
}

// TestBackupFrequencyAndRetention verifies the frequency factor ordering
// and the linear retention scaling beyond the 30-day baseline.
func TestBackupFrequencyAndRetention(t *testing.T) {
	calc := newCalculator(t)

	backupCostFor := func(frequency string, retentionDays int) decimal.Decimal {
		req := types.DefaultRequirements()
		req.Backup.StorageGB = 300
		req.Backup.Frequency = frequency
		req.Backup.RetentionDays = retentionDays

		result, err := calc.Calculate(req)
		if err != nil {
			t.Fatalf("Calculate(%s/%d) failed: %v", frequency, retentionDays, err)
		}
		return result.Providers[0].Category(types.CategoryBackup)
	}

	hourly := backupCostFor("hourly", 30)
	daily := backupCostFor("daily", 30)
	weekly := backupCostFor("weekly", 30)
	monthly := backupCostFor("monthly", 30)

	if !(hourly.GreaterThan(daily) && daily.GreaterThan(weekly) && weekly.GreaterThan(monthly)) {
		t.Errorf("frequency factors out of order: hourly=%s daily=%s weekly=%s monthly=%s",
			hourly, daily, weekly, monthly)
	}

	ninety := backupCostFor("daily", 90)
	if !ninety.Equal(daily.Mul(decimal.NewFromInt(3))) {
		t.Errorf("90-day retention should triple the 30-day cost: got %s, want %s", ninety, daily.Mul(decimal.NewFromInt(3)))
	}

	short := backupCostFor("daily", 7)
	if !short.Equal(daily) {
		t.Errorf("retention below 30 days should not discount: got %s, want %s", short, daily)
	}
}

// TestMultiAZDoublesInstance verifies multi-AZ doubles the relational
// instance cost while leaving storage alone.
func TestMultiAZDoublesInstance(t *testing.T) {
	calc := newCalculator(t)

	single := types.DefaultRequirements()
	single.Database.Relational.InstanceClass = "db.medium"
	single.Database.Relational.Engine = "postgres"

	multi := types.DefaultRequirements()
	multi.Database.Relational.InstanceClass = "db.medium"
	multi.Database.Relational.Engine = "postgres"
	multi.Database.Relational.MultiAZ = true

	singleResult, err := calc.Calculate(single)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	multiResult, err := calc.Calculate(multi)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	for _, p := range singleResult.Providers {
		// Providers are sorted by total, so match by provider not index.
		s := p.Category(types.CategoryDatabase)
		m := providerCategory(t, multiResult, p.Provider, types.CategoryDatabase)

		want := s.Mul(decimal.NewFromInt(2))
		diff := m.Sub(want).Abs()
		// Per-category rounding can shift the doubled value by a cent.
		if diff.GreaterThan(decimal.NewFromFloat(0.02)) {
			t.Errorf("%s: multi-AZ database %s should be ~2x single-AZ %s", p.Provider, m, s)
		}
	}
}

func providerCategory(t *testing.T, result *types.ComparisonResult, p types.Provider, category types.Category) decimal.Decimal {
	t.Helper()
	for _, pc := range result.Providers {
		if pc.Provider == p {
			return pc.Category(category)
		}
	}
	t.Fatalf("provider %s missing from result", p)
	return decimal.Zero
}

// TestServerlessPricing verifies serverless usage bills into compute
// without requiring an instance type.
func TestServerlessPricing(t *testing.T) {
	calc := newCalculator(t)

	req := types.DefaultRequirements()
	req.Compute.Serverless.Functions = 5 // 5M invocations per month
	req.Compute.Serverless.ExecutionTime = 2

	result, err := calc.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	for _, p := range result.Providers {
		if !p.Category(types.CategoryCompute).IsPositive() {
			t.Errorf("%s: expected positive serverless compute cost", p.Provider)
		}
	}
}

// TestComparisonOrdering verifies the derived comparison fields are
// internally consistent: ascending order, endpoints, savings and the
// multi-cloud lower bound.
func TestComparisonOrdering(t *testing.T) {
	calc := newCalculator(t)

	req := computeOnlyRequirements()
	req.Storage = storageOnlyRequirements().Storage
	req.Database.Relational.InstanceClass = "db.large"
	req.Database.Relational.Engine = "mysql"
	req.Networking.BandwidthGB = 1000
	req.Networking.LoadBalancer = "application"

	result, err := calc.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	for i := 1; i < len(result.Providers); i++ {
		if result.Providers[i].Total.LessThan(result.Providers[i-1].Total) {
			t.Errorf("providers not sorted ascending at index %d", i)
		}
	}

	if result.Cheapest.Provider != result.Providers[0].Provider {
		t.Errorf("cheapest %s != first provider %s", result.Cheapest.Provider, result.Providers[0].Provider)
	}
	last := result.Providers[len(result.Providers)-1]
	if result.MostExpensive.Provider != last.Provider {
		t.Errorf("most expensive %s != last provider %s", result.MostExpensive.Provider, last.Provider)
	}

	wantSavings := result.MostExpensive.Total.Sub(result.Cheapest.Total).Round(2)
	if !result.PotentialSavings.Equal(wantSavings) {
		t.Errorf("savings %s != %s", result.PotentialSavings, wantSavings)
	}

	if result.MultiCloud.Cost.GreaterThan(result.Cheapest.Total) {
		t.Errorf("multi-cloud blend %s exceeds cheapest single provider %s",
			result.MultiCloud.Cost, result.Cheapest.Total)
	}

	for _, category := range types.BlendCategories() {
		chosen := result.MultiCloud.Breakdown[category]
		chosenCost := providerCategory(t, result, chosen, category)
		for _, p := range result.Providers {
			if p.Category(category).LessThan(chosenCost) {
				t.Errorf("blend picked %s for %s but %s is cheaper", chosen, category, p.Provider)
			}
		}
	}
}

// TestRecommendations verifies the reservation hint appears only for
// sizeable on-demand compute.
func TestRecommendations(t *testing.T) {
	calc := newCalculator(t)

	onDemand := computeOnlyRequirements()
	result, err := calc.Calculate(onDemand)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	if len(result.Recommendations) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if !strings.Contains(result.Recommendations[0], result.Cheapest.Name) {
		t.Errorf("first recommendation should name the cheapest provider: %q", result.Recommendations[0])
	}
	if !containsReservationHint(result.Recommendations) {
		t.Error("expected a reservation hint for large on-demand compute")
	}

	reserved := computeOnlyRequirements()
	reserved.Optimization.ReservedInstances = "3yr"
	reservedResult, err := calc.Calculate(reserved)
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	if containsReservationHint(reservedResult.Recommendations) {
		t.Error("reservation hint should not appear when a term is already committed")
	}
}

func containsReservationHint(recs []string) bool {
	for _, rec := range recs {
		if strings.Contains(rec, "reserved capacity") {
			return true
		}
	}
	return false
}

// fullRequirements is a footprint that exercises every billable
// category at once.
func fullRequirements() *types.Requirements {
	req := computeOnlyRequirements()
	req.Compute.Serverless = types.ServerlessRequirements{Functions: 2, ExecutionTime: 1}
	req.Storage.Object = types.ObjectStorageRequirements{SizeGB: 500, Tier: "standard", Requests: 100000}
	req.Storage.Block = types.BlockStorageRequirements{SizeGB: 200, Type: "ssd-gp3", IOPS: 1000}
	req.Storage.File = types.FileStorageRequirements{SizeGB: 50, PerformanceMode: "general"}
	req.Database.Relational = types.RelationalRequirements{Engine: "postgres", InstanceClass: "db.medium", StorageGB: 100}
	req.Database.NoSQL = types.NoSQLRequirements{Engine: "document", StorageGB: 20}
	req.Database.Cache = types.CacheRequirements{Engine: "redis", NodeType: "cache.small", Nodes: 2}
	req.Database.Warehouse = types.WarehouseRequirements{NodeType: "dc.large", Nodes: 1, StorageGB: 500}
	req.Networking.BandwidthGB = 1000
	req.Networking.LoadBalancer = "application"
	req.Networking.CDN = types.CDNRequirements{Enabled: true, Requests: 10, TransferGB: 200}
	req.Networking.DNS = types.DNSRequirements{Zones: 2, Queries: 5}
	req.Networking.VPN = types.VPNRequirements{Connections: 1}
	req.Analytics = types.AnalyticsRequirements{DataProcessingGB: 100, StreamingGB: 50, Queries: 10}
	req.AI = types.AIRequirements{TrainingHours: 10, InferenceRequests: 1, StorageGB: 50}
	req.Security = types.SecurityRequirements{WebFirewall: true, Secrets: 5, Certificates: 2, ComplianceMonitoring: true}
	req.Monitoring = types.MonitoringRequirements{Metrics: 100, LogsGB: 20, Traces: 1, Dashboards: 3, Alerts: 10}
	req.DevOps = types.DevOpsRequirements{BuildMinutes: 1000, Pipelines: 3, ArtifactStorageGB: 20, ContainerRegistryGB: 10}
	req.Backup = types.BackupRequirements{StorageGB: 300, Frequency: "daily", RetentionDays: 30}
	req.IoT = types.IoTRequirements{Devices: 100, Messages: 5, DataProcessingGB: 10}
	req.Media = types.MediaRequirements{StreamingHours: 100, TranscodingMinutes: 500, StorageGB: 100}
	req.Quantum = types.QuantumRequirements{CircuitExecutions: 1000, QPUMinutes: 10}
	req.AdvancedAI = types.AdvancedAIRequirements{FineTuningHours: 5, VectorStorageGB: 10, Embeddings: 2}
	req.Edge = types.EdgeRequirements{Locations: 2, Requests: 10}
	req.Confidential = types.ConfidentialRequirements{EnclaveHours: 100, Attestations: 1000}
	req.Sustainability = types.SustainabilityRequirements{CarbonReporting: true, RenewableMatching: true}
	return req
}

// TestFullDocumentAdditivity verifies a document touching every
// category bills every category on every provider and the total is
// exactly the sum of the rounded category values.
func TestFullDocumentAdditivity(t *testing.T) {
	calc := newCalculator(t)

	result, err := calc.Calculate(fullRequirements())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}

	for _, p := range result.Providers {
		if len(p.Categories) != len(types.AllCategories()) {
			t.Errorf("%s: %d categories, want %d", p.Provider, len(p.Categories), len(types.AllCategories()))
		}
		sum := decimal.Zero
		for _, category := range types.AllCategories() {
			cost := p.Category(category)
			if !cost.IsPositive() {
				t.Errorf("%s/%s: expected a positive cost, got %s", p.Provider, category, cost)
			}
			if !cost.Equal(cost.Round(2)) {
				t.Errorf("%s/%s: cost %s is not rounded to cents", p.Provider, category, cost)
			}
			sum = sum.Add(cost)
		}
		if !p.Total.Equal(sum) {
			t.Errorf("%s: total %s != category sum %s", p.Provider, p.Total, sum)
		}
	}
}

// TestQuantityMonotonicity verifies that raising any single quantity
// never lowers any provider's total.
func TestQuantityMonotonicity(t *testing.T) {
	calc := newCalculator(t)

	baseline, err := calc.Calculate(fullRequirements())
	if err != nil {
		t.Fatalf("Calculate() failed: %v", err)
	}
	base := make(map[types.Provider]decimal.Decimal, len(baseline.Providers))
	for _, p := range baseline.Providers {
		base[p.Provider] = p.Total
	}

	tests := []struct {
		name string
		bump func(req *types.Requirements)
	}{
		{"vcpus", func(req *types.Requirements) { req.Compute.VCPUs += 8 }},
		{"ram", func(req *types.Requirements) { req.Compute.RAMGB += 32 }},
		{"boot volume", func(req *types.Requirements) { req.Compute.BootVolume.SizeGB += 100 }},
		{"serverless invocations", func(req *types.Requirements) { req.Compute.Serverless.Functions += 5 }},
		{"object storage", func(req *types.Requirements) { req.Storage.Object.SizeGB += 500 }},
		{"block storage", func(req *types.Requirements) { req.Storage.Block.SizeGB += 200 }},
		{"relational storage", func(req *types.Requirements) { req.Database.Relational.StorageGB += 100 }},
		{"cache nodes", func(req *types.Requirements) { req.Database.Cache.Nodes += 2 }},
		{"warehouse nodes", func(req *types.Requirements) { req.Database.Warehouse.Nodes++ }},
		{"bandwidth", func(req *types.Requirements) { req.Networking.BandwidthGB += 500 }},
		{"dns zones", func(req *types.Requirements) { req.Networking.DNS.Zones += 3 }},
		{"training hours", func(req *types.Requirements) { req.AI.TrainingHours += 20 }},
		{"log volume", func(req *types.Requirements) { req.Monitoring.LogsGB += 50 }},
		{"build minutes", func(req *types.Requirements) { req.DevOps.BuildMinutes += 2000 }},
		{"backup retention", func(req *types.Requirements) { req.Backup.RetentionDays += 60 }},
		{"iot messages", func(req *types.Requirements) { req.IoT.Messages += 10 }},
		{"qpu minutes", func(req *types.Requirements) { req.Quantum.QPUMinutes += 30 }},
		{"edge requests", func(req *types.Requirements) { req.Edge.Requests += 40 }},
		{"enclave hours", func(req *types.Requirements) { req.Confidential.EnclaveHours += 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fullRequirements()
			tt.bump(req)

			result, err := calc.Calculate(req)
			if err != nil {
				t.Fatalf("Calculate() failed: %v", err)
			}
			for _, p := range result.Providers {
				if p.Total.LessThan(base[p.Provider]) {
					t.Errorf("%s: total fell from %s to %s", p.Provider, base[p.Provider], p.Total)
				}
			}
		})
	}
}
