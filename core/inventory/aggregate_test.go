package inventory

import (
	"testing"

	"cloudcost/core/types"
)

// TestAggregateEmptyInventory verifies an empty resource list produces
// the default all-zero document: nothing discovered means nothing
// priced.
func TestAggregateEmptyInventory(t *testing.T) {
	req := Aggregate(nil)

	if req.Compute.VCPUs != 0 || req.Compute.RAMGB != 0 {
		t.Errorf("expected zero compute, got %d vcpus / %v GB", req.Compute.VCPUs, req.Compute.RAMGB)
	}
	if req.Networking.BandwidthGB != 0 {
		t.Errorf("expected zero bandwidth, got %v", req.Networking.BandwidthGB)
	}
	if req.Database.Relational.InstanceClass != "none" {
		t.Errorf("expected relational class none, got %q", req.Database.Relational.InstanceClass)
	}
	if req.Networking.LoadBalancer != "none" {
		t.Errorf("expected load balancer none, got %q", req.Networking.LoadBalancer)
	}
}

// TestAggregateSumsSizedResources verifies discovered sizing signal is
// summed into the document.
func TestAggregateSumsSizedResources(t *testing.T) {
	resources := []types.UnifiedResource{
		{
			ID: "i-1", Service: types.ServiceCompute,
			CostDetails: types.CostDetails{VCPUs: 4, MemoryGB: 16, StorageGB: 100},
		},
		{
			ID: "i-2", Service: types.ServiceCompute,
			CostDetails: types.CostDetails{VCPUs: 2, MemoryGB: 8, StorageGB: 50},
		},
		{
			ID: "vol-1", Service: types.ServiceBlockStorage,
			CostDetails: types.CostDetails{StorageGB: 200},
		},
		{
			ID: "bucket-1", Service: types.ServiceObjectStorage,
			CostDetails: types.CostDetails{StorageGB: 750},
		},
	}

	req := Aggregate(resources)

	if req.Compute.VCPUs != 6 {
		t.Errorf("vcpus = %d, want 6", req.Compute.VCPUs)
	}
	if req.Compute.RAMGB != 24 {
		t.Errorf("ram = %v, want 24", req.Compute.RAMGB)
	}
	if req.Compute.BootVolume.SizeGB != 150 {
		t.Errorf("boot volume = %v, want 150", req.Compute.BootVolume.SizeGB)
	}
	if req.Compute.InstanceType != "general-purpose" {
		t.Errorf("instance type = %q", req.Compute.InstanceType)
	}
	if req.Storage.Block.SizeGB != 200 {
		t.Errorf("block storage = %v, want 200", req.Storage.Block.SizeGB)
	}
	if req.Storage.Object.SizeGB != 750 {
		t.Errorf("object storage = %v, want 750", req.Storage.Object.SizeGB)
	}
	if req.Storage.Object.Tier != "standard" {
		t.Errorf("object tier = %q", req.Storage.Object.Tier)
	}

	// 4 resources at 50 GB each
	if req.Networking.BandwidthGB != 200 {
		t.Errorf("bandwidth = %v, want 200", req.Networking.BandwidthGB)
	}
}

// TestAggregateAppliesFallbacks verifies unsized resources assume a
// small footprint instead of contributing nothing.
func TestAggregateAppliesFallbacks(t *testing.T) {
	resources := []types.UnifiedResource{
		{ID: "i-1", Service: types.ServiceCompute},
		{ID: "b-1", Service: types.ServiceObjectStorage},
		{ID: "db-1", Service: types.ServiceDatabase},
	}

	req := Aggregate(resources)

	if req.Compute.VCPUs != fallbackVCPUs {
		t.Errorf("vcpus = %d, want fallback %d", req.Compute.VCPUs, fallbackVCPUs)
	}
	if req.Compute.RAMGB != fallbackMemoryGB {
		t.Errorf("ram = %v, want fallback %d", req.Compute.RAMGB, fallbackMemoryGB)
	}
	if req.Compute.BootVolume.SizeGB != fallbackBootVolumeGB {
		t.Errorf("boot = %v, want fallback %d", req.Compute.BootVolume.SizeGB, fallbackBootVolumeGB)
	}
	if req.Storage.Object.SizeGB != fallbackBucketGB {
		t.Errorf("bucket = %v, want fallback %d", req.Storage.Object.SizeGB, fallbackBucketGB)
	}
	if req.Database.Relational.StorageGB != fallbackDBStorageGB {
		t.Errorf("db storage = %v, want fallback %d", req.Database.Relational.StorageGB, fallbackDBStorageGB)
	}
	if req.Database.Relational.InstanceClass != "db.small" {
		t.Errorf("db class = %q, want db.small", req.Database.Relational.InstanceClass)
	}
	if req.Database.Relational.Engine != "mysql" {
		t.Errorf("db engine = %q, want mysql", req.Database.Relational.Engine)
	}
}

// TestAggregateServiceClassification verifies NoSQL and cache services
// are not swallowed by the broader database match.
func TestAggregateServiceClassification(t *testing.T) {
	resources := []types.UnifiedResource{
		{ID: "t-1", Service: types.ServiceNoSQL},
		{ID: "c-1", Service: types.ServiceCache},
		{ID: "w-1", Service: types.ServiceWarehouse},
		{ID: "lb-1", Service: types.ServiceLoadBalancer},
		{ID: "fn-1", Service: types.ServiceServerless},
	}

	req := Aggregate(resources)

	if req.Database.NoSQL.Engine != "keyvalue" {
		t.Errorf("nosql engine = %q, want keyvalue", req.Database.NoSQL.Engine)
	}
	if req.Database.Cache.Nodes != 1 || req.Database.Cache.Engine != "redis" {
		t.Errorf("cache = %d nodes engine %q", req.Database.Cache.Nodes, req.Database.Cache.Engine)
	}
	if req.Database.Warehouse.Nodes != 1 {
		t.Errorf("warehouse nodes = %d, want 1", req.Database.Warehouse.Nodes)
	}
	// The database section must not also gain a relational instance.
	if req.Database.Relational.InstanceClass != "none" {
		t.Errorf("relational class = %q, want none", req.Database.Relational.InstanceClass)
	}
	if req.Networking.LoadBalancer != "application" {
		t.Errorf("load balancer = %q, want application", req.Networking.LoadBalancer)
	}
	if req.Compute.Serverless.Functions == 0 {
		t.Error("expected serverless invocation estimate")
	}
}

// TestAggregateUnknownServicesCountTowardBandwidth verifies fallback
// bucket resources still contribute to the bandwidth estimate.
func TestAggregateUnknownServicesCountTowardBandwidth(t *testing.T) {
	resources := []types.UnifiedResource{
		{ID: "x-1", Service: types.ServiceOther},
		{ID: "x-2", Service: types.ServiceNetworking},
	}

	req := Aggregate(resources)

	if req.Networking.BandwidthGB != 2*bandwidthPerResourceGB {
		t.Errorf("bandwidth = %v, want %d", req.Networking.BandwidthGB, 2*bandwidthPerResourceGB)
	}
	if req.Compute.VCPUs != 0 {
		t.Errorf("unknown services should not add compute, got %d vcpus", req.Compute.VCPUs)
	}
}
