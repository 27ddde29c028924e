// Package gcp normalizes GCP inventory scan records into the unified
// resource model.
package gcp

import (
	"cloudcost/clouds"
	"cloudcost/core/inventory"
	"cloudcost/core/types"
)

// serviceMappings is keyed by GCP API resource kind identifiers
var serviceMappings = map[string]clouds.ServiceMapping{
	"compute#instance":       {Type: "Compute Engine Instance", Service: types.ServiceCompute},
	"compute#disk":           {Type: "Persistent Disk", Service: types.ServiceBlockStorage},
	"storage#bucket":         {Type: "Cloud Storage Bucket", Service: types.ServiceObjectStorage},
	"file#instance":          {Type: "Filestore Instance", Service: types.ServiceFileStorage},
	"sqladmin#instance":      {Type: "Cloud SQL Instance", Service: types.ServiceDatabase},
	"firestore#database":     {Type: "Firestore Database", Service: types.ServiceNoSQL},
	"bigtable#instance":      {Type: "Bigtable Instance", Service: types.ServiceNoSQL},
	"redis#instance":         {Type: "Memorystore Instance", Service: types.ServiceCache},
	"bigquery#dataset":       {Type: "BigQuery Dataset", Service: types.ServiceWarehouse},
	"compute#forwardingRule": {Type: "Forwarding Rule", Service: types.ServiceLoadBalancer},
	"cloudfunctions#function": {Type: "Cloud Function", Service: types.ServiceServerless},
	"dns#managedZone":        {Type: "Managed Zone", Service: types.ServiceDNS},
	"compute#network":        {Type: "VPC Network", Service: types.ServiceNetworking},
}

// stateLabels normalizes Compute Engine style lifecycle states
var stateLabels = map[string]string{
	"RUNNING":      "running",
	"TERMINATED":   "stopped",
	"STOPPING":     "terminating",
	"PROVISIONING": "provisioning",
	"STAGING":      "provisioning",
	"READY":        "available",
	"CREATING":     "provisioning",
	"DELETING":     "terminating",
	"RUNNABLE":     "available",
}

// Normalizer converts GCP scan records
type Normalizer struct{}

// Provider returns the cloud provider
func (Normalizer) Provider() types.Provider {
	return types.ProviderGCP
}

// Normalize converts raw GCP records into unified resources
func (Normalizer) Normalize(records []types.RawRecord) []types.UnifiedResource {
	resources := make([]types.UnifiedResource, 0, len(records))
	for _, rec := range records {
		res, ok := clouds.NormalizeRecord(types.ProviderGCP, rec, serviceMappings, stateLabels, costDetails(rec))
		if !ok {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// costDetails extracts typed cost hints from GCP attribute vocabulary
func costDetails(rec types.RawRecord) types.CostDetails {
	return types.CostDetails{
		VCPUs:        rec.Attributes.GetInt("guest_cpus"),
		MemoryGB:     rec.Attributes.GetFloat("memory_gb"),
		StorageGB:    rec.Attributes.GetFloat("size_gb"),
		InstanceType: rec.Attributes.GetString("machine_type"),
	}
}

func init() {
	inventory.Register(Normalizer{})
}
