// Package oci normalizes Oracle Cloud inventory scan records into the
// unified resource model. Source type identifiers follow the OCI
// discovery client's resource group names.
package oci

import (
	"cloudcost/clouds"
	"cloudcost/core/inventory"
	"cloudcost/core/types"
)

// serviceMappings is keyed by the OCI discovery client's group names
var serviceMappings = map[string]clouds.ServiceMapping{
	"compute_instance":      {Type: "Compute Instance", Service: types.ServiceCompute},
	"block_volume":          {Type: "Block Volume", Service: types.ServiceBlockStorage},
	"boot_volume":           {Type: "Boot Volume", Service: types.ServiceBlockStorage},
	"object_storage_bucket": {Type: "Object Storage Bucket", Service: types.ServiceObjectStorage},
	"file_system":           {Type: "File Storage System", Service: types.ServiceFileStorage},
	"autonomous_database":   {Type: "Autonomous Database", Service: types.ServiceDatabase},
	"nosql_table":           {Type: "NoSQL Table", Service: types.ServiceNoSQL},
	"redis_cluster":         {Type: "Cache Cluster", Service: types.ServiceCache},
	"load_balancer":         {Type: "Load Balancer", Service: types.ServiceLoadBalancer},
	"function":              {Type: "Function", Service: types.ServiceServerless},
	"dns_zone":              {Type: "DNS Zone", Service: types.ServiceDNS},
	"vcn":                   {Type: "Virtual Cloud Network", Service: types.ServiceNetworking},
}

// stateLabels normalizes OCI lifecycle states, which the SDK reports
// in upper case.
var stateLabels = map[string]string{
	"RUNNING":      "running",
	"STOPPED":      "stopped",
	"STARTING":     "provisioning",
	"STOPPING":     "terminating",
	"PROVISIONING": "provisioning",
	"AVAILABLE":    "available",
	"TERMINATED":   "terminated",
	"TERMINATING":  "terminating",
	"ACTIVE":       "available",
	"CREATING":     "provisioning",
}

// Normalizer converts OCI scan records
type Normalizer struct{}

// Provider returns the cloud provider
func (Normalizer) Provider() types.Provider {
	return types.ProviderOCI
}

// Normalize converts raw OCI records into unified resources
func (Normalizer) Normalize(records []types.RawRecord) []types.UnifiedResource {
	resources := make([]types.UnifiedResource, 0, len(records))
	for _, rec := range records {
		res, ok := clouds.NormalizeRecord(types.ProviderOCI, rec, serviceMappings, stateLabels, costDetails(rec))
		if !ok {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// costDetails extracts typed cost hints from OCI attribute vocabulary.
// OCPUs count as two vCPUs each when only an OCPU count is reported.
func costDetails(rec types.RawRecord) types.CostDetails {
	vcpus := rec.Attributes.GetInt("vcpus")
	if vcpus == 0 {
		vcpus = rec.Attributes.GetInt("ocpus") * 2
	}
	return types.CostDetails{
		VCPUs:        vcpus,
		MemoryGB:     rec.Attributes.GetFloat("memory_in_gbs"),
		StorageGB:    rec.Attributes.GetFloat("size_in_gbs"),
		InstanceType: rec.Attributes.GetString("shape"),
	}
}

func init() {
	inventory.Register(Normalizer{})
}
