// Package azure normalizes Azure inventory scan records into the
// unified resource model.
package azure

import (
	"cloudcost/clouds"
	"cloudcost/core/inventory"
	"cloudcost/core/types"
)

// serviceMappings is keyed by Azure Resource Manager type identifiers
var serviceMappings = map[string]clouds.ServiceMapping{
	"Microsoft.Compute/virtualMachines":      {Type: "Virtual Machine", Service: types.ServiceCompute},
	"Microsoft.Compute/disks":                {Type: "Managed Disk", Service: types.ServiceBlockStorage},
	"Microsoft.Storage/storageAccounts":      {Type: "Storage Account", Service: types.ServiceObjectStorage},
	"Microsoft.Storage/fileShares":           {Type: "File Share", Service: types.ServiceFileStorage},
	"Microsoft.Sql/servers/databases":        {Type: "SQL Database", Service: types.ServiceDatabase},
	"Microsoft.DBforPostgreSQL/servers":      {Type: "PostgreSQL Server", Service: types.ServiceDatabase},
	"Microsoft.DocumentDB/databaseAccounts":  {Type: "Cosmos DB Account", Service: types.ServiceNoSQL},
	"Microsoft.Cache/Redis":                  {Type: "Azure Cache for Redis", Service: types.ServiceCache},
	"Microsoft.Synapse/workspaces":           {Type: "Synapse Workspace", Service: types.ServiceWarehouse},
	"Microsoft.Network/loadBalancers":        {Type: "Load Balancer", Service: types.ServiceLoadBalancer},
	"Microsoft.Web/sites":                    {Type: "Function App", Service: types.ServiceServerless},
	"Microsoft.Cdn/profiles":                 {Type: "CDN Profile", Service: types.ServiceCDN},
	"Microsoft.Network/dnszones":             {Type: "DNS Zone", Service: types.ServiceDNS},
	"Microsoft.Network/virtualNetworks":      {Type: "Virtual Network", Service: types.ServiceNetworking},
}

// stateLabels normalizes Azure power/provisioning states
var stateLabels = map[string]string{
	"VM running":      "running",
	"VM stopped":      "stopped",
	"VM deallocated":  "stopped",
	"VM starting":     "provisioning",
	"Succeeded":       "available",
	"Creating":        "provisioning",
	"Deleting":        "terminating",
	"Failed":          "failed",
}

// Normalizer converts Azure scan records
type Normalizer struct{}

// Provider returns the cloud provider
func (Normalizer) Provider() types.Provider {
	return types.ProviderAzure
}

// Normalize converts raw Azure records into unified resources
func (Normalizer) Normalize(records []types.RawRecord) []types.UnifiedResource {
	resources := make([]types.UnifiedResource, 0, len(records))
	for _, rec := range records {
		res, ok := clouds.NormalizeRecord(types.ProviderAzure, rec, serviceMappings, stateLabels, costDetails(rec))
		if !ok {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// costDetails extracts typed cost hints from ARM attribute vocabulary
func costDetails(rec types.RawRecord) types.CostDetails {
	return types.CostDetails{
		VCPUs:        rec.Attributes.GetInt("vcpus"),
		MemoryGB:     rec.Attributes.GetFloat("memory_gb"),
		StorageGB:    rec.Attributes.GetFloat("disk_size_gb"),
		InstanceType: rec.Attributes.GetString("vm_size"),
	}
}

func init() {
	inventory.Register(Normalizer{})
}
