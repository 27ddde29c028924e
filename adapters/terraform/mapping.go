// Package terraform reconciles Terraform-declared resources into the
// unified resource model, from state files or HCL source.
package terraform

import (
	"strings"

	"cloudcost/clouds"
	"cloudcost/core/types"
)

// resourceMapping is one entry of the Terraform normalization table
type resourceMapping struct {
	Provider types.Provider
	Type     string
	Service  string
}

// resourceMappings maps Terraform resource type strings to the unified
// model. Unknown types fall back to the generic bucket with the
// provider inferred from the type prefix.
var resourceMappings = map[string]resourceMapping{
	// AWS
	"aws_instance":            {types.ProviderAWS, "EC2 Instance", types.ServiceCompute},
	"aws_ebs_volume":          {types.ProviderAWS, "EBS Volume", types.ServiceBlockStorage},
	"aws_s3_bucket":           {types.ProviderAWS, "S3 Bucket", types.ServiceObjectStorage},
	"aws_efs_file_system":     {types.ProviderAWS, "EFS File System", types.ServiceFileStorage},
	"aws_db_instance":         {types.ProviderAWS, "RDS Instance", types.ServiceDatabase},
	"aws_dynamodb_table":      {types.ProviderAWS, "DynamoDB Table", types.ServiceNoSQL},
	"aws_elasticache_cluster": {types.ProviderAWS, "ElastiCache Cluster", types.ServiceCache},
	"aws_redshift_cluster":    {types.ProviderAWS, "Redshift Cluster", types.ServiceWarehouse},
	"aws_lb":                  {types.ProviderAWS, "Elastic Load Balancer", types.ServiceLoadBalancer},
	"aws_elb":                 {types.ProviderAWS, "Elastic Load Balancer", types.ServiceLoadBalancer},
	"aws_lambda_function":     {types.ProviderAWS, "Lambda Function", types.ServiceServerless},
	"aws_route53_zone":        {types.ProviderAWS, "Route 53 Hosted Zone", types.ServiceDNS},
	"aws_vpc":                 {types.ProviderAWS, "VPC", types.ServiceNetworking},

	// Azure
	"azurerm_linux_virtual_machine":   {types.ProviderAzure, "Virtual Machine", types.ServiceCompute},
	"azurerm_windows_virtual_machine": {types.ProviderAzure, "Virtual Machine", types.ServiceCompute},
	"azurerm_managed_disk":            {types.ProviderAzure, "Managed Disk", types.ServiceBlockStorage},
	"azurerm_storage_account":         {types.ProviderAzure, "Storage Account", types.ServiceObjectStorage},
	"azurerm_storage_share":           {types.ProviderAzure, "File Share", types.ServiceFileStorage},
	"azurerm_mssql_database":          {types.ProviderAzure, "SQL Database", types.ServiceDatabase},
	"azurerm_postgresql_server":       {types.ProviderAzure, "PostgreSQL Server", types.ServiceDatabase},
	"azurerm_cosmosdb_account":        {types.ProviderAzure, "Cosmos DB Account", types.ServiceNoSQL},
	"azurerm_redis_cache":             {types.ProviderAzure, "Azure Cache for Redis", types.ServiceCache},
	"azurerm_lb":                      {types.ProviderAzure, "Load Balancer", types.ServiceLoadBalancer},
	"azurerm_linux_function_app":      {types.ProviderAzure, "Function App", types.ServiceServerless},
	"azurerm_dns_zone":                {types.ProviderAzure, "DNS Zone", types.ServiceDNS},
	"azurerm_virtual_network":         {types.ProviderAzure, "Virtual Network", types.ServiceNetworking},

	// GCP
	"google_compute_instance":      {types.ProviderGCP, "Compute Engine Instance", types.ServiceCompute},
	"google_compute_disk":          {types.ProviderGCP, "Persistent Disk", types.ServiceBlockStorage},
	"google_storage_bucket":        {types.ProviderGCP, "Cloud Storage Bucket", types.ServiceObjectStorage},
	"google_filestore_instance":    {types.ProviderGCP, "Filestore Instance", types.ServiceFileStorage},
	"google_sql_database_instance": {types.ProviderGCP, "Cloud SQL Instance", types.ServiceDatabase},
	"google_bigtable_instance":     {types.ProviderGCP, "Bigtable Instance", types.ServiceNoSQL},
	"google_redis_instance":        {types.ProviderGCP, "Memorystore Instance", types.ServiceCache},
	"google_bigquery_dataset":      {types.ProviderGCP, "BigQuery Dataset", types.ServiceWarehouse},
	"google_compute_forwarding_rule": {types.ProviderGCP, "Forwarding Rule", types.ServiceLoadBalancer},
	"google_cloudfunctions_function": {types.ProviderGCP, "Cloud Function", types.ServiceServerless},
	"google_dns_managed_zone":      {types.ProviderGCP, "Managed Zone", types.ServiceDNS},
	"google_compute_network":       {types.ProviderGCP, "VPC Network", types.ServiceNetworking},

	// OCI
	"oci_core_instance":                 {types.ProviderOCI, "Compute Instance", types.ServiceCompute},
	"oci_core_volume":                   {types.ProviderOCI, "Block Volume", types.ServiceBlockStorage},
	"oci_objectstorage_bucket":          {types.ProviderOCI, "Object Storage Bucket", types.ServiceObjectStorage},
	"oci_file_storage_file_system":      {types.ProviderOCI, "File Storage System", types.ServiceFileStorage},
	"oci_database_autonomous_database":  {types.ProviderOCI, "Autonomous Database", types.ServiceDatabase},
	"oci_nosql_table":                   {types.ProviderOCI, "NoSQL Table", types.ServiceNoSQL},
	"oci_load_balancer_load_balancer":   {types.ProviderOCI, "Load Balancer", types.ServiceLoadBalancer},
	"oci_functions_function":            {types.ProviderOCI, "Function", types.ServiceServerless},
	"oci_dns_zone":                      {types.ProviderOCI, "DNS Zone", types.ServiceDNS},
	"oci_core_vcn":                      {types.ProviderOCI, "Virtual Cloud Network", types.ServiceNetworking},
}

// stateLabels: declared resources have no live lifecycle state
var stateLabels = map[string]string{
	"declared": "declared",
	"tainted":  "tainted",
}

// providerFromType infers the provider for resource types the table
// does not list.
func providerFromType(resourceType string) types.Provider {
	switch {
	case strings.HasPrefix(resourceType, "aws_"):
		return types.ProviderAWS
	case strings.HasPrefix(resourceType, "azurerm_"):
		return types.ProviderAzure
	case strings.HasPrefix(resourceType, "google_"):
		return types.ProviderGCP
	case strings.HasPrefix(resourceType, "oci_"):
		return types.ProviderOCI
	default:
		return types.ProviderUnknown
	}
}

// Reconcile maps Terraform raw records into unified resources. Like
// the scan normalizers, it is best-effort: unrecognized types land in
// the generic bucket and malformed records are dropped, never failing
// the batch.
func Reconcile(records []types.RawRecord) []types.UnifiedResource {
	resources := make([]types.UnifiedResource, 0, len(records))
	for _, rec := range records {
		provider := providerFromType(rec.SourceType)
		mappings := map[string]clouds.ServiceMapping{}
		if m, ok := resourceMappings[rec.SourceType]; ok {
			provider = m.Provider
			mappings[rec.SourceType] = clouds.ServiceMapping{Type: m.Type, Service: m.Service}
		}

		res, ok := clouds.NormalizeRecord(provider, rec, mappings, stateLabels, costDetails(rec))
		if !ok {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// costDetails extracts typed cost hints from Terraform attribute
// vocabulary, trying the provider-specific spellings in turn.
func costDetails(rec types.RawRecord) types.CostDetails {
	details := types.CostDetails{}

	for _, key := range []string{"instance_type", "machine_type", "size", "vm_size", "shape"} {
		if v := rec.Attributes.GetString(key); v != "" {
			details.InstanceType = v
			break
		}
	}

	for _, key := range []string{"size", "disk_size_gb", "volume_size", "allocated_storage", "size_in_gbs"} {
		if v := rec.Attributes.GetFloat(key); v > 0 {
			details.StorageGB = v
			break
		}
	}

	details.VCPUs = rec.Attributes.GetInt("vcpus")
	details.MemoryGB = rec.Attributes.GetFloat("memory_gb")

	return details
}
