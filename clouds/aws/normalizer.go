// Package aws normalizes AWS inventory scan records into the unified
// resource model.
package aws

import (
	"cloudcost/clouds"
	"cloudcost/core/inventory"
	"cloudcost/core/types"
)

// serviceMappings is the static normalization table for AWS scan
// records, keyed by the scan client's resource type identifiers.
var serviceMappings = map[string]clouds.ServiceMapping{
	"ec2:instance":        {Type: "EC2 Instance", Service: types.ServiceCompute},
	"ec2:volume":          {Type: "EBS Volume", Service: types.ServiceBlockStorage},
	"s3:bucket":           {Type: "S3 Bucket", Service: types.ServiceObjectStorage},
	"efs:filesystem":      {Type: "EFS File System", Service: types.ServiceFileStorage},
	"rds:instance":        {Type: "RDS Instance", Service: types.ServiceDatabase},
	"dynamodb:table":      {Type: "DynamoDB Table", Service: types.ServiceNoSQL},
	"elasticache:cluster": {Type: "ElastiCache Cluster", Service: types.ServiceCache},
	"redshift:cluster":    {Type: "Redshift Cluster", Service: types.ServiceWarehouse},
	"elbv2:loadbalancer":  {Type: "Elastic Load Balancer", Service: types.ServiceLoadBalancer},
	"lambda:function":     {Type: "Lambda Function", Service: types.ServiceServerless},
	"cloudfront:distribution": {Type: "CloudFront Distribution", Service: types.ServiceCDN},
	"route53:zone":        {Type: "Route 53 Hosted Zone", Service: types.ServiceDNS},
	"ec2:vpc":             {Type: "VPC", Service: types.ServiceNetworking},
}

// stateLabels normalizes EC2-style lifecycle states
var stateLabels = map[string]string{
	"running":       "running",
	"stopped":       "stopped",
	"pending":       "provisioning",
	"shutting-down": "terminating",
	"terminated":    "terminated",
	"in-use":        "available",
	"available":     "available",
	"creating":      "provisioning",
	"deleting":      "terminating",
}

// Normalizer converts AWS scan records
type Normalizer struct{}

// Provider returns the cloud provider
func (Normalizer) Provider() types.Provider {
	return types.ProviderAWS
}

// Normalize converts raw AWS records into unified resources
func (Normalizer) Normalize(records []types.RawRecord) []types.UnifiedResource {
	resources := make([]types.UnifiedResource, 0, len(records))
	for _, rec := range records {
		res, ok := clouds.NormalizeRecord(types.ProviderAWS, rec, serviceMappings, stateLabels, costDetails(rec))
		if !ok {
			continue
		}
		resources = append(resources, res)
	}
	return resources
}

// costDetails extracts typed cost hints from AWS attribute vocabulary
func costDetails(rec types.RawRecord) types.CostDetails {
	return types.CostDetails{
		VCPUs:        rec.Attributes.GetInt("vcpus"),
		MemoryGB:     rec.Attributes.GetFloat("memory_gb"),
		StorageGB:    rec.Attributes.GetFloat("size_gb"),
		InstanceType: rec.Attributes.GetString("instance_type"),
	}
}

func init() {
	inventory.Register(Normalizer{})
}
