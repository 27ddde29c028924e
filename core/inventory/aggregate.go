package inventory

import (
	"strings"

	"go.uber.org/zap"

	"cloudcost/core/types"
	"cloudcost/internal/logging"
)

// Fallbacks applied when a resource carries no sizing signal. Discovery
// assumes a reasonable small instance rather than pricing nothing.
const (
	fallbackVCPUs        = 2
	fallbackMemoryGB     = 4
	fallbackBootVolumeGB = 30
	fallbackBucketGB     = 5
	fallbackVolumeGB     = 30
	fallbackFileShareGB  = 10
	fallbackDBStorageGB  = 20

	// bandwidthPerResourceGB drives the bandwidth estimate. This is a
	// heuristic placeholder keyed on resource count, not measured
	// traffic.
	bandwidthPerResourceGB = 50
)

// Aggregate reduces a unified resource list into a requirements
// document. Only categories with discoverable signal are populated;
// everything else keeps its zero/"none" default, so an empty inventory
// aggregates to the default document. The input list may cover any
// subset of providers - a failed upstream scan of one provider simply
// means fewer resources here.
func Aggregate(resources []types.UnifiedResource) *types.Requirements {
	req := types.DefaultRequirements()

	for _, r := range resources {
		service := r.Service

		switch {
		case matches(service, types.ServiceCompute, "EC2", "Virtual Machine", "Compute Engine", "Instance"):
			vcpus := r.CostDetails.VCPUs
			if vcpus == 0 {
				vcpus = fallbackVCPUs
			}
			mem := r.CostDetails.MemoryGB
			if mem == 0 {
				mem = fallbackMemoryGB
			}
			boot := r.CostDetails.StorageGB
			if boot == 0 {
				boot = fallbackBootVolumeGB
			}
			req.Compute.VCPUs += vcpus
			req.Compute.RAMGB += mem
			req.Compute.BootVolume.SizeGB += boot
			req.Compute.InstanceType = "general-purpose"
			req.Compute.BootVolume.Type = "ssd-gp3"

		case matches(service, types.ServiceServerless, "Lambda", "Function"):
			// 0.1M invocations per discovered function: a placeholder
			// until real invocation metrics are available.
			req.Compute.Serverless.Functions += 0.1
			if req.Compute.Serverless.ExecutionTime == 0 {
				req.Compute.Serverless.ExecutionTime = 1
			}

		case matches(service, types.ServiceObjectStorage, "S3", "Bucket", "Cloud Storage", "Blob"):
			size := r.CostDetails.StorageGB
			if size == 0 {
				size = fallbackBucketGB
			}
			req.Storage.Object.SizeGB += size
			req.Storage.Object.Tier = "standard"

		case matches(service, types.ServiceBlockStorage, "EBS", "Disk", "Volume"):
			size := r.CostDetails.StorageGB
			if size == 0 {
				size = fallbackVolumeGB
			}
			req.Storage.Block.SizeGB += size
			req.Storage.Block.Type = "ssd-gp3"

		case matches(service, types.ServiceFileStorage, "EFS", "Filestore", "File Share"):
			size := r.CostDetails.StorageGB
			if size == 0 {
				size = fallbackFileShareGB
			}
			req.Storage.File.SizeGB += size
			req.Storage.File.PerformanceMode = "general"

		case matches(service, types.ServiceNoSQL, "DynamoDB", "Cosmos", "Bigtable"):
			req.Database.NoSQL.Engine = "keyvalue"
			if req.Database.NoSQL.ReadCapacity == 0 {
				req.Database.NoSQL.ReadCapacity = 5
			}
			if req.Database.NoSQL.WriteCapacity == 0 {
				req.Database.NoSQL.WriteCapacity = 5
			}
			req.Database.NoSQL.StorageGB += r.CostDetails.StorageGB

		case matches(service, types.ServiceCache, "ElastiCache", "Redis", "Memorystore"):
			req.Database.Cache.Nodes++
			req.Database.Cache.NodeType = "cache.small"
			if req.Database.Cache.Engine == "none" {
				req.Database.Cache.Engine = "redis"
			}

		case matches(service, types.ServiceDatabase, "RDS", "SQL", "Database"):
			size := r.CostDetails.StorageGB
			if size == 0 {
				size = fallbackDBStorageGB
			}
			req.Database.Relational.StorageGB += size
			if req.Database.Relational.InstanceClass == "none" {
				req.Database.Relational.InstanceClass = "db.small"
			}
			if req.Database.Relational.Engine == "none" {
				req.Database.Relational.Engine = "mysql"
			}

		case matches(service, types.ServiceWarehouse, "Redshift", "Synapse", "BigQuery"):
			req.Database.Warehouse.Nodes++
			req.Database.Warehouse.NodeType = "dc.large"
			req.Database.Warehouse.StorageGB += r.CostDetails.StorageGB

		case matches(service, types.ServiceLoadBalancer, "ELB", "Load Balancer"):
			if req.Networking.LoadBalancer == "none" {
				req.Networking.LoadBalancer = "application"
			}

		default:
			// Unknown/Other and plain networking resources contribute
			// only to the bandwidth estimate below.
			logging.Component(logging.StageInventory).Debug("resource carries no direct cost signal",
				zap.String("id", r.ID),
				zap.String("service", service))
		}
	}

	if len(resources) > 0 {
		req.Networking.BandwidthGB = float64(len(resources)) * bandwidthPerResourceGB
	}

	return req
}

// matches reports whether the service label equals or contains any of
// the known labels.
func matches(service string, labels ...string) bool {
	for _, label := range labels {
		if service == label || strings.Contains(service, label) {
			return true
		}
	}
	return false
}
