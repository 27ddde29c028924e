package costing

import (
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// validate rejects malformed requirements before any cost figure is
// computed. Enum values are checked against the pricing table during
// calculation; this pass covers the domain bounds the table cannot
// express: no numeric quantity may be negative, and the operating
// system must be a known value.
func validate(req *types.Requirements) error {
	checks := []struct {
		field string
		value float64
	}{
		{"compute.vcpus", float64(req.Compute.VCPUs)},
		{"compute.ram", req.Compute.RAMGB},
		{"compute.bootVolume.size", req.Compute.BootVolume.SizeGB},
		{"compute.bootVolume.iops", float64(req.Compute.BootVolume.IOPS)},
		{"compute.serverless.functions", req.Compute.Serverless.Functions},
		{"compute.serverless.executionTime", req.Compute.Serverless.ExecutionTime},
		{"storage.objectStorage.size", req.Storage.Object.SizeGB},
		{"storage.objectStorage.requests", req.Storage.Object.Requests},
		{"storage.blockStorage.size", req.Storage.Block.SizeGB},
		{"storage.blockStorage.iops", float64(req.Storage.Block.IOPS)},
		{"storage.fileStorage.size", req.Storage.File.SizeGB},
		{"database.relational.storage", req.Database.Relational.StorageGB},
		{"database.nosql.readCapacity", float64(req.Database.NoSQL.ReadCapacity)},
		{"database.nosql.writeCapacity", float64(req.Database.NoSQL.WriteCapacity)},
		{"database.nosql.storage", req.Database.NoSQL.StorageGB},
		{"database.cache.nodes", float64(req.Database.Cache.Nodes)},
		{"database.warehouse.nodes", float64(req.Database.Warehouse.Nodes)},
		{"database.warehouse.storage", req.Database.Warehouse.StorageGB},
		{"networking.bandwidth", req.Networking.BandwidthGB},
		{"networking.cdn.requests", req.Networking.CDN.Requests},
		{"networking.cdn.transfer", req.Networking.CDN.TransferGB},
		{"networking.dns.zones", float64(req.Networking.DNS.Zones)},
		{"networking.dns.queries", req.Networking.DNS.Queries},
		{"networking.vpn.connections", float64(req.Networking.VPN.Connections)},
		{"analytics.dataProcessing", req.Analytics.DataProcessingGB},
		{"analytics.streaming", req.Analytics.StreamingGB},
		{"analytics.queries", req.Analytics.Queries},
		{"ai.trainingHours", req.AI.TrainingHours},
		{"ai.inferenceRequests", req.AI.InferenceRequests},
		{"ai.storage", req.AI.StorageGB},
		{"security.secrets", float64(req.Security.Secrets)},
		{"security.certificates", float64(req.Security.Certificates)},
		{"monitoring.metrics", float64(req.Monitoring.Metrics)},
		{"monitoring.logs", req.Monitoring.LogsGB},
		{"monitoring.traces", req.Monitoring.Traces},
		{"monitoring.dashboards", float64(req.Monitoring.Dashboards)},
		{"monitoring.alerts", float64(req.Monitoring.Alerts)},
		{"devops.buildMinutes", req.DevOps.BuildMinutes},
		{"devops.pipelines", float64(req.DevOps.Pipelines)},
		{"devops.artifactStorage", req.DevOps.ArtifactStorageGB},
		{"devops.containerRegistry", req.DevOps.ContainerRegistryGB},
		{"backup.storage", req.Backup.StorageGB},
		{"backup.retentionDays", float64(req.Backup.RetentionDays)},
		{"iot.devices", float64(req.IoT.Devices)},
		{"iot.messages", req.IoT.Messages},
		{"iot.dataProcessing", req.IoT.DataProcessingGB},
		{"media.streamingHours", req.Media.StreamingHours},
		{"media.transcodingMinutes", req.Media.TranscodingMinutes},
		{"media.storage", req.Media.StorageGB},
		{"quantum.circuitExecutions", req.Quantum.CircuitExecutions},
		{"quantum.qpuMinutes", req.Quantum.QPUMinutes},
		{"advancedAI.fineTuningHours", req.AdvancedAI.FineTuningHours},
		{"advancedAI.vectorStorage", req.AdvancedAI.VectorStorageGB},
		{"advancedAI.embeddings", req.AdvancedAI.Embeddings},
		{"edge.locations", float64(req.Edge.Locations)},
		{"edge.requests", req.Edge.Requests},
		{"confidential.enclaveHours", req.Confidential.EnclaveHours},
		{"confidential.attestations", req.Confidential.Attestations},
		{"scenarios.growthPercent", req.Scenarios.GrowthPercent},
	}

	for _, check := range checks {
		if check.value < 0 {
			return errors.Inputf("%s must not be negative", check.field)
		}
	}

	switch req.Compute.OperatingSystem {
	case "", "linux", "windows":
	default:
		return errors.Inputf("compute.operatingSystem %q is not supported (linux, windows)", req.Compute.OperatingSystem)
	}

	return nil
}
