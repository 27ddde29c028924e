package costing

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// categoryFunc computes one category's unrounded monthly cost for one
// provider's rates. Every routine follows the same shape: zero-guard,
// rate lookup, multiply by quantity, apply modifiers.
type categoryFunc func(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error)

var categoryFuncs = map[types.Category]categoryFunc{
	types.CategoryCompute:        computeCost,
	types.CategoryStorage:        storageCost,
	types.CategoryDatabase:       databaseCost,
	types.CategoryNetworking:     networkingCost,
	types.CategoryAnalytics:      analyticsCost,
	types.CategoryAI:             aiCost,
	types.CategorySecurity:       securityCost,
	types.CategoryMonitoring:     monitoringCost,
	types.CategoryDevOps:         devopsCost,
	types.CategoryBackup:         backupCost,
	types.CategoryIoT:            iotCost,
	types.CategoryMedia:          mediaCost,
	types.CategoryQuantum:        quantumCost,
	types.CategoryAdvancedAI:     advancedAICost,
	types.CategoryEdge:           edgeCost,
	types.CategoryConfidential:   confidentialCost,
	types.CategorySustainability: sustainabilityCost,
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func decInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// rate resolves an enum-keyed rate. A missing pricing-table entry is a
// configuration/input error, never a silent zero.
func rate(m map[string]decimal.Decimal, key, dimension string) (decimal.Decimal, error) {
	v, ok := m[key]
	if !ok {
		return decimal.Decimal{}, errors.Pricingf("unknown %s %q: no pricing entry", dimension, key)
	}
	return v, nil
}

// computeCost prices instances, the boot volume and serverless usage.
// The Windows surcharge and reservation discount apply to the instance
// base only; the region multiplier applies to the whole category.
func computeCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	c := req.Compute
	total := decimal.Zero

	if c.VCPUs > 0 || c.RAMGB > 0 {
		base := r.Compute.VCPUHour.Mul(decInt(c.VCPUs)).
			Add(r.Compute.RAMGBHour.Mul(dec(c.RAMGB))).
			Mul(decInt(HoursPerMonth))

		f, err := rate(r.Compute.InstanceTypeFactors, c.InstanceType, "compute instanceType")
		if err != nil {
			return decimal.Decimal{}, err
		}
		base = base.Mul(f)

		if c.OperatingSystem == "windows" && !mods.byol {
			base = base.Mul(r.Compute.WindowsSurcharge)
		}

		term := mods.reservedTerm
		if term == "" {
			term = "none"
		}
		rf, err := rate(r.Compute.ReservedFactors, term, "reservation term")
		if err != nil {
			return decimal.Decimal{}, err
		}
		base = base.Mul(rf)

		total = total.Add(base)
	}

	if bv := c.BootVolume; bv.SizeGB > 0 {
		volRate, err := rate(r.Compute.BootVolumeTypes, bv.Type, "boot volume type")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(dec(bv.SizeGB).Mul(volRate))
		total = total.Add(decInt(bv.IOPS).Mul(r.Compute.BootVolumeIOPSMonth))
	}

	if s := c.Serverless; s.Functions > 0 {
		invocations := dec(s.Functions)
		total = total.Add(invocations.Mul(r.Compute.ServerlessRequestsPerMillion))
		total = total.Add(invocations.Mul(dec(s.ExecutionTime)).Mul(r.Compute.ServerlessComputePerMillionMinutes))
	}

	return total.Mul(mods.region), nil
}

// storageCost prices object, block and file storage. Storage rates are
// treated as already region-normalized; no region multiplier.
func storageCost(req *types.Requirements, r *pricing.ProviderRates, _ modifiers) (decimal.Decimal, error) {
	s := req.Storage
	total := decimal.Zero

	if s.Object.SizeGB > 0 {
		tierRate, err := rate(r.Storage.ObjectTiers, s.Object.Tier, "object storage tier")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(dec(s.Object.SizeGB).Mul(tierRate))
	}
	if s.Object.Requests > 0 {
		total = total.Add(dec(s.Object.Requests).Div(decInt(1000)).Mul(r.Storage.RequestsPer1K))
	}

	if s.Block.SizeGB > 0 {
		typeRate, err := rate(r.Storage.BlockTypes, s.Block.Type, "block storage type")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(dec(s.Block.SizeGB).Mul(typeRate))
		total = total.Add(decInt(s.Block.IOPS).Mul(r.Storage.IOPSMonth))
	}

	if s.File.SizeGB > 0 {
		modeRate, err := rate(r.Storage.FileModes, s.File.PerformanceMode, "file storage performance mode")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(dec(s.File.SizeGB).Mul(modeRate))
	}

	return total, nil
}

// databaseCost prices relational, NoSQL, cache and warehouse services,
// then applies the region multiplier.
func databaseCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	db := req.Database
	total := decimal.Zero

	if rel := db.Relational; rel.InstanceClass != "none" && rel.InstanceClass != "" {
		classRate, err := rate(r.Database.InstanceClasses, rel.InstanceClass, "relational instance class")
		if err != nil {
			return decimal.Decimal{}, err
		}
		engineFactor, err := rate(r.Database.EngineFactors, rel.Engine, "relational engine")
		if err != nil {
			return decimal.Decimal{}, err
		}
		instance := classRate.Mul(engineFactor)
		if rel.MultiAZ {
			instance = instance.Mul(decInt(2))
		}
		total = total.Add(instance)
	}
	if db.Relational.StorageGB > 0 {
		total = total.Add(dec(db.Relational.StorageGB).Mul(r.Database.StorageGBMonth))
	}

	if nosql := db.NoSQL; nosql.Engine != "none" && nosql.Engine != "" {
		provisioned, ok := r.Database.NoSQLEngines[nosql.Engine]
		if !ok {
			return decimal.Decimal{}, errors.Pricingf("unknown nosql engine %q: no pricing entry", nosql.Engine)
		}
		if provisioned {
			total = total.Add(decInt(nosql.ReadCapacity).Mul(r.Database.ReadCapacityUnitMonth))
			total = total.Add(decInt(nosql.WriteCapacity).Mul(r.Database.WriteCapacityUnitMonth))
		} else {
			total = total.Add(r.Database.NoSQLFlatTier)
		}
		total = total.Add(dec(nosql.StorageGB).Mul(r.Database.NoSQLStorageGBMonth))
	}

	if cache := db.Cache; cache.Nodes > 0 {
		nodeRate, err := rate(r.Database.CacheNodeTypes, cache.NodeType, "cache node type")
		if err != nil {
			return decimal.Decimal{}, err
		}
		engineFactor, err := rate(r.Database.CacheEngineFactors, cache.Engine, "cache engine")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(nodeRate.Mul(engineFactor).Mul(decInt(cache.Nodes)))
	}

	if wh := db.Warehouse; wh.Nodes > 0 {
		nodeRate, err := rate(r.Database.WarehouseNodeTypes, wh.NodeType, "warehouse node type")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(nodeRate.Mul(decInt(wh.Nodes)))
		total = total.Add(dec(wh.StorageGB).Mul(r.Database.WarehouseStorageGBMonth))
	}

	return total.Mul(mods.region), nil
}

// networkingCost prices bandwidth, load balancing and the conditional
// CDN/DNS/VPN services. Not region-multiplied.
func networkingCost(req *types.Requirements, r *pricing.ProviderRates, _ modifiers) (decimal.Decimal, error) {
	n := req.Networking
	total := decimal.Zero

	if n.BandwidthGB > 0 {
		total = total.Add(dec(n.BandwidthGB).Mul(r.Networking.BandwidthGB))
	}

	if n.LoadBalancer != "none" && n.LoadBalancer != "" {
		lbRate, err := rate(r.Networking.LoadBalancers, n.LoadBalancer, "load balancer type")
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(lbRate)
	}

	if n.CDN.Enabled {
		total = total.Add(dec(n.CDN.Requests).Div(decInt(10000)).Mul(r.Networking.CDNRequestsPer10K))
		total = total.Add(dec(n.CDN.TransferGB).Mul(r.Networking.CDNTransferGB))
	}

	if n.DNS.Zones > 0 {
		total = total.Add(decInt(n.DNS.Zones).Mul(r.Networking.DNSZoneMonth))
		total = total.Add(dec(n.DNS.Queries).Div(decInt(1000000)).Mul(r.Networking.DNSQueriesPerMillion))
	}

	if n.VPN.Connections > 0 {
		total = total.Add(decInt(n.VPN.Connections).Mul(decInt(HoursPerMonth)).Mul(r.Networking.VPNConnectionHour))
	}

	return total, nil
}

func analyticsCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	a := req.Analytics
	total := dec(a.DataProcessingGB).Mul(r.Analytics.ProcessingGB).
		Add(dec(a.StreamingGB).Mul(r.Analytics.StreamingGB)).
		Add(dec(a.Queries).Div(decInt(1000000)).Mul(r.Analytics.QueriesPerMillion))
	return total.Mul(mods.region), nil
}

func aiCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	ai := req.AI
	total := dec(ai.TrainingHours).Mul(r.AI.TrainingHour).
		Add(dec(ai.InferenceRequests).Mul(r.AI.InferencePerMillion)).
		Add(dec(ai.StorageGB).Mul(r.AI.StorageGBMonth))
	return total.Mul(mods.region), nil
}

func securityCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	s := req.Security
	total := decimal.Zero
	if s.WebFirewall {
		total = total.Add(r.Security.WebFirewallMonth)
	}
	if s.DDoSProtection {
		total = total.Add(r.Security.DDoSMonth)
	}
	total = total.Add(decInt(s.Secrets).Mul(r.Security.SecretMonth))
	total = total.Add(decInt(s.Certificates).Mul(r.Security.CertificateMonth))
	if s.ComplianceMonitoring {
		total = total.Add(r.Security.ComplianceMonth)
	}
	return total.Mul(mods.region), nil
}

func monitoringCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	m := req.Monitoring
	total := decInt(m.Metrics).Mul(r.Monitoring.MetricMonth).
		Add(dec(m.LogsGB).Mul(r.Monitoring.LogsGB)).
		Add(dec(m.Traces).Mul(r.Monitoring.TracesPerMillion)).
		Add(decInt(m.Dashboards).Mul(r.Monitoring.DashboardMonth)).
		Add(decInt(m.Alerts).Mul(r.Monitoring.AlertMonth))
	return total.Mul(mods.region), nil
}

func devopsCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	dv := req.DevOps
	total := dec(dv.BuildMinutes).Mul(r.DevOps.BuildMinute).
		Add(decInt(dv.Pipelines).Mul(r.DevOps.PipelineMonth)).
		Add(dec(dv.ArtifactStorageGB).Mul(r.DevOps.ArtifactGBMonth)).
		Add(dec(dv.ContainerRegistryGB).Mul(r.DevOps.RegistryGBMonth))
	return total.Mul(mods.region), nil
}

// backupCost applies the frequency multiplier in place of the region
// multiplier, scaled by retention beyond the 30-day baseline.
func backupCost(req *types.Requirements, r *pricing.ProviderRates, _ modifiers) (decimal.Decimal, error) {
	b := req.Backup
	if b.StorageGB <= 0 {
		return decimal.Zero, nil
	}

	freq, err := rate(r.Backup.FrequencyFactors, b.Frequency, "backup frequency")
	if err != nil {
		return decimal.Decimal{}, err
	}

	retention := decInt(1)
	if b.RetentionDays > 30 {
		retention = decInt(b.RetentionDays).Div(decInt(30))
	}

	return dec(b.StorageGB).Mul(r.Backup.StorageGBMonth).Mul(freq).Mul(retention), nil
}

func iotCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	i := req.IoT
	total := decInt(i.Devices).Mul(r.IoT.DeviceMonth).
		Add(dec(i.Messages).Mul(r.IoT.MessagesPerMillion)).
		Add(dec(i.DataProcessingGB).Mul(r.IoT.ProcessingGB))
	return total.Mul(mods.region), nil
}

func mediaCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	m := req.Media
	total := dec(m.StreamingHours).Mul(r.Media.StreamingHour).
		Add(dec(m.TranscodingMinutes).Mul(r.Media.TranscodingMinute)).
		Add(dec(m.StorageGB).Mul(r.Media.StorageGBMonth))
	return total.Mul(mods.region), nil
}

func quantumCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	q := req.Quantum
	total := dec(q.CircuitExecutions).Mul(r.Quantum.CircuitExecution).
		Add(dec(q.QPUMinutes).Mul(r.Quantum.QPUMinute))
	return total.Mul(mods.region), nil
}

func advancedAICost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	a := req.AdvancedAI
	total := dec(a.FineTuningHours).Mul(r.AdvancedAI.FineTuningHour).
		Add(dec(a.VectorStorageGB).Mul(r.AdvancedAI.VectorStorageGB)).
		Add(dec(a.Embeddings).Mul(r.AdvancedAI.EmbeddingsPerMillion))
	return total.Mul(mods.region), nil
}

func edgeCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	e := req.Edge
	total := decInt(e.Locations).Mul(r.Edge.LocationMonth).
		Add(dec(e.Requests).Mul(r.Edge.RequestsPerMillion))
	return total.Mul(mods.region), nil
}

func confidentialCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	c := req.Confidential
	total := dec(c.EnclaveHours).Mul(r.Confidential.EnclaveHour).
		Add(dec(c.Attestations).Mul(r.Confidential.Attestation))
	return total.Mul(mods.region), nil
}

func sustainabilityCost(req *types.Requirements, r *pricing.ProviderRates, mods modifiers) (decimal.Decimal, error) {
	s := req.Sustainability
	total := decimal.Zero
	if s.CarbonReporting {
		total = total.Add(r.Sustainability.CarbonReportingMonth)
	}
	if s.RenewableMatching {
		total = total.Add(r.Sustainability.RenewableMatchingMonth)
	}
	return total.Mul(mods.region), nil
}
