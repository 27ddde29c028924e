package pricing

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

func d(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Default returns the built-in pricing table. Rates are monthly USD
// unless the field name says otherwise, derived from published
// on-demand list prices and rounded for comparability. This table is
// the versioned reference dataset; operators can replace it wholesale
// with Load.
func Default() *Table {
	return &Table{
		Version: "2025-08",
		Providers: map[types.Provider]*ProviderRates{
			types.ProviderAWS:   awsRates(),
			types.ProviderAzure: azureRates(),
			types.ProviderGCP:   gcpRates(),
			types.ProviderOCI:   ociRates(),
		},
		RegionMultipliers: map[string]decimal.Decimal{
			"us-east-1":      d(1.00),
			"us-west-2":      d(1.02),
			"ca-central-1":   d(1.04),
			"eu-west-1":      d(1.08),
			"eu-central-1":   d(1.10),
			"uk-south-1":     d(1.09),
			"ap-southeast-1": d(1.12),
			"ap-northeast-1": d(1.15),
			"ap-south-1":     d(1.06),
			"sa-east-1":      d(1.25),
			"me-south-1":     d(1.18),
			"af-south-1":     d(1.22),
		},
	}
}

func awsRates() *ProviderRates {
	return &ProviderRates{
		Compute: ComputeRates{
			VCPUHour:  d(0.0425),
			RAMGBHour: d(0.0057),
			InstanceTypeFactors: map[string]decimal.Decimal{
				"general-purpose":   d(1.00),
				"compute-optimized": d(1.12),
				"memory-optimized":  d(1.24),
				"burstable":         d(0.82),
				"gpu":               d(3.50),
			},
			WindowsSurcharge: d(1.35),
			ReservedFactors: map[string]decimal.Decimal{
				"none": d(1.00),
				"1yr":  d(0.62),
				"3yr":  d(0.45),
			},
			BootVolumeTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.080),
				"ssd-io":  d(0.125),
				"hdd":     d(0.045),
			},
			BootVolumeIOPSMonth:                d(0.005),
			ServerlessRequestsPerMillion:       d(0.20),
			ServerlessComputePerMillionMinutes: d(1.00),
		},
		Storage: StorageRates{
			ObjectTiers: map[string]decimal.Decimal{
				"standard":   d(0.023),
				"infrequent": d(0.0125),
				"archive":    d(0.004),
			},
			RequestsPer1K: d(0.0004),
			BlockTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.080),
				"ssd-io":  d(0.125),
				"hdd":     d(0.045),
			},
			IOPSMonth: d(0.005),
			FileModes: map[string]decimal.Decimal{
				"general": d(0.30),
				"max-io":  d(0.36),
			},
		},
		Database: DatabaseRates{
			InstanceClasses: map[string]decimal.Decimal{
				"db.small":  d(24.82),
				"db.medium": d(49.64),
				"db.large":  d(99.28),
				"db.xlarge": d(198.56),
			},
			EngineFactors: map[string]decimal.Decimal{
				"mysql":     d(1.00),
				"postgres":  d(1.00),
				"mariadb":   d(1.00),
				"sqlserver": d(1.45),
				"oracle":    d(1.85),
			},
			StorageGBMonth: d(0.115),
			NoSQLEngines: map[string]bool{
				"keyvalue":    true,
				"document":    false,
				"wide-column": false,
			},
			ReadCapacityUnitMonth:  d(0.094),
			WriteCapacityUnitMonth: d(0.470),
			NoSQLStorageGBMonth:    d(0.25),
			NoSQLFlatTier:          d(25.00),
			CacheNodeTypes: map[string]decimal.Decimal{
				"cache.small":  d(24.48),
				"cache.medium": d(48.96),
				"cache.large":  d(97.92),
			},
			CacheEngineFactors: map[string]decimal.Decimal{
				"redis":     d(1.00),
				"memcached": d(0.92),
				"valkey":    d(0.80),
			},
			WarehouseNodeTypes: map[string]decimal.Decimal{
				"dc.large":  d(180.00),
				"dc.xlarge": d(360.00),
			},
			WarehouseStorageGBMonth: d(0.024),
		},
		Networking: NetworkingRates{
			BandwidthGB: d(0.090),
			LoadBalancers: map[string]decimal.Decimal{
				"application": d(22.27),
				"network":     d(16.43),
				"gateway":     d(36.00),
			},
			CDNRequestsPer10K:    d(0.0075),
			CDNTransferGB:        d(0.085),
			DNSZoneMonth:         d(0.50),
			DNSQueriesPerMillion: d(0.40),
			VPNConnectionHour:    d(0.05),
		},
		Analytics: AnalyticsRates{
			ProcessingGB:      d(0.020),
			StreamingGB:       d(0.011),
			QueriesPerMillion: d(5.00),
		},
		AI: AIRates{
			TrainingHour:        d(3.06),
			InferencePerMillion: d(0.60),
			StorageGBMonth:      d(0.023),
		},
		Security: SecurityRates{
			WebFirewallMonth: d(20.00),
			DDoSMonth:        d(3000.00),
			SecretMonth:      d(0.40),
			CertificateMonth: d(0.75),
			ComplianceMonth:  d(15.00),
		},
		Monitoring: MonitoringRates{
			MetricMonth:      d(0.30),
			LogsGB:           d(0.50),
			TracesPerMillion: d(5.00),
			DashboardMonth:   d(3.00),
			AlertMonth:       d(0.10),
		},
		DevOps: DevOpsRates{
			BuildMinute:     d(0.005),
			PipelineMonth:   d(1.00),
			ArtifactGBMonth: d(0.10),
			RegistryGBMonth: d(0.10),
		},
		Backup: BackupRates{
			StorageGBMonth: d(0.050),
			FrequencyFactors: map[string]decimal.Decimal{
				"hourly":  d(1.50),
				"daily":   d(1.00),
				"weekly":  d(0.60),
				"monthly": d(0.40),
			},
		},
		IoT: IoTRates{
			DeviceMonth:        d(0.080),
			MessagesPerMillion: d(1.00),
			ProcessingGB:       d(0.15),
		},
		Media: MediaRates{
			StreamingHour:     d(1.74),
			TranscodingMinute: d(0.015),
			StorageGBMonth:    d(0.023),
		},
		Quantum: QuantumRates{
			CircuitExecution: d(0.30),
			QPUMinute:        d(4.50),
		},
		AdvancedAI: AdvancedAIRates{
			FineTuningHour:       d(8.00),
			VectorStorageGB:      d(0.35),
			EmbeddingsPerMillion: d(0.10),
		},
		Edge: EdgeRates{
			LocationMonth:      d(150.00),
			RequestsPerMillion: d(0.60),
		},
		Confidential: ConfidentialRates{
			EnclaveHour: d(0.056),
			Attestation: d(0.001),
		},
		Sustainability: SustainabilityRates{
			CarbonReportingMonth:   d(10.00),
			RenewableMatchingMonth: d(25.00),
		},
	}
}

func azureRates() *ProviderRates {
	return &ProviderRates{
		Compute: ComputeRates{
			VCPUHour:  d(0.0442),
			RAMGBHour: d(0.0059),
			InstanceTypeFactors: map[string]decimal.Decimal{
				"general-purpose":   d(1.00),
				"compute-optimized": d(1.10),
				"memory-optimized":  d(1.26),
				"burstable":         d(0.79),
				"gpu":               d(3.40),
			},
			WindowsSurcharge: d(1.28),
			ReservedFactors: map[string]decimal.Decimal{
				"none": d(1.00),
				"1yr":  d(0.59),
				"3yr":  d(0.38),
			},
			BootVolumeTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.075),
				"ssd-io":  d(0.120),
				"hdd":     d(0.040),
			},
			BootVolumeIOPSMonth:                d(0.004),
			ServerlessRequestsPerMillion:       d(0.20),
			ServerlessComputePerMillionMinutes: d(0.96),
		},
		Storage: StorageRates{
			ObjectTiers: map[string]decimal.Decimal{
				"standard":   d(0.0184),
				"infrequent": d(0.010),
				"archive":    d(0.002),
			},
			RequestsPer1K: d(0.00044),
			BlockTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.075),
				"ssd-io":  d(0.120),
				"hdd":     d(0.040),
			},
			IOPSMonth: d(0.004),
			FileModes: map[string]decimal.Decimal{
				"general": d(0.255),
				"max-io":  d(0.306),
			},
		},
		Database: DatabaseRates{
			InstanceClasses: map[string]decimal.Decimal{
				"db.small":  d(25.55),
				"db.medium": d(51.10),
				"db.large":  d(102.20),
				"db.xlarge": d(204.40),
			},
			EngineFactors: map[string]decimal.Decimal{
				"mysql":     d(1.00),
				"postgres":  d(1.00),
				"mariadb":   d(1.00),
				"sqlserver": d(1.25),
				"oracle":    d(1.95),
			},
			StorageGBMonth: d(0.115),
			NoSQLEngines: map[string]bool{
				"keyvalue":    true,
				"document":    false,
				"wide-column": false,
			},
			ReadCapacityUnitMonth:  d(0.084),
			WriteCapacityUnitMonth: d(0.420),
			NoSQLStorageGBMonth:    d(0.25),
			NoSQLFlatTier:          d(23.36),
			CacheNodeTypes: map[string]decimal.Decimal{
				"cache.small":  d(26.28),
				"cache.medium": d(52.56),
				"cache.large":  d(105.12),
			},
			CacheEngineFactors: map[string]decimal.Decimal{
				"redis":     d(1.00),
				"memcached": d(0.95),
				"valkey":    d(0.85),
			},
			WarehouseNodeTypes: map[string]decimal.Decimal{
				"dc.large":  d(175.20),
				"dc.xlarge": d(350.40),
			},
			WarehouseStorageGBMonth: d(0.023),
		},
		Networking: NetworkingRates{
			BandwidthGB: d(0.087),
			LoadBalancers: map[string]decimal.Decimal{
				"application": d(23.25),
				"network":     d(18.25),
				"gateway":     d(33.00),
			},
			CDNRequestsPer10K:    d(0.0081),
			CDNTransferGB:        d(0.081),
			DNSZoneMonth:         d(0.50),
			DNSQueriesPerMillion: d(0.40),
			VPNConnectionHour:    d(0.049),
		},
		Analytics: AnalyticsRates{
			ProcessingGB:      d(0.022),
			StreamingGB:       d(0.011),
			QueriesPerMillion: d(5.00),
		},
		AI: AIRates{
			TrainingHour:        d(3.40),
			InferencePerMillion: d(0.55),
			StorageGBMonth:      d(0.0184),
		},
		Security: SecurityRates{
			WebFirewallMonth: d(21.17),
			DDoSMonth:        d(2944.00),
			SecretMonth:      d(0.36),
			CertificateMonth: d(0.70),
			ComplianceMonth:  d(15.00),
		},
		Monitoring: MonitoringRates{
			MetricMonth:      d(0.258),
			LogsGB:           d(0.615),
			TracesPerMillion: d(4.40),
			DashboardMonth:   d(2.90),
			AlertMonth:       d(0.10),
		},
		DevOps: DevOpsRates{
			BuildMinute:     d(0.008),
			PipelineMonth:   d(2.00),
			ArtifactGBMonth: d(0.092),
			RegistryGBMonth: d(0.096),
		},
		Backup: BackupRates{
			StorageGBMonth: d(0.0448),
			FrequencyFactors: map[string]decimal.Decimal{
				"hourly":  d(1.50),
				"daily":   d(1.00),
				"weekly":  d(0.60),
				"monthly": d(0.40),
			},
		},
		IoT: IoTRates{
			DeviceMonth:        d(0.084),
			MessagesPerMillion: d(1.00),
			ProcessingGB:       d(0.14),
		},
		Media: MediaRates{
			StreamingHour:     d(1.92),
			TranscodingMinute: d(0.017),
			StorageGBMonth:    d(0.0184),
		},
		Quantum: QuantumRates{
			CircuitExecution: d(0.25),
			QPUMinute:        d(5.00),
		},
		AdvancedAI: AdvancedAIRates{
			FineTuningHour:       d(7.40),
			VectorStorageGB:      d(0.33),
			EmbeddingsPerMillion: d(0.095),
		},
		Edge: EdgeRates{
			LocationMonth:      d(165.00),
			RequestsPerMillion: d(0.62),
		},
		Confidential: ConfidentialRates{
			EnclaveHour: d(0.048),
			Attestation: d(0.0009),
		},
		Sustainability: SustainabilityRates{
			CarbonReportingMonth:   d(8.00),
			RenewableMatchingMonth: d(22.00),
		},
	}
}

func gcpRates() *ProviderRates {
	return &ProviderRates{
		Compute: ComputeRates{
			VCPUHour:  d(0.0385),
			RAMGBHour: d(0.0052),
			InstanceTypeFactors: map[string]decimal.Decimal{
				"general-purpose":   d(1.00),
				"compute-optimized": d(1.18),
				"memory-optimized":  d(1.30),
				"burstable":         d(0.75),
				"gpu":               d(3.20),
			},
			WindowsSurcharge: d(1.40),
			ReservedFactors: map[string]decimal.Decimal{
				"none": d(1.00),
				"1yr":  d(0.63),
				"3yr":  d(0.44),
			},
			BootVolumeTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.085),
				"ssd-io":  d(0.130),
				"hdd":     d(0.040),
			},
			BootVolumeIOPSMonth:                d(0.0),
			ServerlessRequestsPerMillion:       d(0.40),
			ServerlessComputePerMillionMinutes: d(0.90),
		},
		Storage: StorageRates{
			ObjectTiers: map[string]decimal.Decimal{
				"standard":   d(0.020),
				"infrequent": d(0.010),
				"archive":    d(0.0012),
			},
			RequestsPer1K: d(0.0005),
			BlockTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.085),
				"ssd-io":  d(0.130),
				"hdd":     d(0.040),
			},
			IOPSMonth: d(0.0),
			FileModes: map[string]decimal.Decimal{
				"general": d(0.20),
				"max-io":  d(0.30),
			},
		},
		Database: DatabaseRates{
			InstanceClasses: map[string]decimal.Decimal{
				"db.small":  d(25.76),
				"db.medium": d(51.52),
				"db.large":  d(103.04),
				"db.xlarge": d(206.08),
			},
			EngineFactors: map[string]decimal.Decimal{
				"mysql":     d(1.00),
				"postgres":  d(1.00),
				"mariadb":   d(1.05),
				"sqlserver": d(1.50),
				"oracle":    d(2.10),
			},
			StorageGBMonth: d(0.170),
			NoSQLEngines: map[string]bool{
				"keyvalue":    true,
				"document":    false,
				"wide-column": false,
			},
			ReadCapacityUnitMonth:  d(0.078),
			WriteCapacityUnitMonth: d(0.390),
			NoSQLStorageGBMonth:    d(0.18),
			NoSQLFlatTier:          d(21.90),
			CacheNodeTypes: map[string]decimal.Decimal{
				"cache.small":  d(25.33),
				"cache.medium": d(50.66),
				"cache.large":  d(101.32),
			},
			CacheEngineFactors: map[string]decimal.Decimal{
				"redis":     d(1.00),
				"memcached": d(0.90),
				"valkey":    d(0.82),
			},
			WarehouseNodeTypes: map[string]decimal.Decimal{
				"dc.large":  d(160.00),
				"dc.xlarge": d(320.00),
			},
			WarehouseStorageGBMonth: d(0.020),
		},
		Networking: NetworkingRates{
			BandwidthGB: d(0.120),
			LoadBalancers: map[string]decimal.Decimal{
				"application": d(18.26),
				"network":     d(18.26),
				"gateway":     d(29.20),
			},
			CDNRequestsPer10K:    d(0.0075),
			CDNTransferGB:        d(0.080),
			DNSZoneMonth:         d(0.20),
			DNSQueriesPerMillion: d(0.40),
			VPNConnectionHour:    d(0.05),
		},
		Analytics: AnalyticsRates{
			ProcessingGB:      d(0.021),
			StreamingGB:       d(0.011),
			QueriesPerMillion: d(5.00),
		},
		AI: AIRates{
			TrainingHour:        d(2.95),
			InferencePerMillion: d(0.50),
			StorageGBMonth:      d(0.020),
		},
		Security: SecurityRates{
			WebFirewallMonth: d(18.00),
			DDoSMonth:        d(3000.00),
			SecretMonth:      d(0.36),
			CertificateMonth: d(0.75),
			ComplianceMonth:  d(14.00),
		},
		Monitoring: MonitoringRates{
			MetricMonth:      d(0.258),
			LogsGB:           d(0.50),
			TracesPerMillion: d(4.00),
			DashboardMonth:   d(0.00),
			AlertMonth:       d(0.10),
		},
		DevOps: DevOpsRates{
			BuildMinute:     d(0.003),
			PipelineMonth:   d(1.00),
			ArtifactGBMonth: d(0.10),
			RegistryGBMonth: d(0.10),
		},
		Backup: BackupRates{
			StorageGBMonth: d(0.040),
			FrequencyFactors: map[string]decimal.Decimal{
				"hourly":  d(1.50),
				"daily":   d(1.00),
				"weekly":  d(0.60),
				"monthly": d(0.40),
			},
		},
		IoT: IoTRates{
			DeviceMonth:        d(0.070),
			MessagesPerMillion: d(0.90),
			ProcessingGB:       d(0.13),
		},
		Media: MediaRates{
			StreamingHour:     d(1.60),
			TranscodingMinute: d(0.014),
			StorageGBMonth:    d(0.020),
		},
		Quantum: QuantumRates{
			CircuitExecution: d(0.35),
			QPUMinute:        d(6.00),
		},
		AdvancedAI: AdvancedAIRates{
			FineTuningHour:       d(6.80),
			VectorStorageGB:      d(0.30),
			EmbeddingsPerMillion: d(0.08),
		},
		Edge: EdgeRates{
			LocationMonth:      d(140.00),
			RequestsPerMillion: d(0.55),
		},
		Confidential: ConfidentialRates{
			EnclaveHour: d(0.050),
			Attestation: d(0.0008),
		},
		Sustainability: SustainabilityRates{
			CarbonReportingMonth:   d(0.00),
			RenewableMatchingMonth: d(18.00),
		},
	}
}

func ociRates() *ProviderRates {
	return &ProviderRates{
		Compute: ComputeRates{
			VCPUHour:  d(0.0306),
			RAMGBHour: d(0.0041),
			InstanceTypeFactors: map[string]decimal.Decimal{
				"general-purpose":   d(1.00),
				"compute-optimized": d(1.08),
				"memory-optimized":  d(1.20),
				"burstable":         d(0.70),
				"gpu":               d(3.10),
			},
			WindowsSurcharge: d(1.30),
			ReservedFactors: map[string]decimal.Decimal{
				"none": d(1.00),
				"1yr":  d(0.67),
				"3yr":  d(0.52),
			},
			BootVolumeTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.0425),
				"ssd-io":  d(0.0595),
				"hdd":     d(0.0255),
			},
			BootVolumeIOPSMonth:                d(0.0017),
			ServerlessRequestsPerMillion:       d(0.30),
			ServerlessComputePerMillionMinutes: d(0.85),
		},
		Storage: StorageRates{
			ObjectTiers: map[string]decimal.Decimal{
				"standard":   d(0.0255),
				"infrequent": d(0.010),
				"archive":    d(0.0026),
			},
			RequestsPer1K: d(0.00034),
			BlockTypes: map[string]decimal.Decimal{
				"ssd-gp3": d(0.0425),
				"ssd-io":  d(0.0595),
				"hdd":     d(0.0255),
			},
			IOPSMonth: d(0.0017),
			FileModes: map[string]decimal.Decimal{
				"general": d(0.30),
				"max-io":  d(0.30),
			},
		},
		Database: DatabaseRates{
			InstanceClasses: map[string]decimal.Decimal{
				"db.small":  d(21.46),
				"db.medium": d(42.92),
				"db.large":  d(85.84),
				"db.xlarge": d(171.68),
			},
			EngineFactors: map[string]decimal.Decimal{
				"mysql":     d(1.00),
				"postgres":  d(1.05),
				"mariadb":   d(1.05),
				"sqlserver": d(1.55),
				"oracle":    d(1.00),
			},
			StorageGBMonth: d(0.0255),
			NoSQLEngines: map[string]bool{
				"keyvalue":    true,
				"document":    false,
				"wide-column": false,
			},
			ReadCapacityUnitMonth:  d(0.066),
			WriteCapacityUnitMonth: d(0.330),
			NoSQLStorageGBMonth:    d(0.0255),
			NoSQLFlatTier:          d(18.25),
			CacheNodeTypes: map[string]decimal.Decimal{
				"cache.small":  d(20.44),
				"cache.medium": d(40.88),
				"cache.large":  d(81.76),
			},
			CacheEngineFactors: map[string]decimal.Decimal{
				"redis":     d(1.00),
				"memcached": d(0.95),
				"valkey":    d(0.88),
			},
			WarehouseNodeTypes: map[string]decimal.Decimal{
				"dc.large":  d(144.00),
				"dc.xlarge": d(288.00),
			},
			WarehouseStorageGBMonth: d(0.0255),
		},
		Networking: NetworkingRates{
			BandwidthGB: d(0.0085),
			LoadBalancers: map[string]decimal.Decimal{
				"application": d(17.35),
				"network":     d(14.00),
				"gateway":     d(25.00),
			},
			CDNRequestsPer10K:    d(0.0068),
			CDNTransferGB:        d(0.050),
			DNSZoneMonth:         d(0.85),
			DNSQueriesPerMillion: d(0.60),
			VPNConnectionHour:    d(0.042),
		},
		Analytics: AnalyticsRates{
			ProcessingGB:      d(0.018),
			StreamingGB:       d(0.010),
			QueriesPerMillion: d(4.25),
		},
		AI: AIRates{
			TrainingHour:        d(2.40),
			InferencePerMillion: d(0.48),
			StorageGBMonth:      d(0.0255),
		},
		Security: SecurityRates{
			WebFirewallMonth: d(15.00),
			DDoSMonth:        d(0.00),
			SecretMonth:      d(0.30),
			CertificateMonth: d(0.00),
			ComplianceMonth:  d(12.00),
		},
		Monitoring: MonitoringRates{
			MetricMonth:      d(0.20),
			LogsGB:           d(0.30),
			TracesPerMillion: d(3.40),
			DashboardMonth:   d(0.00),
			AlertMonth:       d(0.085),
		},
		DevOps: DevOpsRates{
			BuildMinute:     d(0.004),
			PipelineMonth:   d(0.85),
			ArtifactGBMonth: d(0.085),
			RegistryGBMonth: d(0.085),
		},
		Backup: BackupRates{
			StorageGBMonth: d(0.0255),
			FrequencyFactors: map[string]decimal.Decimal{
				"hourly":  d(1.50),
				"daily":   d(1.00),
				"weekly":  d(0.60),
				"monthly": d(0.40),
			},
		},
		IoT: IoTRates{
			DeviceMonth:        d(0.068),
			MessagesPerMillion: d(0.85),
			ProcessingGB:       d(0.12),
		},
		Media: MediaRates{
			StreamingHour:     d(1.48),
			TranscodingMinute: d(0.013),
			StorageGBMonth:    d(0.0255),
		},
		Quantum: QuantumRates{
			CircuitExecution: d(0.40),
			QPUMinute:        d(6.50),
		},
		AdvancedAI: AdvancedAIRates{
			FineTuningHour:       d(6.20),
			VectorStorageGB:      d(0.28),
			EmbeddingsPerMillion: d(0.075),
		},
		Edge: EdgeRates{
			LocationMonth:      d(128.00),
			RequestsPerMillion: d(0.50),
		},
		Confidential: ConfidentialRates{
			EnclaveHour: d(0.044),
			Attestation: d(0.0008),
		},
		Sustainability: SustainabilityRates{
			CarbonReportingMonth:   d(9.00),
			RenewableMatchingMonth: d(21.00),
		},
	}
}
