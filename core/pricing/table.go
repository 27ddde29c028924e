// Package pricing holds the static pricing table the calculator walks.
// The table is data, not logic: provider -> category -> rate dimension.
// It is loaded once at process start and treated as immutable afterwards.
package pricing

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Table is the complete pricing table for all compared providers
type Table struct {
	// Version identifies the pricing dataset
	Version string `json:"version"`

	// Providers maps each provider to its rate tables
	Providers map[types.Provider]*ProviderRates `json:"providers"`

	// RegionMultipliers scales base rates per deployment region.
	// An empty requirements region means multiplier 1.0; a non-empty
	// region absent from this map is an input error.
	RegionMultipliers map[string]decimal.Decimal `json:"region_multipliers"`
}

// ProviderRates holds one provider's rates for every billable category
type ProviderRates struct {
	Compute        ComputeRates        `json:"compute"`
	Storage        StorageRates        `json:"storage"`
	Database       DatabaseRates       `json:"database"`
	Networking     NetworkingRates     `json:"networking"`
	Analytics      AnalyticsRates      `json:"analytics"`
	AI             AIRates             `json:"ai"`
	Security       SecurityRates       `json:"security"`
	Monitoring     MonitoringRates     `json:"monitoring"`
	DevOps         DevOpsRates         `json:"devops"`
	Backup         BackupRates         `json:"backup"`
	IoT            IoTRates            `json:"iot"`
	Media          MediaRates          `json:"media"`
	Quantum        QuantumRates        `json:"quantum"`
	AdvancedAI     AdvancedAIRates     `json:"advancedAI"`
	Edge           EdgeRates           `json:"edge"`
	Confidential   ConfidentialRates   `json:"confidential"`
	Sustainability SustainabilityRates `json:"sustainability"`
}

// ComputeRates prices instance, boot volume and serverless usage
type ComputeRates struct {
	// VCPUHour and RAMGBHour are hourly unit rates
	VCPUHour decimal.Decimal `json:"vcpu_hour"`
	RAMGBHour decimal.Decimal `json:"ram_gb_hour"`

	// InstanceTypeFactors scales the base rate per instance family
	InstanceTypeFactors map[string]decimal.Decimal `json:"instance_type_factors"`

	// WindowsSurcharge multiplies compute when operatingSystem=windows
	WindowsSurcharge decimal.Decimal `json:"windows_surcharge"`

	// ReservedFactors discounts compute per commitment term
	ReservedFactors map[string]decimal.Decimal `json:"reserved_factors"`

	// BootVolumeTypes is the per-GB-month rate per volume type
	BootVolumeTypes map[string]decimal.Decimal `json:"boot_volume_types"`

	// BootVolumeIOPSMonth is the per-provisioned-IOPS-month rate
	BootVolumeIOPSMonth decimal.Decimal `json:"boot_volume_iops_month"`

	// ServerlessRequestsPerMillion is the per-million-invocations rate
	ServerlessRequestsPerMillion decimal.Decimal `json:"serverless_requests_per_million"`

	// ServerlessComputePerMillionMinutes prices execution duration
	ServerlessComputePerMillionMinutes decimal.Decimal `json:"serverless_compute_per_million_minutes"`
}

// StorageRates prices object, block and file storage
type StorageRates struct {
	ObjectTiers     map[string]decimal.Decimal `json:"object_tiers"`
	RequestsPer1K   decimal.Decimal            `json:"requests_per_1k"`
	BlockTypes      map[string]decimal.Decimal `json:"block_types"`
	IOPSMonth       decimal.Decimal            `json:"iops_month"`
	FileModes       map[string]decimal.Decimal `json:"file_modes"`
}

// DatabaseRates prices relational, NoSQL, cache and warehouse services
type DatabaseRates struct {
	// InstanceClasses is the monthly rate per relational instance class
	InstanceClasses map[string]decimal.Decimal `json:"instance_classes"`

	// EngineFactors scales the instance rate per relational engine
	EngineFactors map[string]decimal.Decimal `json:"engine_factors"`

	// StorageGBMonth is the relational per-GB-month storage rate
	StorageGBMonth decimal.Decimal `json:"storage_gb_month"`

	// NoSQLEngines marks known engines; true means provisioned-capacity
	NoSQLEngines map[string]bool `json:"nosql_engines"`

	// ReadCapacityUnitMonth / WriteCapacityUnitMonth price provisioned units
	ReadCapacityUnitMonth  decimal.Decimal `json:"read_capacity_unit_month"`
	WriteCapacityUnitMonth decimal.Decimal `json:"write_capacity_unit_month"`

	// NoSQLStorageGBMonth is the NoSQL per-GB-month storage rate
	NoSQLStorageGBMonth decimal.Decimal `json:"nosql_storage_gb_month"`

	// NoSQLFlatTier is the monthly rate for non-provisioned engines
	NoSQLFlatTier decimal.Decimal `json:"nosql_flat_tier"`

	// CacheNodeTypes is the monthly rate per cache node type
	CacheNodeTypes map[string]decimal.Decimal `json:"cache_node_types"`

	// CacheEngineFactors scales the node rate per cache engine
	CacheEngineFactors map[string]decimal.Decimal `json:"cache_engine_factors"`

	// WarehouseNodeTypes is the monthly rate per warehouse node type
	WarehouseNodeTypes map[string]decimal.Decimal `json:"warehouse_node_types"`

	// WarehouseStorageGBMonth is the warehouse per-GB-month storage rate
	WarehouseStorageGBMonth decimal.Decimal `json:"warehouse_storage_gb_month"`
}

// NetworkingRates prices bandwidth, load balancing, CDN, DNS and VPN
type NetworkingRates struct {
	BandwidthGB          decimal.Decimal            `json:"bandwidth_gb"`
	LoadBalancers        map[string]decimal.Decimal `json:"load_balancers"`
	CDNRequestsPer10K    decimal.Decimal            `json:"cdn_requests_per_10k"`
	CDNTransferGB        decimal.Decimal            `json:"cdn_transfer_gb"`
	DNSZoneMonth         decimal.Decimal            `json:"dns_zone_month"`
	DNSQueriesPerMillion decimal.Decimal            `json:"dns_queries_per_million"`
	VPNConnectionHour    decimal.Decimal            `json:"vpn_connection_hour"`
}

// AnalyticsRates prices analytics workloads
type AnalyticsRates struct {
	ProcessingGB      decimal.Decimal `json:"processing_gb"`
	StreamingGB       decimal.Decimal `json:"streaming_gb"`
	QueriesPerMillion decimal.Decimal `json:"queries_per_million"`
}

// AIRates prices machine learning workloads
type AIRates struct {
	TrainingHour        decimal.Decimal `json:"training_hour"`
	InferencePerMillion decimal.Decimal `json:"inference_per_million"`
	StorageGBMonth      decimal.Decimal `json:"storage_gb_month"`
}

// SecurityRates prices security services
type SecurityRates struct {
	WebFirewallMonth   decimal.Decimal `json:"web_firewall_month"`
	DDoSMonth          decimal.Decimal `json:"ddos_month"`
	SecretMonth        decimal.Decimal `json:"secret_month"`
	CertificateMonth   decimal.Decimal `json:"certificate_month"`
	ComplianceMonth    decimal.Decimal `json:"compliance_month"`
}

// MonitoringRates prices observability services
type MonitoringRates struct {
	MetricMonth       decimal.Decimal `json:"metric_month"`
	LogsGB            decimal.Decimal `json:"logs_gb"`
	TracesPerMillion  decimal.Decimal `json:"traces_per_million"`
	DashboardMonth    decimal.Decimal `json:"dashboard_month"`
	AlertMonth        decimal.Decimal `json:"alert_month"`
}

// DevOpsRates prices CI/CD tooling
type DevOpsRates struct {
	BuildMinute       decimal.Decimal `json:"build_minute"`
	PipelineMonth     decimal.Decimal `json:"pipeline_month"`
	ArtifactGBMonth   decimal.Decimal `json:"artifact_gb_month"`
	RegistryGBMonth   decimal.Decimal `json:"registry_gb_month"`
}

// BackupRates prices backup storage. Frequency scales the rate instead
// of the region multiplier.
type BackupRates struct {
	StorageGBMonth   decimal.Decimal            `json:"storage_gb_month"`
	FrequencyFactors map[string]decimal.Decimal `json:"frequency_factors"`
}

// IoTRates prices IoT platform usage
type IoTRates struct {
	DeviceMonth        decimal.Decimal `json:"device_month"`
	MessagesPerMillion decimal.Decimal `json:"messages_per_million"`
	ProcessingGB       decimal.Decimal `json:"processing_gb"`
}

// MediaRates prices media processing
type MediaRates struct {
	StreamingHour     decimal.Decimal `json:"streaming_hour"`
	TranscodingMinute decimal.Decimal `json:"transcoding_minute"`
	StorageGBMonth    decimal.Decimal `json:"storage_gb_month"`
}

// QuantumRates prices quantum computing usage
type QuantumRates struct {
	CircuitExecution decimal.Decimal `json:"circuit_execution"`
	QPUMinute        decimal.Decimal `json:"qpu_minute"`
}

// AdvancedAIRates prices generative AI platform usage
type AdvancedAIRates struct {
	FineTuningHour      decimal.Decimal `json:"fine_tuning_hour"`
	VectorStorageGB     decimal.Decimal `json:"vector_storage_gb"`
	EmbeddingsPerMillion decimal.Decimal `json:"embeddings_per_million"`
}

// EdgeRates prices edge computing usage
type EdgeRates struct {
	LocationMonth      decimal.Decimal `json:"location_month"`
	RequestsPerMillion decimal.Decimal `json:"requests_per_million"`
}

// ConfidentialRates prices confidential computing usage
type ConfidentialRates struct {
	EnclaveHour decimal.Decimal `json:"enclave_hour"`
	Attestation decimal.Decimal `json:"attestation"`
}

// SustainabilityRates prices sustainability add-ons
type SustainabilityRates struct {
	CarbonReportingMonth   decimal.Decimal `json:"carbon_reporting_month"`
	RenewableMatchingMonth decimal.Decimal `json:"renewable_matching_month"`
}

// Rates returns the rate tables for one provider
func (t *Table) Rates(p types.Provider) (*ProviderRates, error) {
	rates, ok := t.Providers[p]
	if !ok || rates == nil {
		return nil, errors.Newf(errors.TypeConfig, "pricing table has no rates for provider %q", p)
	}
	return rates, nil
}

// RegionMultiplier resolves the multiplier for a requirements region.
// An empty region defaults to 1.0; an unknown non-empty region is an
// input error rather than a silent default.
func (t *Table) RegionMultiplier(region string) (decimal.Decimal, error) {
	if region == "" {
		return decimal.NewFromInt(1), nil
	}
	m, ok := t.RegionMultipliers[region]
	if !ok {
		return decimal.Decimal{}, errors.Inputf("unknown region %q: not present in the region multiplier table", region)
	}
	return m, nil
}

// Validate checks the table covers every compared provider
func (t *Table) Validate() error {
	for _, p := range types.AllProviders() {
		if _, ok := t.Providers[p]; !ok {
			return errors.Newf(errors.TypeConfig, "pricing table is missing provider %q", p)
		}
	}
	return nil
}

// Load reads a pricing table from a JSON file. The file fully replaces
// the built-in table; a missing or malformed file is a fatal
// configuration error because the calculator cannot be constructed
// without pricing.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read pricing table", err)
	}

	table := &Table{}
	if err := json.Unmarshal(data, table); err != nil {
		return nil, errors.Config("failed to parse pricing table", err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}
