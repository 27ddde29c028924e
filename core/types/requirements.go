package types

// Requirements is the canonical, provider-agnostic infrastructure
// requirements document. Every field is always present; unused quantities
// are zero and unused enums are "none" or empty. A document is constructed
// once per calculation request, either directly from a client or
// synthesized from a unified inventory, and is immutable during
// calculation.
//
// JSON tags follow the document's canonical camelCase wire shape.
type Requirements struct {
	Compute        ComputeRequirements        `json:"compute"`
	Storage        StorageRequirements        `json:"storage"`
	Database       DatabaseRequirements       `json:"database"`
	Networking     NetworkingRequirements     `json:"networking"`
	Analytics      AnalyticsRequirements      `json:"analytics"`
	AI             AIRequirements             `json:"ai"`
	Security       SecurityRequirements       `json:"security"`
	Monitoring     MonitoringRequirements     `json:"monitoring"`
	DevOps         DevOpsRequirements         `json:"devops"`
	Backup         BackupRequirements         `json:"backup"`
	IoT            IoTRequirements            `json:"iot"`
	Media          MediaRequirements          `json:"media"`
	Quantum        QuantumRequirements        `json:"quantum"`
	AdvancedAI     AdvancedAIRequirements     `json:"advancedAI"`
	Edge           EdgeRequirements           `json:"edge"`
	Confidential   ConfidentialRequirements   `json:"confidential"`
	Sustainability SustainabilityRequirements `json:"sustainability"`
	Optimization   OptimizationRequirements   `json:"optimization"`
	Licensing      LicensingRequirements      `json:"licensing"`
	Scenarios      ScenarioRequirements       `json:"scenarios"`
}

// ComputeRequirements describes compute capacity needs
type ComputeRequirements struct {
	VCPUs           int                    `json:"vcpus"`
	RAMGB           float64                `json:"ram"`
	InstanceType    string                 `json:"instanceType"`
	Region          string                 `json:"region"`
	OperatingSystem string                 `json:"operatingSystem"`
	BootVolume      BootVolumeRequirements `json:"bootVolume"`
	Serverless      ServerlessRequirements `json:"serverless"`
}

// BootVolumeRequirements describes the instance boot volume
type BootVolumeRequirements struct {
	SizeGB float64 `json:"size"`
	Type   string  `json:"type"`
	IOPS   int     `json:"iops"`
}

// ServerlessRequirements describes function-as-a-service usage.
// Functions is monthly invocations in millions; ExecutionTime is the
// average execution duration in minutes.
type ServerlessRequirements struct {
	Functions     float64 `json:"functions"`
	ExecutionTime float64 `json:"executionTime"`
}

// StorageRequirements describes storage capacity needs
type StorageRequirements struct {
	Object ObjectStorageRequirements `json:"objectStorage"`
	Block  BlockStorageRequirements  `json:"blockStorage"`
	File   FileStorageRequirements   `json:"fileStorage"`
}

// ObjectStorageRequirements describes object storage usage
type ObjectStorageRequirements struct {
	SizeGB   float64 `json:"size"`
	Tier     string  `json:"tier"`
	Requests float64 `json:"requests"`
}

// BlockStorageRequirements describes block storage usage
type BlockStorageRequirements struct {
	SizeGB float64 `json:"size"`
	Type   string  `json:"type"`
	IOPS   int     `json:"iops"`
}

// FileStorageRequirements describes file storage usage
type FileStorageRequirements struct {
	SizeGB          float64 `json:"size"`
	PerformanceMode string  `json:"performanceMode"`
}

// DatabaseRequirements describes database needs
type DatabaseRequirements struct {
	Relational RelationalRequirements `json:"relational"`
	NoSQL      NoSQLRequirements      `json:"nosql"`
	Cache      CacheRequirements      `json:"cache"`
	Warehouse  WarehouseRequirements  `json:"warehouse"`
}

// RelationalRequirements describes a managed relational database
type RelationalRequirements struct {
	Engine        string  `json:"engine"`
	InstanceClass string  `json:"instanceClass"`
	StorageGB     float64 `json:"storage"`
	MultiAZ       bool    `json:"multiAZ"`
}

// NoSQLRequirements describes a managed NoSQL database.
// Read/write capacity units apply only to provisioned-capacity engines;
// other engines bill a flat small-tier rate.
type NoSQLRequirements struct {
	Engine        string  `json:"engine"`
	ReadCapacity  int     `json:"readCapacity"`
	WriteCapacity int     `json:"writeCapacity"`
	StorageGB     float64 `json:"storage"`
}

// CacheRequirements describes a managed cache cluster
type CacheRequirements struct {
	Engine   string `json:"engine"`
	NodeType string `json:"nodeType"`
	Nodes    int    `json:"nodes"`
}

// WarehouseRequirements describes a data warehouse cluster
type WarehouseRequirements struct {
	NodeType  string  `json:"nodeType"`
	Nodes     int     `json:"nodes"`
	StorageGB float64 `json:"storage"`
}

// NetworkingRequirements describes networking needs
type NetworkingRequirements struct {
	BandwidthGB  float64          `json:"bandwidth"`
	LoadBalancer string           `json:"loadBalancer"`
	CDN          CDNRequirements  `json:"cdn"`
	DNS          DNSRequirements  `json:"dns"`
	VPN          VPNRequirements  `json:"vpn"`
}

// CDNRequirements describes content delivery usage
type CDNRequirements struct {
	Enabled    bool    `json:"enabled"`
	Requests   float64 `json:"requests"`
	TransferGB float64 `json:"transfer"`
}

// DNSRequirements describes managed DNS usage
type DNSRequirements struct {
	Zones   int     `json:"zones"`
	Queries float64 `json:"queries"`
}

// VPNRequirements describes site-to-site VPN usage
type VPNRequirements struct {
	Connections int `json:"connections"`
}

// AnalyticsRequirements describes analytics workload needs
type AnalyticsRequirements struct {
	DataProcessingGB float64 `json:"dataProcessing"`
	StreamingGB      float64 `json:"streaming"`
	Queries          float64 `json:"queries"`
}

// AIRequirements describes machine learning workload needs.
// InferenceRequests is monthly requests in millions.
type AIRequirements struct {
	TrainingHours     float64 `json:"trainingHours"`
	InferenceRequests float64 `json:"inferenceRequests"`
	StorageGB         float64 `json:"storage"`
}

// SecurityRequirements describes security service needs
type SecurityRequirements struct {
	WebFirewall          bool `json:"webFirewall"`
	DDoSProtection       bool `json:"ddosProtection"`
	Secrets              int  `json:"secrets"`
	Certificates         int  `json:"certificates"`
	ComplianceMonitoring bool `json:"complianceMonitoring"`
}

// MonitoringRequirements describes observability needs
type MonitoringRequirements struct {
	Metrics    int     `json:"metrics"`
	LogsGB     float64 `json:"logs"`
	Traces     float64 `json:"traces"`
	Dashboards int     `json:"dashboards"`
	Alerts     int     `json:"alerts"`
}

// DevOpsRequirements describes CI/CD tooling needs
type DevOpsRequirements struct {
	BuildMinutes        float64 `json:"buildMinutes"`
	Pipelines           int     `json:"pipelines"`
	ArtifactStorageGB   float64 `json:"artifactStorage"`
	ContainerRegistryGB float64 `json:"containerRegistry"`
}

// BackupRequirements describes backup needs
type BackupRequirements struct {
	StorageGB     float64 `json:"storage"`
	Frequency     string  `json:"frequency"`
	RetentionDays int     `json:"retentionDays"`
}

// IoTRequirements describes IoT platform needs.
// Messages is monthly device messages in millions.
type IoTRequirements struct {
	Devices          int     `json:"devices"`
	Messages         float64 `json:"messages"`
	DataProcessingGB float64 `json:"dataProcessing"`
}

// MediaRequirements describes media processing needs
type MediaRequirements struct {
	StreamingHours     float64 `json:"streamingHours"`
	TranscodingMinutes float64 `json:"transcodingMinutes"`
	StorageGB          float64 `json:"storage"`
}

// QuantumRequirements describes quantum computing usage
type QuantumRequirements struct {
	CircuitExecutions float64 `json:"circuitExecutions"`
	QPUMinutes        float64 `json:"qpuMinutes"`
}

// AdvancedAIRequirements describes generative AI platform usage.
// Embeddings is monthly embedding calls in millions.
type AdvancedAIRequirements struct {
	FineTuningHours float64 `json:"fineTuningHours"`
	VectorStorageGB float64 `json:"vectorStorage"`
	Embeddings      float64 `json:"embeddings"`
}

// EdgeRequirements describes edge computing usage.
// Requests is monthly edge requests in millions.
type EdgeRequirements struct {
	Locations int     `json:"locations"`
	Requests  float64 `json:"requests"`
}

// ConfidentialRequirements describes confidential computing usage
type ConfidentialRequirements struct {
	EnclaveHours float64 `json:"enclaveHours"`
	Attestations float64 `json:"attestations"`
}

// SustainabilityRequirements describes sustainability add-ons
type SustainabilityRequirements struct {
	CarbonReporting   bool `json:"carbonReporting"`
	RenewableMatching bool `json:"renewableMatching"`
}

// OptimizationRequirements captures purchase-commitment preferences
// applied as multiplicative modifiers, not billed as a category.
type OptimizationRequirements struct {
	// ReservedInstances is the commitment term: none, 1yr or 3yr
	ReservedInstances string `json:"reservedInstances"`
}

// LicensingRequirements captures license preferences applied as modifiers
type LicensingRequirements struct {
	// BYOL suppresses the provider's OS licensing surcharge
	BYOL bool `json:"byol"`
}

// ScenarioRequirements captures what-if inputs. These shape projections
// in presentation layers and never contribute to the monthly cost.
type ScenarioRequirements struct {
	GrowthPercent float64 `json:"growthPercent"`
}

// DefaultRequirements returns the fully-defaulted all-zero document.
// Callers fill in only the quantities they need; every other field is
// already at its zero/"none" value, so the calculator never null-checks.
func DefaultRequirements() *Requirements {
	return &Requirements{
		Compute: ComputeRequirements{
			OperatingSystem: "linux",
			BootVolume:      BootVolumeRequirements{Type: "none"},
		},
		Storage: StorageRequirements{
			Object: ObjectStorageRequirements{Tier: "none"},
			Block:  BlockStorageRequirements{Type: "none"},
			File:   FileStorageRequirements{PerformanceMode: "none"},
		},
		Database: DatabaseRequirements{
			Relational: RelationalRequirements{Engine: "none", InstanceClass: "none"},
			NoSQL:      NoSQLRequirements{Engine: "none"},
			Cache:      CacheRequirements{Engine: "none", NodeType: "none"},
			Warehouse:  WarehouseRequirements{NodeType: "none"},
		},
		Networking: NetworkingRequirements{
			LoadBalancer: "none",
		},
		Backup: BackupRequirements{
			Frequency: "daily",
		},
		Optimization: OptimizationRequirements{
			ReservedInstances: "none",
		},
	}
}
