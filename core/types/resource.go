package types

// RawRecord is one provider- or tool-specific resource record as produced
// by an upstream scan client or state-file parser, before normalization.
type RawRecord struct {
	// ID is the source identifier, when the source assigns one
	ID string `json:"id"`

	// Name is the source resource name
	Name string `json:"name"`

	// SourceType is the source-specific type identifier
	// (e.g. "ec2:instance", "compute_instance", "azurerm_managed_disk")
	SourceType string `json:"source_type"`

	// Region is the source region or zone label
	Region string `json:"region"`

	// State is the raw lifecycle state as reported by the source
	State string `json:"state"`

	// Attributes holds the remaining source fields
	Attributes Attributes `json:"attributes,omitempty"`

	// Tags are the source resource tags
	Tags map[string]string `json:"tags,omitempty"`
}

// CostDetails carries typed cost-relevant hints extracted during
// normalization. Zero values mean the source carried no signal.
type CostDetails struct {
	VCPUs        int     `json:"vcpus,omitempty"`
	MemoryGB     float64 `json:"memory_gb,omitempty"`
	StorageGB    float64 `json:"storage_gb,omitempty"`
	InstanceType string  `json:"instance_type,omitempty"`
}

// UnifiedResource is the canonical shape a discovered or declared cloud
// resource is normalized into. Never mutated after creation.
type UnifiedResource struct {
	// ID is opaque and unique within its provider
	ID string `json:"id"`

	// Name is the resource name
	Name string `json:"name"`

	// Type is the normalized type label (source vocabulary preserved)
	Type string `json:"type"`

	// Service is the normalized service category label
	// (e.g. "Compute", "Object Storage")
	Service string `json:"service"`

	// Provider is the owning cloud provider
	Provider Provider `json:"provider"`

	// Location is the region/zone string
	Location string `json:"location"`

	// State is the normalized lifecycle label
	// (e.g. running, stopped, available)
	State string `json:"state"`

	// Tags are string key/value pairs, unordered
	Tags map[string]string `json:"tags,omitempty"`

	// CostDetails holds typed cost-relevant hints
	CostDetails CostDetails `json:"cost_details,omitempty"`
}

// Normalized service labels shared by all provider normalizers.
// The aggregator matches against these by substring/equality.
const (
	ServiceCompute       = "Compute"
	ServiceServerless    = "Serverless"
	ServiceObjectStorage = "Object Storage"
	ServiceBlockStorage  = "Block Storage"
	ServiceFileStorage   = "File Storage"
	ServiceDatabase      = "Database"
	ServiceNoSQL         = "NoSQL Database"
	ServiceCache         = "Cache"
	ServiceWarehouse     = "Data Warehouse"
	ServiceLoadBalancer  = "Load Balancer"
	ServiceNetworking    = "Networking"
	ServiceCDN           = "CDN"
	ServiceDNS           = "DNS"
	ServiceOther         = "Other"
)
