// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Provider represents a cloud provider
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderAzure   Provider = "azure"
	ProviderGCP     Provider = "gcp"
	ProviderOCI     Provider = "oci"
	ProviderUnknown Provider = "unknown"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is a known provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP, ProviderOCI:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable provider name
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderAzure:
		return "Azure"
	case ProviderGCP:
		return "GCP"
	case ProviderOCI:
		return "Oracle Cloud"
	default:
		return "Unknown"
	}
}

// AllProviders returns the providers compared by the engine, in canonical order
func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGCP, ProviderOCI}
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Category is one billable service dimension with its own rate structure
type Category string

const (
	CategoryCompute        Category = "compute"
	CategoryStorage        Category = "storage"
	CategoryDatabase       Category = "database"
	CategoryNetworking     Category = "networking"
	CategoryAnalytics      Category = "analytics"
	CategoryAI             Category = "ai"
	CategorySecurity       Category = "security"
	CategoryMonitoring     Category = "monitoring"
	CategoryDevOps         Category = "devops"
	CategoryBackup         Category = "backup"
	CategoryIoT            Category = "iot"
	CategoryMedia          Category = "media"
	CategoryQuantum        Category = "quantum"
	CategoryAdvancedAI     Category = "advancedAI"
	CategoryEdge           Category = "edge"
	CategoryConfidential   Category = "confidential"
	CategorySustainability Category = "sustainability"
)

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// AllCategories returns every billable category in canonical order.
// Result breakdowns and pricing tables cover exactly this set.
func AllCategories() []Category {
	return []Category{
		CategoryCompute,
		CategoryStorage,
		CategoryDatabase,
		CategoryNetworking,
		CategoryAnalytics,
		CategoryAI,
		CategorySecurity,
		CategoryMonitoring,
		CategoryDevOps,
		CategoryBackup,
		CategoryIoT,
		CategoryMedia,
		CategoryQuantum,
		CategoryAdvancedAI,
		CategoryEdge,
		CategoryConfidential,
		CategorySustainability,
	}
}

// BlendCategories returns the categories considered by the multi-cloud blend
func BlendCategories() []Category {
	return []Category{
		CategoryCompute,
		CategoryStorage,
		CategoryDatabase,
		CategoryNetworking,
	}
}
