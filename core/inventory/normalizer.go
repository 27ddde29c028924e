// Package inventory provides the unified resource model plumbing:
// provider normalizer registration, the unified inventory, and the
// aggregation of an inventory back into a requirements document.
package inventory

import (
	"fmt"
	"sync"

	"cloudcost/core/types"
)

// Normalizer maps provider-specific raw resource records into the
// unified resource model. Normalization is a single-pass, stateless
// transform: deterministic for the same input, best-effort per record.
type Normalizer interface {
	// Provider returns the cloud provider this normalizer handles
	Provider() types.Provider

	// Normalize converts raw records into unified resources. A record
	// with an unrecognized type is classified into a generic fallback
	// bucket and kept; a record malformed beyond fallback is logged
	// and dropped. Normalize never fails the whole batch.
	Normalize(records []types.RawRecord) []types.UnifiedResource
}

// Registry manages normalizer registration
type Registry struct {
	mu          sync.RWMutex
	normalizers map[types.Provider]Normalizer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		normalizers: make(map[types.Provider]Normalizer),
	}
}

// Register adds a normalizer to the registry
func (r *Registry) Register(n Normalizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.normalizers[n.Provider()]; exists {
		return fmt.Errorf("normalizer already registered: %s", n.Provider())
	}

	r.normalizers[n.Provider()] = n
	return nil
}

// Get returns the normalizer for a provider
func (r *Registry) Get(provider types.Provider) (Normalizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.normalizers[provider]
	return n, ok
}

// Providers returns the registered providers
func (r *Registry) Providers() []types.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]types.Provider, 0, len(r.normalizers))
	for p := range r.normalizers {
		providers = append(providers, p)
	}
	return providers
}

// defaultRegistry is the process-wide registry the cloud packages
// register into from their init functions.
var defaultRegistry = NewRegistry()

// Register adds a normalizer to the default registry
func Register(n Normalizer) {
	if err := defaultRegistry.Register(n); err != nil {
		panic(err)
	}
}

// Default returns the default registry
func Default() *Registry {
	return defaultRegistry
}

// Normalize runs the registered normalizer for a provider against a
// batch of raw records.
func Normalize(provider types.Provider, records []types.RawRecord) ([]types.UnifiedResource, error) {
	n, ok := defaultRegistry.Get(provider)
	if !ok {
		return nil, fmt.Errorf("no normalizer registered for provider %q", provider)
	}
	return n.Normalize(records), nil
}
