// Package clouds provides the shared scaffolding for per-provider
// resource normalizers. Each provider package holds a static mapping
// from its source type vocabulary to the unified model and registers
// itself with the inventory registry.
package clouds

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cloudcost/core/types"
	"cloudcost/internal/logging"
)

// ServiceMapping is one entry of a provider's static normalization
// table: source type identifier to normalized type and service labels.
type ServiceMapping struct {
	Type    string
	Service string
}

// Unknown is the fallback classification for unrecognized source types.
// Discovery is best-effort: an unrecognized resource is kept so counts
// stay accurate, with its cost contribution zeroed.
var Unknown = ServiceMapping{Type: "Unknown", Service: types.ServiceOther}

// NormalizeRecord builds one unified resource from one raw record.
// The second return value is false when the record is malformed beyond
// fallback classification; the caller drops it and continues.
func NormalizeRecord(provider types.Provider, rec types.RawRecord, mappings map[string]ServiceMapping, states map[string]string, details types.CostDetails) (types.UnifiedResource, bool) {
	if rec.ID == "" && rec.Name == "" && rec.SourceType == "" {
		logging.Component(logging.StageNormalizer).Warn("dropping malformed resource record",
			zap.String("provider", provider.String()))
		return types.UnifiedResource{}, false
	}

	mapping, ok := mappings[rec.SourceType]
	if !ok {
		logging.Component(logging.StageNormalizer).Warn("unrecognized source resource type, using fallback bucket",
			zap.String("provider", provider.String()),
			zap.String("source_type", rec.SourceType))
		mapping = Unknown
	}

	id := rec.ID
	if id == "" {
		id = fmt.Sprintf("%s-%s-%s", provider, slug(rec.SourceType), slug(rec.Name))
	}

	name := rec.Name
	if name == "" {
		name = id
	}

	var tags map[string]string
	if len(rec.Tags) > 0 {
		tags = make(map[string]string, len(rec.Tags))
		for k, v := range rec.Tags {
			tags[k] = v
		}
	}

	return types.UnifiedResource{
		ID:          id,
		Name:        name,
		Type:        mapping.Type,
		Service:     mapping.Service,
		Provider:    provider,
		Location:    rec.Region,
		State:       normalizeState(rec.State, states),
		Tags:        tags,
		CostDetails: details,
	}, true
}

// normalizeState maps a source lifecycle label into the unified
// vocabulary, falling back to a lowercased copy of the raw label.
func normalizeState(raw string, states map[string]string) string {
	if raw == "" {
		return "unknown"
	}
	if normalized, ok := states[raw]; ok {
		return normalized
	}
	return strings.ToLower(raw)
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(":", "-", "_", "-", " ", "-", "/", "-").Replace(s)
	if s == "" {
		return "resource"
	}
	return s
}
