package terraform

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

// State is the subset of the Terraform state file format the
// reconciler reads.
type State struct {
	Version          int             `json:"version"`
	TerraformVersion string          `json:"terraform_version"`
	Serial           int             `json:"serial"`
	Lineage          string          `json:"lineage"`
	Resources        []ResourceState `json:"resources"`
}

// ResourceState is one resource block in the state file
type ResourceState struct {
	Mode      string             `json:"mode"`
	Type      string             `json:"type"`
	Name      string             `json:"name"`
	Provider  string             `json:"provider"`
	Module    string             `json:"module,omitempty"`
	Instances []ResourceInstance `json:"instances"`
}

// ResourceInstance is one instance of a resource in the state file
type ResourceInstance struct {
	SchemaVersion int                    `json:"schema_version"`
	Attributes    map[string]interface{} `json:"attributes"`
	IndexKey      interface{}            `json:"index_key,omitempty"`
	Status        string                 `json:"status,omitempty"`
}

// ParseStateFile reads and decodes a Terraform state file
func ParseStateFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing("failed to read state file", err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, errors.Parsing("failed to parse state file", err)
	}

	return state, nil
}

// Records flattens the state into raw resource records, one per managed
// resource instance. Data sources are skipped; a malformed instance is
// logged and skipped without aborting the rest of the state.
func (s *State) Records() []types.RawRecord {
	var records []types.RawRecord

	for _, res := range s.Resources {
		if res.Mode == "data" {
			continue
		}

		for i, inst := range res.Instances {
			if inst.Attributes == nil {
				logging.Component(logging.StageTerraform).Warn("skipping state instance without attributes",
					zap.String("address", res.Type+"."+res.Name),
					zap.Int("index", i))
				continue
			}

			attrs := types.FromMap(inst.Attributes)

			name := res.Name
			if n := attrs.GetString("name"); n != "" {
				name = n
			}
			if len(res.Instances) > 1 {
				name = fmt.Sprintf("%s[%d]", name, i)
			}

			state := "declared"
			if inst.Status == "tainted" {
				state = "tainted"
			}

			records = append(records, types.RawRecord{
				ID:         attrs.GetString("id"),
				Name:       name,
				SourceType: res.Type,
				Region:     resolveRegion(attrs),
				State:      state,
				Attributes: attrs,
				Tags:       resolveTags(attrs),
			})
		}
	}

	return records
}

// resolveRegion tries the region spellings used across providers
func resolveRegion(attrs types.Attributes) string {
	for _, key := range []string{"region", "location", "availability_zone", "availability_domain", "zone"} {
		if v := attrs.GetString(key); v != "" {
			return v
		}
	}
	return ""
}

// resolveTags converts a tags attribute into string pairs
func resolveTags(attrs types.Attributes) map[string]string {
	raw, ok := attrs.Get("tags").(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}

	tags := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			tags[k] = s
		}
	}
	return tags
}

// ReconcileStateFile runs the full state pipeline: parse, flatten,
// normalize into unified resources.
func ReconcileStateFile(path string) ([]types.UnifiedResource, error) {
	state, err := ParseStateFile(path)
	if err != nil {
		return nil, err
	}
	return Reconcile(state.Records()), nil
}
