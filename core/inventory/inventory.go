package inventory

import (
	"time"

	"cloudcost/core/types"
)

// Summary holds counts grouped over the inventory's resources. Always
// a derived view: recomputed from Resources, never edited directly.
type Summary struct {
	Total      int                        `json:"total"`
	ByProvider map[types.Provider]int     `json:"by_provider"`
	ByService  map[string]int             `json:"by_service"`
	ByLocation map[string]int             `json:"by_location"`
}

// Inventory is the finalized, fully-collected list of unified resources
// from one scan, plus its derived summary.
type Inventory struct {
	Resources    []types.UnifiedResource `json:"resources"`
	Summary      Summary                 `json:"summary"`
	ScanDate     time.Time               `json:"scan_date"`
	ScanDuration time.Duration           `json:"scan_duration"`
}

// New builds an inventory and computes its summary
func New(resources []types.UnifiedResource, scanDate time.Time, duration time.Duration) *Inventory {
	inv := &Inventory{
		Resources:    resources,
		ScanDate:     scanDate,
		ScanDuration: duration,
	}
	inv.Summarize()
	return inv
}

// Summarize recomputes the summary from the resource list
func (inv *Inventory) Summarize() {
	s := Summary{
		Total:      len(inv.Resources),
		ByProvider: make(map[types.Provider]int),
		ByService:  make(map[string]int),
		ByLocation: make(map[string]int),
	}
	for _, r := range inv.Resources {
		s.ByProvider[r.Provider]++
		s.ByService[r.Service]++
		if r.Location != "" {
			s.ByLocation[r.Location]++
		}
	}
	inv.Summary = s
}
