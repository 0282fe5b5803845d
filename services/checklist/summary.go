package checklist

import (
	"context"
	"fmt"

	"cabinkeep/models"
)

// RestockSummary answers "what supplies are needed right now, and where".
// Aggregated sums each supply field across all pending records; PerCabin
// breaks the same quantities down by cabin. Pendings carries the full pending
// records so clients can cross-reference without a second call.
type RestockSummary struct {
	Aggregated map[string]int           `json:"aggregated"`
	PerCabin   map[int]map[string]int   `json:"perCabin"`
	Pendings   []models.ChecklistRecord `json:"pendings"`
}

// ComputeRestockSummary scans every pending record once. Only positive
// quantities appear in the output; a field that is zero everywhere is omitted
// entirely rather than reported as zero. Since at most one record per cabin
// is pending, each cabin's slot holds that record's values.
func (s *DefaultChecklistService) ComputeRestockSummary(ctx context.Context) (*RestockSummary, error) {
	pendings, err := s.Repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending checklists: %w", err)
	}

	summary := &RestockSummary{
		Aggregated: make(map[string]int),
		PerCabin:   make(map[int]map[string]int),
		Pendings:   pendings,
	}

	for i := range pendings {
		rec := &pendings[i]
		models.EachQuantity(rec, func(name string, value int) {
			if value <= 0 {
				return
			}
			summary.Aggregated[name] += value
			cabin := summary.PerCabin[rec.CabinNumber]
			if cabin == nil {
				cabin = make(map[string]int)
				summary.PerCabin[rec.CabinNumber] = cabin
			}
			cabin[name] = value
		})
	}

	return summary, nil
}
