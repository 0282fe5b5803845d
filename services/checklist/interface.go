package checklist

import (
	"context"
	"sync"

	checklistRepo "cabinkeep/database/repository/checklist"
	"cabinkeep/models"
)

// ChecklistService owns the cleaning-pass records and the open-record-per-cabin
// convention. Lookup methods return (nil, nil) on a miss; only store failures
// surface as errors.
type ChecklistService interface {
	ListChecklists(ctx context.Context) ([]models.ChecklistRecord, error)
	GetChecklist(ctx context.Context, id string) (*models.ChecklistRecord, error)
	CreateOrUpdateOpen(ctx context.Context, rec models.ChecklistRecord) (*models.ChecklistRecord, error)
	UpdateChecklist(ctx context.Context, id string, rec models.ChecklistRecord) (*models.ChecklistRecord, error)
	DeleteChecklist(ctx context.Context, id string) error
	ComputeRestockSummary(ctx context.Context) (*RestockSummary, error)
}

// DefaultChecklistService is the production implementation.
type DefaultChecklistService struct {
	Repo       checklistRepo.ChecklistRepository
	CabinCount int

	mu         sync.Mutex
	cabinLocks map[int]*sync.Mutex
}

// cabinLock returns the mutex serializing the upsert path for one cabin,
// creating it on first use.
func (s *DefaultChecklistService) cabinLock(cabinNumber int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cabinLocks == nil {
		s.cabinLocks = make(map[int]*sync.Mutex)
	}
	lock, exists := s.cabinLocks[cabinNumber]
	if !exists {
		lock = &sync.Mutex{}
		s.cabinLocks[cabinNumber] = lock
	}
	return lock
}
