package checklist

import (
	"context"
	"fmt"

	"cabinkeep/models"
	"cabinkeep/utils"

	"go.uber.org/zap"
)

// validate applies the boundary policy: cabin number and enum values are
// rejected, quantity fields are clamped into their schema range.
func (s *DefaultChecklistService) validate(rec *models.ChecklistRecord) error {
	if rec.CabinNumber < 1 || rec.CabinNumber > s.CabinCount {
		return fmt.Errorf("%w: %d", ErrInvalidCabin, rec.CabinNumber)
	}
	if err := models.ValidateEnums(rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	models.ClampQuantities(rec)
	return nil
}

// ListChecklists returns every record, newest first.
func (s *DefaultChecklistService) ListChecklists(ctx context.Context) ([]models.ChecklistRecord, error) {
	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}
	return records, nil
}

// GetChecklist returns one record, or nil when the ID is unknown.
func (s *DefaultChecklistService) GetChecklist(ctx context.Context, id string) (*models.ChecklistRecord, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checklist %s: %w", id, err)
	}
	return rec, nil
}

// CreateOrUpdateOpen writes the cabin's open checklist. If the cabin already
// has a pending record its fields are fully replaced by the supplied ones;
// otherwise a new record is created. A per-cabin mutex serializes the
// find-then-write sequence so two concurrent first edits for the same cabin
// cannot both insert.
func (s *DefaultChecklistService) CreateOrUpdateOpen(ctx context.Context, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	logger := utils.GetLogger()

	if err := s.validate(&rec); err != nil {
		return nil, err
	}

	lock := s.cabinLock(rec.CabinNumber)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Repo.FindOpenByCabin(ctx, rec.CabinNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up open checklist for cabin %d: %w", rec.CabinNumber, err)
	}
	if existing != nil {
		updated, err := s.Repo.Replace(ctx, existing.ID, rec)
		if err != nil {
			return nil, fmt.Errorf("failed to update open checklist for cabin %d: %w", rec.CabinNumber, err)
		}
		return updated, nil
	}

	created, err := s.Repo.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to create checklist for cabin %d: %w", rec.CabinNumber, err)
	}
	logger.Info("Opened checklist", zap.Int("cabin", created.CabinNumber), zap.String("id", created.ID))
	return created, nil
}

// UpdateChecklist fully replaces a record by ID, returning nil when the ID is
// unknown. This is the path used to toggle completed.
func (s *DefaultChecklistService) UpdateChecklist(ctx context.Context, id string, rec models.ChecklistRecord) (*models.ChecklistRecord, error) {
	if err := s.validate(&rec); err != nil {
		return nil, err
	}
	updated, err := s.Repo.Replace(ctx, id, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist %s: %w", id, err)
	}
	return updated, nil
}

// DeleteChecklist removes a record. Used by "reset cabin"; the cabin simply
// has no pending record until the next create.
func (s *DefaultChecklistService) DeleteChecklist(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete checklist %s: %w", id, err)
	}
	return nil
}
