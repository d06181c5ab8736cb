package service

import (
	"context"

	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/observability"
	"github.com/Ladynads/creaverse/internal/repository"
)

// InteractionService fronts the interaction ledger. All ledger writes go
// through here so the recorded metric stays accurate.
type InteractionService struct {
	repo repository.InteractionRepository
}

// NewInteractionService returns a new InteractionService.
func NewInteractionService(repo repository.InteractionRepository) *InteractionService {
	return &InteractionService{repo: repo}
}

// Record writes the (user, target, kind) marker. Recording the same marker
// twice returns the existing row and counts only the first write.
func (s *InteractionService) Record(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind, metadata models.JSONMap) (*models.UserInteraction, error) {
	row, err := s.repo.Record(ctx, userID, target, kind, metadata)
	if err != nil {
		return nil, err
	}
	observability.InteractionsRecorded.WithLabelValues(string(kind)).Inc()
	return row, nil
}

// Exists reports whether the marker is present.
func (s *InteractionService) Exists(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) (bool, error) {
	return s.repo.Exists(ctx, userID, target, kind)
}

// Remove deletes the marker. Removing an absent marker is a no-op.
func (s *InteractionService) Remove(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) error {
	return s.repo.Remove(ctx, userID, target, kind)
}

// History returns the user's most recent interactions, newest first.
func (s *InteractionService) History(ctx context.Context, userID uint, limit int) ([]models.UserInteraction, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}
