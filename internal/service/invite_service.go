package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/observability"
	"github.com/Ladynads/creaverse/internal/repository"
)

// InviteService issues and redeems the invite codes gating registration.
type InviteService struct {
	repo repository.InviteRepository
}

// NewInviteService returns a new InviteService.
func NewInviteService(repo repository.InviteRepository) *InviteService {
	return &InviteService{repo: repo}
}

// newCode derives a 10 character uppercase code from a random UUID.
func newCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:10])
}

// Issue creates a fresh invite code for the user. The quota counts every
// code ever issued, so redeemed codes do not free up slots.
func (s *InviteService) Issue(ctx context.Context, creatorID uint) (*models.InviteCode, error) {
	count, err := s.repo.CountByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if count >= models.InviteQuota {
		return nil, models.NewQuotaExceededError("Invite quota reached")
	}

	// Retry on the rare code collision.
	var invite *models.InviteCode
	for attempt := 0; attempt < 3; attempt++ {
		invite = &models.InviteCode{
			Code:        newCode(),
			CreatedByID: creatorID,
		}
		err = s.repo.Create(ctx, invite)
		if err == nil {
			observability.InvitesIssued.Inc()
			return invite, nil
		}
		if models.ErrorCode(err) != models.CodeConflict {
			return nil, err
		}
	}
	return nil, err
}

// Redeem consumes the code for userID. Exactly one caller can ever succeed
// per code; losers get a conflict, unknown codes not found.
func (s *InviteService) Redeem(ctx context.Context, code string, userID uint) (*models.InviteCode, error) {
	won, err := s.repo.MarkUsed(ctx, code, userID)
	if err != nil {
		observability.InviteRedemptions.WithLabelValues("error").Inc()
		return nil, err
	}
	if !won {
		// Distinguish a consumed code from one that never existed.
		if _, err := s.repo.GetByCode(ctx, code); err != nil {
			observability.InviteRedemptions.WithLabelValues("not_found").Inc()
			return nil, err
		}
		observability.InviteRedemptions.WithLabelValues("already_used").Inc()
		return nil, models.NewConflictError("Invite code has already been used")
	}

	observability.InviteRedemptions.WithLabelValues("success").Inc()
	return s.repo.GetByCode(ctx, code)
}

// Validate reports whether the code exists and is still unclaimed, without
// consuming it. A passing check does not reserve the code.
func (s *InviteService) Validate(ctx context.Context, code string) error {
	invite, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if invite.IsUsed() {
		return models.NewConflictError("Invite code has already been used")
	}
	return nil
}

// ListMine returns the codes the user issued, with redeemer info preloaded.
func (s *InviteService) ListMine(ctx context.Context, creatorID uint) ([]models.InviteCode, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}

// Remaining reports how many codes the user can still issue.
func (s *InviteService) Remaining(ctx context.Context, creatorID uint) (int, error) {
	count, err := s.repo.CountByCreator(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	left := models.InviteQuota - int(count)
	if left < 0 {
		left = 0
	}
	return left, nil
}
