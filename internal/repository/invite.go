package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ladynads/creaverse/internal/models"

	"gorm.io/gorm"
)

// InviteRepository defines persistence operations for invite codes.
type InviteRepository interface {
	Create(ctx context.Context, invite *models.InviteCode) error
	GetByCode(ctx context.Context, code string) (*models.InviteCode, error)
	ListByCreator(ctx context.Context, creatorID uint) ([]models.InviteCode, error)
	// CountByCreator counts every code the user has ever issued, used or not.
	CountByCreator(ctx context.Context, creatorID uint) (int64, error)
	// MarkUsed is the atomic check-and-set on used_by: it claims the code
	// for userID only if it is still unclaimed, reporting whether this
	// caller won. Concurrent redeemers of the same code see exactly one
	// true result. The guard also checks used_at, so a code whose redeemer
	// was deleted (used_by nulled, used_at kept) stays consumed.
	MarkUsed(ctx context.Context, code string, userID uint) (bool, error)
}

type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository returns a new InviteRepository implementation.
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(ctx context.Context, invite *models.InviteCode) error {
	if err := r.db.WithContext(ctx).Create(invite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("Invite code collision")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *inviteRepository) GetByCode(ctx context.Context, code string) (*models.InviteCode, error) {
	var invite models.InviteCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("InviteCode", code)
		}
		return nil, models.NewInternalError(err)
	}
	return &invite, nil
}

func (r *inviteRepository) ListByCreator(ctx context.Context, creatorID uint) ([]models.InviteCode, error) {
	var invites []models.InviteCode
	err := r.db.WithContext(ctx).
		Preload("UsedBy").
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return invites, nil
}

func (r *inviteRepository) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.InviteCode{}).
		Where("created_by_id = ?", creatorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *inviteRepository) MarkUsed(ctx context.Context, code string, userID uint) (bool, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&models.InviteCode{}).
		Where("code = ? AND used_by_id IS NULL AND used_at IS NULL", code).
		Updates(map[string]interface{}{
			"used_by_id": userID,
			"used_at":    now,
		})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected == 1, nil
}
