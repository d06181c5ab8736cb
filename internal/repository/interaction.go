package repository

import (
	"context"

	"github.com/Ladynads/creaverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InteractionRepository is the append-style ledger of idempotent
// (user, target, kind) markers.
type InteractionRepository interface {
	// Record upserts the marker and returns the row, existing or new.
	Record(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind, metadata models.JSONMap) (*models.UserInteraction, error)
	Exists(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) (bool, error)
	Remove(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.UserInteraction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository returns a new InteractionRepository implementation.
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) targetScope(q *gorm.DB, userID uint, target models.InteractionTarget, kind models.InteractionKind) *gorm.DB {
	q = q.Where("user_id = ? AND kind = ?", userID, kind)
	if target.PostID != nil {
		return q.Where("post_id = ?", *target.PostID)
	}
	return q.Where("target_user_id = ?", *target.TargetUserID)
}

func (r *interactionRepository) Record(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind, metadata models.JSONMap) (*models.UserInteraction, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, models.NewValidationError("Unknown interaction kind")
	}

	row := models.UserInteraction{
		UserID:       userID,
		PostID:       target.PostID,
		TargetUserID: target.TargetUserID,
		Kind:         kind,
		Metadata:     metadata,
	}
	// Idempotent per (user, target, kind): a duplicate insert is a no-op
	// and the existing marker is returned.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		return &row, nil
	}

	var existing models.UserInteraction
	err := r.targetScope(r.db.WithContext(ctx), userID, target, kind).
		First(&existing).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &existing, nil
}

func (r *interactionRepository) Exists(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) (bool, error) {
	if err := target.Validate(); err != nil {
		return false, err
	}
	var count int64
	err := r.targetScope(r.db.WithContext(ctx).Model(&models.UserInteraction{}), userID, target, kind).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *interactionRepository) Remove(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) error {
	if err := target.Validate(); err != nil {
		return err
	}
	err := r.targetScope(r.db.WithContext(ctx), userID, target, kind).
		Delete(&models.UserInteraction{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *interactionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.UserInteraction, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.UserInteraction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
