package service

import (
	"context"
	"testing"

	"github.com/Ladynads/creaverse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionService_Record(t *testing.T) {
	ledger := newLedgerRecorder()
	svc := NewInteractionService(ledger)

	row, err := svc.Record(context.Background(), 1, models.PostTarget(10), models.InteractionBookmark, models.JSONMap{"source": "profile"})
	require.NoError(t, err)

	assert.Equal(t, models.InteractionBookmark, row.Kind)
	assert.Equal(t, []models.InteractionKind{models.InteractionBookmark}, ledger.recorded)
}

func TestInteractionService_Record_PropagatesValidation(t *testing.T) {
	repo := noopInteractionRepo()
	repo.recordFn = func(_ context.Context, _ uint, target models.InteractionTarget, _ models.InteractionKind, _ models.JSONMap) (*models.UserInteraction, error) {
		return nil, target.Validate()
	}

	svc := NewInteractionService(repo)
	_, err := svc.Record(context.Background(), 1, models.InteractionTarget{}, models.InteractionView, nil)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
}

func TestInteractionService_ExistsRemove(t *testing.T) {
	present := true
	repo := noopInteractionRepo()
	repo.existsFn = func(_ context.Context, _ uint, _ models.InteractionTarget, _ models.InteractionKind) (bool, error) {
		return present, nil
	}
	repo.removeFn = func(_ context.Context, _ uint, _ models.InteractionTarget, _ models.InteractionKind) error {
		present = false
		return nil
	}

	svc := NewInteractionService(repo)

	ok, err := svc.Exists(context.Background(), 1, models.UserTarget(2), models.InteractionFollow)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Remove(context.Background(), 1, models.UserTarget(2), models.InteractionFollow))

	ok, err = svc.Exists(context.Background(), 1, models.UserTarget(2), models.InteractionFollow)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInteractionService_History(t *testing.T) {
	repo := noopInteractionRepo()
	repo.listByUserFn = func(_ context.Context, userID uint, limit int) ([]models.UserInteraction, error) {
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, 10, limit)
		return []models.UserInteraction{{ID: 1, UserID: 1, Kind: models.InteractionLike}}, nil
	}

	svc := NewInteractionService(repo)
	rows, err := svc.History(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.InteractionLike, rows[0].Kind)
}
