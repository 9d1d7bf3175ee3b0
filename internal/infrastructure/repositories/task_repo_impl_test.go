package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
)

func TestTaskRepository_CreateListCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	active := &entities.Task{Title: "Join channel", Link: null.StringFrom("https://t.me/x"), Reward: decimal.NewFromInt(5), Active: true}
	inactive := &entities.Task{Title: "Old", Reward: decimal.NewFromInt(1), Active: false}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	got, err := repo.GetByID(ctx, inactive.ID)
	require.NoError(t, err)
	require.False(t, got.Active)
	require.False(t, got.Instruction.Valid)

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Join channel", list[0].Title)
	require.True(t, list[0].Reward.Equal(decimal.NewFromInt(5)))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	_, err = repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
