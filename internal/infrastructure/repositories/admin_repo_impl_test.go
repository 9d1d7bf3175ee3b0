package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
)

func TestAdminRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	a := &entities.Admin{TelegramID: "900", IsActive: true}
	require.NoError(t, repo.Create(ctx, a))
	require.ErrorIs(t, repo.Create(ctx, &entities.Admin{TelegramID: "900"}), domainerrors.ErrAlreadyExists)

	inactive := &entities.Admin{TelegramID: "901", IsActive: false}
	require.NoError(t, repo.Create(ctx, inactive))
	got, err := repo.GetByTelegramID(ctx, "901")
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.NoError(t, repo.SetOwner(ctx, a.ID, true))
	require.NoError(t, repo.SetAllowedCommands(ctx, a.ID, "approve,reject"))
	require.NoError(t, repo.SetActive(ctx, a.ID, false))

	got, err = repo.GetByTelegramID(ctx, "900")
	require.NoError(t, err)
	require.True(t, got.IsOwner)
	require.False(t, got.IsActive)
	require.Equal(t, "approve,reject", got.AllowedCommands.String)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = repo.GetByTelegramID(ctx, "404")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.SetActive(ctx, 404, true), domainerrors.ErrNotFound)
}
