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

func TestUserRepository_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{TelegramID: "1001", Username: null.StringFrom("alice")}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.ID)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "1001", byID.TelegramID)
	require.True(t, byID.Balance.IsZero())
	require.False(t, byID.Wallet.Valid)

	byTG, err := repo.GetByTelegramID(ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, u.ID, byTG.ID)

	err = repo.Create(ctx, &entities.User{TelegramID: "1001"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	require.NoError(t, repo.SetReferralCode(ctx, u.ID, "ABCD2345", "https://t.me/bot?ref=ABCD2345"))
	byCode, err := repo.GetByReferralCode(ctx, "ABCD2345")
	require.NoError(t, err)
	require.Equal(t, u.ID, byCode.ID)
	require.Equal(t, "https://t.me/bot?ref=ABCD2345", byCode.ReferralLink.String)

	other := seedUser(t, db, "1002", 0)
	require.ErrorIs(t, repo.SetReferralCode(ctx, other.ID, "ABCD2345", "x"), domainerrors.ErrAlreadyExists)
}

func TestUserRepository_FlagUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{TelegramID: "2001"}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.MarkVerified(ctx, u.ID, "device-1"))
	require.NoError(t, repo.SetBanned(ctx, u.ID, true))
	require.NoError(t, repo.SetWallet(ctx, u.ID, "EQwallet"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Verified)
	require.True(t, got.Banned)
	require.Equal(t, "device-1", got.DeviceHash.String)
	require.Equal(t, "EQwallet", got.Wallet.String)

	require.ErrorIs(t, repo.SetBanned(ctx, 999, true), domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.MarkVerified(ctx, 999, ""), domainerrors.ErrNotFound)
	_, err = repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.GetByReferralCode(ctx, "NOPE")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_AdjustBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	u := seedUser(t, db, "3001", 5)

	require.NoError(t, repo.AdjustBalance(ctx, u.ID, decimal.NewFromInt(-3)))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(2)), got.Balance.String())

	err = repo.AdjustBalance(ctx, u.ID, decimal.NewFromInt(-10))
	require.ErrorIs(t, err, domainerrors.ErrInsufficientFunds)

	require.NoError(t, repo.AdjustBalance(ctx, u.ID, decimal.RequireFromString("0.5")))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.RequireFromString("2.5")), got.Balance.String())

	require.ErrorIs(t, repo.AdjustBalance(ctx, 999, decimal.NewFromInt(1)), domainerrors.ErrNotFound)
}

func TestUserRepository_ReferralAggregates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "4001", 0)
	b := seedUser(t, db, "4002", 1)
	seedUser(t, db, "4003", 2)

	require.NoError(t, repo.IncrementReferrals(ctx, a.ID, decimal.NewFromInt(10)))
	require.NoError(t, repo.IncrementReferrals(ctx, a.ID, decimal.NewFromInt(10)))
	require.NoError(t, repo.IncrementReferrals(ctx, b.ID, decimal.NewFromInt(10)))

	top, err := repo.TopByReferrals(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, a.ID, top[0].ID)
	require.Equal(t, 2, top[0].Referrals)
	require.True(t, top[0].Balance.Equal(decimal.NewFromInt(20)))

	ahead, err := repo.CountWithMoreReferrals(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), ahead)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	sum, err := repo.SumBalance(ctx)
	require.NoError(t, err)
	require.True(t, sum.Equal(decimal.NewFromInt(33)), sum.String())
}

func TestUserRepository_SumBalanceEmpty(t *testing.T) {
	db := newTestDB(t)
	sum, err := NewUserRepository(db).SumBalance(context.Background())
	require.NoError(t, err)
	require.True(t, sum.IsZero())
}
