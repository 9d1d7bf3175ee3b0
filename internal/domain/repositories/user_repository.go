package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"justice-airdrop.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetByTelegramID(ctx context.Context, telegramID string) (*entities.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entities.User, error)
	MarkVerified(ctx context.Context, id uint, deviceHash string) error
	SetBanned(ctx context.Context, id uint, banned bool) error
	SetWallet(ctx context.Context, id uint, wallet string) error
	SetReferralCode(ctx context.Context, id uint, code, link string) error
	// AdjustBalance applies delta atomically and fails with ErrInsufficientFunds
	// when the result would be negative.
	AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) error
	IncrementReferrals(ctx context.Context, id uint, reward decimal.Decimal) error
	Count(ctx context.Context) (int64, error)
	SumBalance(ctx context.Context) (decimal.Decimal, error)
	CountWithMoreReferrals(ctx context.Context, referrals int) (int64, error)
	TopByReferrals(ctx context.Context, limit int) ([]*entities.User, error)
}
