package repositories

import (
	"context"
	"time"

	"justice-airdrop.backend/internal/domain/entities"
)

// WithdrawalRepository defines withdrawal data operations
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entities.Withdrawal) error
	GetByID(ctx context.Context, id uint) (*entities.Withdrawal, error)
	List(ctx context.Context, status entities.WithdrawalStatus, limit, offset int) ([]*entities.Withdrawal, int64, error)
	Transition(ctx context.Context, id uint, from, to entities.WithdrawalStatus, at time.Time) error
	CountPendingByUser(ctx context.Context, userID uint) (int64, error)
	CountByStatus(ctx context.Context) (map[entities.WithdrawalStatus]int64, error)
}
