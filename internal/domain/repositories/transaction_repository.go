package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"justice-airdrop.backend/internal/domain/entities"
)

// TransactionRepository is an append-only ledger
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error)
	Sum(ctx context.Context, userID uint, txType entities.TransactionType, status entities.TransactionStatus) (decimal.Decimal, error)
}
