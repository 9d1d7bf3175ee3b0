package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// TransactionRepository implements the append-only ledger
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		UserID:   tx.UserID,
		Type:     string(tx.Type),
		Amount:   tx.Amount,
		Wallet:   toNullString(tx.Wallet),
		Status:   string(tx.Status),
		Metadata: toNullString(tx.Metadata),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt
	return nil
}

// ListByUser returns a user's ledger entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error) {
	var ms []models.Transaction
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Transaction, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, nil
}

// Sum totals a user's entries of one type and status
func (r *TransactionRepository) Sum(ctx context.Context, userID uint, txType entities.TransactionType, status entities.TransactionStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := GetDB(ctx, r.db).Model(&models.Transaction{}).
		Select("SUM(amount)").
		Where("user_id = ? AND type = ? AND status = ?", userID, string(txType), string(status)).
		Row().Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (r *TransactionRepository) toEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.TransactionType(m.Type),
		Amount:    m.Amount,
		Wallet:    fromNullString(m.Wallet),
		Status:    entities.TransactionStatus(m.Status),
		Metadata:  fromNullString(m.Metadata),
		CreatedAt: m.CreatedAt,
	}
}
