package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// WithdrawalRepository implements withdrawal data operations
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create creates a new withdrawal
func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	m := &models.Withdrawal{
		UserID: withdrawal.UserID,
		Amount: withdrawal.Amount,
		Wallet: toNullString(withdrawal.Wallet),
		Status: string(withdrawal.Status),
	}
	if m.Status == "" {
		m.Status = string(entities.WithdrawalStatusPending)
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	withdrawal.ID = m.ID
	withdrawal.Status = entities.WithdrawalStatus(m.Status)
	withdrawal.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a withdrawal by ID
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uint) (*entities.Withdrawal, error) {
	var m models.Withdrawal
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return r.toEntity(&m), nil
}

// List returns a page of withdrawals, optionally filtered by status
func (r *WithdrawalRepository) List(ctx context.Context, status entities.WithdrawalStatus, limit, offset int) ([]*entities.Withdrawal, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", string(status))
		}
		return db
	}

	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Withdrawal{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Withdrawal
	if err := GetDB(ctx, r.db).Scopes(filter).Order("id DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Withdrawal, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, total, nil
}

// Transition is a compare-and-set on the status column
func (r *WithdrawalRepository) Transition(ctx context.Context, id uint, from, to entities.WithdrawalStatus, at time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.Model(&models.Withdrawal{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{"status": string(to), "reviewed_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Withdrawal{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInvalidState
	}
	return nil
}

// CountPendingByUser counts a user's pending withdrawals
func (r *WithdrawalRepository) CountPendingByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Withdrawal{}).
		Where("user_id = ? AND status = ?", userID, string(entities.WithdrawalStatusPending)).
		Count(&count).Error
	return count, err
}

// CountByStatus groups withdrawals by status
func (r *WithdrawalRepository) CountByStatus(ctx context.Context) (map[entities.WithdrawalStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := GetDB(ctx, r.db).Model(&models.Withdrawal{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[entities.WithdrawalStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.WithdrawalStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *WithdrawalRepository) toEntity(m *models.Withdrawal) *entities.Withdrawal {
	return &entities.Withdrawal{
		ID:         m.ID,
		UserID:     m.UserID,
		Amount:     m.Amount,
		Wallet:     fromNullString(m.Wallet),
		Status:     entities.WithdrawalStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ReviewedAt: fromNullTime(m.ReviewedAt),
	}
}
