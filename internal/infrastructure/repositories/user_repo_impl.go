package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		TelegramID:   user.TelegramID,
		Username:     toNullString(user.Username),
		Balance:      user.Balance,
		Wallet:       toNullString(user.Wallet),
		Referrals:    user.Referrals,
		Banned:       user.Banned,
		Verified:     user.Verified,
		DeviceHash:   toNullString(user.DeviceHash),
		ReferralCode: toNullString(user.ReferralCode),
		ReferralLink: toNullString(user.ReferralLink),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByTelegramID gets a user by Telegram id
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID string) (*entities.User, error) {
	return r.first(ctx, "telegram_id = ?", telegramID)
}

// GetByReferralCode gets the owner of a referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	return r.first(ctx, "referral_code = ?", code)
}

func (r *UserRepository) first(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where(query, args...).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return r.toEntity(&m), nil
}

// MarkVerified sets the verified flag and stores the device fingerprint when given
func (r *UserRepository) MarkVerified(ctx context.Context, id uint, deviceHash string) error {
	updates := map[string]interface{}{
		"verified":   true,
		"updated_at": time.Now(),
	}
	if deviceHash != "" {
		updates["device_hash"] = deviceHash
	}
	return r.update(ctx, id, updates)
}

// SetBanned sets the ban flag
func (r *UserRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	return r.update(ctx, id, map[string]interface{}{"banned": banned, "updated_at": time.Now()})
}

// SetWallet overwrites the wallet address
func (r *UserRepository) SetWallet(ctx context.Context, id uint, wallet string) error {
	return r.update(ctx, id, map[string]interface{}{"wallet": wallet, "updated_at": time.Now()})
}

// SetReferralCode overwrites the referral code and link
func (r *UserRepository) SetReferralCode(ctx context.Context, id uint, code, link string) error {
	err := r.update(ctx, id, map[string]interface{}{
		"referral_code": code,
		"referral_link": link,
		"updated_at":    time.Now(),
	})
	if isDuplicateKey(err) {
		return domainerrors.ErrAlreadyExists
	}
	return err
}

func (r *UserRepository) update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AdjustBalance applies delta in a single guarded UPDATE
func (r *UserRepository) AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) error {
	db := GetDB(ctx, r.db)
	query := db.Model(&models.User{}).Where("id = ?", id)
	if delta.IsNegative() {
		query = query.Where("balance >= ?", delta.Neg())
	}
	result := query.Updates(map[string]interface{}{
		"balance":    gorm.Expr("balance + ?", delta),
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInsufficientFunds
	}
	return nil
}

// IncrementReferrals bumps the referral counter and credits reward in one statement
func (r *UserRepository) IncrementReferrals(ctx context.Context, id uint, reward decimal.Decimal) error {
	return r.update(ctx, id, map[string]interface{}{
		"referrals":  gorm.Expr("referrals + 1"),
		"balance":    gorm.Expr("balance + ?", reward),
		"updated_at": time.Now(),
	})
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Count(&count).Error
	return count, err
}

// SumBalance returns the total of all balances
func (r *UserRepository) SumBalance(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	if err := GetDB(ctx, r.db).Model(&models.User{}).Select("SUM(balance)").Row().Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

// CountWithMoreReferrals counts users strictly ahead on the leaderboard
func (r *UserRepository) CountWithMoreReferrals(ctx context.Context, referrals int) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.User{}).Where("referrals > ?", referrals).Count(&count).Error
	return count, err
}

// TopByReferrals lists users ordered by referral count
func (r *UserRepository) TopByReferrals(ctx context.Context, limit int) ([]*entities.User, error) {
	var ms []models.User
	if err := GetDB(ctx, r.db).Order("referrals DESC").Order("id ASC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.User, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		TelegramID:   m.TelegramID,
		Username:     fromNullString(m.Username),
		Balance:      m.Balance,
		Wallet:       fromNullString(m.Wallet),
		Referrals:    m.Referrals,
		Banned:       m.Banned,
		Verified:     m.Verified,
		DeviceHash:   fromNullString(m.DeviceHash),
		ReferralCode: fromNullString(m.ReferralCode),
		ReferralLink: fromNullString(m.ReferralLink),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
