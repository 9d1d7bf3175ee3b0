package repositories

import (
	"context"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// ReferralRepository implements referral attribution storage
type ReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create records an attribution; the unique referred_id index rejects a second one
func (r *ReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	m := &models.Referral{
		ReferrerID: referral.ReferrerID,
		ReferredID: referral.ReferredID,
		Reward:     referral.Reward,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyReferred
		}
		return err
	}
	referral.ID = m.ID
	referral.CreatedAt = m.CreatedAt
	return nil
}

// GetByReferred returns the attribution of a referred user
func (r *ReferralRepository) GetByReferred(ctx context.Context, referredID uint) (*entities.Referral, error) {
	var m models.Referral
	if err := GetDB(ctx, r.db).Where("referred_id = ?", referredID).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &entities.Referral{
		ID:         m.ID,
		ReferrerID: m.ReferrerID,
		ReferredID: m.ReferredID,
		Reward:     m.Reward,
		CreatedAt:  m.CreatedAt,
	}, nil
}
