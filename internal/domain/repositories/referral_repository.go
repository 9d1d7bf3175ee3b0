package repositories

import (
	"context"

	"justice-airdrop.backend/internal/domain/entities"
)

// ReferralRepository records referral attributions
type ReferralRepository interface {
	// Create fails with ErrAlreadyReferred when the referred user already has a referrer.
	Create(ctx context.Context, referral *entities.Referral) error
	GetByReferred(ctx context.Context, referredID uint) (*entities.Referral, error)
}
