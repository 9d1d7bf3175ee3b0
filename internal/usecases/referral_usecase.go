package usecases

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/crypto"
	"justice-airdrop.backend/pkg/logger"
	"justice-airdrop.backend/pkg/utils"
)

const (
	referralCodeAttempts    = 5
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

var newReferralCode = crypto.GenerateReferralCode

// ReferralUsecase manages referral codes and attributions
type ReferralUsecase struct {
	uow          repositories.UnitOfWork
	userRepo     repositories.UserRepository
	referralRepo repositories.ReferralRepository
	txRepo       repositories.TransactionRepository
	baseURL      string
}

// NewReferralUsecase creates a new referral usecase
func NewReferralUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	referralRepo repositories.ReferralRepository,
	txRepo repositories.TransactionRepository,
	baseURL string,
) *ReferralUsecase {
	return &ReferralUsecase{
		uow:          uow,
		userRepo:     userRepo,
		referralRepo: referralRepo,
		txRepo:       txRepo,
		baseURL:      baseURL,
	}
}

// Stats returns the user's own referral summary
func (u *ReferralUsecase) Stats(ctx context.Context, userID uint) (*entities.ReferralStats, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	return &entities.ReferralStats{
		Username:     user.Username.String,
		Referrals:    user.Referrals,
		Balance:      user.Balance,
		ReferralCode: user.ReferralCode.String,
		ReferralLink: user.ReferralLink.String,
	}, nil
}

// Generate issues a fresh referral code, replacing the previous one
func (u *ReferralUsecase) Generate(ctx context.Context, userID uint) (*entities.ReferralLink, error) {
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code, err := newReferralCode()
		if err != nil {
			return nil, err
		}
		link := u.linkFor(code)
		err = u.userRepo.SetReferralCode(ctx, userID, code, link)
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			logger.Debug(ctx, "Referral code collision, retrying", zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.NotFound("User not found")
			}
			return nil, err
		}
		return &entities.ReferralLink{Code: code, Link: link}, nil
	}
	return nil, domainerrors.InternalServerError("Could not generate a unique referral code")
}

// Register attributes the referred identity to the owner of code and rewards
// the referrer. An identity can be attributed only once.
func (u *ReferralUsecase) Register(ctx context.Context, input *entities.RegisterReferralInput) (*entities.RegisterReferralResult, error) {
	code := strings.TrimSpace(input.ReferrerCode)
	referredTelegramID := strings.TrimSpace(input.ReferredTelegramID)
	if code == "" || referredTelegramID == "" {
		return nil, domainerrors.BadRequest("Missing referrer_code or referred_telegram_id")
	}

	var result *entities.RegisterReferralResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		referrer, err := u.userRepo.GetByReferralCode(txCtx, code)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Referrer not found")
			}
			return err
		}
		if referrer.TelegramID == referredTelegramID {
			return domainerrors.BadRequest("Cannot refer yourself")
		}

		referred, err := u.userRepo.GetByTelegramID(txCtx, referredTelegramID)
		if errors.Is(err, domainerrors.ErrNotFound) {
			referred = &entities.User{TelegramID: referredTelegramID}
			err = u.userRepo.Create(txCtx, referred)
		}
		if err != nil {
			return err
		}

		if err := u.referralRepo.Create(txCtx, &entities.Referral{
			ReferrerID: referrer.ID,
			ReferredID: referred.ID,
			Reward:     entities.ReferralReward,
		}); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyReferred) {
				return domainerrors.InvalidState("User already referred")
			}
			return err
		}

		if err := u.userRepo.IncrementReferrals(txCtx, referrer.ID, entities.ReferralReward); err != nil {
			return err
		}
		ledger := &entities.Transaction{
			UserID: referrer.ID,
			Type:   entities.TransactionTypeCredit,
			Amount: entities.ReferralReward,
			Status: entities.TransactionStatusCompleted,
		}
		ledger.Metadata.SetValid("referral:" + referredTelegramID)
		if err := u.txRepo.Create(txCtx, ledger); err != nil {
			return err
		}

		updated, err := u.userRepo.GetByID(txCtx, referrer.ID)
		if err != nil {
			return err
		}
		result = &entities.RegisterReferralResult{
			OK:         true,
			ReferrerID: referrer.ID,
			ReferredID: referred.ID,
			Referrals:  updated.Referrals,
			Balance:    updated.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Referral registered",
		zap.Uint("referrer_id", result.ReferrerID),
		zap.Uint("referred_id", result.ReferredID),
	)
	return result, nil
}

// Leaderboard lists users by referral count
func (u *ReferralUsecase) Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	users, err := u.userRepo.TopByReferrals(ctx, utils.ClampLimit(limit, defaultLeaderboardLimit, maxLeaderboardLimit))
	if err != nil {
		return nil, err
	}
	entries := make([]*entities.LeaderboardEntry, len(users))
	for i, user := range users {
		entries[i] = &entities.LeaderboardEntry{
			Username:  user.DisplayName(),
			Referrals: user.Referrals,
			Balance:   user.Balance,
		}
	}
	return entries, nil
}

// Rank returns the user's leaderboard position; ties share a rank
func (u *ReferralUsecase) Rank(ctx context.Context, userID uint) (*entities.ReferralRank, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	higher, err := u.userRepo.CountWithMoreReferrals(ctx, user.Referrals)
	if err != nil {
		return nil, err
	}
	total, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.ReferralRank{
		Username:   user.DisplayName(),
		Referrals:  user.Referrals,
		Rank:       higher + 1,
		TotalUsers: total,
	}, nil
}

func (u *ReferralUsecase) linkFor(code string) string {
	return u.baseURL + "?ref=" + url.QueryEscape(code)
}
