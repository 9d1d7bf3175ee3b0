package usecases

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/logger"
)

// AuthUsecase handles first contact, verification and the account view
type AuthUsecase struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, tokens TokenService) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Start creates the user on first contact. Calling it again is a no-op.
func (u *AuthUsecase) Start(ctx context.Context, input *entities.StartInput) (*entities.StartResponse, error) {
	telegramID := strings.TrimSpace(input.TelegramID)
	if telegramID == "" {
		return nil, domainerrors.BadRequest("Missing telegram_id")
	}

	user, err := u.userRepo.GetByTelegramID(ctx, telegramID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		user = &entities.User{TelegramID: telegramID}
		if input.Username != "" {
			user.Username.SetValid(input.Username)
		}
		if input.DeviceHash != "" {
			user.DeviceHash.SetValid(input.DeviceHash)
		}
		err = u.userRepo.Create(ctx, user)
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Lost a race with a concurrent start for the same identity.
			user, err = u.userRepo.GetByTelegramID(ctx, telegramID)
		}
		if err == nil {
			logger.Info(ctx, "User registered", zap.Uint("user_id", user.ID), zap.String("telegram_id", telegramID))
		}
	}
	if err != nil {
		return nil, err
	}

	return &entities.StartResponse{
		UserID:   user.ID,
		Verified: user.Verified,
		Required: entities.RequiredChats{Group: true, Channel: true},
	}, nil
}

// Verify marks the user verified and issues an access token
func (u *AuthUsecase) Verify(ctx context.Context, input *entities.VerifyInput) (*entities.VerifyResponse, error) {
	user, err := u.userRepo.GetByTelegramID(ctx, strings.TrimSpace(input.TelegramID))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	deviceHash := strings.TrimSpace(input.DeviceHash)
	if deviceHash != "" && user.DeviceHash.Valid && user.DeviceHash.String != "" && user.DeviceHash.String != deviceHash {
		return nil, domainerrors.Forbidden("Device already used")
	}

	if err := u.userRepo.MarkVerified(ctx, user.ID, deviceHash); err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.TelegramID)
	if err != nil {
		return nil, err
	}

	return &entities.VerifyResponse{
		OK:          true,
		Verified:    true,
		UserID:      user.ID,
		AccessToken: token,
		ExpiresIn:   int64(u.tokens.Expiry().Seconds()),
	}, nil
}

// Me returns the account view of the acting user
func (u *AuthUsecase) Me(ctx context.Context, userID uint) (*entities.AccountView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	return &entities.AccountView{
		ID:              user.ID,
		TelegramID:      user.TelegramID,
		Username:        user.Username,
		Balance:         user.Balance,
		WalletConnected: user.Wallet.Valid && user.Wallet.String != "",
		WalletAddress:   user.Wallet,
		Verified:        user.Verified,
		CreatedAt:       user.CreatedAt,
	}, nil
}
