package usecases

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/crypto"
)

// AuthorizationUsecase resolves request credentials into an AuthContext.
// Nothing is cached between calls so admin changes apply on the next request.
type AuthorizationUsecase struct {
	userRepo   repositories.UserRepository
	adminRepo  repositories.AdminRepository
	tokens     TokenService
	apiKey     string
	apiKeyHash string
	ownerIDs   map[int64]struct{}
}

// NewAuthorizationUsecase creates a new authorization usecase
func NewAuthorizationUsecase(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	tokens TokenService,
	security config.SecurityConfig,
) *AuthorizationUsecase {
	owners := make(map[int64]struct{}, len(security.OwnerIDs))
	for _, id := range security.OwnerIDs {
		owners[id] = struct{}{}
	}
	return &AuthorizationUsecase{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		tokens:     tokens,
		apiKey:     security.BotAPIKey,
		apiKeyHash: security.BotAPIKeyHash,
		ownerIDs:   owners,
	}
}

// Resolve evaluates every credential in creds. Only storage failures are returned
// as errors; a bad user credential is recorded on AuthContext.UserError.
func (u *AuthorizationUsecase) Resolve(ctx context.Context, creds entities.Credentials) (*entities.AuthContext, error) {
	auth := &entities.AuthContext{}

	if u.validAPIKey(creds.AdminKey) {
		auth.IsOwner = true
		auth.IsAdmin = true
		auth.ViaAPIKey = true
	}

	if ownerID := strings.TrimSpace(creds.OwnerID); ownerID != "" {
		if id, err := strconv.ParseInt(ownerID, 10, 64); err == nil {
			if _, ok := u.ownerIDs[id]; ok {
				auth.IsOwner = true
			}
		}
	}

	if adminID := strings.TrimSpace(creds.AdminID); adminID != "" {
		admin, err := u.adminRepo.GetByTelegramID(ctx, adminID)
		switch {
		case err == nil && admin.IsActive:
			auth.Admin = admin
			auth.IsAdmin = true
			if admin.IsOwner {
				auth.IsOwner = true
			}
		case err != nil && !errors.Is(err, domainerrors.ErrNotFound):
			return nil, err
		}
	}

	user, userErr, err := u.resolveUser(ctx, creds)
	if err != nil {
		return nil, err
	}
	auth.User = user
	auth.UserError = userErr

	return auth, nil
}

func (u *AuthorizationUsecase) resolveUser(ctx context.Context, creds entities.Credentials) (*entities.User, error, error) {
	var userID uint
	switch {
	case strings.TrimSpace(creds.UserID) != "":
		id, err := strconv.ParseUint(strings.TrimSpace(creds.UserID), 10, 64)
		if err != nil || id == 0 {
			return nil, domainerrors.BadRequest("Invalid user id header"), nil
		}
		userID = uint(id)
	case creds.BearerToken != "" && u.tokens != nil:
		claims, err := u.tokens.ValidateToken(creds.BearerToken)
		if err != nil {
			return nil, domainerrors.Unauthorized("Invalid or expired token"), nil
		}
		userID = claims.UserID
	default:
		return nil, nil, nil
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Forbidden("Access denied: not verified or banned"), nil
		}
		return nil, nil, err
	}
	return user, nil, nil
}

func (u *AuthorizationUsecase) validAPIKey(key string) bool {
	if key == "" {
		return false
	}
	if u.apiKey != "" && crypto.ConstantTimeEqual(key, u.apiKey) {
		return true
	}
	return u.apiKeyHash != "" && crypto.CheckSecret(key, u.apiKeyHash)
}
