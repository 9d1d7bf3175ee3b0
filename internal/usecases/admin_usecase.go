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

// AdminUsecase manages admin records and user bans
type AdminUsecase struct {
	adminRepo repositories.AdminRepository
	userRepo  repositories.UserRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(adminRepo repositories.AdminRepository, userRepo repositories.UserRepository) *AdminUsecase {
	return &AdminUsecase{
		adminRepo: adminRepo,
		userRepo:  userRepo,
	}
}

// AddAdmin creates an active admin or reactivates an existing one
func (u *AdminUsecase) AddAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error) {
	return u.Grant(ctx, input.TelegramID, false)
}

// Grant activates telegramID as an admin and optionally as an owner.
// An existing owner flag is never cleared here.
func (u *AdminUsecase) Grant(ctx context.Context, telegramID string, owner bool) (*entities.Admin, error) {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return nil, domainerrors.BadRequest("Missing telegram_id")
	}

	admin, err := u.adminRepo.GetByTelegramID(ctx, telegramID)
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		admin = &entities.Admin{TelegramID: telegramID, IsActive: true, IsOwner: owner}
		if err := u.adminRepo.Create(ctx, admin); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if !admin.IsActive {
			if err := u.adminRepo.SetActive(ctx, admin.ID, true); err != nil {
				return nil, err
			}
			admin.IsActive = true
		}
		if owner && !admin.IsOwner {
			if err := u.adminRepo.SetOwner(ctx, admin.ID, true); err != nil {
				return nil, err
			}
			admin.IsOwner = true
		}
	}

	logger.Info(ctx, "Admin granted", zap.String("telegram_id", telegramID), zap.Bool("owner", admin.IsOwner))
	return admin, nil
}

// RemoveAdmin deactivates an admin; the row is kept
func (u *AdminUsecase) RemoveAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error) {
	admin, err := u.lookup(ctx, input.TelegramID)
	if err != nil {
		return nil, err
	}
	if err := u.adminRepo.SetActive(ctx, admin.ID, false); err != nil {
		return nil, err
	}
	admin.IsActive = false
	logger.Info(ctx, "Admin removed", zap.String("telegram_id", admin.TelegramID))
	return admin, nil
}

// SetCommands replaces the free-text command list of an admin
func (u *AdminUsecase) SetCommands(ctx context.Context, input *entities.AdminCommandsInput) (*entities.Admin, error) {
	admin, err := u.lookup(ctx, input.TelegramID)
	if err != nil {
		return nil, err
	}
	commands := strings.TrimSpace(input.AllowedCommands)
	if err := u.adminRepo.SetAllowedCommands(ctx, admin.ID, commands); err != nil {
		return nil, err
	}
	admin.AllowedCommands.SetValid(commands)
	return admin, nil
}

// ListAdmins returns every admin record
func (u *AdminUsecase) ListAdmins(ctx context.Context) ([]*entities.Admin, error) {
	return u.adminRepo.List(ctx)
}

// Ban blocks a user from verified-only features
func (u *AdminUsecase) Ban(ctx context.Context, input *entities.UserActionInput) error {
	return u.setBanned(ctx, input.TelegramID, true)
}

// Unban lifts a ban
func (u *AdminUsecase) Unban(ctx context.Context, input *entities.UserActionInput) error {
	return u.setBanned(ctx, input.TelegramID, false)
}

func (u *AdminUsecase) setBanned(ctx context.Context, telegramID string, banned bool) error {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return domainerrors.BadRequest("Missing telegram_id")
	}
	user, err := u.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return err
	}
	if err := u.userRepo.SetBanned(ctx, user.ID, banned); err != nil {
		return err
	}
	logger.Info(ctx, "User ban updated", zap.String("telegram_id", telegramID), zap.Bool("banned", banned))
	return nil
}

func (u *AdminUsecase) lookup(ctx context.Context, telegramID string) (*entities.Admin, error) {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return nil, domainerrors.BadRequest("Missing telegram_id")
	}
	admin, err := u.adminRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Admin not found")
		}
		return nil, err
	}
	return admin, nil
}
