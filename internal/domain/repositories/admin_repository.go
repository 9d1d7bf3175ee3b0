package repositories

import (
	"context"

	"justice-airdrop.backend/internal/domain/entities"
)

// AdminRepository defines admin record operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByTelegramID(ctx context.Context, telegramID string) (*entities.Admin, error)
	SetActive(ctx context.Context, id uint, active bool) error
	SetOwner(ctx context.Context, id uint, owner bool) error
	SetAllowedCommands(ctx context.Context, id uint, commands string) error
	List(ctx context.Context) ([]*entities.Admin, error)
}
