package repositories

import (
	"context"

	"justice-airdrop.backend/internal/domain/entities"
)

// TaskRepository defines task catalog operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uint) (*entities.Task, error)
	ListActive(ctx context.Context) ([]*entities.Task, error)
	Count(ctx context.Context) (int64, error)
}
