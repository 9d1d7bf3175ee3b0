package repositories

import (
	"context"

	"justice-airdrop.backend/internal/domain/entities"
)

// NotificationRepository defines notification store operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	ListForTarget(ctx context.Context, target entities.NotificationTarget, targetID string, limit int) ([]*entities.Notification, error)
	CountUnread(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error)
	MarkAllRead(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error)
	// MarkRead marks one notification owned by the target; ErrNotFound otherwise.
	MarkRead(ctx context.Context, id uint, target entities.NotificationTarget, targetID string) error
}
