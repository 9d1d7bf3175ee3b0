package repositories

import (
	"context"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// NotificationRepository implements the notification store
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create persists a notification
func (r *NotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	m := &models.Notification{
		TargetType: string(n.TargetType),
		TargetID:   n.TargetID,
		Message:    n.Message,
		Read:       n.Read,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	n.ID = m.ID
	n.CreatedAt = m.CreatedAt
	return nil
}

// ListForTarget returns the newest notifications of a target
func (r *NotificationRepository) ListForTarget(ctx context.Context, target entities.NotificationTarget, targetID string, limit int) ([]*entities.Notification, error) {
	var ms []models.Notification
	if err := GetDB(ctx, r.db).
		Where("target_type = ? AND target_id = ?", string(target), targetID).
		Order("id DESC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Notification, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, nil
}

// CountUnread counts unread notifications of a target
func (r *NotificationRepository) CountUnread(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Notification{}).
		Where("target_type = ? AND target_id = ? AND read = ?", string(target), targetID, false).
		Count(&count).Error
	return count, err
}

// MarkAllRead marks every unread notification of a target and returns how many changed
func (r *NotificationRepository) MarkAllRead(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error) {
	result := GetDB(ctx, r.db).Model(&models.Notification{}).
		Where("target_type = ? AND target_id = ? AND read = ?", string(target), targetID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// MarkRead marks one notification owned by the target
func (r *NotificationRepository) MarkRead(ctx context.Context, id uint, target entities.NotificationTarget, targetID string) error {
	result := GetDB(ctx, r.db).Model(&models.Notification{}).
		Where("id = ? AND target_type = ? AND target_id = ?", id, string(target), targetID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) toEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:         m.ID,
		TargetType: entities.NotificationTarget(m.TargetType),
		TargetID:   m.TargetID,
		Message:    m.Message,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}
