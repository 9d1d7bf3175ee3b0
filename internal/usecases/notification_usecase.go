package usecases

import (
	"context"
	"errors"
	"strings"

	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/utils"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

// NotificationUsecase persists notifications and queues their delivery
type NotificationUsecase struct {
	notifRepo  repositories.NotificationRepository
	dispatcher Dispatcher
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notifRepo repositories.NotificationRepository, dispatcher Dispatcher) *NotificationUsecase {
	return &NotificationUsecase{
		notifRepo:  notifRepo,
		dispatcher: dispatcher,
	}
}

// NotifyUser stores a message for a user and queues it for Telegram
func (u *NotificationUsecase) NotifyUser(ctx context.Context, input *entities.NotifyUserInput) (*entities.Notification, error) {
	return u.notify(ctx, entities.NotificationTargetUser, input.TelegramID, input.Message)
}

// NotifyGroup stores a message for a group or channel and queues it for Telegram
func (u *NotificationUsecase) NotifyGroup(ctx context.Context, input *entities.NotifyGroupInput) (*entities.Notification, error) {
	return u.notify(ctx, entities.NotificationTargetGroup, input.GroupID, input.Message)
}

func (u *NotificationUsecase) notify(ctx context.Context, target entities.NotificationTarget, targetID, message string) (*entities.Notification, error) {
	targetID = strings.TrimSpace(targetID)
	message = strings.TrimSpace(message)
	if targetID == "" || message == "" {
		return nil, domainerrors.BadRequest("Missing target id or message")
	}

	n := &entities.Notification{
		TargetType: target,
		TargetID:   targetID,
		Message:    message,
	}
	if err := u.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}
	if u.dispatcher != nil {
		u.dispatcher.Enqueue(entities.OutboundMessage{ChatID: targetID, Text: message})
	}
	return n, nil
}

// ListForUser returns the user's notifications, newest first
func (u *NotificationUsecase) ListForUser(ctx context.Context, telegramID string, limit int) ([]*entities.Notification, error) {
	return u.notifRepo.ListForTarget(ctx, entities.NotificationTargetUser, telegramID,
		utils.ClampLimit(limit, defaultNotificationLimit, maxNotificationLimit))
}

// UnreadCount counts the user's unread notifications
func (u *NotificationUsecase) UnreadCount(ctx context.Context, telegramID string) (int64, error) {
	return u.notifRepo.CountUnread(ctx, entities.NotificationTargetUser, telegramID)
}

// MarkAllRead marks every notification of the user read and returns how many changed
func (u *NotificationUsecase) MarkAllRead(ctx context.Context, telegramID string) (int64, error) {
	return u.notifRepo.MarkAllRead(ctx, entities.NotificationTargetUser, telegramID)
}

// MarkRead marks one of the user's notifications read
func (u *NotificationUsecase) MarkRead(ctx context.Context, telegramID string, id uint) error {
	err := u.notifRepo.MarkRead(ctx, id, entities.NotificationTargetUser, telegramID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Notification not found")
	}
	return err
}
