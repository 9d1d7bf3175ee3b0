package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/interfaces/http/response"
	"justice-airdrop.backend/internal/usecases"
)

type notificationService interface {
	NotifyUser(ctx context.Context, input *entities.NotifyUserInput) (*entities.Notification, error)
	NotifyGroup(ctx context.Context, input *entities.NotifyGroupInput) (*entities.Notification, error)
	ListForUser(ctx context.Context, telegramID string, limit int) ([]*entities.Notification, error)
	UnreadCount(ctx context.Context, telegramID string) (int64, error)
	MarkAllRead(ctx context.Context, telegramID string) (int64, error)
	MarkRead(ctx context.Context, telegramID string, id uint) error
}

// NotificationHandler handles the notification inbox and admin broadcasts
type NotificationHandler struct {
	notificationUsecase notificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// Inbox lists the caller's notifications
// GET /api/v1/notify/me?limit=50
func (h *NotificationHandler) Inbox(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.notificationUsecase.ListForUser(c.Request.Context(), user.TelegramID, queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Notification{}
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": items})
}

// UnreadCount counts the caller's unread notifications
// GET /api/v1/notify/me/count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := h.notificationUsecase.UnreadCount(c.Request.Context(), user.TelegramID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// MarkAllRead marks every notification of the caller as read
// POST /api/v1/notify/me/read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	marked, err := h.notificationUsecase.MarkAllRead(c.Request.Context(), user.TelegramID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "marked": marked})
}

// MarkRead marks one of the caller's notifications as read
// POST /api/v1/notify/read_one/:id
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.notificationUsecase.MarkRead(c.Request.Context(), user.TelegramID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "id": id})
}

// NotifyUser stores and sends a message to one user
// POST /api/v1/notify/user
func (h *NotificationHandler) NotifyUser(c *gin.Context) {
	var input entities.NotifyUserInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id or message"))
		return
	}

	n, err := h.notificationUsecase.NotifyUser(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "id": n.ID})
}

// NotifyGroup stores and sends a message to a group or channel
// POST /api/v1/notify/group
func (h *NotificationHandler) NotifyGroup(c *gin.Context) {
	var input entities.NotifyGroupInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Missing group_id or message"))
		return
	}

	n, err := h.notificationUsecase.NotifyGroup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "id": n.ID})
}
