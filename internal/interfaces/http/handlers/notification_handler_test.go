package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
)

func TestNotificationHandler_Inbox(t *testing.T) {
	var gotTelegramID string
	var gotMarked uint
	h := &NotificationHandler{notificationUsecase: notificationServiceStub{
		listFn: func(_ context.Context, telegramID string, _ int) ([]*entities.Notification, error) {
			gotTelegramID = telegramID
			return []*entities.Notification{{ID: 1, Message: "hi"}}, nil
		},
		countFn:   func(context.Context, string) (int64, error) { return 3, nil },
		markAllFn: func(context.Context, string) (int64, error) { return 3, nil },
		markOneFn: func(_ context.Context, _ string, id uint) error {
			if id == 99 {
				return domainerrors.NotFound("Notification not found")
			}
			gotMarked = id
			return nil
		},
	}}
	r := newRouter(testUser())
	r.GET("/notify/me", h.Inbox)
	r.GET("/notify/me/count", h.UnreadCount)
	r.POST("/notify/me/read", h.MarkAllRead)
	r.POST("/notify/read_one/:id", h.MarkRead)

	w := doJSON(r, http.MethodGet, "/notify/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "700", gotTelegramID)
	assert.Len(t, decodeBody(t, w)["notifications"], 1)

	assert.JSONEq(t, `{"count":3}`, doJSON(r, http.MethodGet, "/notify/me/count", nil).Body.String())
	assert.JSONEq(t, `{"ok":true,"marked":3}`, doJSON(r, http.MethodPost, "/notify/me/read", nil).Body.String())

	w = doJSON(r, http.MethodPost, "/notify/read_one/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), gotMarked)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/notify/read_one/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/notify/read_one/x", nil).Code)
}

func TestNotificationHandler_Broadcasts(t *testing.T) {
	h := &NotificationHandler{notificationUsecase: notificationServiceStub{
		notifyUserFn: func(_ context.Context, input *entities.NotifyUserInput) (*entities.Notification, error) {
			if input.Message == "" {
				return nil, domainerrors.BadRequest("Missing telegram_id or message")
			}
			return &entities.Notification{ID: 12}, nil
		},
		notifyGroupFn: func(context.Context, *entities.NotifyGroupInput) (*entities.Notification, error) {
			return &entities.Notification{ID: 13}, nil
		},
	}}
	r := newRouter(nil)
	r.POST("/notify/user", h.NotifyUser)
	r.POST("/notify/group", h.NotifyGroup)

	w := doJSON(r, http.MethodPost, "/notify/user", map[string]string{"telegram_id": "100", "message": "hello"})
	assert.JSONEq(t, `{"ok":true,"id":12}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/notify/user", map[string]string{"telegram_id": "100"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/notify/group", map[string]string{"group_id": "-100", "message": "hello"})
	assert.JSONEq(t, `{"ok":true,"id":13}`, w.Body.String())
}
