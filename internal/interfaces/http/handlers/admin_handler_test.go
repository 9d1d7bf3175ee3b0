package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
)

func TestAdminHandler_AdminManagement(t *testing.T) {
	h := &AdminHandler{adminUsecase: adminServiceStub{
		addFn: func(_ context.Context, input *entities.AdminActionInput) (*entities.Admin, error) {
			return &entities.Admin{ID: 3, TelegramID: input.TelegramID, IsActive: true}, nil
		},
		removeFn: func(context.Context, *entities.AdminActionInput) (*entities.Admin, error) {
			return nil, domainerrors.NotFound("Admin not found")
		},
		setCommandsFn: func(_ context.Context, input *entities.AdminCommandsInput) (*entities.Admin, error) {
			return &entities.Admin{ID: 3, AllowedCommands: null.StringFrom(input.AllowedCommands)}, nil
		},
		listFn: func(context.Context) ([]*entities.Admin, error) { return nil, nil },
	}}
	r := newRouter(nil)
	r.POST("/admin/add_admin", h.AddAdmin)
	r.POST("/admin/remove_admin", h.RemoveAdmin)
	r.POST("/admin/set_commands", h.SetCommands)
	r.GET("/admin/admins", h.ListAdmins)

	w := doJSON(r, http.MethodPost, "/admin/add_admin", map[string]string{"telegram_id": "555"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"admin_id":3,"telegram_id":"555","is_active":true}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/admin/add_admin", map[string]string{}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/admin/remove_admin", map[string]string{"telegram_id": "1"}).Code)

	w = doJSON(r, http.MethodPost, "/admin/set_commands", map[string]string{"telegram_id": "555", "allowed_commands": "approve,reject"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "approve,reject", decodeBody(t, w)["allowed_commands"])

	assert.JSONEq(t, `{"admins":[]}`, doJSON(r, http.MethodGet, "/admin/admins", nil).Body.String())
}

func TestAdminHandler_BanUnban(t *testing.T) {
	h := &AdminHandler{adminUsecase: adminServiceStub{
		banFn: func(_ context.Context, input *entities.UserActionInput) error {
			if input.TelegramID == "missing" {
				return domainerrors.NotFound("User not found")
			}
			return nil
		},
		unbanFn: func(context.Context, *entities.UserActionInput) error { return nil },
	}}
	r := newRouter(nil)
	r.POST("/admin/ban", h.Ban)
	r.POST("/admin/unban", h.Unban)

	assert.JSONEq(t, `{"ok":true,"telegram_id":"100","banned":true}`,
		doJSON(r, http.MethodPost, "/admin/ban", map[string]string{"telegram_id": "100"}).Body.String())
	assert.JSONEq(t, `{"ok":true,"telegram_id":"100","banned":false}`,
		doJSON(r, http.MethodPost, "/admin/unban", map[string]string{"telegram_id": "100"}).Body.String())
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/admin/ban", map[string]string{"telegram_id": "missing"}).Code)
}
