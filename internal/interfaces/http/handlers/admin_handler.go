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

type adminService interface {
	AddAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error)
	RemoveAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error)
	SetCommands(ctx context.Context, input *entities.AdminCommandsInput) (*entities.Admin, error)
	ListAdmins(ctx context.Context) ([]*entities.Admin, error)
	Ban(ctx context.Context, input *entities.UserActionInput) error
	Unban(ctx context.Context, input *entities.UserActionInput) error
}

// AdminHandler handles owner-only administration
type AdminHandler struct {
	adminUsecase adminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// AddAdmin creates or reactivates an admin
// POST /api/v1/admin/add_admin
func (h *AdminHandler) AddAdmin(c *gin.Context) {
	h.changeAdmin(c, h.adminUsecase.AddAdmin)
}

// RemoveAdmin deactivates an admin
// POST /api/v1/admin/remove_admin
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	h.changeAdmin(c, h.adminUsecase.RemoveAdmin)
}

func (h *AdminHandler) changeAdmin(c *gin.Context, change func(context.Context, *entities.AdminActionInput) (*entities.Admin, error)) {
	var input entities.AdminActionInput
	if !bindJSON(c, &input) || input.TelegramID == "" {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id"))
		return
	}

	admin, err := change(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"ok":          true,
		"admin_id":    admin.ID,
		"telegram_id": admin.TelegramID,
		"is_active":   admin.IsActive,
	})
}

// SetCommands sets the command list of an admin
// POST /api/v1/admin/set_commands
func (h *AdminHandler) SetCommands(c *gin.Context) {
	var input entities.AdminCommandsInput
	if !bindJSON(c, &input) || input.TelegramID == "" {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id"))
		return
	}

	admin, err := h.adminUsecase.SetCommands(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"ok":               true,
		"admin_id":         admin.ID,
		"allowed_commands": admin.AllowedCommands,
	})
}

// ListAdmins lists all admins
// GET /api/v1/admin/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminUsecase.ListAdmins(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if admins == nil {
		admins = []*entities.Admin{}
	}
	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// Ban bans a user
// POST /api/v1/admin/ban
func (h *AdminHandler) Ban(c *gin.Context) {
	h.setBanned(c, true, h.adminUsecase.Ban)
}

// Unban lifts a ban
// POST /api/v1/admin/unban
func (h *AdminHandler) Unban(c *gin.Context) {
	h.setBanned(c, false, h.adminUsecase.Unban)
}

func (h *AdminHandler) setBanned(c *gin.Context, banned bool, apply func(context.Context, *entities.UserActionInput) error) {
	var input entities.UserActionInput
	if !bindJSON(c, &input) || input.TelegramID == "" {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id"))
		return
	}

	if err := apply(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "telegram_id": input.TelegramID, "banned": banned})
}
