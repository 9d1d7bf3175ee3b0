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

type authService interface {
	Start(ctx context.Context, input *entities.StartInput) (*entities.StartResponse, error)
	Verify(ctx context.Context, input *entities.VerifyInput) (*entities.VerifyResponse, error)
	Me(ctx context.Context, userID uint) (*entities.AccountView, error)
}

// AuthHandler handles user onboarding
type AuthHandler struct {
	authUsecase authService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Start registers a Telegram user on first contact
// POST /api/v1/auth/start
func (h *AuthHandler) Start(c *gin.Context) {
	var input entities.StartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id"))
		return
	}

	result, err := h.authUsecase.Start(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Verify marks a user verified and issues an access token
// POST /api/v1/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var input entities.VerifyInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing telegram_id"))
		return
	}

	result, err := h.authUsecase.Verify(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Me returns the caller's account
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.authUsecase.Me(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}
