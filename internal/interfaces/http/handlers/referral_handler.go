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

type referralService interface {
	Stats(ctx context.Context, userID uint) (*entities.ReferralStats, error)
	Generate(ctx context.Context, userID uint) (*entities.ReferralLink, error)
	Register(ctx context.Context, input *entities.RegisterReferralInput) (*entities.RegisterReferralResult, error)
	Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	Rank(ctx context.Context, userID uint) (*entities.ReferralRank, error)
}

// ReferralHandler handles referral codes and the leaderboard
type ReferralHandler struct {
	referralUsecase referralService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase *usecases.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase}
}

// Stats returns the caller's referral summary
// GET /api/v1/referrals
func (h *ReferralHandler) Stats(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.referralUsecase.Stats(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Rank returns the caller's leaderboard position
// GET /api/v1/referrals/rank
func (h *ReferralHandler) Rank(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	rank, err := h.referralUsecase.Rank(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, rank)
}

// Generate issues a fresh referral code
// POST /api/v1/referrals/generate
func (h *ReferralHandler) Generate(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	link, err := h.referralUsecase.Generate(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "code": link.Code, "link": link.Link})
}

// Leaderboard lists the top referrers
// GET /api/v1/referrals/leaderboard?limit=10
func (h *ReferralHandler) Leaderboard(c *gin.Context) {
	entries, err := h.referralUsecase.Leaderboard(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []*entities.LeaderboardEntry{}
	}
	response.Success(c, http.StatusOK, gin.H{"leaderboard": entries})
}

// Register attributes a referred identity to a referral code
// POST /api/v1/referrals/register
func (h *ReferralHandler) Register(c *gin.Context) {
	var input entities.RegisterReferralInput
	if !bindJSON(c, &input) || input.ReferrerCode == "" || input.ReferredTelegramID == "" {
		response.Error(c, domainerrors.BadRequest("Missing referrer_code or referred_telegram_id"))
		return
	}

	result, err := h.referralUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
