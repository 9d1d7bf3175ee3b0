package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/interfaces/http/response"
	"justice-airdrop.backend/internal/usecases"
	"justice-airdrop.backend/pkg/utils"
)

type reviewService interface {
	Approve(ctx context.Context, id uint) (*entities.ReviewResult, error)
	Reject(ctx context.Context, id uint) (*entities.ReviewResult, error)
	ApproveAll(ctx context.Context) (*entities.BulkReviewResult, error)
	RejectAll(ctx context.Context) (*entities.BulkReviewResult, error)
	Callback(ctx context.Context, input *entities.CallbackInput) (*entities.CallbackResult, error)
	List(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.SubmissionListResponse, error)
}

type reviewRequest struct {
	SubmissionID uint `json:"submission_id"`
}

// ReviewHandler handles moderation of submissions
type ReviewHandler struct {
	submissionUsecase reviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(submissionUsecase *usecases.SubmissionUsecase) *ReviewHandler {
	return &ReviewHandler{submissionUsecase: submissionUsecase}
}

// Approve approves one pending submission and credits the task reward
// POST /api/v1/admin/approve_submission
func (h *ReviewHandler) Approve(c *gin.Context) {
	h.reviewOne(c, h.submissionUsecase.Approve)
}

// Reject rejects one pending submission
// POST /api/v1/admin/reject_submission
func (h *ReviewHandler) Reject(c *gin.Context) {
	h.reviewOne(c, h.submissionUsecase.Reject)
}

func (h *ReviewHandler) reviewOne(c *gin.Context, review func(context.Context, uint) (*entities.ReviewResult, error)) {
	var req reviewRequest
	if !bindJSON(c, &req) || req.SubmissionID == 0 {
		response.Error(c, domainerrors.BadRequest("Missing submission_id"))
		return
	}

	result, err := review(c.Request.Context(), req.SubmissionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ApproveAll approves every pending submission
// POST /api/v1/admin/approve_all
func (h *ReviewHandler) ApproveAll(c *gin.Context) {
	result, err := h.submissionUsecase.ApproveAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "approved": result.Count})
}

// RejectAll rejects every pending submission
// POST /api/v1/admin/reject_all
func (h *ReviewHandler) RejectAll(c *gin.Context) {
	result, err := h.submissionUsecase.RejectAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "rejected": result.Count})
}

// Callback dispatches a review button press
// POST /api/v1/admin/callback
func (h *ReviewHandler) Callback(c *gin.Context) {
	var input entities.CallbackInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Invalid callback payload"))
		return
	}

	result, err := h.submissionUsecase.Callback(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListSubmissions lists submissions for review
// GET /api/v1/admin/submissions?status=pending&page=1&limit=20
func (h *ReviewHandler) ListSubmissions(c *gin.Context) {
	result, err := h.submissionUsecase.List(c.Request.Context(), c.Query("status"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
