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

type mediaService interface {
	LogoURL() *string
	VideoURL() *string
	UploadVideo(ctx context.Context, file *entities.Attachment) (string, error)
}

// MediaHandler serves branding media URLs and the promo video upload
type MediaHandler struct {
	mediaUsecase mediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaUsecase *usecases.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase}
}

// Logo returns the logo URL or null
// GET /api/v1/media/logo
func (h *MediaHandler) Logo(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"url": h.mediaUsecase.LogoURL()})
}

// Video returns the promo video URL or null
// GET /api/v1/media/video
func (h *MediaHandler) Video(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"url": h.mediaUsecase.VideoURL()})
}

// UploadVideo replaces the promo video
// POST /api/v1/admin/upload_video (multipart: file)
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Missing file"))
		return
	}
	file, closeFile, err := openAttachment(header)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFile()

	url, err := h.mediaUsecase.UploadVideo(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "url": url})
}
