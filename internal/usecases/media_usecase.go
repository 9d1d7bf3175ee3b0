package usecases

import (
	"context"

	"go.uber.org/zap"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/pkg/logger"
)

// MediaUsecase exposes the static branding media
type MediaUsecase struct {
	store MediaStore
}

// NewMediaUsecase creates a new media usecase
func NewMediaUsecase(store MediaStore) *MediaUsecase {
	return &MediaUsecase{store: store}
}

// LogoURL returns the logo URL, or nil when no logo is installed
func (u *MediaUsecase) LogoURL() *string {
	return optionalURL(u.store.LogoURL())
}

// VideoURL returns the promo video URL, or nil when none is uploaded
func (u *MediaUsecase) VideoURL() *string {
	return optionalURL(u.store.VideoURL())
}

// UploadVideo replaces the promo video
func (u *MediaUsecase) UploadVideo(ctx context.Context, file *entities.Attachment) (string, error) {
	if file == nil || file.Content == nil {
		return "", domainerrors.BadRequest("Missing file")
	}
	url, err := u.store.SavePromoVideo(file.Filename, file.Content)
	if err != nil {
		return "", err
	}
	logger.Info(ctx, "Promo video uploaded", zap.String("url", url), zap.Int64("size", file.Size))
	return url, nil
}

func optionalURL(url string, ok bool) *string {
	if !ok {
		return nil
	}
	return &url
}
