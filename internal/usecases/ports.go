package usecases

import (
	"context"
	"io"
	"time"

	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/pkg/jwt"
)

// Dispatcher queues best-effort Telegram deliveries; it must never block
type Dispatcher interface {
	Enqueue(msg entities.OutboundMessage) bool
}

// MembershipChecker asks Telegram whether a user joined a chat
type MembershipChecker interface {
	IsMember(ctx context.Context, chatID, userID string) (bool, error)
}

// MediaStore persists uploaded files and resolves static media URLs
type MediaStore interface {
	SaveUpload(filename string, r io.Reader) (string, error)
	RemoveUpload(url string) error
	SavePromoVideo(filename string, r io.Reader) (string, error)
	LogoURL() (string, bool)
	VideoURL() (string, bool)
}

// TokenService issues and validates user access tokens
type TokenService interface {
	GenerateToken(userID uint, telegramID string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
	Expiry() time.Duration
}

var timeNow = func() time.Time { return time.Now().UTC() }
