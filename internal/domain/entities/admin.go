package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Admin grants moderation rights to a Telegram identity
type Admin struct {
	ID              uint        `json:"id"`
	TelegramID      string      `json:"telegram_id"`
	IsOwner         bool        `json:"is_owner"`
	IsActive        bool        `json:"is_active"`
	AllowedCommands null.String `json:"allowed_commands"`
	AddedAt         time.Time   `json:"added_at"`
}

// AdminActionInput names the admin being added or removed
type AdminActionInput struct {
	TelegramID string `json:"telegram_id"`
}

// AdminCommandsInput sets the free-text command list of an admin
type AdminCommandsInput struct {
	TelegramID      string `json:"telegram_id"`
	AllowedCommands string `json:"allowed_commands"`
}

// UserActionInput names a user by Telegram id (ban/unban)
type UserActionInput struct {
	TelegramID string `json:"telegram_id"`
}
