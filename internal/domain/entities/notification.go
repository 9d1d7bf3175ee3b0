package entities

import "time"

// NotificationTarget says whether a notification addresses a user or a group
type NotificationTarget string

const (
	NotificationTargetUser  NotificationTarget = "user"
	NotificationTargetGroup NotificationTarget = "group"
)

// Notification is a persisted message with read state
type Notification struct {
	ID         uint               `json:"id"`
	TargetType NotificationTarget `json:"target_type"`
	TargetID   string             `json:"target_id"`
	Message    string             `json:"message"`
	Read       bool               `json:"read"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NotifyUserInput represents a message to a single user
type NotifyUserInput struct {
	TelegramID string `json:"telegram_id"`
	Message    string `json:"message"`
}

// NotifyGroupInput represents a message to a group or channel
type NotifyGroupInput struct {
	GroupID string `json:"group_id"`
	Message string `json:"message"`
}

// OutboundMessage is a Telegram message queued for best-effort delivery.
// ReviewSubmissionID attaches the approve/reject keyboard when non-zero.
type OutboundMessage struct {
	ChatID             string
	Text               string
	ReviewSubmissionID uint
}
