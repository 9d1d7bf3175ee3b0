package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/pkg/logger"
)

type botAPI interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	GetChatMember(ctx context.Context, params *telego.GetChatMemberParams) (telego.ChatMember, error)
}

var newBot = func(token string) (botAPI, error) {
	return telego.NewBot(token)
}

// memberStatuses are the chat member states that count as joined
var memberStatuses = map[string]bool{
	telego.MemberStatusCreator:       true,
	telego.MemberStatusAdministrator: true,
	telego.MemberStatusMember:        true,
	telego.MemberStatusRestricted:    true,
}

// Client delivers messages and checks chat membership through the Bot API
type Client struct {
	bot botAPI
}

// NewClient creates a Bot API client. An empty token yields a no-op client.
func NewClient(token string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return &Client{}, nil
	}
	bot, err := newBot(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return &Client{bot: bot}, nil
}

// Enabled reports whether a bot token was configured
func (c *Client) Enabled() bool {
	return c.bot != nil
}

// Send posts msg, attaching the review keyboard when it carries a submission id
func (c *Client) Send(ctx context.Context, msg entities.OutboundMessage) error {
	if c.bot == nil {
		logger.Debug(ctx, "Telegram disabled, message not sent", zap.String("chat_id", msg.ChatID))
		return nil
	}
	chatID, err := ParseChatID(msg.ChatID)
	if err != nil {
		return err
	}
	params := tu.Message(chatID, msg.Text).WithParseMode(telego.ModeHTML)
	if msg.ReviewSubmissionID != 0 {
		params = params.WithReplyMarkup(ReviewKeyboard(msg.ReviewSubmissionID))
	}
	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message to %s: %w", msg.ChatID, err)
	}
	return nil
}

// IsMember reports whether userID has joined chatID. Without a bot token every user counts as a member.
func (c *Client) IsMember(ctx context.Context, chatID, userID string) (bool, error) {
	if c.bot == nil || strings.TrimSpace(chatID) == "" {
		return true, nil
	}
	chat, err := ParseChatID(chatID)
	if err != nil {
		return false, err
	}
	uid, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return false, fmt.Errorf("invalid telegram user id %q: %w", userID, err)
	}
	member, err := c.bot.GetChatMember(ctx, &telego.GetChatMemberParams{ChatID: chat, UserID: uid})
	if err != nil {
		return false, fmt.Errorf("get chat member: %w", err)
	}
	return memberStatuses[member.MemberStatus()], nil
}

// ParseChatID accepts numeric ids (including negative group ids) and @usernames
func ParseChatID(raw string) (telego.ChatID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return telego.ChatID{}, fmt.Errorf("empty chat id")
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return tu.ID(id), nil
	}
	if !strings.HasPrefix(raw, "@") {
		raw = "@" + raw
	}
	return tu.Username(raw), nil
}

// ReviewKeyboard builds the moderation buttons of a submission post
func ReviewKeyboard(submissionID uint) *telego.InlineKeyboardMarkup {
	id := strconv.FormatUint(uint64(submissionID), 10)
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ Approve").WithCallbackData("approve:"+id),
			tu.InlineKeyboardButton("❌ Reject").WithCallbackData("reject:"+id),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ Approve all").WithCallbackData("approve_all"),
			tu.InlineKeyboardButton("❌ Reject all").WithCallbackData("reject_all"),
		),
	)
}
