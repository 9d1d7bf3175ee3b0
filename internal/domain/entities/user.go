package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// User is an airdrop participant keyed by their Telegram identity
type User struct {
	ID           uint            `json:"id"`
	TelegramID   string          `json:"telegram_id"`
	Username     null.String     `json:"username"`
	Balance      decimal.Decimal `json:"balance"`
	Wallet       null.String     `json:"wallet"`
	Referrals    int             `json:"referrals"`
	Banned       bool            `json:"banned"`
	Verified     bool            `json:"verified"`
	DeviceHash   null.String     `json:"-"`
	ReferralCode null.String     `json:"referral_code"`
	ReferralLink null.String     `json:"referral_link"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CanAct reports whether the user may use verified-only features
func (u *User) CanAct() bool {
	return u != nil && u.Verified && !u.Banned
}

// DisplayName falls back to "Anonymous" for users without a username
func (u *User) DisplayName() string {
	if u.Username.Valid && u.Username.String != "" {
		return u.Username.String
	}
	return "Anonymous"
}

// StartInput is sent by the bot or web app on first contact
type StartInput struct {
	TelegramID string `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
	DeviceHash string `json:"device_hash"`
}

// RequiredChats tells the client which chats must be joined before verification
type RequiredChats struct {
	Group   bool `json:"group"`
	Channel bool `json:"channel"`
}

// StartResponse is returned by the start operation
type StartResponse struct {
	UserID   uint          `json:"user_id"`
	Verified bool          `json:"verified"`
	Required RequiredChats `json:"required"`
}

// VerifyInput marks a user verified after off-band membership and captcha checks
type VerifyInput struct {
	TelegramID string `json:"telegram_id" form:"telegram_id" binding:"required"`
	DeviceHash string `json:"device_hash" form:"device_hash"`
}

// VerifyResponse carries the issued access token
type VerifyResponse struct {
	OK          bool   `json:"ok"`
	Verified    bool   `json:"verified"`
	UserID      uint   `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AccountView is the profile shown by the web app
type AccountView struct {
	ID              uint            `json:"id"`
	TelegramID      string          `json:"telegram_id"`
	Username        null.String     `json:"username"`
	Balance         decimal.Decimal `json:"balance"`
	WalletConnected bool            `json:"wallet_connected"`
	WalletAddress   null.String     `json:"wallet_address"`
	Verified        bool            `json:"verified"`
	CreatedAt       time.Time       `json:"created_at"`
}
