package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"justice-airdrop.backend/pkg/utils"
)

// WithdrawalStatus represents the review state of a withdrawal
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "pending"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a payout request; the balance is debited when it is created
type Withdrawal struct {
	ID         uint             `json:"id"`
	UserID     uint             `json:"user_id"`
	Amount     decimal.Decimal  `json:"amount"`
	Wallet     null.String      `json:"wallet"`
	Status     WithdrawalStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	ReviewedAt null.Time        `json:"reviewed_at"`
}

// WithdrawInput represents a withdrawal request body
type WithdrawInput struct {
	Amount decimal.Decimal `json:"amount"`
}

// PresaleInput represents a presale request body
type PresaleInput struct {
	Amount decimal.Decimal `json:"amount"`
	Wallet string          `json:"wallet"`
}

// SetWalletInput represents a wallet address update
type SetWalletInput struct {
	Wallet string `json:"wallet"`
}

// WithdrawalResult is returned after a successful withdrawal request
type WithdrawalResult struct {
	OK            bool            `json:"ok"`
	WithdrawalID  uint            `json:"withdrawal_id"`
	TransactionID uint            `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
}

// WithdrawalReviewResult is returned after an admin approves or rejects a withdrawal
type WithdrawalReviewResult struct {
	OK           bool             `json:"ok"`
	WithdrawalID uint             `json:"withdrawal_id"`
	Status       WithdrawalStatus `json:"status"`
	Refunded     decimal.Decimal  `json:"refunded"`
}

// WalletInfo summarises a user's wallet
type WalletInfo struct {
	Balance     decimal.Decimal `json:"balance"`
	Wallet      null.String     `json:"wallet"`
	Pending     int64           `json:"pending"`
	TotalEarned decimal.Decimal `json:"total_earned"`
}

// BalanceAdjustInput is the owner-only balance adjustment payload
type BalanceAdjustInput struct {
	TelegramID string          `json:"telegram_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// BalanceAdjustResult is returned after a balance adjustment
type BalanceAdjustResult struct {
	OK         bool            `json:"ok"`
	TelegramID string          `json:"telegram_id"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// WithdrawalListResponse is a page of withdrawals
type WithdrawalListResponse struct {
	Items []*Withdrawal        `json:"items"`
	Meta  utils.PaginationMeta `json:"meta"`
}
