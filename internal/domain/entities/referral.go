package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralReward is credited to the referrer for each distinct referred identity
var ReferralReward = decimal.NewFromInt(10)

// Referral attributes a referred user to exactly one referrer
type Referral struct {
	ID         uint            `json:"id"`
	ReferrerID uint            `json:"referrer_id"`
	ReferredID uint            `json:"referred_id"`
	Reward     decimal.Decimal `json:"reward"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ReferralStats is a user's own referral summary
type ReferralStats struct {
	Username     string          `json:"username"`
	Referrals    int             `json:"referrals"`
	Balance      decimal.Decimal `json:"balance"`
	ReferralCode string          `json:"referral_code"`
	ReferralLink string          `json:"referral_link"`
}

// LeaderboardEntry is one row of the referral leaderboard
type LeaderboardEntry struct {
	Username  string          `json:"username"`
	Referrals int             `json:"referrals"`
	Balance   decimal.Decimal `json:"balance"`
}

// ReferralRank is a user's leaderboard position
type ReferralRank struct {
	Username   string `json:"username"`
	Referrals  int    `json:"referrals"`
	Rank       int64  `json:"rank"`
	TotalUsers int64  `json:"total_users"`
}

// ReferralLink is a freshly generated referral code and URL
type ReferralLink struct {
	Code string `json:"code"`
	Link string `json:"link"`
}

// RegisterReferralInput registers a referred identity against a code
type RegisterReferralInput struct {
	ReferrerCode       string `json:"referrer_code"`
	ReferredTelegramID string `json:"referred_telegram_id"`
}

// RegisterReferralResult is returned after a referral is recorded
type RegisterReferralResult struct {
	OK         bool            `json:"ok"`
	ReferrerID uint            `json:"referrer_id"`
	ReferredID uint            `json:"referred_id"`
	Referrals  int             `json:"referrals"`
	Balance    decimal.Decimal `json:"balance"`
}
