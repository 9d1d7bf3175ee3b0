package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Referral struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	ReferrerID uint            `gorm:"not null;index"`
	ReferredID uint            `gorm:"not null;uniqueIndex"`
	Reward     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	CreatedAt  time.Time
}
