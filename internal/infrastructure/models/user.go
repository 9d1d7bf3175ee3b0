package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	TelegramID   string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	Username     sql.NullString  `gorm:"type:varchar(255)"`
	Balance      decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	Wallet       sql.NullString  `gorm:"type:varchar(255)"`
	Referrals    int             `gorm:"not null;default:0"`
	Banned       bool            `gorm:"not null;default:false"`
	Verified     bool            `gorm:"not null;default:false"`
	DeviceHash   sql.NullString  `gorm:"type:varchar(255)"`
	ReferralCode sql.NullString  `gorm:"type:varchar(16);uniqueIndex"`
	ReferralLink sql.NullString  `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
