package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	UserID     uint            `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Wallet     sql.NullString  `gorm:"type:varchar(255)"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time
	ReviewedAt sql.NullTime
}
