package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction rows are written once and never updated
type Transaction struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	UserID    uint            `gorm:"not null;index"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Wallet    sql.NullString  `gorm:"type:varchar(255)"`
	Status    string          `gorm:"type:varchar(20);not null"`
	Metadata  sql.NullString  `gorm:"type:text"`
	CreatedAt time.Time
}
