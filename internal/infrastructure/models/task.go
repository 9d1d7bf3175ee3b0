package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Task struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Instruction sql.NullString  `gorm:"type:text"`
	Link        sql.NullString  `gorm:"type:text"`
	Reward      decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	Active      bool            `gorm:"not null;index"`
	CreatedAt   time.Time
}
