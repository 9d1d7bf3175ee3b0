package models

import "time"

type AppSetting struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (AppSetting) TableName() string {
	return "app_settings"
}
