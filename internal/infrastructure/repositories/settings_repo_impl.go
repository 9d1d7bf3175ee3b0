package repositories

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// SettingsRepository implements persisted runtime flags
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetBool reads a flag; a missing row or an unparsable value reads as false
func (r *SettingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	var m models.AppSetting
	res := GetDB(ctx, r.db).Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).Limit(1).Find(&m)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	v, err := strconv.ParseBool(m.Value)
	if err != nil {
		return false, nil
	}
	return v, nil
}

// SetBool upserts a flag
func (r *SettingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	m := &models.AppSetting{
		Key:       key,
		Value:     strconv.FormatBool(value),
		UpdatedAt: time.Now(),
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
}
