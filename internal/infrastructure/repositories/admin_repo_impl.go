package repositories

import (
	"context"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// AdminRepository implements admin record operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	m := &models.Admin{
		TelegramID:      admin.TelegramID,
		IsOwner:         admin.IsOwner,
		IsActive:        admin.IsActive,
		AllowedCommands: toNullString(admin.AllowedCommands),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	admin.ID = m.ID
	admin.AddedAt = m.AddedAt
	return nil
}

// GetByTelegramID gets an admin by Telegram id regardless of active state
func (r *AdminRepository) GetByTelegramID(ctx context.Context, telegramID string) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).Where("telegram_id = ?", telegramID).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return r.toEntity(&m), nil
}

// SetActive enables or disables an admin
func (r *AdminRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.update(ctx, id, "is_active", active)
}

// SetOwner grants or revokes the owner flag
func (r *AdminRepository) SetOwner(ctx context.Context, id uint, owner bool) error {
	return r.update(ctx, id, "is_owner", owner)
}

// SetAllowedCommands overwrites the free-text command list
func (r *AdminRepository) SetAllowedCommands(ctx context.Context, id uint, commands string) error {
	return r.update(ctx, id, "allowed_commands", commands)
}

func (r *AdminRepository) update(ctx context.Context, id uint, column string, value interface{}) error {
	result := GetDB(ctx, r.db).Model(&models.Admin{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns all admins
func (r *AdminRepository) List(ctx context.Context) ([]*entities.Admin, error) {
	var ms []models.Admin
	if err := GetDB(ctx, r.db).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Admin, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, nil
}

func (r *AdminRepository) toEntity(m *models.Admin) *entities.Admin {
	return &entities.Admin{
		ID:              m.ID,
		TelegramID:      m.TelegramID,
		IsOwner:         m.IsOwner,
		IsActive:        m.IsActive,
		AllowedCommands: fromNullString(m.AllowedCommands),
		AddedAt:         m.AddedAt,
	}
}
