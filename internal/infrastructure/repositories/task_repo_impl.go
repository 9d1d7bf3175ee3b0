package repositories

import (
	"context"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// TaskRepository implements task catalog operations
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	m := &models.Task{
		Title:       task.Title,
		Instruction: toNullString(task.Instruction),
		Link:        toNullString(task.Link),
		Reward:      task.Reward,
		Active:      task.Active,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*entities.Task, error) {
	var m models.Task
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return r.toEntity(&m), nil
}

// ListActive returns the active tasks in creation order
func (r *TaskRepository) ListActive(ctx context.Context) ([]*entities.Task, error) {
	var ms []models.Task
	if err := GetDB(ctx, r.db).Where("active = ?", true).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	items := make([]*entities.Task, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items, nil
}

// Count returns the number of tasks
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepository) toEntity(m *models.Task) *entities.Task {
	return &entities.Task{
		ID:          m.ID,
		Title:       m.Title,
		Instruction: fromNullString(m.Instruction),
		Link:        fromNullString(m.Link),
		Reward:      m.Reward,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
	}
}
