package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/infrastructure/models"
)

// SubmissionRepository implements submission data operations
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	m := &models.Submission{
		UserID: submission.UserID,
		TaskID: submission.TaskID,
		Proof:  submission.Proof,
		Status: string(submission.Status),
	}
	if m.Status == "" {
		m.Status = string(entities.SubmissionStatusPending)
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	submission.ID = m.ID
	submission.Status = entities.SubmissionStatus(m.Status)
	submission.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a submission by ID
func (r *SubmissionRepository) GetByID(ctx context.Context, id uint) (*entities.Submission, error) {
	var m models.Submission
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return r.toEntity(&m), nil
}

// ListByUser returns a user's submissions, newest first
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Submission, error) {
	var ms []models.Submission
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// List returns a page of submissions, optionally filtered by status
func (r *SubmissionRepository) List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]*entities.Submission, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", string(status))
		}
		return db
	}

	var total int64
	if err := GetDB(ctx, r.db).Model(&models.Submission{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Submission
	if err := GetDB(ctx, r.db).Scopes(filter).Order("id DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}
	return r.toEntities(ms), total, nil
}

// ListByStatus returns all submissions in a status, oldest first
func (r *SubmissionRepository) ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]*entities.Submission, error) {
	var ms []models.Submission
	if err := GetDB(ctx, r.db).Where("status = ?", string(status)).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toEntities(ms), nil
}

// Transition is a compare-and-set on the status column
func (r *SubmissionRepository) Transition(ctx context.Context, id uint, from, to entities.SubmissionStatus, at time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{"status": string(to), "reviewed_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Submission{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrInvalidState
	}
	return nil
}

// CountByStatus groups submissions by status
func (r *SubmissionRepository) CountByStatus(ctx context.Context) (map[entities.SubmissionStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := GetDB(ctx, r.db).Model(&models.Submission{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[entities.SubmissionStatus]int64, len(rows))
	for _, row := range rows {
		out[entities.SubmissionStatus(row.Status)] = row.Count
	}
	return out, nil
}

// ApprovedSince returns the creation times of approved submissions created at or after since
func (r *SubmissionRepository) ApprovedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var ms []models.Submission
	if err := GetDB(ctx, r.db).Select("created_at").
		Where("status = ? AND created_at >= ?", string(entities.SubmissionStatusApproved), since).
		Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]time.Time, len(ms))
	for i := range ms {
		out[i] = ms[i].CreatedAt
	}
	return out, nil
}

func (r *SubmissionRepository) toEntities(ms []models.Submission) []*entities.Submission {
	items := make([]*entities.Submission, len(ms))
	for i := range ms {
		items[i] = r.toEntity(&ms[i])
	}
	return items
}

func (r *SubmissionRepository) toEntity(m *models.Submission) *entities.Submission {
	return &entities.Submission{
		ID:         m.ID,
		UserID:     m.UserID,
		TaskID:     m.TaskID,
		Proof:      m.Proof,
		Status:     entities.SubmissionStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		ReviewedAt: fromNullTime(m.ReviewedAt),
	}
}
