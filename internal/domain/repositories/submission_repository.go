package repositories

import (
	"context"
	"time"

	"justice-airdrop.backend/internal/domain/entities"
)

// SubmissionRepository defines submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *entities.Submission) error
	GetByID(ctx context.Context, id uint) (*entities.Submission, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Submission, error)
	List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]*entities.Submission, int64, error)
	ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]*entities.Submission, error)
	// Transition moves a submission from one status to another. It returns
	// ErrInvalidState when the row exists but is not in the from status.
	Transition(ctx context.Context, id uint, from, to entities.SubmissionStatus, at time.Time) error
	CountByStatus(ctx context.Context) (map[entities.SubmissionStatus]int64, error)
	ApprovedSince(ctx context.Context, since time.Time) ([]time.Time, error)
}
