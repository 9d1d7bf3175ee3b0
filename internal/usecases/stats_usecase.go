package usecases

import (
	"context"
	"time"

	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
)

const (
	DefaultSeriesMinutes  = 60
	DefaultSeriesInterval = 60
	maxSeriesBuckets      = 10000
)

// StatsUsecase computes dashboard counters and time series
type StatsUsecase struct {
	userRepo       repositories.UserRepository
	taskRepo       repositories.TaskRepository
	submissionRepo repositories.SubmissionRepository
	withdrawalRepo repositories.WithdrawalRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	submissionRepo repositories.SubmissionRepository,
	withdrawalRepo repositories.WithdrawalRepository,
) *StatsUsecase {
	return &StatsUsecase{
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

// Stats returns the headline counters
func (u *StatsUsecase) Stats(ctx context.Context) (*entities.Stats, error) {
	summary, err := u.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.Stats{
		Users:        summary.Users,
		Tasks:        summary.Tasks,
		Submissions:  summary.Submissions.Total,
		Withdrawals:  summary.Withdrawals.Total,
		TotalBalance: summary.TotalBalance,
	}, nil
}

// Summary returns counters broken down by status
func (u *StatsUsecase) Summary(ctx context.Context) (*entities.StatsSummary, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := u.taskRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	submissions, err := u.submissionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	withdrawals, err := u.withdrawalRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	balance, err := u.userRepo.SumBalance(ctx)
	if err != nil {
		return nil, err
	}

	summary := &entities.StatsSummary{
		Users: users,
		Tasks: tasks,
		Submissions: entities.SubmissionCounts{
			Pending:  submissions[entities.SubmissionStatusPending],
			Approved: submissions[entities.SubmissionStatusApproved],
			Rejected: submissions[entities.SubmissionStatusRejected],
		},
		Withdrawals: entities.WithdrawalCounts{
			Pending: withdrawals[entities.WithdrawalStatusPending],
		},
		TotalBalance: balance,
	}
	for _, n := range submissions {
		summary.Submissions.Total += n
	}
	for _, n := range withdrawals {
		summary.Withdrawals.Total += n
	}
	return summary, nil
}

// Series counts approved submissions over the last minutes, bucketed by
// interval seconds. Buckets start on epoch multiples of the interval.
func (u *StatsUsecase) Series(ctx context.Context, minutes, interval int) (*entities.TimeSeries, error) {
	if minutes <= 0 || interval <= 0 {
		return nil, domainerrors.BadRequest("minutes and interval must be positive")
	}
	window := int64(minutes) * 60
	step := int64(interval)
	buckets := window/step + 1
	if buckets > maxSeriesBuckets {
		return nil, domainerrors.BadRequest("Too many buckets")
	}

	now := timeNow()
	start := now.Add(-time.Duration(window) * time.Second)
	base := start.Unix() - floorMod(start.Unix(), step)

	times, err := u.submissionRepo.ApprovedSince(ctx, start)
	if err != nil {
		return nil, err
	}

	series := &entities.TimeSeries{
		Labels: make([]string, buckets),
		Counts: make([]int, buckets),
	}
	for i := int64(0); i < buckets; i++ {
		series.Labels[i] = time.Unix(base+i*step, 0).UTC().Format(time.RFC3339)
	}
	for _, t := range times {
		idx := (t.Unix() - base) / step
		if t.Unix() >= base && idx < buckets {
			series.Counts[idx]++
		}
	}
	return series, nil
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
