package usecases

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/logger"
	"justice-airdrop.backend/pkg/utils"
)

const joinRequiredHint = "You must join the official group and channel before using the bot. Please join and try again."

// SubmissionUsecase runs the proof submission and review workflow
type SubmissionUsecase struct {
	uow            repositories.UnitOfWork
	userRepo       repositories.UserRepository
	taskRepo       repositories.TaskRepository
	submissionRepo repositories.SubmissionRepository
	txRepo         repositories.TransactionRepository
	notifRepo      repositories.NotificationRepository
	dispatcher     Dispatcher
	membership     MembershipChecker
	media          MediaStore
	telegram       config.TelegramConfig
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	submissionRepo repositories.SubmissionRepository,
	txRepo repositories.TransactionRepository,
	notifRepo repositories.NotificationRepository,
	dispatcher Dispatcher,
	membership MembershipChecker,
	media MediaStore,
	telegram config.TelegramConfig,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		uow:            uow,
		userRepo:       userRepo,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		txRepo:         txRepo,
		notifRepo:      notifRepo,
		dispatcher:     dispatcher,
		membership:     membership,
		media:          media,
		telegram:       telegram,
	}
}

// Submit stores a pending submission for an active task and posts it for review
func (u *SubmissionUsecase) Submit(ctx context.Context, user *entities.User, input *entities.SubmitInput) (*entities.SubmitResponse, error) {
	if !u.hasJoined(ctx, user) {
		u.enqueue(entities.OutboundMessage{ChatID: user.TelegramID, Text: joinRequiredHint})
		return nil, domainerrors.Forbidden("User must join group and channel")
	}

	if input.TaskID == 0 {
		return nil, domainerrors.BadRequest("Missing task_id")
	}
	task, err := u.taskRepo.GetByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Task not found")
		}
		return nil, err
	}
	if !task.Active {
		return nil, domainerrors.InvalidState("Task is not active")
	}

	proof := strings.TrimSpace(input.ProofText)
	var fileURL string
	if input.File != nil && input.File.Content != nil {
		fileURL, err = u.media.SaveUpload(input.File.Filename, input.File.Content)
		if err != nil {
			return nil, err
		}
		proof += "\nFile: " + fileURL
	}

	submission := &entities.Submission{
		UserID: user.ID,
		TaskID: task.ID,
		Proof:  proof,
		Status: entities.SubmissionStatusPending,
	}
	if err := u.submissionRepo.Create(ctx, submission); err != nil {
		if fileURL != "" {
			if rmErr := u.media.RemoveUpload(fileURL); rmErr != nil {
				logger.Warn(ctx, "Failed to remove orphaned upload", zap.String("url", fileURL), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	logger.Info(ctx, "Submission created",
		zap.Uint("submission_id", submission.ID),
		zap.Uint("user_id", user.ID),
		zap.Uint("task_id", task.ID),
	)

	if u.telegram.ReviewChannelID != "" {
		u.enqueue(entities.OutboundMessage{
			ChatID:             u.telegram.ReviewChannelID,
			Text:               fmt.Sprintf("New submission #%d by %s:\n%s", submission.ID, html.EscapeString(submitterName(user)), html.EscapeString(proof)),
			ReviewSubmissionID: submission.ID,
		})
	}

	return &entities.SubmitResponse{
		OK:           true,
		SubmissionID: submission.ID,
		Status:       submission.Status,
		FileURL:      fileURL,
	}, nil
}

// Approve moves a pending submission to approved and credits the task reward once
func (u *SubmissionUsecase) Approve(ctx context.Context, id uint) (*entities.ReviewResult, error) {
	return u.reviewOne(ctx, id, entities.SubmissionStatusApproved)
}

// Reject moves a pending submission to rejected without touching the balance
func (u *SubmissionUsecase) Reject(ctx context.Context, id uint) (*entities.ReviewResult, error) {
	return u.reviewOne(ctx, id, entities.SubmissionStatusRejected)
}

// ApproveAll approves every pending submission in one transaction
func (u *SubmissionUsecase) ApproveAll(ctx context.Context) (*entities.BulkReviewResult, error) {
	return u.reviewAll(ctx, entities.SubmissionStatusApproved)
}

// RejectAll rejects every pending submission in one transaction
func (u *SubmissionUsecase) RejectAll(ctx context.Context) (*entities.BulkReviewResult, error) {
	return u.reviewAll(ctx, entities.SubmissionStatusRejected)
}

// Callback dispatches a review button payload onto the matching operation
func (u *SubmissionUsecase) Callback(ctx context.Context, input *entities.CallbackInput) (*entities.CallbackResult, error) {
	result := &entities.CallbackResult{OK: true, Action: input.Action}
	switch input.Action {
	case entities.CallbackApprove, entities.CallbackReject:
		if input.SubmissionID == 0 {
			return nil, domainerrors.BadRequest("Missing submission_id")
		}
		review := u.Approve
		if input.Action == entities.CallbackReject {
			review = u.Reject
		}
		res, err := review(ctx, input.SubmissionID)
		if err != nil {
			return nil, err
		}
		result.SubmissionID = res.SubmissionID
		result.Status = res.Status
		result.Count = 1
	case entities.CallbackApproveAll, entities.CallbackRejectAll:
		bulk := u.ApproveAll
		if input.Action == entities.CallbackRejectAll {
			bulk = u.RejectAll
		}
		res, err := bulk(ctx)
		if err != nil {
			return nil, err
		}
		result.Status = res.Status
		result.Count = res.Count
	default:
		return nil, domainerrors.BadRequest("unknown action")
	}
	return result, nil
}

// ListMine returns the user's submissions, newest first
func (u *SubmissionUsecase) ListMine(ctx context.Context, userID uint) ([]*entities.Submission, error) {
	return u.submissionRepo.ListByUser(ctx, userID)
}

// List returns a page of submissions, optionally filtered by status
func (u *SubmissionUsecase) List(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.SubmissionListResponse, error) {
	st := entities.SubmissionStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, domainerrors.BadRequest("Invalid status")
	}
	items, total, err := u.submissionRepo.List(ctx, st, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &entities.SubmissionListResponse{
		Items: items,
		Meta:  utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	}, nil
}

func (u *SubmissionUsecase) reviewOne(ctx context.Context, id uint, to entities.SubmissionStatus) (*entities.ReviewResult, error) {
	var (
		result *entities.ReviewResult
		msg    *entities.OutboundMessage
	)
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		submission, err := u.submissionRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Submission not found")
			}
			return err
		}
		credited, out, err := u.review(txCtx, submission, to)
		if err != nil {
			return err
		}
		msg = out
		result = &entities.ReviewResult{
			OK:           true,
			SubmissionID: submission.ID,
			Status:       to,
			UserID:       submission.UserID,
			Credited:     credited,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Submission reviewed",
		zap.Uint("submission_id", id),
		zap.String("status", string(to)),
		zap.String("credited", result.Credited.String()),
	)
	if msg != nil {
		u.enqueue(*msg)
	}
	return result, nil
}

func (u *SubmissionUsecase) reviewAll(ctx context.Context, to entities.SubmissionStatus) (*entities.BulkReviewResult, error) {
	var msgs []entities.OutboundMessage
	count := 0
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		pending, err := u.submissionRepo.ListByStatus(txCtx, entities.SubmissionStatusPending)
		if err != nil {
			return err
		}
		for _, submission := range pending {
			_, msg, err := u.review(txCtx, submission, to)
			if errors.Is(err, domainerrors.ErrInvalidState) {
				// Reviewed concurrently since the listing.
				continue
			}
			if err != nil {
				return fmt.Errorf("review submission %d: %w", submission.ID, err)
			}
			count++
			if msg != nil {
				msgs = append(msgs, *msg)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Bulk review completed", zap.String("status", string(to)), zap.Int("count", count))
	for _, msg := range msgs {
		u.enqueue(msg)
	}
	return &entities.BulkReviewResult{OK: true, Status: to, Count: count}, nil
}

// review performs the pending transition inside the caller's transaction and
// returns the credited amount and the Telegram message to send after commit.
func (u *SubmissionUsecase) review(ctx context.Context, submission *entities.Submission, to entities.SubmissionStatus) (decimal.Decimal, *entities.OutboundMessage, error) {
	if submission.Status != entities.SubmissionStatusPending {
		return decimal.Zero, nil, domainerrors.InvalidState("Submission is not pending")
	}
	if err := u.submissionRepo.Transition(ctx, submission.ID, entities.SubmissionStatusPending, to, timeNow()); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidState):
			return decimal.Zero, nil, domainerrors.InvalidState("Submission is not pending")
		case errors.Is(err, domainerrors.ErrNotFound):
			return decimal.Zero, nil, domainerrors.NotFound("Submission not found")
		}
		return decimal.Zero, nil, err
	}

	credited := decimal.Zero
	if to == entities.SubmissionStatusApproved {
		task, err := u.taskRepo.GetByID(ctx, submission.TaskID)
		if err != nil {
			return decimal.Zero, nil, err
		}
		credited = task.Reward
		if err := u.userRepo.AdjustBalance(ctx, submission.UserID, credited); err != nil {
			return decimal.Zero, nil, err
		}
		ledger := &entities.Transaction{
			UserID: submission.UserID,
			Type:   entities.TransactionTypeCredit,
			Amount: credited,
			Status: entities.TransactionStatusCompleted,
		}
		ledger.Metadata.SetValid("submission:" + strconv.FormatUint(uint64(submission.ID), 10))
		if err := u.txRepo.Create(ctx, ledger); err != nil {
			return decimal.Zero, nil, err
		}
	}

	user, err := u.userRepo.GetByID(ctx, submission.UserID)
	if err != nil {
		return decimal.Zero, nil, err
	}
	text := fmt.Sprintf("Your submission #%d has been %s.", submission.ID, to)
	if err := u.notifRepo.Create(ctx, &entities.Notification{
		TargetType: entities.NotificationTargetUser,
		TargetID:   user.TelegramID,
		Message:    text,
	}); err != nil {
		return decimal.Zero, nil, err
	}
	return credited, &entities.OutboundMessage{ChatID: user.TelegramID, Text: text}, nil
}

// hasJoined checks the required group and channel. A failed lookup counts as not joined.
func (u *SubmissionUsecase) hasJoined(ctx context.Context, user *entities.User) bool {
	if u.membership == nil {
		return true
	}
	for _, chat := range []string{u.telegram.AdminGroupID, u.telegram.AdminChannelID} {
		if chat == "" {
			continue
		}
		ok, err := u.membership.IsMember(ctx, chat, user.TelegramID)
		if err != nil {
			logger.Warn(ctx, "Membership check failed",
				zap.String("chat_id", chat),
				zap.String("telegram_id", user.TelegramID),
				zap.Error(err),
			)
			return false
		}
		if !ok {
			return false
		}
	}
	return true
}

func (u *SubmissionUsecase) enqueue(msg entities.OutboundMessage) {
	if u.dispatcher == nil || msg.ChatID == "" {
		return
	}
	u.dispatcher.Enqueue(msg)
}

func submitterName(user *entities.User) string {
	if user.Username.Valid && user.Username.String != "" {
		return "@" + user.Username.String
	}
	return user.TelegramID
}
