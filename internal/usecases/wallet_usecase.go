package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/domain/repositories"
	"justice-airdrop.backend/pkg/logger"
	"justice-airdrop.backend/pkg/utils"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

// WalletUsecase manages balances, withdrawals and the withdrawal gate
type WalletUsecase struct {
	uow            repositories.UnitOfWork
	userRepo       repositories.UserRepository
	withdrawalRepo repositories.WithdrawalRepository
	txRepo         repositories.TransactionRepository
	settingsRepo   repositories.SettingsRepository
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	uow repositories.UnitOfWork,
	userRepo repositories.UserRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	txRepo repositories.TransactionRepository,
	settingsRepo repositories.SettingsRepository,
) *WalletUsecase {
	return &WalletUsecase{
		uow:            uow,
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		txRepo:         txRepo,
		settingsRepo:   settingsRepo,
	}
}

// Info summarises the user's wallet
func (u *WalletUsecase) Info(ctx context.Context, userID uint) (*entities.WalletInfo, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}
	pending, err := u.withdrawalRepo.CountPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	earned, err := u.txRepo.Sum(ctx, userID, entities.TransactionTypeCredit, entities.TransactionStatusCompleted)
	if err != nil {
		return nil, err
	}
	return &entities.WalletInfo{
		Balance:     user.Balance,
		Wallet:      user.Wallet,
		Pending:     pending,
		TotalEarned: earned,
	}, nil
}

// Transactions lists the user's ledger entries, newest first
func (u *WalletUsecase) Transactions(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error) {
	return u.txRepo.ListByUser(ctx, userID, utils.ClampLimit(limit, defaultTransactionLimit, maxTransactionLimit))
}

// SetWallet overwrites the user's payout address
func (u *WalletUsecase) SetWallet(ctx context.Context, userID uint, input *entities.SetWalletInput) error {
	wallet := strings.TrimSpace(input.Wallet)
	if wallet == "" {
		return domainerrors.BadRequest("Missing wallet")
	}
	return u.userRepo.SetWallet(ctx, userID, wallet)
}

// RequestWithdrawal debits the balance and records a pending withdrawal.
// The gate is read inside the same transaction as the debit.
func (u *WalletUsecase) RequestWithdrawal(ctx context.Context, userID uint, input *entities.WithdrawInput) (*entities.WithdrawalResult, error) {
	var result *entities.WithdrawalResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		open, err := u.settingsRepo.GetBool(txCtx, repositories.SettingWithdrawalsOpen)
		if err != nil {
			return err
		}
		if !open {
			return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "Withdrawals are currently closed", domainerrors.ErrWithdrawalsClosed)
		}
		if !input.Amount.IsPositive() {
			return domainerrors.BadRequest("Invalid amount")
		}

		if err := u.userRepo.AdjustBalance(txCtx, userID, input.Amount.Neg()); err != nil {
			switch {
			case errors.Is(err, domainerrors.ErrInsufficientFunds):
				return domainerrors.BadRequest("Invalid amount")
			case errors.Is(err, domainerrors.ErrNotFound):
				return domainerrors.NotFound("User not found")
			}
			return err
		}

		user, err := u.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}

		withdrawal := &entities.Withdrawal{
			UserID: userID,
			Amount: input.Amount,
			Wallet: user.Wallet,
			Status: entities.WithdrawalStatusPending,
		}
		if err := u.withdrawalRepo.Create(txCtx, withdrawal); err != nil {
			return err
		}

		ledger := &entities.Transaction{
			UserID: userID,
			Type:   entities.TransactionTypeWithdrawal,
			Amount: input.Amount,
			Wallet: user.Wallet,
			Status: entities.TransactionStatusPending,
		}
		ledger.Metadata.SetValid("withdrawal:" + strconv.FormatUint(uint64(withdrawal.ID), 10))
		if err := u.txRepo.Create(txCtx, ledger); err != nil {
			return err
		}

		result = &entities.WithdrawalResult{
			OK:            true,
			WithdrawalID:  withdrawal.ID,
			TransactionID: ledger.ID,
			Amount:        input.Amount,
			Balance:       user.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Withdrawal requested",
		zap.Uint("user_id", userID),
		zap.Uint("withdrawal_id", result.WithdrawalID),
		zap.String("amount", result.Amount.String()),
	)
	return result, nil
}

// Presale is not offered; every request is refused.
func (u *WalletUsecase) Presale(_ context.Context, _ uint, _ *entities.PresaleInput) error {
	return domainerrors.ServiceUnavailable("Presale is not available at the moment")
}

// AddBalance applies a signed adjustment to a user's balance.
// No ledger entry is written for these adjustments.
func (u *WalletUsecase) AddBalance(ctx context.Context, input *entities.BalanceAdjustInput) (*entities.BalanceAdjustResult, error) {
	telegramID := strings.TrimSpace(input.TelegramID)
	if telegramID == "" {
		return nil, domainerrors.BadRequest("Missing telegram_id")
	}

	var result *entities.BalanceAdjustResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetByTelegramID(txCtx, telegramID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("User not found")
			}
			return err
		}
		if err := u.userRepo.AdjustBalance(txCtx, user.ID, input.Amount); err != nil {
			if errors.Is(err, domainerrors.ErrInsufficientFunds) {
				return domainerrors.BadRequest("Balance cannot go below zero")
			}
			return err
		}
		updated, err := u.userRepo.GetByID(txCtx, user.ID)
		if err != nil {
			return err
		}
		result = &entities.BalanceAdjustResult{
			OK:         true,
			TelegramID: telegramID,
			NewBalance: updated.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Balance adjusted",
		zap.String("telegram_id", telegramID),
		zap.String("delta", input.Amount.String()),
		zap.String("balance", result.NewBalance.String()),
	)
	return result, nil
}

// SetWithdrawalsOpen flips the persisted withdrawal gate
func (u *WalletUsecase) SetWithdrawalsOpen(ctx context.Context, open bool) error {
	if err := u.settingsRepo.SetBool(ctx, repositories.SettingWithdrawalsOpen, open); err != nil {
		return err
	}
	logger.Info(ctx, "Withdrawal gate changed", zap.Bool("open", open))
	return nil
}

// WithdrawalsOpen reports the current gate state
func (u *WalletUsecase) WithdrawalsOpen(ctx context.Context) (bool, error) {
	return u.settingsRepo.GetBool(ctx, repositories.SettingWithdrawalsOpen)
}

// ListWithdrawals returns a page of withdrawals, optionally filtered by status
func (u *WalletUsecase) ListWithdrawals(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.WithdrawalListResponse, error) {
	st := entities.WithdrawalStatus(strings.ToLower(strings.TrimSpace(status)))
	switch st {
	case "", entities.WithdrawalStatusPending, entities.WithdrawalStatusApproved, entities.WithdrawalStatusRejected:
	default:
		return nil, domainerrors.BadRequest("Invalid status")
	}
	items, total, err := u.withdrawalRepo.List(ctx, st, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		return nil, err
	}
	return &entities.WithdrawalListResponse{
		Items: items,
		Meta:  utils.CalculateMeta(total, pagination.Page, pagination.Limit),
	}, nil
}

// ApproveWithdrawal marks a pending withdrawal as paid out
func (u *WalletUsecase) ApproveWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error) {
	return u.reviewWithdrawal(ctx, id, entities.WithdrawalStatusApproved)
}

// RejectWithdrawal refunds a pending withdrawal
func (u *WalletUsecase) RejectWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error) {
	return u.reviewWithdrawal(ctx, id, entities.WithdrawalStatusRejected)
}

func (u *WalletUsecase) reviewWithdrawal(ctx context.Context, id uint, to entities.WithdrawalStatus) (*entities.WithdrawalReviewResult, error) {
	var result *entities.WithdrawalReviewResult
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		withdrawal, err := u.withdrawalRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("Withdrawal not found")
			}
			return err
		}
		if err := u.withdrawalRepo.Transition(txCtx, id, entities.WithdrawalStatusPending, to, timeNow()); err != nil {
			if errors.Is(err, domainerrors.ErrInvalidState) {
				return domainerrors.InvalidState("Withdrawal is not pending")
			}
			return err
		}

		result = &entities.WithdrawalReviewResult{OK: true, WithdrawalID: id, Status: to}
		if to != entities.WithdrawalStatusRejected {
			return nil
		}

		if err := u.userRepo.AdjustBalance(txCtx, withdrawal.UserID, withdrawal.Amount); err != nil {
			return fmt.Errorf("refund withdrawal %d: %w", id, err)
		}
		ledger := &entities.Transaction{
			UserID: withdrawal.UserID,
			Type:   entities.TransactionTypeCredit,
			Amount: withdrawal.Amount,
			Wallet: withdrawal.Wallet,
			Status: entities.TransactionStatusRefunded,
		}
		ledger.Metadata.SetValid("withdrawal:" + strconv.FormatUint(uint64(id), 10))
		if err := u.txRepo.Create(txCtx, ledger); err != nil {
			return err
		}
		result.Refunded = withdrawal.Amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Withdrawal reviewed", zap.Uint("withdrawal_id", id), zap.String("status", string(to)))
	return result, nil
}
