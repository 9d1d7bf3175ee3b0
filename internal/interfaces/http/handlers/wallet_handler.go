package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	domainerrors "justice-airdrop.backend/internal/domain/errors"
	"justice-airdrop.backend/internal/interfaces/http/response"
	"justice-airdrop.backend/internal/usecases"
	"justice-airdrop.backend/pkg/utils"
)

type walletService interface {
	Info(ctx context.Context, userID uint) (*entities.WalletInfo, error)
	Transactions(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error)
	SetWallet(ctx context.Context, userID uint, input *entities.SetWalletInput) error
	RequestWithdrawal(ctx context.Context, userID uint, input *entities.WithdrawInput) (*entities.WithdrawalResult, error)
	Presale(ctx context.Context, userID uint, input *entities.PresaleInput) error
	AddBalance(ctx context.Context, input *entities.BalanceAdjustInput) (*entities.BalanceAdjustResult, error)
	SetWithdrawalsOpen(ctx context.Context, open bool) error
	ListWithdrawals(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.WithdrawalListResponse, error)
	ApproveWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error)
	RejectWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error)
}

// WalletHandler handles balances, wallets and withdrawals
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// Info returns the caller's balance summary
// GET /api/v1/wallet/info
func (h *WalletHandler) Info(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.walletUsecase.Info(c.Request.Context(), user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

// Transactions lists the caller's ledger entries
// GET /api/v1/wallet/transactions?limit=50
func (h *WalletHandler) Transactions(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.walletUsecase.Transactions(c.Request.Context(), user.ID, queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	if items == nil {
		items = []*entities.Transaction{}
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": items})
}

// SetWallet stores the caller's payout address
// POST /api/v1/wallet/set
func (h *WalletHandler) SetWallet(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.SetWalletInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Missing wallet"))
		return
	}

	if err := h.walletUsecase.SetWallet(c.Request.Context(), user.ID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "wallet": input.Wallet})
}

// RequestWithdrawal debits the balance into a pending withdrawal
// POST /api/v1/wallet/request
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.WithdrawInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Invalid amount"))
		return
	}

	result, err := h.walletUsecase.RequestWithdrawal(c.Request.Context(), user.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Presale is not offered yet
// POST /api/v1/wallet/presale
func (h *WalletHandler) Presale(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.PresaleInput
	_ = c.ShouldBindJSON(&input)
	if err := h.walletUsecase.Presale(c.Request.Context(), user.ID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true})
}

// AddBalance adjusts a user's balance by a signed amount
// POST /api/v1/admin/add_balance
func (h *WalletHandler) AddBalance(c *gin.Context) {
	var input entities.BalanceAdjustInput
	if !bindJSON(c, &input) {
		response.Error(c, domainerrors.BadRequest("Invalid amount"))
		return
	}

	result, err := h.walletUsecase.AddBalance(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// OpenWithdrawals opens the withdrawal gate
// POST /api/v1/admin/open_withdrawals
func (h *WalletHandler) OpenWithdrawals(c *gin.Context) {
	h.setGate(c, true)
}

// CloseWithdrawals closes the withdrawal gate
// POST /api/v1/admin/close_withdrawals
func (h *WalletHandler) CloseWithdrawals(c *gin.Context) {
	h.setGate(c, false)
}

func (h *WalletHandler) setGate(c *gin.Context, open bool) {
	if err := h.walletUsecase.SetWithdrawalsOpen(c.Request.Context(), open); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"ok": true, "open": open})
}

// ListWithdrawals lists withdrawals for review
// GET /api/v1/admin/withdrawals?status=pending&page=1&limit=20
func (h *WalletHandler) ListWithdrawals(c *gin.Context) {
	result, err := h.walletUsecase.ListWithdrawals(c.Request.Context(), c.Query("status"), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ApproveWithdrawal marks a pending withdrawal as paid
// POST /api/v1/admin/withdrawals/:id/approve
func (h *WalletHandler) ApproveWithdrawal(c *gin.Context) {
	h.reviewWithdrawal(c, h.walletUsecase.ApproveWithdrawal)
}

// RejectWithdrawal rejects a pending withdrawal and refunds it
// POST /api/v1/admin/withdrawals/:id/reject
func (h *WalletHandler) RejectWithdrawal(c *gin.Context) {
	h.reviewWithdrawal(c, h.walletUsecase.RejectWithdrawal)
}

func (h *WalletHandler) reviewWithdrawal(c *gin.Context, review func(context.Context, uint) (*entities.WithdrawalReviewResult, error)) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := review(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
