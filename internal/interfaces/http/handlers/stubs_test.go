package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/interfaces/http/middleware"
	"justice-airdrop.backend/pkg/utils"
)

func testUser() *entities.User {
	return &entities.User{ID: 7, TelegramID: "700", Verified: true}
}

// newRouter returns an engine that injects user as the verified caller when non-nil.
func newRouter(user *entities.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserKey, user)
			c.Next()
		})
	}
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, _ := json.Marshal(b)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r http.Handler, path string, fields map[string]string, fileField, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type authServiceStub struct {
	startFn  func(ctx context.Context, input *entities.StartInput) (*entities.StartResponse, error)
	verifyFn func(ctx context.Context, input *entities.VerifyInput) (*entities.VerifyResponse, error)
	meFn     func(ctx context.Context, userID uint) (*entities.AccountView, error)
}

func (s authServiceStub) Start(ctx context.Context, input *entities.StartInput) (*entities.StartResponse, error) {
	return s.startFn(ctx, input)
}

func (s authServiceStub) Verify(ctx context.Context, input *entities.VerifyInput) (*entities.VerifyResponse, error) {
	return s.verifyFn(ctx, input)
}

func (s authServiceStub) Me(ctx context.Context, userID uint) (*entities.AccountView, error) {
	return s.meFn(ctx, userID)
}

type taskServiceStub struct {
	listFn func(ctx context.Context) ([]*entities.Task, error)
	addFn  func(ctx context.Context, input *entities.CreateTaskInput) (*entities.Task, bool, error)
}

func (s taskServiceStub) ListActive(ctx context.Context) ([]*entities.Task, error) {
	return s.listFn(ctx)
}

func (s taskServiceStub) AddTask(ctx context.Context, input *entities.CreateTaskInput) (*entities.Task, bool, error) {
	return s.addFn(ctx, input)
}

type submitServiceStub struct {
	submitFn   func(ctx context.Context, user *entities.User, input *entities.SubmitInput) (*entities.SubmitResponse, error)
	listMineFn func(ctx context.Context, userID uint) ([]*entities.Submission, error)
}

func (s submitServiceStub) Submit(ctx context.Context, user *entities.User, input *entities.SubmitInput) (*entities.SubmitResponse, error) {
	return s.submitFn(ctx, user, input)
}

func (s submitServiceStub) ListMine(ctx context.Context, userID uint) ([]*entities.Submission, error) {
	return s.listMineFn(ctx, userID)
}

type walletServiceStub struct {
	infoFn         func(ctx context.Context, userID uint) (*entities.WalletInfo, error)
	transactionsFn func(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error)
	setWalletFn    func(ctx context.Context, userID uint, input *entities.SetWalletInput) error
	requestFn      func(ctx context.Context, userID uint, input *entities.WithdrawInput) (*entities.WithdrawalResult, error)
	presaleFn      func(ctx context.Context, userID uint, input *entities.PresaleInput) error
	addBalanceFn   func(ctx context.Context, input *entities.BalanceAdjustInput) (*entities.BalanceAdjustResult, error)
	setOpenFn      func(ctx context.Context, open bool) error
	listFn         func(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.WithdrawalListResponse, error)
	approveFn      func(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error)
	rejectFn       func(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error)
}

func (s walletServiceStub) Info(ctx context.Context, userID uint) (*entities.WalletInfo, error) {
	return s.infoFn(ctx, userID)
}

func (s walletServiceStub) Transactions(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error) {
	return s.transactionsFn(ctx, userID, limit)
}

func (s walletServiceStub) SetWallet(ctx context.Context, userID uint, input *entities.SetWalletInput) error {
	return s.setWalletFn(ctx, userID, input)
}

func (s walletServiceStub) RequestWithdrawal(ctx context.Context, userID uint, input *entities.WithdrawInput) (*entities.WithdrawalResult, error) {
	return s.requestFn(ctx, userID, input)
}

func (s walletServiceStub) Presale(ctx context.Context, userID uint, input *entities.PresaleInput) error {
	return s.presaleFn(ctx, userID, input)
}

func (s walletServiceStub) AddBalance(ctx context.Context, input *entities.BalanceAdjustInput) (*entities.BalanceAdjustResult, error) {
	return s.addBalanceFn(ctx, input)
}

func (s walletServiceStub) SetWithdrawalsOpen(ctx context.Context, open bool) error {
	return s.setOpenFn(ctx, open)
}

func (s walletServiceStub) ListWithdrawals(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.WithdrawalListResponse, error) {
	return s.listFn(ctx, status, pagination)
}

func (s walletServiceStub) ApproveWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error) {
	return s.approveFn(ctx, id)
}

func (s walletServiceStub) RejectWithdrawal(ctx context.Context, id uint) (*entities.WithdrawalReviewResult, error) {
	return s.rejectFn(ctx, id)
}

type referralServiceStub struct {
	statsFn       func(ctx context.Context, userID uint) (*entities.ReferralStats, error)
	generateFn    func(ctx context.Context, userID uint) (*entities.ReferralLink, error)
	registerFn    func(ctx context.Context, input *entities.RegisterReferralInput) (*entities.RegisterReferralResult, error)
	leaderboardFn func(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
	rankFn        func(ctx context.Context, userID uint) (*entities.ReferralRank, error)
}

func (s referralServiceStub) Stats(ctx context.Context, userID uint) (*entities.ReferralStats, error) {
	return s.statsFn(ctx, userID)
}

func (s referralServiceStub) Generate(ctx context.Context, userID uint) (*entities.ReferralLink, error) {
	return s.generateFn(ctx, userID)
}

func (s referralServiceStub) Register(ctx context.Context, input *entities.RegisterReferralInput) (*entities.RegisterReferralResult, error) {
	return s.registerFn(ctx, input)
}

func (s referralServiceStub) Leaderboard(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	return s.leaderboardFn(ctx, limit)
}

func (s referralServiceStub) Rank(ctx context.Context, userID uint) (*entities.ReferralRank, error) {
	return s.rankFn(ctx, userID)
}

type notificationServiceStub struct {
	notifyUserFn  func(ctx context.Context, input *entities.NotifyUserInput) (*entities.Notification, error)
	notifyGroupFn func(ctx context.Context, input *entities.NotifyGroupInput) (*entities.Notification, error)
	listFn        func(ctx context.Context, telegramID string, limit int) ([]*entities.Notification, error)
	countFn       func(ctx context.Context, telegramID string) (int64, error)
	markAllFn     func(ctx context.Context, telegramID string) (int64, error)
	markOneFn     func(ctx context.Context, telegramID string, id uint) error
}

func (s notificationServiceStub) NotifyUser(ctx context.Context, input *entities.NotifyUserInput) (*entities.Notification, error) {
	return s.notifyUserFn(ctx, input)
}

func (s notificationServiceStub) NotifyGroup(ctx context.Context, input *entities.NotifyGroupInput) (*entities.Notification, error) {
	return s.notifyGroupFn(ctx, input)
}

func (s notificationServiceStub) ListForUser(ctx context.Context, telegramID string, limit int) ([]*entities.Notification, error) {
	return s.listFn(ctx, telegramID, limit)
}

func (s notificationServiceStub) UnreadCount(ctx context.Context, telegramID string) (int64, error) {
	return s.countFn(ctx, telegramID)
}

func (s notificationServiceStub) MarkAllRead(ctx context.Context, telegramID string) (int64, error) {
	return s.markAllFn(ctx, telegramID)
}

func (s notificationServiceStub) MarkRead(ctx context.Context, telegramID string, id uint) error {
	return s.markOneFn(ctx, telegramID, id)
}

type reviewServiceStub struct {
	approveFn    func(ctx context.Context, id uint) (*entities.ReviewResult, error)
	rejectFn     func(ctx context.Context, id uint) (*entities.ReviewResult, error)
	approveAllFn func(ctx context.Context) (*entities.BulkReviewResult, error)
	rejectAllFn  func(ctx context.Context) (*entities.BulkReviewResult, error)
	callbackFn   func(ctx context.Context, input *entities.CallbackInput) (*entities.CallbackResult, error)
	listFn       func(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.SubmissionListResponse, error)
}

func (s reviewServiceStub) Approve(ctx context.Context, id uint) (*entities.ReviewResult, error) {
	return s.approveFn(ctx, id)
}

func (s reviewServiceStub) Reject(ctx context.Context, id uint) (*entities.ReviewResult, error) {
	return s.rejectFn(ctx, id)
}

func (s reviewServiceStub) ApproveAll(ctx context.Context) (*entities.BulkReviewResult, error) {
	return s.approveAllFn(ctx)
}

func (s reviewServiceStub) RejectAll(ctx context.Context) (*entities.BulkReviewResult, error) {
	return s.rejectAllFn(ctx)
}

func (s reviewServiceStub) Callback(ctx context.Context, input *entities.CallbackInput) (*entities.CallbackResult, error) {
	return s.callbackFn(ctx, input)
}

func (s reviewServiceStub) List(ctx context.Context, status string, pagination utils.PaginationParams) (*entities.SubmissionListResponse, error) {
	return s.listFn(ctx, status, pagination)
}

type statsServiceStub struct {
	statsFn   func(ctx context.Context) (*entities.Stats, error)
	summaryFn func(ctx context.Context) (*entities.StatsSummary, error)
	seriesFn  func(ctx context.Context, minutes, interval int) (*entities.TimeSeries, error)
}

func (s statsServiceStub) Stats(ctx context.Context) (*entities.Stats, error) {
	return s.statsFn(ctx)
}

func (s statsServiceStub) Summary(ctx context.Context) (*entities.StatsSummary, error) {
	return s.summaryFn(ctx)
}

func (s statsServiceStub) Series(ctx context.Context, minutes, interval int) (*entities.TimeSeries, error) {
	return s.seriesFn(ctx, minutes, interval)
}

type adminServiceStub struct {
	addFn         func(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error)
	removeFn      func(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error)
	setCommandsFn func(ctx context.Context, input *entities.AdminCommandsInput) (*entities.Admin, error)
	listFn        func(ctx context.Context) ([]*entities.Admin, error)
	banFn         func(ctx context.Context, input *entities.UserActionInput) error
	unbanFn       func(ctx context.Context, input *entities.UserActionInput) error
}

func (s adminServiceStub) AddAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error) {
	return s.addFn(ctx, input)
}

func (s adminServiceStub) RemoveAdmin(ctx context.Context, input *entities.AdminActionInput) (*entities.Admin, error) {
	return s.removeFn(ctx, input)
}

func (s adminServiceStub) SetCommands(ctx context.Context, input *entities.AdminCommandsInput) (*entities.Admin, error) {
	return s.setCommandsFn(ctx, input)
}

func (s adminServiceStub) ListAdmins(ctx context.Context) ([]*entities.Admin, error) {
	return s.listFn(ctx)
}

func (s adminServiceStub) Ban(ctx context.Context, input *entities.UserActionInput) error {
	return s.banFn(ctx, input)
}

func (s adminServiceStub) Unban(ctx context.Context, input *entities.UserActionInput) error {
	return s.unbanFn(ctx, input)
}

type mediaServiceStub struct {
	logo     *string
	video    *string
	uploadFn func(ctx context.Context, file *entities.Attachment) (string, error)
}

func (s mediaServiceStub) LogoURL() *string  { return s.logo }
func (s mediaServiceStub) VideoURL() *string { return s.video }

func (s mediaServiceStub) UploadVideo(ctx context.Context, file *entities.Attachment) (string, error) {
	return s.uploadFn(ctx, file)
}
