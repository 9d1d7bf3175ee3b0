package usecases_test

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/pkg/jwt"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(ctx context.Context, telegramID string) (*entities.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, id uint, deviceHash string) error {
	return m.Called(ctx, id, deviceHash).Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	return m.Called(ctx, id, banned).Error(0)
}

func (m *MockUserRepository) SetWallet(ctx context.Context, id uint, wallet string) error {
	return m.Called(ctx, id, wallet).Error(0)
}

func (m *MockUserRepository) SetReferralCode(ctx context.Context, id uint, code, link string) error {
	return m.Called(ctx, id, code, link).Error(0)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, id uint, delta decimal.Decimal) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *MockUserRepository) IncrementReferrals(ctx context.Context, id uint, reward decimal.Decimal) error {
	return m.Called(ctx, id, reward).Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SumBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockUserRepository) CountWithMoreReferrals(ctx context.Context, referrals int) (int64, error) {
	args := m.Called(ctx, referrals)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) TopByReferrals(ctx context.Context, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uint) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) ListActive(ctx context.Context) ([]*entities.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock SubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id uint) (*entities.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Submission, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]*entities.Submission, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*entities.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionRepository) ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]*entities.Submission, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*entities.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) Transition(ctx context.Context, id uint, from, to entities.SubmissionStatus, at time.Time) error {
	return m.Called(ctx, id, from, to, at).Error(0)
}

func (m *MockSubmissionRepository) CountByStatus(ctx context.Context) (map[entities.SubmissionStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[entities.SubmissionStatus]int64), args.Error(1)
}

func (m *MockSubmissionRepository) ApprovedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	args := m.Called(ctx, since)
	return args.Get(0).([]time.Time), args.Error(1)
}

// Mock WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, withdrawal *entities.Withdrawal) error {
	return m.Called(ctx, withdrawal).Error(0)
}

func (m *MockWithdrawalRepository) GetByID(ctx context.Context, id uint) (*entities.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) List(ctx context.Context, status entities.WithdrawalStatus, limit, offset int) ([]*entities.Withdrawal, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*entities.Withdrawal), args.Get(1).(int64), args.Error(2)
}

func (m *MockWithdrawalRepository) Transition(ctx context.Context, id uint, from, to entities.WithdrawalStatus, at time.Time) error {
	return m.Called(ctx, id, from, to, at).Error(0)
}

func (m *MockWithdrawalRepository) CountPendingByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWithdrawalRepository) CountByStatus(ctx context.Context) (map[entities.WithdrawalStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[entities.WithdrawalStatus]int64), args.Error(1)
}

// Mock TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Sum(ctx context.Context, userID uint, txType entities.TransactionType, status entities.TransactionStatus) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, txType, status)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Mock NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *entities.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ListForTarget(ctx context.Context, target entities.NotificationTarget, targetID string, limit int) ([]*entities.Notification, error) {
	args := m.Called(ctx, target, targetID, limit)
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error) {
	args := m.Called(ctx, target, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, target entities.NotificationTarget, targetID string) (int64, error) {
	args := m.Called(ctx, target, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint, target entities.NotificationTarget, targetID string) error {
	return m.Called(ctx, id, target, targetID).Error(0)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) GetByTelegramID(ctx context.Context, telegramID string) (*entities.Admin, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockAdminRepository) SetOwner(ctx context.Context, id uint, owner bool) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *MockAdminRepository) SetAllowedCommands(ctx context.Context, id uint, commands string) error {
	return m.Called(ctx, id, commands).Error(0)
}

func (m *MockAdminRepository) List(ctx context.Context) ([]*entities.Admin, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Admin), args.Error(1)
}

// Mock SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockSettingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	return m.Called(ctx, key, value).Error(0)
}

// Mock Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Enqueue(msg entities.OutboundMessage) bool {
	return m.Called(msg).Bool(0)
}

// Mock MembershipChecker
type MockMembershipChecker struct {
	mock.Mock
}

func (m *MockMembershipChecker) IsMember(ctx context.Context, chatID, userID string) (bool, error) {
	args := m.Called(ctx, chatID, userID)
	return args.Bool(0), args.Error(1)
}

// Mock MediaStore
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) SaveUpload(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) RemoveUpload(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

func (m *MockMediaStore) SavePromoVideo(filename string, r io.Reader) (string, error) {
	args := m.Called(filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) LogoURL() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

func (m *MockMediaStore) VideoURL() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

// Mock TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID uint, telegramID string) (string, error) {
	args := m.Called(userID, telegramID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*jwt.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Claims), args.Error(1)
}

func (m *MockTokenService) Expiry() time.Duration {
	return m.Called().Get(0).(time.Duration)
}
