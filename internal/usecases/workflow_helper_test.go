package usecases_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/models"
	"justice-airdrop.backend/internal/infrastructure/repositories"
	"justice-airdrop.backend/internal/usecases"
)

// recordingDispatcher keeps every enqueued message
type recordingDispatcher struct {
	mu   sync.Mutex
	msgs []entities.OutboundMessage
}

func (d *recordingDispatcher) Enqueue(msg entities.OutboundMessage) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msgs = append(d.msgs, msg)
	return true
}

func (d *recordingDispatcher) sent() []entities.OutboundMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]entities.OutboundMessage(nil), d.msgs...)
}

type harness struct {
	db          *gorm.DB
	users       *repositories.UserRepository
	tasks       *repositories.TaskRepository
	txs         *repositories.TransactionRepository
	notifs      *repositories.NotificationRepository
	admins      *repositories.AdminRepository
	dispatcher  *recordingDispatcher
	submissions *usecases.SubmissionUsecase
	wallet      *usecases.WalletUsecase
	referrals   *usecases.ReferralUsecase
	admin       *usecases.AdminUsecase
	auth        *usecases.AuthorizationUsecase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	h := &harness{
		db:         db,
		users:      repositories.NewUserRepository(db),
		tasks:      repositories.NewTaskRepository(db),
		txs:        repositories.NewTransactionRepository(db),
		notifs:     repositories.NewNotificationRepository(db),
		admins:     repositories.NewAdminRepository(db),
		dispatcher: &recordingDispatcher{},
	}
	uow := repositories.NewUnitOfWork(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)

	h.submissions = usecases.NewSubmissionUsecase(uow, h.users, h.tasks, submissionRepo, h.txs, h.notifs,
		h.dispatcher, nil, nil, config.TelegramConfig{ReviewChannelID: "-100200"})
	h.wallet = usecases.NewWalletUsecase(uow, h.users, withdrawalRepo, h.txs, repositories.NewSettingsRepository(db))
	h.referrals = usecases.NewReferralUsecase(uow, h.users, repositories.NewReferralRepository(db), h.txs, "https://example.com/register")
	h.admin = usecases.NewAdminUsecase(h.admins, h.users)
	h.auth = usecases.NewAuthorizationUsecase(h.users, h.admins, nil, config.SecurityConfig{BotAPIKey: "secret-key", OwnerIDs: []int64{42}})
	return h
}

func (h *harness) user(t *testing.T, telegramID string, balance int64) *entities.User {
	t.Helper()
	u := &entities.User{TelegramID: telegramID, Balance: decimal.NewFromInt(balance), Verified: true}
	require.NoError(t, h.users.Create(t.Context(), u))
	return u
}

func (h *harness) task(t *testing.T, reward int64) *entities.Task {
	t.Helper()
	task := &entities.Task{Title: "Follow us", Reward: decimal.NewFromInt(reward), Active: true}
	require.NoError(t, h.tasks.Create(t.Context(), task))
	return task
}

func (h *harness) balance(t *testing.T, userID uint) decimal.Decimal {
	t.Helper()
	u, err := h.users.GetByID(t.Context(), userID)
	require.NoError(t, err)
	return u.Balance
}
