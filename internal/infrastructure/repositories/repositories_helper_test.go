package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, models.AutoMigrate(db), "migrate")
	return db
}

func seedUser(t *testing.T, db *gorm.DB, telegramID string, balance int64) *entities.User {
	t.Helper()
	u := &entities.User{TelegramID: telegramID, Balance: decimal.NewFromInt(balance), Verified: true}
	require.NoError(t, NewUserRepository(db).Create(t.Context(), u))
	return u
}
