package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/infrastructure/datasources"
	"justice-airdrop.backend/internal/infrastructure/models"
	"justice-airdrop.backend/internal/infrastructure/repositories"
	"justice-airdrop.backend/internal/usecases"
)

var openGrantDB = datasources.Open

var openGrantSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type adminGrantRuntime interface {
	Grant(ctx context.Context, telegramID string, owner bool) (*entities.Admin, error)
}

type adminGrantDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminGrantRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultAdminGrantDeps() adminGrantDeps {
	return adminGrantDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (adminGrantRuntime, io.Closer, error) {
			db, err := openGrantDB(cfg.Database)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			if err := models.AutoMigrate(db); err != nil {
				return nil, nil, fmt.Errorf("failed to migrate db: %w", err)
			}

			sqlDB, err := openGrantSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			adminUsecase := usecases.NewAdminUsecase(
				repositories.NewAdminRepository(db),
				repositories.NewUserRepository(db),
			)
			return adminUsecase, sqlDB, nil
		},
		out: os.Stdout,
	}
}

func parseTelegramID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("--telegram-id is required")
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", fmt.Errorf("--telegram-id must be numeric: %q", raw)
	}
	return raw, nil
}

func runAdminGrant(args []string, deps adminGrantDeps) error {
	def := defaultAdminGrantDeps()
	if deps.loadEnv == nil {
		deps.loadEnv = def.loadEnv
	}
	if deps.loadCfg == nil {
		deps.loadCfg = def.loadCfg
	}
	if deps.prepare == nil {
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = def.out
	}

	fs := flag.NewFlagSet("admin-grant", flag.ContinueOnError)
	telegramIDFlag := fs.String("telegram-id", "", "Telegram id of the admin (required)")
	ownerFlag := fs.Bool("owner", false, "also grant owner rights")
	if err := fs.Parse(args); err != nil {
		return err
	}

	telegramID, err := parseTelegramID(*telegramIDFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	admin, err := runtime.Grant(context.Background(), telegramID, *ownerFlag)
	if err != nil {
		return fmt.Errorf("failed granting admin: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Admin granted")
	_, _ = fmt.Fprintf(deps.out, "admin_id=%d\n", admin.ID)
	_, _ = fmt.Fprintf(deps.out, "telegram_id=%s\n", admin.TelegramID)
	_, _ = fmt.Fprintf(deps.out, "is_owner=%t\n", admin.IsOwner)
	_, _ = fmt.Fprintf(deps.out, "is_active=%t\n", admin.IsActive)
	return nil
}

func main() {
	if err := runAdminGrant(os.Args[1:], defaultAdminGrantDeps()); err != nil {
		log.Fatal(err)
	}
}
