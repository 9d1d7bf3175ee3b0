package datasources

import (
	"fmt"
	"strings"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"justice-airdrop.backend/internal/config"
	"justice-airdrop.backend/internal/infrastructure/datasources/postgres"
)

var newPostgresConn = postgres.NewConnection

// GormConfig is shared by every connection so timestamps and duplicate-key errors behave the same on both drivers
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
}

// Open connects to the configured database driver
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		sqlDB, err := newPostgresConn(cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), GormConfig())
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to open gorm: %w", err)
		}
		return db, nil
	case "", "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "airdrop.db"
		}
		db, err := gorm.Open(sqlite.Open(path), GormConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
