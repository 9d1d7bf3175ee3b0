package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Telegram   TelegramConfig
	Security   SecurityConfig
	Storage    StorageConfig
	Airdrop    AirdropConfig
	Dispatcher DispatcherConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port       string
	Env        string
	BackendURL string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// TelegramConfig holds bot credentials and the chats users must join
type TelegramConfig struct {
	BotToken        string
	AdminGroupID    string
	AdminChannelID  string
	ReviewChannelID string
}

// SecurityConfig holds the privileged identity settings
type SecurityConfig struct {
	BotAPIKey     string
	BotAPIKeyHash string
	OwnerIDs      []int64
}

// StorageConfig holds filesystem locations for uploaded and static media
type StorageConfig struct {
	UploadDir   string
	LogoDir     string
	VideoDir    string
	MaxUploadMB int
}

// AirdropConfig holds reward policy settings
type AirdropConfig struct {
	ReferralBaseURL string
}

// DispatcherConfig sizes the outbound notification queue
type DispatcherConfig struct {
	QueueSize int
	Workers   int
}

// Load loads configuration from environment variables
func Load() *Config {
	adminChannel := getEnv("ADMIN_CHANNEL_ID", "")
	return &Config{
		Server: ServerConfig{
			Port:       getEnv("SERVER_PORT", "8080"),
			Env:        getEnv("SERVER_ENV", "development"),
			BackendURL: getEnv("BACKEND_URL", "http://127.0.0.1:8080"),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			SQLitePath: getEnv("DB_SQLITE_PATH", "justice.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvAsInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "justice"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "change-this-in-production"),
			Expiry: time.Duration(getEnvAsInt("JWT_EXP_SECONDS", 3600)) * time.Second,
		},
		Telegram: TelegramConfig{
			BotToken:        getEnv("BOT_TOKEN", ""),
			AdminGroupID:    getEnv("ADMIN_GROUP_ID", ""),
			AdminChannelID:  adminChannel,
			ReviewChannelID: getEnv("REVIEW_CHANNEL_ID", adminChannel),
		},
		Security: SecurityConfig{
			BotAPIKey:     getEnv("BOT_API_KEY", ""),
			BotAPIKeyHash: getEnv("BOT_API_KEY_HASH", ""),
			OwnerIDs:      ParseOwnerIDs(getEnv("BOT_OWNER_IDS", "")),
		},
		Storage: StorageConfig{
			UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
			LogoDir:     getEnv("LOGO_DIR", "logo"),
			VideoDir:    getEnv("VIDEO_DIR", "video"),
			MaxUploadMB: getEnvAsInt("MAX_UPLOAD_MB", 10),
		},
		Airdrop: AirdropConfig{
			ReferralBaseURL: getEnv("REFERRAL_BASE_URL", "https://yoursite.com/register"),
		},
		Dispatcher: DispatcherConfig{
			QueueSize: getEnvAsInt("NOTIFY_QUEUE_SIZE", 256),
			Workers:   getEnvAsInt("NOTIFY_WORKERS", 2),
		},
	}
}

// ParseOwnerIDs accepts "1,2,3" or "[1, 2, 3]" and skips entries that are not integers
func ParseOwnerIDs(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	raw = strings.NewReplacer("[", "", "]", "").Replace(raw)

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"'`)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
