package repositories

import "context"

// SettingWithdrawalsOpen is the key of the withdrawal gate
const SettingWithdrawalsOpen = "withdrawals_open"

// SettingsRepository stores persisted runtime flags
type SettingsRepository interface {
	// GetBool returns false when the key has never been set.
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}
