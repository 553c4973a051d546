package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/gamedesk/pkg/domain"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

type settingSQL struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value, retrying while the database is locked
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			return &criticalError{err: fmt.Errorf("set setting: %w", err)}
		}
		return nil
	}, errCritical)
}

// ListSettings returns all settings ordered by key
func (r *SettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	var rows []settingSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT key, value, updated_at FROM settings ORDER BY key"); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	res := make([]domain.Setting, 0, len(rows))
	for _, s := range rows {
		res = append(res, domain.Setting{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt})
	}
	return res, nil
}
