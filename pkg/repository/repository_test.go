package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gamedesk/pkg/domain"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	t.Run("missing setting is empty", func(t *testing.T) {
		val, err := repos.Setting.GetSetting(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, val)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingTheme, "dark"))
		val, err := repos.Setting.GetSetting(ctx, domain.SettingTheme)
		require.NoError(t, err)
		assert.Equal(t, "dark", val)

		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingTheme, "light"))
		val, err = repos.Setting.GetSetting(ctx, domain.SettingTheme)
		require.NoError(t, err)
		assert.Equal(t, "light", val)
	})

	t.Run("list settings", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, "alpha", "1"))
		settings, err := repos.Setting.ListSettings(ctx)
		require.NoError(t, err)
		require.Len(t, settings, 2)
		assert.Equal(t, "alpha", settings[0].Key)
		assert.Equal(t, domain.SettingTheme, settings[1].Key)
		assert.Equal(t, "light", settings[1].Value)
	})
}

func TestRepositories_FileDatabaseSurvivesReopen(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc"
	ctx := context.Background()

	repos, err := NewRepositories(ctx, Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingTheme, "system"))
	require.NoError(t, repos.Close())

	repos, err = NewRepositories(ctx, Config{DSN: dsn, MaxOpenConns: 1})
	require.NoError(t, err)
	defer repos.Close()
	val, err := repos.Setting.GetSetting(ctx, domain.SettingTheme)
	require.NoError(t, err)
	assert.Equal(t, "system", val)
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	cfg := Config{DSN: "file:/nonexistent-dir/sub/test.db?mode=ro"}
	_, err := NewRepositories(context.Background(), cfg)
	require.Error(t, err)
}

func TestSettingRepository_ClosedDB(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Close())

	start := time.Now()
	err := repos.Setting.SetSetting(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "non-lock errors should not be retried")

	_, err = repos.Setting.GetSetting(context.Background(), "k")
	require.Error(t, err)
}

func TestCriticalError(t *testing.T) {
	originalErr := fmt.Errorf("test error message")
	critErr := &criticalError{err: originalErr}

	assert.Equal(t, "test error message", critErr.Error())
	require.ErrorIs(t, critErr, originalErr)
	require.ErrorIs(t, critErr, errCritical)
	assert.NotErrorIs(t, originalErr, errCritical)

	wrapped := fmt.Errorf("outer: %w", critErr)
	assert.True(t, errors.Is(wrapped, errCritical))
}

func TestIsLockError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"sqlite busy error", fmt.Errorf("SQLITE_BUSY: database is busy"), true},
		{"database locked error", fmt.Errorf("database is locked"), true},
		{"table locked error", fmt.Errorf("database table is locked"), true},
		{"non-lock error", fmt.Errorf("syntax error"), false},
		{"empty error message", fmt.Errorf(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLockError(tt.err))
		})
	}
}
