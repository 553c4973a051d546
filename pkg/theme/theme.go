// Package theme keeps the user's color scheme preference and persists it through a settings store.
package theme

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/umputun/gamedesk/pkg/domain"
)

// Store persists string settings
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Preference is the current theme, safe for concurrent use
type Preference struct {
	store Store

	mu      sync.RWMutex
	current domain.Theme
}

// New makes a preference defaulting to the system theme
func New(store Store) *Preference {
	return &Preference{store: store, current: domain.ThemeSystem}
}

// Init loads the persisted theme. Missing or unknown values fall back to system.
func (p *Preference) Init(ctx context.Context) error {
	val, err := p.store.GetSetting(ctx, domain.SettingTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}

	th := domain.ThemeSystem
	if val != "" {
		parsed, perr := domain.ParseTheme(val)
		if perr != nil {
			log.Printf("[WARN] ignoring stored theme: %v", perr)
		} else {
			th = parsed
		}
	}

	p.mu.Lock()
	p.current = th
	p.mu.Unlock()
	return nil
}

// Current returns the active theme
func (p *Preference) Current() domain.Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Set stores and activates a theme
func (p *Preference) Set(ctx context.Context, th domain.Theme) error {
	if _, err := domain.ParseTheme(string(th)); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.SetSetting(ctx, domain.SettingTheme, string(th)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	p.current = th
	log.Printf("[DEBUG] theme set to %s", th)
	return nil
}

// Cycle switches to the next theme in the light, dark, system rotation and returns it
func (p *Preference) Cycle(ctx context.Context) (domain.Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	next := p.current.Next()
	if err := p.store.SetSetting(ctx, domain.SettingTheme, string(next)); err != nil {
		return p.current, fmt.Errorf("save theme: %w", err)
	}
	p.current = next
	return next, nil
}
