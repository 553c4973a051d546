package domain

import (
	"fmt"
	"strings"
	"time"
)

// SettingTheme is the settings key holding the theme preference
const SettingTheme = "theme"

// Setting represents a key-value configuration setting
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Theme is the UI color scheme preference
type Theme string

// enum of supported themes
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

var themeCycle = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// ParseTheme validates a theme name
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range themeCycle {
		if t == v {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid theme %q", s)
}

// Next returns the following theme in the light -> dark -> system cycle
func (t Theme) Next() Theme {
	for i, v := range themeCycle {
		if v == t {
			return themeCycle[(i+1)%len(themeCycle)]
		}
	}
	return ThemeLight
}
