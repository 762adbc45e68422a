// Package theme provides the light and dark color schemes of the dashboard.
// A Theme is an explicit value handed to every renderer; there is no global
// theme state.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"sphereoftech/internal/models"
)

// Palette colors.
var (
	LightBackground = lipgloss.Color("#f8fafc")
	LightForeground = lipgloss.Color("#0f172a")
	LightPrimary    = lipgloss.Color("#2563eb")
	LightAccent     = lipgloss.Color("#7c3aed")
	LightMuted      = lipgloss.Color("#64748b")
	LightBorder     = lipgloss.Color("#e2e8f0")
	LightCard       = lipgloss.Color("#ffffff")

	DarkBackground = lipgloss.Color("#0f172a")
	DarkForeground = lipgloss.Color("#f1f5f9")
	DarkPrimary    = lipgloss.Color("#60a5fa")
	DarkAccent     = lipgloss.Color("#a78bfa")
	DarkMuted      = lipgloss.Color("#94a3b8")
	DarkBorder     = lipgloss.Color("#334155")
	DarkCard       = lipgloss.Color("#1e293b")

	// Semantic colors are shared by both modes.
	Positive = lipgloss.Color("#16a34a")
	Negative = lipgloss.Color("#dc2626")
	Caution  = lipgloss.Color("#f59e0b")
	Notice   = lipgloss.Color("#0ea5e9")
)

// Theme holds the color scheme of one mode.
type Theme struct {
	Mode       models.ThemeMode
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
}

// Light returns the light theme.
func Light() Theme {
	return Theme{
		Mode:       models.ThemeLight,
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// Dark returns the dark theme.
func Dark() Theme {
	return Theme{
		Mode:       models.ThemeDark,
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
	}
}

// For returns the theme of a mode. Unknown modes get the light theme.
func For(mode models.ThemeMode) Theme {
	if mode == models.ThemeDark {
		return Dark()
	}
	return Light()
}

// IsDark reports whether this is the dark theme.
func (t Theme) IsDark() bool {
	return t.Mode == models.ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	return For(t.Mode.Toggle())
}

// GlamourStyle names the glamour markdown style matching the mode.
func (t Theme) GlamourStyle() string {
	if t.IsDark() {
		return "dark"
	}
	return "light"
}

// RatingColor returns the color of an AI rating badge.
func (t Theme) RatingColor(r models.AIRating) lipgloss.Color {
	switch r {
	case models.RatingStrongBuy, models.RatingBuy:
		return Positive
	case models.RatingHold:
		return Caution
	case models.RatingSell:
		return Negative
	default:
		return t.Muted
	}
}

// SentimentColor returns the color of a sentiment label.
func (t Theme) SentimentColor(s models.Sentiment) lipgloss.Color {
	switch {
	case s.IsPositive():
		return Positive
	case s == models.SentimentNegative:
		return Negative
	default:
		return t.Muted
	}
}

// LevelColor returns the color of a High/Medium/Low level.
func (t Theme) LevelColor(l models.Level) lipgloss.Color {
	switch l {
	case models.LevelHigh:
		return Negative
	case models.LevelMedium:
		return Caution
	case models.LevelLow:
		return Positive
	default:
		return t.Muted
	}
}

// ChangeColor colors a price change by sign.
func (t Theme) ChangeColor(change float64) lipgloss.Color {
	if change >= 0 {
		return Positive
	}
	return Negative
}
