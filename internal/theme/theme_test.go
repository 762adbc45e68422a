package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"sphereoftech/internal/models"
)

func TestFor(t *testing.T) {
	if For(models.ThemeDark).Mode != models.ThemeDark {
		t.Error("For(dark) should return the dark theme")
	}
	if For(models.ThemeLight).Mode != models.ThemeLight {
		t.Error("For(light) should return the light theme")
	}
	if For("sepia").Mode != models.ThemeLight {
		t.Error("unknown modes should fall back to light")
	}
}

func TestToggleIsInvolution(t *testing.T) {
	for _, th := range []Theme{Light(), Dark()} {
		if th.Toggle().Toggle() != th {
			t.Errorf("toggling %s twice should be identity", th.Mode)
		}
		if th.Toggle().Mode == th.Mode {
			t.Errorf("toggle of %s did not change mode", th.Mode)
		}
	}
}

func TestGlamourStyle(t *testing.T) {
	if got := Dark().GlamourStyle(); got != "dark" {
		t.Errorf("Dark().GlamourStyle() = %q", got)
	}
	if got := Light().GlamourStyle(); got != "light" {
		t.Errorf("Light().GlamourStyle() = %q", got)
	}
}

func TestRatingColor(t *testing.T) {
	th := Light()
	tests := []struct {
		rating models.AIRating
		want   lipgloss.Color
	}{
		{models.RatingStrongBuy, Positive},
		{models.RatingBuy, Positive},
		{models.RatingHold, Caution},
		{models.RatingSell, Negative},
		{"UNKNOWN", th.Muted},
	}
	for _, tt := range tests {
		if got := th.RatingColor(tt.rating); got != tt.want {
			t.Errorf("RatingColor(%q) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestLevelAndSentimentColors(t *testing.T) {
	th := Dark()
	if th.LevelColor(models.LevelHigh) != Negative || th.LevelColor(models.LevelLow) != Positive {
		t.Error("unexpected level colors")
	}
	if th.SentimentColor(models.SentimentVeryPositive) != Positive {
		t.Error("very positive should be green")
	}
	if th.SentimentColor(models.SentimentNeutral) != th.Muted {
		t.Error("neutral should be muted")
	}
	if th.ChangeColor(-0.5) != Negative || th.ChangeColor(0) != Positive {
		t.Error("unexpected change colors")
	}
}

func TestNewStylesCarriesTheme(t *testing.T) {
	s := NewStyles(Dark())
	if !s.Theme.IsDark() {
		t.Error("styles should keep their theme")
	}
	if s.Title.GetForeground() != lipgloss.TerminalColor(DarkPrimary) {
		t.Error("title should use the primary color")
	}
}
