package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the styled components built from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	App     lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Sidebar lipgloss.Style
	Content lipgloss.Style
	Card    lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Navigation
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	// Lists
	Row         lipgloss.Style
	SelectedRow lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Badge   lipgloss.Style
	Pending lipgloss.Style
	Toast   lipgloss.Style
}

// NewStyles creates the styles of a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		Header: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.Card).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 2),

		Sidebar: lipgloss.NewStyle().
			Width(22).
			Padding(1, 1).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Border),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			Background(t.Card).
			Foreground(t.Foreground).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		NavItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			PaddingLeft(1),

		NavActive: lipgloss.NewStyle().
			Foreground(t.Card).
			Background(t.Primary).
			Bold(true).
			PaddingLeft(1),

		Row: lipgloss.NewStyle().
			Foreground(t.Foreground),

		SelectedRow: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.Accent),

		Success: lipgloss.NewStyle().
			Foreground(Positive).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Negative).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Caution).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Notice),

		Badge: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true),

		Pending: lipgloss.NewStyle().
			Foreground(t.Accent).
			Italic(true),

		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent),
	}
}

// BadgeStyle returns the badge style tinted with a color.
func (s Styles) BadgeStyle(c lipgloss.Color) lipgloss.Style {
	return s.Badge.Foreground(c)
}
