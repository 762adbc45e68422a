package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard key bindings.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Theme    key.Binding
	NextView key.Binding
	PrevView key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Enter    key.Binding
	Back     key.Binding

	Search   key.Binding
	Cycle    key.Binding
	Refresh  key.Binding
	Bookmark key.Binding
	Share    key.Binding
	Watch    key.Binding
	Accept   key.Binding
	Dismiss  key.Binding
	Optimize key.Binding
	Move     key.Binding
	More     key.Binding
	Generate key.Binding
	Chat     key.Binding
	Voice    key.Binding
	Feedback key.Binding
	Insights key.Binding
	Compare  key.Binding
	Demo     key.Binding
	Home     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		NextView: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first row")),
		Bottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last row")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/dismiss toasts")),

		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Cycle:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle filter")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
		Share:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Watch:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watch")),
		Accept:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accept")),
		Dismiss:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Optimize: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "optimize")),
		Move:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "reschedule")),
		More:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more suggestions")),
		Generate: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate course")),
		Chat:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ask assistant")),
		Voice:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "voice input")),
		Feedback: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "quiz feedback")),
		Insights: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "AI insights")),
		Compare:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "compare cohort")),
		Demo:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "demo sign in")),
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Up, k.Down, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.PrevView, k.Up, k.Down, k.Top, k.Bottom, k.Enter, k.Back},
		{k.Search, k.Cycle, k.Refresh, k.Bookmark, k.Share, k.Watch},
		{k.Accept, k.Dismiss, k.Optimize, k.Move, k.More},
		{k.Generate, k.Chat, k.Voice, k.Feedback, k.Insights, k.Compare},
		{k.Demo, k.Home, k.Theme, k.Help, k.Quit},
	}
}
