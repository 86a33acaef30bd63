package dashboard

import (
	"github.com/charmbracelet/bubbles/key"

	"opsdash/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log stream view
type KeyMap struct {
	components.KeyMap
	Pause      key.Binding
	Clear      key.Binding
	CycleLevel key.Binding
	LevelAll   key.Binding
	LevelInfo  key.Binding
	LevelWarn  key.Binding
	LevelError key.Binding
	Search     key.Binding
	Apply      key.Binding
	Cancel     key.Binding
	Autoscroll key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "scroll up")
	base.Down.SetHelp("↓/j", "scroll down")

	return KeyMap{
		KeyMap: base,
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("space", "pause/resume"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "level"),
		),
		LevelAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		LevelInfo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "info"),
		),
		LevelWarn: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "warn"),
		),
		LevelError: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "error"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Autoscroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscroll"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "bottom"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Search, k.CycleLevel, k.Clear, k.Autoscroll, k.ToggleTips, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Clear, k.Autoscroll},
		{k.CycleLevel, k.LevelAll, k.LevelInfo, k.LevelWarn, k.LevelError},
		{k.Search, k.Apply, k.Cancel},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.ToggleTips, k.Quit, k.ForceQuit},
	}
}

// searchKeyMap is shown while the search box has focus
type searchKeyMap struct {
	apply  key.Binding
	cancel key.Binding
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.apply, k.cancel}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.apply, k.cancel}}
}
