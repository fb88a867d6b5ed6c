package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the tiling preview.
type PreviewKeyMap struct {
	Add     key.Binding
	Close   key.Binding
	SplitH  key.Binding
	SplitV  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Grow    key.Binding
	Shrink  key.Binding
	Toggle  key.Binding
	GapUp   key.Binding
	GapDown key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Close, k.SplitH, k.SplitV, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Close, k.SplitH, k.SplitV},
		{k.Next, k.Prev},
		{k.Grow, k.Shrink, k.GapUp, k.GapDown, k.Toggle},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add tile"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "close"),
		),
		SplitH: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split right"),
		),
		SplitV: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("S-tab", "prev"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float/tile"),
		),
		GapUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "gap +"),
		),
		GapDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "gap -"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
