package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyLeft KeyName = iota
	KeyRight
	KeyFirst
	KeyLast
	KeyUp
	KeyDown

	KeyAutoPlay
	KeyRTL
	KeyTilt
	KeyMoreItems
	KeyFewerItems

	KeyJump
	KeySettings
	KeyOpen
	KeyCopy
	KeyReload

	KeyEnter
	KeyEsc
	KeyHelp
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"left":   KeyLeft,
	"h":      KeyLeft,
	"right":  KeyRight,
	"l":      KeyRight,
	"home":   KeyFirst,
	"g":      KeyFirst,
	"end":    KeyLast,
	"G":      KeyLast,
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	" ":      KeyAutoPlay,
	"p":      KeyAutoPlay,
	"r":      KeyRTL,
	"t":      KeyTilt,
	"+":      KeyMoreItems,
	"=":      KeyMoreItems,
	"-":      KeyFewerItems,
	"/":      KeyJump,
	"s":      KeySettings,
	"o":      KeyOpen,
	"y":      KeyCopy,
	"R":      KeyReload,
	"enter":  KeyEnter,
	"esc":    KeyEsc,
	"?":      KeyHelp,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyFirst: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first"),
	),
	KeyLast: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last"),
	),
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyAutoPlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("p", "autoplay"),
	),
	KeyRTL: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "rtl"),
	),
	KeyTilt: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "tilt"),
	),
	KeyMoreItems: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "more"),
	),
	KeyFewerItems: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "fewer"),
	),
	KeyJump: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "jump"),
	),
	KeySettings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	KeyOpen: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	KeyReload: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpKeyMap groups the bindings for bubbles/help.
type HelpKeyMap struct{}

func binding(names ...KeyName) []key.Binding {
	out := make([]key.Binding, len(names))
	for i, n := range names {
		out[i] = GlobalkeyBindings[n]
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (HelpKeyMap) ShortHelp() []key.Binding {
	return binding(KeyLeft, KeyRight, KeyJump, KeyHelp, KeyQuit)
}

// FullHelp implements help.KeyMap.
func (HelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		binding(KeyLeft, KeyRight, KeyFirst, KeyLast),
		binding(KeyAutoPlay, KeyRTL, KeyTilt, KeyMoreItems, KeyFewerItems),
		binding(KeyJump, KeySettings, KeyOpen, KeyCopy, KeyReload),
		binding(KeyHelp, KeyQuit),
	}
}
