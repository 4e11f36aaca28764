package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubehop/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Pause key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space/w", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// holdTracker turns repeated key presses into held movement.
// Terminals report no key release, so a held action is released
// holdTicks frames after its last press or auto-repeat.
type holdTracker struct {
	holdTicks int
	remaining map[core.Action]int
}

func newHoldTracker(holdTicks int) *holdTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &holdTracker{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press records a press or repeat. It reports true when the action was not
// already held, i.e. when a key-down edge must be sent.
func (h *holdTracker) Press(a core.Action) bool {
	_, held := h.remaining[a]
	h.remaining[a] = h.holdTicks
	return !held
}

// Drop forgets a held action and adds its release to the frame.
func (h *holdTracker) Drop(a core.Action, frame *core.InputFrame) {
	if _, held := h.remaining[a]; held {
		delete(h.remaining, a)
		frame.Release(a)
	}
}

// Held reports whether the action is currently held.
func (h *holdTracker) Held(a core.Action) bool {
	_, held := h.remaining[a]
	return held
}

// Advance counts one frame down and writes releases for expired actions into frame.
func (h *holdTracker) Advance(frame *core.InputFrame) {
	for a, n := range h.remaining {
		n--
		if n > 0 {
			h.remaining[a] = n
			continue
		}
		delete(h.remaining, a)
		frame.Release(a)
	}
}
