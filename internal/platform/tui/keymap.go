package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// holdTicks is how long a key press keeps a flight action held. Key
// auto-repeat re-arms it well before it runs out.
const holdTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionThrust, false
	case "a", "left", "h":
		return core.ActionRotateLeft, false
	case "d", "right", "l":
		return core.ActionRotateRight, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// Held reports whether an action stays active while its key repeats, as
// opposed to toggles that must fire exactly once per press.
func Held(a core.Action) bool {
	switch a {
	case core.ActionThrust, core.ActionRotateLeft, core.ActionRotateRight, core.ActionFire:
		return true
	}
	return false
}

// Input collects key presses between ticks.
type Input struct {
	latch   *core.Latch
	pending core.InputFrame
}

// NewInput creates an input collector.
func NewInput() *Input {
	return &Input{
		latch:   core.NewLatch(holdTicks),
		pending: core.NewInputFrame(),
	}
}

// Press records an action.
func (in *Input) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if Held(a) {
		in.latch.Press(a)
		return
	}
	in.pending.Set(a)
}

// Frame returns the actions for the next tick and consumes one-shot ones.
func (in *Input) Frame() core.InputFrame {
	f := in.latch.Frame()
	for a := range in.pending.Actions {
		f.Set(a)
	}
	in.pending.Clear()
	return f
}

// Reset drops everything held.
func (in *Input) Reset() {
	in.latch.Release()
	in.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
