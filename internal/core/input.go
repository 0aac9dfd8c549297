package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // W, Up arrow - accelerate along the heading
	ActionRotateLeft         // A, Left arrow
	ActionRotateRight        // D, Right arrow
	ActionFire               // Space
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Latch keeps actions held for a number of ticks after their last key
// event. Terminals deliver key presses and auto-repeat but no releases, so
// an action counts as held until its latch runs out.
type Latch struct {
	hold  int
	ticks map[Action]int
}

// NewLatch creates a latch that holds each action for hold ticks.
func NewLatch(hold int) *Latch {
	if hold < 1 {
		hold = 1
	}
	return &Latch{hold: hold, ticks: make(map[Action]int)}
}

// Press (re)arms an action.
func (l *Latch) Press(a Action) {
	l.ticks[a] = l.hold
}

// Frame returns the actions currently held and advances every latch by one tick.
func (l *Latch) Frame() InputFrame {
	f := NewInputFrame()
	for a, n := range l.ticks {
		if n <= 0 {
			delete(l.ticks, a)
			continue
		}
		f.Set(a)
		l.ticks[a] = n - 1
	}
	return f
}

// Release drops every latched action.
func (l *Latch) Release() {
	clear(l.ticks)
}
