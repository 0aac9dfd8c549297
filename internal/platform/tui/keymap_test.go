package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey("w"), core.ActionThrust, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"a", runeKey("a"), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey("d"), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.action)
		}
	}
}

func TestInputHoldsFlightActions(t *testing.T) {
	in := NewInput()
	in.Press(core.ActionThrust)

	for i := 0; i < holdTicks; i++ {
		if f := in.Frame(); !f.Has(core.ActionThrust) {
			t.Fatalf("frame %d: thrust released early", i)
		}
	}
	if f := in.Frame(); f.Has(core.ActionThrust) {
		t.Error("thrust still held after the latch ran out")
	}
}

func TestInputOneShotActions(t *testing.T) {
	in := NewInput()
	in.Press(core.ActionPause)
	in.Press(core.ActionFire)

	f := in.Frame()
	if !f.Has(core.ActionPause) || !f.Has(core.ActionFire) {
		t.Fatalf("first frame = %v", f.Actions)
	}
	f = in.Frame()
	if f.Has(core.ActionPause) {
		t.Error("pause repeated on the next frame")
	}
	if !f.Has(core.ActionFire) {
		t.Error("fire should still be held")
	}

	in.Reset()
	if f := in.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after Reset = %v", f.Actions)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "AB", core.ColorShip)
	s.SetColor(3, 1, 'W', core.ColorEnemy)

	out := RenderScreen(s)
	for _, want := range []string{"AB", "W"} {
		if !containsPlain(out, want) {
			t.Errorf("RenderScreen output %q missing %q", out, want)
		}
	}
}

// containsPlain reports whether want appears once escape sequences are removed.
func containsPlain(s, want string) bool {
	var plain []rune
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			plain = append(plain, r)
		}
	}
	return strings.Contains(string(plain), want)
}
