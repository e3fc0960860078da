package terminal

import (
	"testing"

	"github.com/decker502/snake/pkg/components"
	"github.com/gdamore/tcell/v2"
)

func TestKeyCommands(t *testing.T) {
	keyPress := components.Command{Type: components.CommandKeyPress}

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want []components.Command
		quit bool
	}{
		{"arrow up", tcell.KeyUp, 0, []components.Command{keyPress, components.DirectionCommand(components.DirectionUp)}, false},
		{"arrow left", tcell.KeyLeft, 0, []components.Command{keyPress, components.DirectionCommand(components.DirectionLeft)}, false},
		{"d", tcell.KeyRune, 'd', []components.Command{keyPress, components.DirectionCommand(components.DirectionRight)}, false},
		{"upper S", tcell.KeyRune, 'S', []components.Command{keyPress, components.DirectionCommand(components.DirectionDown)}, false},
		{"pause", tcell.KeyRune, 'p', []components.Command{keyPress, {Type: components.CommandTogglePause}}, false},
		{"mute", tcell.KeyRune, 'm', []components.Command{keyPress, {Type: components.CommandToggleMute}}, false},
		{"other letter", tcell.KeyRune, 'x', []components.Command{keyPress}, false},
		{"enter", tcell.KeyEnter, 0, []components.Command{keyPress}, false},
		{"q quits", tcell.KeyRune, 'q', nil, true},
		{"escape quits", tcell.KeyEscape, 0, nil, true},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := KeyCommands(tt.key, tt.r)
			if quit != tt.quit {
				t.Fatalf("quit = %v, want %v", quit, tt.quit)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("commands = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("commands[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
