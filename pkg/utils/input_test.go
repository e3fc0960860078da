package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakePointer struct {
	touches   []ebiten.TouchID
	touchX    int
	touchY    int
	duration  int
	cursorX   int
	cursorY   int
	mouseDown bool
	mouseJust bool
}

func (f fakePointer) TouchIDs() []ebiten.TouchID { return f.touches }

func (f fakePointer) TouchPosition(id ebiten.TouchID) (int, int) { return f.touchX, f.touchY }

func (f fakePointer) TouchPressDuration(id ebiten.TouchID) int { return f.duration }

func (f fakePointer) CursorPosition() (int, int) { return f.cursorX, f.cursorY }

func (f fakePointer) MousePressed() bool { return f.mouseDown }

func (f fakePointer) MouseJustPressed() bool { return f.mouseJust }

func TestReadPointer(t *testing.T) {
	tests := []struct {
		name string
		src  fakePointer
		want PointerState
	}{
		{
			name: "touch first frame is a tap",
			src:  fakePointer{touches: []ebiten.TouchID{3}, touchX: 132, touchY: 420, duration: 1, cursorX: 5, cursorY: 5},
			want: PointerState{Pressed: true, JustPressed: true, X: 132, Y: 420},
		},
		{
			name: "held touch",
			src:  fakePointer{touches: []ebiten.TouchID{3}, touchX: 140, touchY: 300, duration: 7},
			want: PointerState{Pressed: true, X: 140, Y: 300},
		},
		{
			name: "mouse click",
			src:  fakePointer{cursorX: 270, cursorY: 410, mouseDown: true, mouseJust: true},
			want: PointerState{Pressed: true, JustPressed: true, X: 270, Y: 410},
		},
		{
			name: "idle mouse",
			src:  fakePointer{cursorX: 10, cursorY: 20},
			want: PointerState{X: 10, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readPointer(tt.src); got != tt.want {
				t.Errorf("readPointer() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
