package terminal

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/game"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

type cellKey struct{ col, row int }

type cell struct {
	r     rune
	style tcell.Style
}

// fakeScreen 记录写入的字符，PollEvent 从 channel 读取（关闭后返回 nil）
type fakeScreen struct {
	cells  map[cellKey]cell
	shows  int
	width  int
	height int
	events chan tcell.Event
}

func newFakeScreen() *fakeScreen {
	return &fakeScreen{
		cells:  make(map[cellKey]cell),
		width:  80,
		height: 40,
		events: make(chan tcell.Event),
	}
}

func (s *fakeScreen) Clear() { s.cells = make(map[cellKey]cell) }

func (s *fakeScreen) Size() (int, int) { return s.width, s.height }

func (s *fakeScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.cells[cellKey{x, y}] = cell{r: primary, style: style}
}

func (s *fakeScreen) Show() { s.shows++ }

func (s *fakeScreen) PollEvent() tcell.Event {
	ev, ok := <-s.events
	if !ok {
		return nil
	}
	return ev
}

func (s *fakeScreen) runeAt(col, row int) rune {
	return s.cells[cellKey{col, row}].r
}

// rowText 读取一行中 [from, to) 列的文字
func (s *fakeScreen) rowText(row, from, to int) string {
	var out []rune
	for col := from; col < to; col++ {
		r := s.runeAt(col, row)
		if r == 0 {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

type stubFood struct{ cell components.Cell }

func (f stubFood) Place(gs game.GameState) components.Cell { return f.cell }

type memoryScores struct {
	saved  []int
	rounds []uuid.UUID
}

func (m *memoryScores) Save(score int, round uuid.UUID) error {
	m.saved = append(m.saved, score)
	m.rounds = append(m.rounds, round)
	return nil
}
