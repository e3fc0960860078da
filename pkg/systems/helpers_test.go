package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
)

// fixedFoodPlacer 总是返回同一个格子，并记录调用次数
type fixedFoodPlacer struct {
	cell  components.Cell
	calls int
}

func (p *fixedFoodPlacer) Place(gs game.GameState) components.Cell {
	p.calls++
	return p.cell
}

// sequenceSource 按顺序返回预设值（对 n 取模）
type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// newTestState 20x20 棋盘，起点 (10,10)
func newTestState(snake ...components.Cell) game.GameState {
	gs := game.NewGameState(config.DefaultGameConfig(), 0, false)
	if len(snake) > 0 {
		gs.Snake = snake
	}
	return gs
}
