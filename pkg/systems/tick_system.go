package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/game"
)

// TickSystem 逻辑帧系统
// 每个固定间隔调用一次 Tick；暂停时状态不变
type TickSystem struct {
	food FoodPlacer
}

// NewTickSystem 创建逻辑帧系统
func NewTickSystem(food FoodPlacer) *TickSystem {
	return &TickSystem{
		food: food,
	}
}

// Tick 推进一个逻辑帧，返回新状态和需要执行的副作用
func (s *TickSystem) Tick(gs game.GameState) (game.GameState, []components.Effect) {
	if gs.Paused {
		return gs, nil
	}
	return Advance(gs, s.food)
}
