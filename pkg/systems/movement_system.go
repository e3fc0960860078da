package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/game"
)

// Wrap 把越界坐标绕回棋盘另一侧（环面）
// 每次移动最多越界一格，所以只处理 -1 和 tileCount 两种情况
func Wrap(c components.Cell, tileCount int) components.Cell {
	if c.X < 0 {
		c.X = tileCount - 1
	}
	if c.X >= tileCount {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = tileCount - 1
	}
	if c.Y >= tileCount {
		c.Y = 0
	}
	return c
}

// Advance 蛇前进一格
//
// 步骤：
//  1. 候选蛇头 = 蛇头 + 速度，按环面绕回
//  2. 候选蛇头与任意蛇身格子重合（含蛇尾）→ Reset
//  3. 候选蛇头插入最前面
//  4. 吃到食物 → 加分、重新放置食物（蛇变长）；否则去掉最后一节
//
// 静止（速度为零）时不做任何事。
func Advance(gs game.GameState, food FoodPlacer) (game.GameState, []components.Effect) {
	if gs.Velocity.IsZero() {
		return gs, nil
	}

	candidate := Wrap(gs.Head().Add(gs.Velocity), gs.TileCount)
	if gs.Occupies(candidate) {
		return Reset(gs)
	}

	next := gs
	next.Snake = make([]components.Cell, 0, len(gs.Snake)+1)
	next.Snake = append(next.Snake, candidate)
	next.Snake = append(next.Snake, gs.Snake...)
	next.Heading = gs.Velocity

	var effects []components.Effect
	if candidate == gs.Food {
		next.Score++
		effects = append(effects, components.Effect{Type: components.EffectPlayEat})
		next.Food = food.Place(next)
	} else {
		next.Snake = next.Snake[:len(next.Snake)-1]
	}

	return next, effects
}

// Reset 撞到自己后开始新的一局
//
// 分数超过最高分时先更新最高分并请求持久化，然后播放结束音效。
// 蛇回到起点、速度归零、分数清零；食物位置保持不变。
func Reset(gs game.GameState) (game.GameState, []components.Effect) {
	var effects []components.Effect

	next := gs
	if gs.Score > gs.HighScore {
		next.HighScore = gs.Score
		effects = append(effects, components.Effect{
			Type:  components.EffectPersistHighScore,
			Score: gs.Score,
			Round: gs.Round,
		})
	}
	effects = append(effects, components.Effect{Type: components.EffectPlayGameOver})

	next.Snake = []components.Cell{gs.Start}
	next.Velocity = components.DirectionNone
	next.Heading = components.DirectionNone
	next.Score = 0

	return next, effects
}
