package game

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/google/uuid"
)

// GameState 一局游戏的完整状态
//
// 纯数据记录：所有状态转换（systems 包）都以值的形式接收并返回 GameState，
// 不修改传入的实例。Snake 切片在转换时总是复制。
type GameState struct {
	// Snake 蛇身，Snake[0] 为蛇头，长度始终 >= 1
	Snake []components.Cell
	// Velocity 当前移动方向（下一次 tick 使用）
	Velocity components.Velocity
	// Heading 上一次实际前进时使用的方向
	// 防止两次 tick 之间连续按键让蛇掉头
	Heading components.Velocity
	Food    components.Cell

	Score     int
	HighScore int

	Paused       bool
	Muted        bool
	MusicStarted bool

	// TileCount 每边格子数
	TileCount int
	// Start 开局和重置时蛇头所在的格子
	Start components.Cell

	// Round 当前回合 ID，由前端在开局和每次重置后分配
	// 新最高分与回合 ID 一起保存
	Round uuid.UUID
}

// NewGameState 按配置创建开局状态
//
// 参数：
//   - cfg: 游戏配置（决定网格大小、起点、初始食物）
//   - highScore: 已持久化的最高分
//   - muted: 已保存的静音偏好
func NewGameState(cfg *config.GameConfig, highScore int, muted bool) GameState {
	start := components.Cell{X: cfg.Snake.Start.X, Y: cfg.Snake.Start.Y}
	return GameState{
		Snake:     []components.Cell{start},
		Food:      components.Cell{X: cfg.Food.Initial.X, Y: cfg.Food.Initial.Y},
		HighScore: highScore,
		Muted:     muted,
		TileCount: cfg.TileCount(),
		Start:     start,
	}
}

// Head 返回蛇头坐标
func (gs GameState) Head() components.Cell {
	return gs.Snake[0]
}

// Clone 返回深拷贝（复制 Snake 切片）
func (gs GameState) Clone() GameState {
	clone := gs
	clone.Snake = make([]components.Cell, len(gs.Snake))
	copy(clone.Snake, gs.Snake)
	return clone
}

// Occupies 判断格子是否被蛇身占据（含蛇头和蛇尾）
func (gs GameState) Occupies(c components.Cell) bool {
	for _, part := range gs.Snake {
		if part == c {
			return true
		}
	}
	return false
}
