package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/game"
	"golang.org/x/exp/rand"
)

// RandomSource 随机数来源（*rand.Rand 满足该接口）
type RandomSource interface {
	Intn(n int) int
}

// FoodPlacer 决定食物被吃掉后的新位置
type FoodPlacer interface {
	Place(gs game.GameState) components.Cell
}

// FoodSystem 随机食物放置
//
// avoidSnake 为 true 时在蛇身以外的格子中均匀选择；
// 蛇占满整个棋盘时退回到全棋盘均匀选择。
type FoodSystem struct {
	rng        RandomSource
	avoidSnake bool
}

// NewFoodSystem 使用给定种子创建食物系统
// 相同种子 + 相同输入序列得到相同的食物位置
func NewFoodSystem(seed uint64, avoidSnake bool) *FoodSystem {
	return NewFoodSystemWithSource(rand.New(rand.NewSource(seed)), avoidSnake)
}

// NewFoodSystemWithSource 使用自定义随机源创建食物系统（测试用）
func NewFoodSystemWithSource(rng RandomSource, avoidSnake bool) *FoodSystem {
	return &FoodSystem{
		rng:        rng,
		avoidSnake: avoidSnake,
	}
}

// Place 返回新的食物位置
func (s *FoodSystem) Place(gs game.GameState) components.Cell {
	tiles := gs.TileCount
	if !s.avoidSnake {
		return s.anyCell(tiles)
	}

	occupied := make(map[components.Cell]struct{}, len(gs.Snake))
	for _, part := range gs.Snake {
		occupied[part] = struct{}{}
	}

	free := make([]components.Cell, 0, tiles*tiles)
	for y := 0; y < tiles; y++ {
		for x := 0; x < tiles; x++ {
			c := components.Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return s.anyCell(tiles)
	}
	return free[s.rng.Intn(len(free))]
}

func (s *FoodSystem) anyCell(tiles int) components.Cell {
	x := s.rng.Intn(tiles)
	y := s.rng.Intn(tiles)
	return components.Cell{X: x, Y: y}
}
