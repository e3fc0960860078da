package config

import (
	"fmt"
	"time"

	"github.com/decker502/snake/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 内置游戏配置路径（位于嵌入资源中）
const DefaultGameConfigPath = "assets/config/game.yaml"

// GameConfig 游戏配置
//
// 配置文件位置: assets/config/game.yaml
// 未出现在文件中的字段保留 DefaultGameConfig() 的默认值。
type GameConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Tick    TickConfig    `yaml:"tick"`
	Snake   SnakeConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
}

// CanvasConfig 画布与网格尺寸
type CanvasConfig struct {
	// Size 画布边长（像素），必须是 GridSize 的整数倍
	Size int `yaml:"size"`
	// GridSize 单元格边长（像素）
	GridSize int `yaml:"gridSize"`
}

// TickConfig 逻辑帧配置
type TickConfig struct {
	IntervalMs int `yaml:"intervalMs"`
}

// CellConfig 网格坐标
type CellConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeConfig 蛇的初始配置
type SnakeConfig struct {
	// Start 开局和重置时蛇头所在的格子
	Start CellConfig `yaml:"start"`
}

// FoodConfig 食物配置
type FoodConfig struct {
	// Initial 开局时食物所在的格子
	Initial CellConfig `yaml:"initial"`
	// AvoidSnake 为 true 时食物只会生成在蛇身以外的格子
	AvoidSnake bool `yaml:"avoidSnake"`
}

// AudioConfig 音频配置
type AudioConfig struct {
	SampleRate  int     `yaml:"sampleRate"`
	MusicVolume float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
}

// StorageConfig 持久化配置
type StorageConfig struct {
	// AppName gdata 应用名（决定存储目录 / localStorage 前缀）
	AppName string `yaml:"appName"`
	// HighScoreKey 最高分的存储键
	HighScoreKey string `yaml:"highScoreKey"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Canvas:  CanvasConfig{Size: 400, GridSize: 20},
		Tick:    TickConfig{IntervalMs: 180},
		Snake:   SnakeConfig{Start: CellConfig{X: 10, Y: 10}},
		Food:    FoodConfig{Initial: CellConfig{X: 5, Y: 5}, AvoidSnake: true},
		Audio:   AudioConfig{SampleRate: 44100, MusicVolume: 0.4, SoundVolume: 1.0},
		Storage: StorageConfig{AppName: "snake_newx", HighScoreKey: "snakeHighScore"},
	}
}

// LoadGameConfig 加载游戏配置
//
// 以 "assets/" 开头的路径从嵌入资源读取，其他路径从磁盘读取（用于 -config 参数）。
//
// 参数:
//   - path: 配置文件路径（如 "assets/config/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置并验证
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Canvas.Size <= 0 || c.Canvas.GridSize <= 0 {
		return fmt.Errorf("canvas size (%d) and grid size (%d) must be positive",
			c.Canvas.Size, c.Canvas.GridSize)
	}
	if c.Canvas.Size%c.Canvas.GridSize != 0 {
		return fmt.Errorf("canvas size %d is not divisible by grid size %d",
			c.Canvas.Size, c.Canvas.GridSize)
	}
	if c.Tick.IntervalMs <= 0 {
		return fmt.Errorf("tick interval must be positive, got %d", c.Tick.IntervalMs)
	}

	tiles := c.TileCount()
	if !c.inGrid(c.Snake.Start, tiles) {
		return fmt.Errorf("snake start (%d,%d) outside %dx%d grid",
			c.Snake.Start.X, c.Snake.Start.Y, tiles, tiles)
	}
	if !c.inGrid(c.Food.Initial, tiles) {
		return fmt.Errorf("initial food (%d,%d) outside %dx%d grid",
			c.Food.Initial.X, c.Food.Initial.Y, tiles, tiles)
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("music volume %.2f out of range [0, 1]", c.Audio.MusicVolume)
	}
	if c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		return fmt.Errorf("sound volume %.2f out of range [0, 1]", c.Audio.SoundVolume)
	}

	if c.Storage.AppName == "" || c.Storage.HighScoreKey == "" {
		return fmt.Errorf("storage appName and highScoreKey must not be empty")
	}

	return nil
}

func (c *GameConfig) inGrid(cell CellConfig, tiles int) bool {
	return cell.X >= 0 && cell.X < tiles && cell.Y >= 0 && cell.Y < tiles
}

// TileCount 返回每边的格子数（画布边长 / 单元格边长）
func (c *GameConfig) TileCount() int {
	return c.Canvas.Size / c.Canvas.GridSize
}

// TickInterval 返回逻辑帧间隔
func (c *GameConfig) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMs) * time.Millisecond
}

// WindowSize 返回逻辑屏幕尺寸（画布 + 底部按钮栏）
func (c *GameConfig) WindowSize() (int, int) {
	return c.Canvas.Size, c.Canvas.Size + ButtonBarHeight
}
