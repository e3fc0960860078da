// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/media"
	"github.com/decker502/snake/pkg/scenes"
	"github.com/decker502/snake/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用内嵌的 assets/config/game.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene                    scenes.Scene
	gameConfig               *config.GameConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("嵌入资源未初始化，请先调用 embedded.Init()")
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultGameConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: canvas=%d grid=%d tick=%v",
		configPath, gameConfig.Canvas.Size, gameConfig.Canvas.GridSize, gameConfig.TickInterval())

	// 初始化音频上下文（每个进程只能创建一次）
	audioContext := audio.NewContext(gameConfig.Audio.SampleRate)

	// 创建资源管理器
	resourceManager := media.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(config.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 图片缺失不是致命错误，绘制时跳过
	if err := resourceManager.LoadResourceGroup("init"); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 持久化：最高分和用户设置
	persistence := game.NewPersistence(game.OpenStorage(gameConfig.Storage.AppName), gameConfig)
	settings := persistence.Settings.GetSettings()
	highScore := persistence.Scores.Load()
	if round, ok := persistence.Scores.LoadRound(); ok {
		log.Printf("[App] High score %d was set in round %s", highScore, round)
	}

	audioManager := media.NewAudioManager(resourceManager, *settings)
	audioManager.PreloadSounds([]string{game.SoundEat, game.SoundGameOver})
	log.Printf("[App] AudioManager initialized (muted=%v)", settings.Muted)

	dispatcher := game.NewEffectDispatcher(audioManager, persistence.Scores, persistence.Settings)

	scene := scenes.NewGameScene(scenes.GameSceneDeps{
		Config:          gameConfig,
		ResourceManager: resourceManager,
		Dispatcher:      dispatcher,
		Scores:          persistence.Scores,
		Food:            systems.NewFoodSystem(uint64(time.Now().UnixNano()), gameConfig.Food.AvoidSnake),
		HighScore:       highScore,
		Muted:           settings.Muted,
	})

	return &App{
		scene:      scene,
		gameConfig: gameConfig,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			width, height := a.gameConfig.WindowSize()
			ebiten.SetWindowSize(width, height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", width, height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（棋盘加底部按钮栏）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.WindowSize()
}

// WindowSize 返回初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.gameConfig.WindowSize()
}

// SaveOnExit 窗口关闭时保存当前场景的状态
// 场景未实现 scenes.Saveable 时视为成功
func (a *App) SaveOnExit() bool {
	saveable, ok := a.scene.(scenes.Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
}
