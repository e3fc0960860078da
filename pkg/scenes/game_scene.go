package scenes

import (
	"log"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/media"
	"github.com/decker502/snake/pkg/systems"
	"github.com/decker502/snake/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 贪吃蛇主场景
//
// 每个 Ebitengine Update 轮询输入、把命令放入队列，
// 累计时间达到 tick 间隔后先应用命令再推进一个逻辑帧。
// 状态转换产生的副作用交给 EffectDispatcher 执行。
type GameScene struct {
	state game.GameState

	tickSystem   *systems.TickSystem
	buttonSystem *systems.ButtonSystem
	renderSystem *systems.RenderSystem
	queue        *systems.CommandQueue
	swipe        *utils.SwipeTracker

	dispatcher *game.EffectDispatcher
	scores     game.ScoreSaver
	surface    *EbitenSurface

	interval    float64 // tick 间隔（秒）
	accumulator float64
	rounds      int
}

// GameSceneDeps 创建 GameScene 所需的协作者
type GameSceneDeps struct {
	Config          *config.GameConfig
	ResourceManager *media.ResourceManager
	Dispatcher      *game.EffectDispatcher
	Scores          game.ScoreSaver
	Food            systems.FoodPlacer
	HighScore       int
	Muted           bool
}

// NewGameScene 创建游戏场景
func NewGameScene(deps GameSceneDeps) *GameScene {
	cfg := deps.Config
	buttonSystem := systems.NewButtonSystem(cfg.Canvas.Size)

	s := &GameScene{
		state:        game.NewGameState(cfg, deps.HighScore, deps.Muted),
		tickSystem:   systems.NewTickSystem(deps.Food),
		buttonSystem: buttonSystem,
		renderSystem: systems.NewRenderSystem(cfg, buttonSystem),
		queue:        systems.NewCommandQueue(),
		swipe:        utils.NewSwipeTracker(utils.DefaultSwipeThreshold),
		dispatcher:   deps.Dispatcher,
		scores:       deps.Scores,
		surface:      NewEbitenSurface(deps.ResourceManager),
		interval:     cfg.TickInterval().Seconds(),
	}
	s.startRound()

	return s
}

// Update 轮询输入并推进游戏
func (s *GameScene) Update(deltaTime float64) {
	s.pollInput()
	s.advance(deltaTime)
}

// Draw 绘制当前状态
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.surface.SetTarget(screen)
	s.renderSystem.Draw(s.surface, s.state)
}

// Push 追加一条用户命令（下一个逻辑帧之前生效）
func (s *GameScene) Push(cmd components.Command) {
	s.queue.Push(cmd)
}

// State 返回当前游戏状态的副本
func (s *GameScene) State() game.GameState {
	return s.state.Clone()
}

// SaveOnExit 关闭窗口时，如果本局分数超过最高分则保存
func (s *GameScene) SaveOnExit() bool {
	if s.scores == nil || s.state.Score <= s.state.HighScore {
		return true
	}
	if err := s.scores.Save(s.state.Score, s.state.Round); err != nil {
		log.Printf("[GameScene] Failed to save high score on exit: %v", err)
		return false
	}
	log.Printf("[GameScene] Saved high score %d on exit", s.state.Score)
	return true
}

// pollInput 把本帧的键盘、点击和滑动转换成命令
func (s *GameScene) pollInput() {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		for _, cmd := range CommandsForKey(key) {
			s.queue.Push(cmd)
		}
	}

	pointer := utils.ReadPointer()
	if pointer.JustPressed {
		if cmd, hit := s.buttonSystem.HitTest(s.state, float64(pointer.X), float64(pointer.Y)); hit {
			s.queue.Push(cmd)
		}
	}

	if dir, ok := s.swipe.Update(pointer); ok {
		s.queue.Push(components.Command{Type: components.CommandKeyPress})
		s.queue.Push(components.DirectionCommand(dir))
	}
}

// advance 应用命令并按固定间隔推进逻辑帧
// 落后超过一个间隔时丢弃积压的时间，不追帧
func (s *GameScene) advance(deltaTime float64) {
	s.applyCommands()

	s.accumulator += deltaTime
	if s.accumulator < s.interval {
		return
	}
	s.accumulator -= s.interval
	if s.accumulator >= s.interval {
		s.accumulator = 0
	}

	next, effects := s.tickSystem.Tick(s.state)
	ended := false
	for _, effect := range effects {
		if effect.Type == components.EffectPlayGameOver {
			log.Printf("[GameScene] Round %s ended: score=%d, high score=%d, length=%d",
				s.state.Round, s.state.Score, next.HighScore, len(s.state.Snake))
			ended = true
		}
	}
	s.state = next
	if ended {
		s.startRound()
	}
	s.dispatch(effects)
}

func (s *GameScene) applyCommands() {
	if s.queue.Len() == 0 {
		return
	}
	var effects []components.Effect
	s.state, effects = systems.ApplyCommands(s.state, s.queue.Drain())
	s.dispatch(effects)
}

func (s *GameScene) dispatch(effects []components.Effect) {
	if s.dispatcher != nil && len(effects) > 0 {
		s.dispatcher.Dispatch(effects)
	}
}

func (s *GameScene) startRound() {
	s.state.Round = uuid.New()
	s.rounds++
	log.Printf("[GameScene] Round %d started (id=%s)", s.rounds, s.state.Round)
}
