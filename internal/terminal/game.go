package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Screen tcell.Screen 中终端游戏用到的部分
type Screen interface {
	CellSetter
	Show()
	Clear()
	Size() (width, height int)
	PollEvent() tcell.Event
}

// Deps 终端游戏的协作者
type Deps struct {
	Config     *config.GameConfig
	Dispatcher *game.EffectDispatcher
	Scores     game.ScoreSaver
	Food       systems.FoodPlacer
	HighScore  int
	Muted      bool
}

// Game 终端版游戏循环
//
// 一个 goroutine 读取终端事件放入 channel，主循环在同一个 goroutine 中
// 处理事件、推进逻辑帧和重绘，状态不需要加锁。
type Game struct {
	screen Screen
	state  game.GameState

	tickSystem   *systems.TickSystem
	buttonSystem *systems.ButtonSystem
	renderSystem *systems.RenderSystem
	queue        *systems.CommandQueue
	surface      *Surface

	dispatcher *game.EffectDispatcher
	scores     game.ScoreSaver

	interval    time.Duration
	lastButtons tcell.ButtonMask
}

// NewGame 创建终端游戏
func NewGame(screen Screen, deps Deps) *Game {
	cfg := deps.Config
	buttonSystem := systems.NewButtonSystem(cfg.Canvas.Size)
	width, height := cfg.WindowSize()

	g := &Game{
		screen:       screen,
		state:        game.NewGameState(cfg, deps.HighScore, deps.Muted),
		tickSystem:   systems.NewTickSystem(deps.Food),
		buttonSystem: buttonSystem,
		renderSystem: systems.NewRenderSystem(cfg, buttonSystem),
		queue:        systems.NewCommandQueue(),
		surface:      NewSurface(screen, cfg.Canvas.GridSize, width, height),
		dispatcher:   deps.Dispatcher,
		scores:       deps.Scores,
		interval:     cfg.TickInterval(),
	}
	g.state.Round = uuid.New()
	return g
}

// Run 运行主循环，直到用户退出或 ctx 取消
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Printf("[Terminal] Round %s started", g.state.Round)
	g.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.HandleEvent(ev) {
				return nil
			}
			g.applyCommands()
			g.Draw()

		case <-ticker.C:
			// 终端放不下棋盘时暂停推进
			if g.Fits() {
				g.Step()
			}
			g.Draw()
		}
	}
}

// HandleEvent 处理一个终端事件，返回是否退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmds, quit := KeyCommands(ev.Key(), ev.Rune())
		if quit {
			return true
		}
		for _, cmd := range cmds {
			g.queue.Push(cmd)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		g.HandleMouse(col, row, ev.Buttons())
	}
	return false
}

// HandleMouse 左键按下的瞬间做按钮点击测试
func (g *Game) HandleMouse(col, row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && g.lastButtons&tcell.Button1 == 0
	g.lastButtons = buttons
	if !pressed {
		return
	}

	x, y := g.surface.PixelAt(col, row)
	if cmd, hit := g.buttonSystem.HitTest(g.state, x, y); hit {
		g.queue.Push(cmd)
	}
}

// Step 应用积压的命令并推进一个逻辑帧
func (g *Game) Step() {
	g.applyCommands()

	next, effects := g.tickSystem.Tick(g.state)
	for _, effect := range effects {
		if effect.Type == components.EffectPlayGameOver {
			log.Printf("[Terminal] Round %s ended: score=%d, length=%d", g.state.Round, g.state.Score, len(g.state.Snake))
			next.Round = uuid.New()
		}
	}
	g.state = next
	g.dispatch(effects)
}

func (g *Game) applyCommands() {
	if g.queue.Len() == 0 {
		return
	}
	var effects []components.Effect
	g.state, effects = systems.ApplyCommands(g.state, g.queue.Drain())
	g.dispatch(effects)
}

func (g *Game) dispatch(effects []components.Effect) {
	if g.dispatcher != nil && len(effects) > 0 {
		g.dispatcher.Dispatch(effects)
	}
}

// Fits 终端是否放得下整个棋盘和按钮栏
func (g *Game) Fits() bool {
	needCols, needRows := g.surface.Size()
	cols, rows := g.screen.Size()
	return cols >= needCols && rows >= needRows
}

// Draw 重绘整个画面
// 终端太小时只显示需要的尺寸
func (g *Game) Draw() {
	if !g.Fits() {
		g.drawTooSmall()
		g.screen.Show()
		return
	}
	g.renderSystem.Draw(g.surface, g.state)
	g.screen.Show()
}

func (g *Game) drawTooSmall() {
	g.screen.Clear()
	needCols, needRows := g.surface.Size()
	msg := fmt.Sprintf("terminal too small: need %dx%d", needCols, needRows)
	for col, r := range []rune(msg) {
		g.screen.SetContent(col, 0, r, nil, tcell.StyleDefault)
	}
}

// State 返回当前游戏状态的副本
func (g *Game) State() game.GameState {
	return g.state.Clone()
}

// SaveOnExit 退出时如果本局分数超过最高分则保存
func (g *Game) SaveOnExit() error {
	if g.scores == nil || g.state.Score <= g.state.HighScore {
		return nil
	}
	return g.scores.Save(g.state.Score, g.state.Round)
}
