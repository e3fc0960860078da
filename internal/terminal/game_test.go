package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

func newTestGame(t *testing.T) (*Game, *fakeScreen, *memoryScores) {
	t.Helper()

	screen := newFakeScreen()
	scores := &memoryScores{}
	g := NewGame(screen, Deps{
		Config:     config.DefaultGameConfig(),
		Dispatcher: game.NewEffectDispatcher(nil, scores, nil),
		Scores:     scores,
		Food:       stubFood{cell: components.Cell{X: 0, Y: 0}},
		HighScore:  2,
	})
	return g, screen, scores
}

func TestGameStepMovesSnake(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.queue.Push(components.DirectionCommand(components.DirectionDown))

	g.Step()
	if head := g.State().Head(); head != (components.Cell{X: 10, Y: 11}) {
		t.Errorf("head = %+v, want (10,11)", head)
	}
}

func TestGameMouseClickTogglesPause(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.HandleMouse(13, 21, tcell.Button1)
	g.applyCommands()
	if !g.State().Paused {
		t.Fatal("click on the pause button should pause")
	}

	// 按住不放不算第二次点击
	g.HandleMouse(13, 21, tcell.Button1)
	g.applyCommands()
	if !g.State().Paused {
		t.Error("held button toggled pause again")
	}

	g.HandleMouse(13, 21, tcell.ButtonNone)
	g.HandleMouse(13, 21, tcell.Button1)
	g.applyCommands()
	if g.State().Paused {
		t.Error("second click should resume")
	}
}

func TestGameMouseClickOutsideButtons(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.HandleMouse(5, 5, tcell.Button1)
	if g.queue.Len() != 0 {
		t.Errorf("click on the board queued %d commands", g.queue.Len())
	}
}

func TestGameResetRenewsRound(t *testing.T) {
	g, _, scores := newTestGame(t)
	g.state.Snake = []components.Cell{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	g.state.Velocity = components.DirectionDown
	g.state.Score = 6
	round := g.State().Round
	if round == uuid.Nil {
		t.Fatal("game started without a round id")
	}

	g.Step()

	if g.State().Round == round {
		t.Error("round id not renewed")
	}
	if len(scores.rounds) != 1 || scores.rounds[0] != round {
		t.Errorf("saved rounds = %v, want the ended round %s", scores.rounds, round)
	}
	if len(g.State().Snake) != 1 || g.State().Score != 0 {
		t.Errorf("state not reset: %+v", g.State())
	}
	if len(scores.saved) != 1 || scores.saved[0] != 6 {
		t.Errorf("saved = %v, want [6]", scores.saved)
	}
}

func TestGameSaveOnExit(t *testing.T) {
	g, _, scores := newTestGame(t)

	if err := g.SaveOnExit(); err != nil || len(scores.saved) != 0 {
		t.Errorf("SaveOnExit() without a new high score saved %v, err %v", scores.saved, err)
	}

	g.state.Score = 3
	if err := g.SaveOnExit(); err != nil {
		t.Fatalf("SaveOnExit() error = %v", err)
	}
	if len(scores.saved) != 1 || scores.saved[0] != 3 {
		t.Errorf("saved = %v, want [3]", scores.saved)
	}
	if scores.rounds[0] != g.State().Round {
		t.Errorf("saved round = %s, want %s", scores.rounds[0], g.State().Round)
	}
}

// TestGameFits 终端尺寸与棋盘所需尺寸比较
func TestGameFits(t *testing.T) {
	g, screen, _ := newTestGame(t)
	needCols, needRows := g.surface.Size()

	tests := []struct {
		name          string
		width, height int
		want          bool
	}{
		{"exact", needCols, needRows, true},
		{"larger", needCols + 10, needRows + 5, true},
		{"too narrow", needCols - 1, needRows, false},
		{"too short", needCols, needRows - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen.width, screen.height = tt.width, tt.height
			if got := g.Fits(); got != tt.want {
				t.Errorf("Fits() with %dx%d = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

// TestGameDrawTooSmall 终端太小时只显示提示
func TestGameDrawTooSmall(t *testing.T) {
	g, screen, _ := newTestGame(t)
	g.Draw()
	if screen.runeAt(0, 0) == 0 {
		t.Fatal("board not drawn on a large enough terminal")
	}

	screen.width, screen.height = 30, 10
	g.Draw()

	needCols, needRows := g.surface.Size()
	text := screen.rowText(0, 0, 40)
	if !strings.HasPrefix(text, "terminal too small") {
		t.Errorf("row 0 = %q, want the too-small message", text)
	}
	if !strings.Contains(text, "40x") || needCols != 40 {
		t.Errorf("row 0 = %q, want the needed size %dx%d", text, needCols, needRows)
	}
	if screen.runeAt(0, 5) != 0 {
		t.Error("board drawn on a terminal that is too small")
	}
	if screen.shows != 2 {
		t.Errorf("shows = %d, want 2", screen.shows)
	}
}

// TestGameStateIsCopy 修改 State() 的返回值不影响游戏
func TestGameStateIsCopy(t *testing.T) {
	g, _, _ := newTestGame(t)

	state := g.State()
	state.Snake[0] = components.Cell{X: 1, Y: 1}

	if head := g.State().Head(); head != (components.Cell{X: 10, Y: 10}) {
		t.Errorf("game state changed through the copy: head=%+v", head)
	}
}

func TestGameRunStopsWhenScreenCloses(t *testing.T) {
	g, screen, _ := newTestGame(t)
	close(screen.events)

	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after the screen closed")
	}
	if screen.shows == 0 {
		t.Error("Run() never drew the screen")
	}
}

func TestGameRunStopsOnCancel(t *testing.T) {
	g, _, _ := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
