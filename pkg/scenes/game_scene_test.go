package scenes

import (
	"errors"
	"testing"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
	"github.com/google/uuid"
)

type stubFood struct{ cell components.Cell }

func (f stubFood) Place(gs game.GameState) components.Cell { return f.cell }

type recordingCues struct{ calls []string }

func (c *recordingCues) PlayCue(id string)   { c.calls = append(c.calls, id) }
func (c *recordingCues) StartMusic()         { c.calls = append(c.calls, "start") }
func (c *recordingCues) PauseMusic()         { c.calls = append(c.calls, "pause") }
func (c *recordingCues) ResumeMusic()        { c.calls = append(c.calls, "resume") }
func (c *recordingCues) SetMuted(muted bool) { c.calls = append(c.calls, "muted") }

type memoryScores struct {
	saved  []int
	rounds []uuid.UUID
	err    error
}

func (m *memoryScores) Save(score int, round uuid.UUID) error {
	m.saved = append(m.saved, score)
	m.rounds = append(m.rounds, round)
	return m.err
}

func newTestScene(t *testing.T) (*GameScene, *recordingCues, *memoryScores) {
	t.Helper()

	cues := &recordingCues{}
	scores := &memoryScores{}
	scene := NewGameScene(GameSceneDeps{
		Config:     config.DefaultGameConfig(),
		Dispatcher: game.NewEffectDispatcher(cues, scores, nil),
		Scores:     scores,
		Food:       stubFood{cell: components.Cell{X: 0, Y: 0}},
		HighScore:  1,
	})
	return scene, cues, scores
}

// TestGameSceneTickInterval 180ms 才推进一格
func TestGameSceneTickInterval(t *testing.T) {
	scene, _, _ := newTestScene(t)
	scene.Push(components.DirectionCommand(components.DirectionRight))

	frame := 1.0 / 60.0
	for i := 0; i < 10; i++ {
		scene.advance(frame)
	}
	if head := scene.State().Head(); head != (components.Cell{X: 10, Y: 10}) {
		t.Fatalf("moved too early: head=%+v", head)
	}

	for i := 0; i < 2; i++ {
		scene.advance(frame)
	}
	if head := scene.State().Head(); head != (components.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %+v after 200ms, want (11,10)", head)
	}
}

// TestGameSceneDropsBacklog 长时间卡顿后只推进一格
func TestGameSceneDropsBacklog(t *testing.T) {
	scene, _, _ := newTestScene(t)
	scene.Push(components.DirectionCommand(components.DirectionRight))

	scene.advance(2.0)
	if head := scene.State().Head(); head != (components.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %+v, want a single step to (11,10)", head)
	}
}

func TestGameSceneEatDispatchesCue(t *testing.T) {
	scene, cues, _ := newTestScene(t)
	scene.state.Food = components.Cell{X: 11, Y: 10}
	scene.Push(components.Command{Type: components.CommandKeyPress})
	scene.Push(components.DirectionCommand(components.DirectionRight))

	scene.advance(0.2)

	state := scene.State()
	if state.Score != 1 || len(state.Snake) != 2 {
		t.Errorf("score=%d length=%d, want 1/2", state.Score, len(state.Snake))
	}
	want := []string{"start", game.SoundEat}
	if len(cues.calls) != 2 || cues.calls[0] != want[0] || cues.calls[1] != want[1] {
		t.Errorf("cue calls = %v, want %v", cues.calls, want)
	}
}

func TestGameScenePauseStopsTicks(t *testing.T) {
	scene, cues, _ := newTestScene(t)
	scene.Push(components.DirectionCommand(components.DirectionRight))
	scene.Push(components.Command{Type: components.CommandTogglePause})

	scene.advance(0.2)
	scene.advance(0.2)

	if head := scene.State().Head(); head != (components.Cell{X: 10, Y: 10}) {
		t.Errorf("paused scene moved: head=%+v", head)
	}
	if len(cues.calls) != 1 || cues.calls[0] != "pause" {
		t.Errorf("cue calls = %v, want [pause]", cues.calls)
	}
}

// TestGameSceneResetStartsNewRound 撞到自己后换新的回合 ID 并保存最高分
func TestGameSceneResetStartsNewRound(t *testing.T) {
	scene, cues, scores := newTestScene(t)
	scene.state.Snake = []components.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}}
	scene.state.Velocity = components.DirectionLeft
	scene.state.Score = 3
	firstRound := scene.state.Round
	if firstRound == uuid.Nil {
		t.Fatal("scene started without a round id")
	}

	scene.advance(0.2)

	if round := scene.State().Round; round == firstRound || round == uuid.Nil {
		t.Error("round id not renewed after reset")
	}
	if len(scores.saved) != 1 || scores.saved[0] != 3 {
		t.Errorf("saved = %v, want [3]", scores.saved)
	}
	if len(scores.rounds) != 1 || scores.rounds[0] != firstRound {
		t.Errorf("saved rounds = %v, want the ended round %s", scores.rounds, firstRound)
	}
	if len(cues.calls) != 1 || cues.calls[0] != game.SoundGameOver {
		t.Errorf("cue calls = %v", cues.calls)
	}
	if scene.State().HighScore != 3 {
		t.Errorf("high score = %d, want 3", scene.State().HighScore)
	}
}

func TestGameSceneSaveOnExit(t *testing.T) {
	scene, _, scores := newTestScene(t)

	if !scene.SaveOnExit() || len(scores.saved) != 0 {
		t.Error("nothing should be saved when the score does not beat the high score")
	}

	scene.state.Score = 5
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit() = false")
	}
	if len(scores.saved) != 1 || scores.saved[0] != 5 {
		t.Errorf("saved = %v, want [5]", scores.saved)
	}
	if scores.rounds[0] != scene.state.Round {
		t.Errorf("saved round = %s, want current round %s", scores.rounds[0], scene.state.Round)
	}

	scores.err = errors.New("read-only")
	if scene.SaveOnExit() {
		t.Error("SaveOnExit() should report failure")
	}
}

// TestGameSceneStateIsCopy 修改 State() 的返回值不影响场景
func TestGameSceneStateIsCopy(t *testing.T) {
	scene, _, _ := newTestScene(t)

	state := scene.State()
	state.Snake[0] = components.Cell{X: 0, Y: 0}

	if head := scene.State().Head(); head != (components.Cell{X: 10, Y: 10}) {
		t.Errorf("scene state changed through the copy: head=%+v", head)
	}
}

var _ Saveable = (*GameScene)(nil)
