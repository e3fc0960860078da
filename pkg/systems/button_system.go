package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
)

// 按钮文字
const (
	LabelPause    = "Pause"
	LabelResume   = "Resume"
	LabelSoundOn  = "Sound: ON"
	LabelSoundOff = "Sound: OFF"
)

// ButtonSystem 底部按钮栏
// 负责按钮布局、文字（由状态决定）以及点击测试
//
// 不直接读取鼠标，前端把点击坐标（逻辑像素）传给 HitTest
type ButtonSystem struct {
	canvasSize int
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(canvasSize int) *ButtonSystem {
	return &ButtonSystem{
		canvasSize: canvasSize,
	}
}

// Buttons 返回当前状态下的按钮列表
func (s *ButtonSystem) Buttons(gs game.GameState) []components.Button {
	pauseX, pauseY, muteX, muteY := config.ButtonOrigins(s.canvasSize)

	return []components.Button{
		{
			ID:      components.ButtonPause,
			Bounds:  components.Rect{X: pauseX, Y: pauseY, W: config.ButtonWidth, H: config.ButtonHeight},
			Label:   PauseLabel(gs.Paused),
			Command: components.Command{Type: components.CommandTogglePause},
		},
		{
			ID:      components.ButtonMute,
			Bounds:  components.Rect{X: muteX, Y: muteY, W: config.ButtonWidth, H: config.ButtonHeight},
			Label:   MuteLabel(gs.Muted),
			Command: components.Command{Type: components.CommandToggleMute},
		},
	}
}

// HitTest 检测点击位置是否落在某个按钮上
//
// 返回：
//   - components.Command: 被点击按钮对应的命令
//   - bool: 是否命中按钮
func (s *ButtonSystem) HitTest(gs game.GameState, x, y float64) (components.Command, bool) {
	for _, button := range s.Buttons(gs) {
		if button.Bounds.Contains(x, y) {
			return button.Command, true
		}
	}
	return components.Command{}, false
}

// PauseLabel 暂停按钮文字
func PauseLabel(paused bool) string {
	if paused {
		return LabelResume
	}
	return LabelPause
}

// MuteLabel 静音按钮文字
func MuteLabel(muted bool) string {
	if muted {
		return LabelSoundOff
	}
	return LabelSoundOn
}
