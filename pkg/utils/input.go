// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 一帧的指针状态
// 有触摸时使用第一个触点，否则使用鼠标左键；坐标为逻辑像素
type PointerState struct {
	Pressed     bool // 当前按下
	JustPressed bool // 本帧刚按下
	X, Y        int
}

// pointerSource 指针输入来源（ebitenPointer 读取 Ebitengine 的输入状态）
type pointerSource interface {
	TouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	// TouchPressDuration 触点已按下的帧数，刚按下的那一帧为 1
	TouchPressDuration(id ebiten.TouchID) int
	CursorPosition() (int, int)
	MousePressed() bool
	MouseJustPressed() bool
}

type ebitenPointer struct{}

func (ebitenPointer) TouchIDs() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }

func (ebitenPointer) TouchPosition(id ebiten.TouchID) (int, int) { return ebiten.TouchPosition(id) }

func (ebitenPointer) TouchPressDuration(id ebiten.TouchID) int {
	return inpututil.TouchPressDuration(id)
}

func (ebitenPointer) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenPointer) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointer) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// ReadPointer 读取本帧的指针状态
func ReadPointer() PointerState {
	return readPointer(ebitenPointer{})
}

func readPointer(src pointerSource) PointerState {
	if touches := src.TouchIDs(); len(touches) > 0 {
		id := touches[0]
		x, y := src.TouchPosition(id)
		return PointerState{
			Pressed:     true,
			JustPressed: src.TouchPressDuration(id) == 1,
			X:           x,
			Y:           y,
		}
	}

	x, y := src.CursorPosition()
	return PointerState{
		Pressed:     src.MousePressed(),
		JustPressed: src.MouseJustPressed(),
		X:           x,
		Y:           y,
	}
}
