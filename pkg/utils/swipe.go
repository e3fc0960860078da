package utils

import (
	"github.com/decker502/snake/pkg/components"
)

// DefaultSwipeThreshold 判定为滑动的最小位移（逻辑像素）
const DefaultSwipeThreshold = 24

// SwipeTracker 把按下-拖动-释放手势换算成方向
// 用于没有键盘的触摸屏设备，鼠标拖动同样有效
type SwipeTracker struct {
	threshold int
	active    bool
	startX    int
	startY    int
	lastX     int
	lastY     int
}

// NewSwipeTracker 创建滑动跟踪器
func NewSwipeTracker(threshold int) *SwipeTracker {
	return &SwipeTracker{threshold: threshold}
}

// Update 输入本帧的指针状态（ReadPointer 的结果），每帧调用一次
// 手势在本帧结束且位移超过阈值时返回方向
func (t *SwipeTracker) Update(p PointerState) (components.Velocity, bool) {
	return t.Observe(p.Pressed, p.X, p.Y)
}

// Observe 输入一帧的指针状态
func (t *SwipeTracker) Observe(pressed bool, x, y int) (components.Velocity, bool) {
	switch {
	case pressed && !t.active:
		t.active = true
		t.startX, t.startY = x, y
		t.lastX, t.lastY = x, y
	case pressed:
		t.lastX, t.lastY = x, y
	case t.active:
		// 释放时的坐标不可靠（触摸已消失），使用最后一次按下时的位置
		t.active = false
		return SwipeDirection(t.lastX-t.startX, t.lastY-t.startY, t.threshold)
	}
	return components.DirectionNone, false
}

// SwipeDirection 把位移换算成方向
// 位移较大的轴决定方向；两轴都小于 threshold 时不算滑动
func SwipeDirection(dx, dy, threshold int) (components.Velocity, bool) {
	adx, ady := abs(dx), abs(dy)
	if adx < threshold && ady < threshold {
		return components.DirectionNone, false
	}

	if adx >= ady {
		if dx > 0 {
			return components.DirectionRight, true
		}
		return components.DirectionLeft, true
	}
	if dy > 0 {
		return components.DirectionDown, true
	}
	return components.DirectionUp, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
