package components

// ButtonID 底部按钮栏中的按钮
type ButtonID int

const (
	ButtonPause ButtonID = iota
	ButtonMute
)

// Rect 轴对齐矩形（逻辑像素）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Button 按钮描述
// 纯数据：位置、文字以及点击时产生的命令
type Button struct {
	ID      ButtonID
	Bounds  Rect
	Label   string
	Command Command
}
