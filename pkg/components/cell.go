package components

// Cell 网格坐标（单位：格，不是像素）
// 原点在画布左上角，X 向右、Y 向下
type Cell struct {
	X, Y int
}

// Add 返回沿速度方向移动一格后的坐标（不做边界处理）
func (c Cell) Add(v Velocity) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}
