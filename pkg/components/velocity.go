package components

import "math"

// Velocity 蛇的移动方向
// 取值只可能是 (0,0) 或四个单位方向之一
type Velocity struct {
	DX, DY int
}

// 预定义方向
var (
	DirectionNone  = Velocity{}
	DirectionUp    = Velocity{DX: 0, DY: -1}
	DirectionDown  = Velocity{DX: 0, DY: 1}
	DirectionLeft  = Velocity{DX: -1, DY: 0}
	DirectionRight = Velocity{DX: 1, DY: 0}
)

// IsZero 是否静止
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// IsOpposite 判断 v 是否与 other 正好相反
// 任意一方为零速度时都不算相反
func (v Velocity) IsOpposite(other Velocity) bool {
	if v.IsZero() || other.IsZero() {
		return false
	}
	return v.DX == -other.DX && v.DY == -other.DY
}

// Angle 返回蛇头贴图的旋转角度（弧度）
// 右=0，左=π，上=-π/2，下=π/2；静止时按向右处理
func (v Velocity) Angle() float64 {
	switch v {
	case DirectionLeft:
		return math.Pi
	case DirectionUp:
		return -math.Pi / 2
	case DirectionDown:
		return math.Pi / 2
	default:
		return 0
	}
}
