package scenes

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// directionKeys 方向键映射（方向键和 WASD 两套）
var directionKeys = map[ebiten.Key]components.Velocity{
	ebiten.KeyArrowUp:    components.DirectionUp,
	ebiten.KeyW:          components.DirectionUp,
	ebiten.KeyArrowDown:  components.DirectionDown,
	ebiten.KeyS:          components.DirectionDown,
	ebiten.KeyArrowLeft:  components.DirectionLeft,
	ebiten.KeyA:          components.DirectionLeft,
	ebiten.KeyArrowRight: components.DirectionRight,
	ebiten.KeyD:          components.DirectionRight,
}

// DirectionForKey 返回按键对应的方向
func DirectionForKey(key ebiten.Key) (components.Velocity, bool) {
	dir, ok := directionKeys[key]
	return dir, ok
}

// CommandsForKey 把一次按键换算成命令
// 任意按键都会产生 CommandKeyPress（用于启动背景音乐），方向键额外产生方向命令
func CommandsForKey(key ebiten.Key) []components.Command {
	cmds := []components.Command{{Type: components.CommandKeyPress}}
	if dir, ok := DirectionForKey(key); ok {
		cmds = append(cmds, components.DirectionCommand(dir))
	}
	return cmds
}
