package terminal

import (
	"unicode"

	"github.com/decker502/snake/pkg/components"
	"github.com/gdamore/tcell/v2"
)

var arrowKeys = map[tcell.Key]components.Velocity{
	tcell.KeyUp:    components.DirectionUp,
	tcell.KeyDown:  components.DirectionDown,
	tcell.KeyLeft:  components.DirectionLeft,
	tcell.KeyRight: components.DirectionRight,
}

var letterKeys = map[rune]components.Velocity{
	'w': components.DirectionUp,
	's': components.DirectionDown,
	'a': components.DirectionLeft,
	'd': components.DirectionRight,
}

// KeyCommands 把一次按键换算成命令
//
// 方向键和 WASD 控制方向，p 暂停，m 静音（终端里按钮也可以用鼠标点击），
// q、Esc、Ctrl-C 退出。
//
// 返回：
//   - []components.Command: 按顺序执行的命令，第一条总是 CommandKeyPress
//   - bool: 是否退出
func KeyCommands(key tcell.Key, r rune) ([]components.Command, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	}

	cmds := []components.Command{{Type: components.CommandKeyPress}}

	if dir, ok := arrowKeys[key]; ok {
		return append(cmds, components.DirectionCommand(dir)), false
	}
	if key != tcell.KeyRune {
		return cmds, false
	}

	r = unicode.ToLower(r)
	if dir, ok := letterKeys[r]; ok {
		return append(cmds, components.DirectionCommand(dir)), false
	}
	switch r {
	case 'q':
		return nil, true
	case 'p':
		cmds = append(cmds, components.Command{Type: components.CommandTogglePause})
	case 'm':
		cmds = append(cmds, components.Command{Type: components.CommandToggleMute})
	}
	return cmds, false
}
