package systems

import (
	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/game"
)

// ApplyDirection 处理方向输入
//
// 与当前速度或上一次前进方向正好相反的请求被拒绝（蛇不能原地掉头）。
// 接受的请求直接覆盖速度，两次 tick 之间以最后一次接受的请求为准。
//
// 返回：
//   - game.GameState: 新状态
//   - bool: 请求是否被接受
func ApplyDirection(gs game.GameState, dir components.Velocity) (game.GameState, bool) {
	if dir.IsZero() {
		return gs, false
	}
	if dir.IsOpposite(gs.Velocity) || dir.IsOpposite(gs.Heading) {
		return gs, false
	}
	gs.Velocity = dir
	return gs, true
}

// ApplyCommand 把一次用户操作应用到状态上
func ApplyCommand(gs game.GameState, cmd components.Command) (game.GameState, []components.Effect) {
	switch cmd.Type {
	case components.CommandKeyPress:
		// 浏览器要求用户交互后才能播放音频，所以背景音乐在第一次按键时启动
		if !gs.MusicStarted {
			gs.MusicStarted = true
			return gs, []components.Effect{{Type: components.EffectStartMusic}}
		}

	case components.CommandDirection:
		gs, _ = ApplyDirection(gs, cmd.Direction)

	case components.CommandTogglePause:
		gs.Paused = !gs.Paused
		if gs.Paused {
			return gs, []components.Effect{{Type: components.EffectPauseMusic}}
		}
		if !gs.Muted {
			return gs, []components.Effect{{Type: components.EffectResumeMusic}}
		}

	case components.CommandToggleMute:
		gs.Muted = !gs.Muted
		return gs, []components.Effect{{Type: components.EffectSetMuted, Muted: gs.Muted}}
	}

	return gs, nil
}

// ApplyCommands 按顺序应用一批命令，合并副作用
func ApplyCommands(gs game.GameState, cmds []components.Command) (game.GameState, []components.Effect) {
	var effects []components.Effect
	for _, cmd := range cmds {
		var produced []components.Effect
		gs, produced = ApplyCommand(gs, cmd)
		effects = append(effects, produced...)
	}
	return gs, effects
}

// CommandQueue 两次逻辑帧之间收集到的用户操作
// 只在游戏主循环所在的 goroutine 中使用
type CommandQueue struct {
	commands []components.Command
}

// NewCommandQueue 创建命令队列
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push 追加一条命令
func (q *CommandQueue) Push(cmd components.Command) {
	q.commands = append(q.commands, cmd)
}

// Len 队列中的命令数
func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// Drain 取出并清空全部命令（按入队顺序）
func (q *CommandQueue) Drain() []components.Command {
	cmds := q.commands
	q.commands = nil
	return cmds
}
