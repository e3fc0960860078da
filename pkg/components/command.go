package components

// CommandType 用户操作类型
type CommandType int

const (
	// CommandKeyPress 任意按键（用于首次按键时启动背景音乐）
	CommandKeyPress CommandType = iota
	// CommandDirection 方向键
	CommandDirection
	// CommandTogglePause 暂停/继续按钮
	CommandTogglePause
	// CommandToggleMute 静音按钮
	CommandToggleMute
)

// Command 一次用户操作
// 输入处理只负责生成 Command，由下一个逻辑帧之前统一应用到游戏状态
type Command struct {
	Type CommandType
	// Direction 仅 CommandDirection 使用
	Direction Velocity
}

// DirectionCommand 构造方向命令
func DirectionCommand(dir Velocity) Command {
	return Command{Type: CommandDirection, Direction: dir}
}
