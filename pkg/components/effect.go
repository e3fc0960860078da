package components

import "github.com/google/uuid"

// EffectType 状态转换产生的副作用类型
type EffectType int

const (
	// EffectPlayEat 播放吃到食物的音效
	EffectPlayEat EffectType = iota
	// EffectPlayGameOver 播放游戏结束音效
	EffectPlayGameOver
	// EffectPersistHighScore 保存新的最高分（Score 字段）
	EffectPersistHighScore
	// EffectStartMusic 首次启动背景音乐
	EffectStartMusic
	// EffectPauseMusic 暂停背景音乐
	EffectPauseMusic
	// EffectResumeMusic 恢复背景音乐
	EffectResumeMusic
	// EffectSetMuted 切换静音（Muted 字段）
	EffectSetMuted
)

var effectNames = map[EffectType]string{
	EffectPlayEat:          "PlayEat",
	EffectPlayGameOver:     "PlayGameOver",
	EffectPersistHighScore: "PersistHighScore",
	EffectStartMusic:       "StartMusic",
	EffectPauseMusic:       "PauseMusic",
	EffectResumeMusic:      "ResumeMusic",
	EffectSetMuted:         "SetMuted",
}

// String 返回副作用名称（用于日志）
func (t EffectType) String() string {
	if name, ok := effectNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Effect 由纯状态转换函数返回，交给边界层（音频、存储）执行
type Effect struct {
	Type  EffectType
	Score int       // EffectPersistHighScore
	Round uuid.UUID // EffectPersistHighScore：创下该分数的回合
	Muted bool      // EffectSetMuted
}
