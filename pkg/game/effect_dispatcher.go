package game

import (
	"log"

	"github.com/decker502/snake/pkg/components"
	"github.com/google/uuid"
)

// 音效资源ID（与 assets/config/resources.yaml 一致）
const (
	SoundEat      = "SOUND_EAT"
	SoundGameOver = "SOUND_GAMEOVER"
	SoundMusic    = "SOUND_MUSIC"
)

// CuePlayer 音频输出
// Ebitengine 前端由 media.AudioManager 实现，终端前端由 internal/audio.BeepPlayer 实现
type CuePlayer interface {
	// PlayCue 从头播放一次音效
	PlayCue(id string)
	// StartMusic 启动循环背景音乐
	StartMusic()
	PauseMusic()
	ResumeMusic()
	// SetMuted 静音时所有输出音量为 0，音乐继续推进
	SetMuted(muted bool)
}

// ScoreSaver 最高分写入接口（*HighScoreStore 实现）
type ScoreSaver interface {
	Save(score int, round uuid.UUID) error
}

// EffectDispatcher 把状态转换产生的副作用交给音频和存储执行
//
// 所有字段都可以为 nil：对应的副作用被忽略。
type EffectDispatcher struct {
	cues     CuePlayer
	scores   ScoreSaver
	settings *SettingsManager
}

// NewEffectDispatcher 创建副作用分发器
func NewEffectDispatcher(cues CuePlayer, scores ScoreSaver, settings *SettingsManager) *EffectDispatcher {
	return &EffectDispatcher{
		cues:     cues,
		scores:   scores,
		settings: settings,
	}
}

// Dispatch 按顺序执行副作用
// 存储失败只记录日志，不影响游戏继续
func (d *EffectDispatcher) Dispatch(effects []components.Effect) {
	for _, effect := range effects {
		d.dispatch(effect)
	}
}

func (d *EffectDispatcher) dispatch(effect components.Effect) {
	switch effect.Type {
	case components.EffectPlayEat:
		if d.cues != nil {
			d.cues.PlayCue(SoundEat)
		}
	case components.EffectPlayGameOver:
		if d.cues != nil {
			d.cues.PlayCue(SoundGameOver)
		}
	case components.EffectStartMusic:
		if d.cues != nil {
			d.cues.StartMusic()
		}
	case components.EffectPauseMusic:
		if d.cues != nil {
			d.cues.PauseMusic()
		}
	case components.EffectResumeMusic:
		if d.cues != nil {
			d.cues.ResumeMusic()
		}
	case components.EffectSetMuted:
		if d.cues != nil {
			d.cues.SetMuted(effect.Muted)
		}
		if d.settings != nil {
			d.settings.SetMuted(effect.Muted)
			if err := d.settings.Save(); err != nil {
				log.Printf("[EffectDispatcher] Warning: %v", err)
			}
		}
	case components.EffectPersistHighScore:
		if d.scores != nil {
			if err := d.scores.Save(effect.Score, effect.Round); err != nil {
				log.Printf("[EffectDispatcher] Warning: %v (high score %d kept in memory)", err, effect.Score)
			}
		}
	default:
		log.Printf("[EffectDispatcher] Unknown effect: %v", effect.Type)
	}
}
