package media

import (
	"log"

	"github.com/decker502/snake/pkg/game"
)

// Player 音频播放器（*audio.Player 满足该接口）
type Player interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// playerLoader 按资源ID加载播放器（*ResourceManager 实现）
type playerLoader interface {
	LoadSoundPlayer(resourceID string) (Player, error)
	LoadMusicPlayer(resourceID string) (Player, error)
}

// AudioManager 音频管理器
// 职责：
//   - 按资源ID播放音效（从头播放）
//   - 懒加载并循环播放背景音乐，支持暂停/恢复
//   - 静音：所有播放器音量置 0，音乐继续推进
//
// 实现 game.CuePlayer，由 EffectDispatcher 调用
type AudioManager struct {
	loader       playerLoader
	soundPlayers map[string]Player // 音效播放器缓存（资源ID -> 播放器）
	music        Player            // 背景音乐播放器（首次 StartMusic 时加载）
	musicID      string
	musicVolume  float64
	soundVolume  float64
	muted        bool
}

var _ game.CuePlayer = (*AudioManager)(nil)

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - settings: 用户设置（音量和静音状态）
func NewAudioManager(rm *ResourceManager, settings game.GameSettings) *AudioManager {
	return newAudioManager(rm, settings)
}

func newAudioManager(loader playerLoader, settings game.GameSettings) *AudioManager {
	return &AudioManager{
		loader:       loader,
		soundPlayers: make(map[string]Player),
		musicID:      game.SoundMusic,
		musicVolume:  settings.MusicVolume,
		soundVolume:  settings.SoundVolume,
		muted:        settings.Muted,
	}
}

// PlayCue 播放音效
// 静音或资源缺失时什么也不做
func (am *AudioManager) PlayCue(soundID string) {
	if am.muted {
		return
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return
	}

	player.SetVolume(am.soundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
}

// StartMusic 启动背景音乐（循环播放）
// 静音时同样启动，只是音量为 0，取消静音后即可听到
func (am *AudioManager) StartMusic() {
	player := am.getMusicPlayer()
	if player == nil {
		return
	}
	if player.IsPlaying() {
		return
	}

	player.SetVolume(am.currentMusicVolume())
	player.Play()
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", am.musicID, am.currentMusicVolume())
}

// PauseMusic 暂停背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ResumeMusic 恢复背景音乐
// 即使音乐尚未启动过也会开始播放
func (am *AudioManager) ResumeMusic() {
	am.StartMusic()
}

// SetMuted 切换静音
func (am *AudioManager) SetMuted(muted bool) {
	am.muted = muted
	if am.music != nil {
		am.music.SetVolume(am.currentMusicVolume())
	}
	for _, player := range am.soundPlayers {
		if muted {
			player.SetVolume(0)
		} else {
			player.SetVolume(am.soundVolume)
		}
	}
	log.Printf("[AudioManager] Muted: %v", muted)
}

// PreloadSounds 预加载音效
// 在场景初始化时调用，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}

func (am *AudioManager) currentMusicVolume() float64 {
	if am.muted {
		return 0
	}
	return am.musicVolume
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	player, err := am.loader.LoadSoundPlayer(soundID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getMusicPlayer 获取或加载背景音乐播放器
func (am *AudioManager) getMusicPlayer() Player {
	if am.music != nil {
		return am.music
	}

	player, err := am.loader.LoadMusicPlayer(am.musicID)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", am.musicID, err)
		return nil
	}
	am.music = player
	return player
}
