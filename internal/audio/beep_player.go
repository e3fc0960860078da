// Package audio 终端版的音频输出
//
// 图形版通过 Ebitengine 的 audio 包播放声音；终端版不链接 Ebitengine，
// 改用 beep 解码 WAV 并通过 speaker 输出。两者都实现 game.CuePlayer。
package audio

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/decker502/snake/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// resampleQuality beep.Resample 的插值质量
const resampleQuality = 4

// BeepPlayer 基于 beep 的 CuePlayer
//
// 所有声音预先解码到内存 Buffer，播放时从 Buffer 创建新的 Streamer 加入混音器。
// speaker 未初始化时（没有声卡、-nosound）所有播放请求都被忽略。
type BeepPlayer struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	sounds      map[string]*beep.Buffer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	settings    game.GameSettings
	initialized bool
}

// NewBeepPlayer 创建播放器
//
// 参数：
//   - sampleRate: 输出采样率，解码结果会重采样到该采样率
//   - settings: 初始音量和静音设置
func NewBeepPlayer(sampleRate int, settings game.GameSettings) *BeepPlayer {
	return &BeepPlayer{
		sampleRate: beep.SampleRate(sampleRate),
		mixer:      &beep.Mixer{},
		sounds:     make(map[string]*beep.Buffer),
		settings:   settings,
	}
}

// Initialize 打开声卡并开始输出混音器
func (p *BeepPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[BeepPlayer] Speaker initialized at %d Hz", p.sampleRate)
	return nil
}

// Cleanup 停止所有声音
func (p *BeepPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// LoadSounds 解码资源配置中所有分组的声音
// 单个文件失败只记录日志，返回第一个错误
func (p *BeepPlayer) LoadSounds(rc *config.ResourceConfig) error {
	var firstErr error
	for _, group := range rc.Groups {
		for _, entry := range group.Sounds {
			path, ok := rc.BuildResourceMap()[entry.ID]
			if !ok {
				continue
			}
			if err := p.LoadSound(entry.ID, path); err != nil {
				log.Printf("[BeepPlayer] Warning: %v", err)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}
	return firstErr
}

// LoadSound 解码一个 WAV 文件并缓存到内存
func (p *BeepPlayer) LoadSound(soundID, path string) error {
	data, err := embedded.ReadResource(path)
	if err != nil {
		return fmt.Errorf("failed to read sound %s: %w", path, err)
	}

	buffer, err := p.decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	p.mu.Lock()
	p.sounds[soundID] = buffer
	p.mu.Unlock()

	log.Printf("[BeepPlayer] Loaded %s (%s, %d samples)", soundID, path, buffer.Len())
	return nil
}

func (p *BeepPlayer) decode(data []byte) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  p.sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buffer.Append(source)
	return buffer, nil
}

// PlayCue 播放一次性音效，静音时忽略
func (p *BeepPlayer) PlayCue(soundID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.settings.Muted {
		return
	}
	buffer, ok := p.sounds[soundID]
	if !ok {
		log.Printf("[BeepPlayer] Unknown sound: %s", soundID)
		return
	}

	cue := newVolume(buffer.Streamer(0, buffer.Len()), p.settings.SoundVolume)
	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// StartMusic 开始（或继续）循环播放背景音乐
func (p *BeepPlayer) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	if p.music == nil {
		buffer, ok := p.sounds[game.SoundMusic]
		if !ok {
			log.Printf("[BeepPlayer] Music not loaded")
			return
		}
		p.musicVolume = newVolume(beep.Loop(-1, buffer.Streamer(0, buffer.Len())), p.currentMusicVolume())
		p.music = &beep.Ctrl{Streamer: p.musicVolume}
		speaker.Lock()
		p.mixer.Add(p.music)
		speaker.Unlock()
		log.Printf("[BeepPlayer] Music started")
		return
	}

	speaker.Lock()
	p.music.Paused = false
	speaker.Unlock()
}

// PauseMusic 暂停背景音乐
func (p *BeepPlayer) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = true
	speaker.Unlock()
}

// ResumeMusic 继续背景音乐
func (p *BeepPlayer) ResumeMusic() {
	p.StartMusic()
}

// SetMuted 设置静音
// 背景音乐静音时继续播放，取消静音后从当前位置听到
func (p *BeepPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.settings.Muted = muted
	if p.musicVolume == nil {
		return
	}

	speaker.Lock()
	applyVolume(p.musicVolume, p.currentMusicVolume())
	speaker.Unlock()
}

func (p *BeepPlayer) currentMusicVolume() float64 {
	if p.settings.Muted {
		return 0
	}
	return p.settings.MusicVolume
}

// newVolume 把 0~1 的线性音量包装成 effects.Volume（以 2 为底的对数音量）
func newVolume(s beep.Streamer, volume float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	applyVolume(v, volume)
	return v
}

func applyVolume(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(volume)
	v.Silent = false
}

var _ game.CuePlayer = (*BeepPlayer)(nil)
