package game

import (
	"log"

	"github.com/decker502/snake/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// OpenStorage 打开 gdata 存储
//
// 失败时返回 nil，调用方进入降级模式（最高分和设置只保存在内存中）。
func OpenStorage(appName string) *gdata.Manager {
	if err := ensureStorageDir(); err != nil {
		log.Printf("[Storage] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable for %q: %v (scores will not persist)", appName, err)
		return nil
	}
	log.Printf("[Storage] Opened gdata storage for %q", appName)
	return manager
}

// Persistence 一个前端需要的全部持久化对象
type Persistence struct {
	Settings *SettingsManager
	Scores   *HighScoreStore
}

// NewPersistence 基于同一个 gdata 存储创建设置和最高分存储
// gdataManager 可为 nil
func NewPersistence(gdataManager *gdata.Manager, cfg *config.GameConfig) Persistence {
	defaults := GameSettings{
		MusicVolume: cfg.Audio.MusicVolume,
		SoundVolume: cfg.Audio.SoundVolume,
	}
	return Persistence{
		Settings: NewSettingsManager(gdataManager, defaults),
		Scores:   NewHighScoreStore(gdataManager, cfg.Storage.HighScoreKey),
	}
}
