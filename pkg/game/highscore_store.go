package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
)

// gdata 属性名，对象名使用配置中的 highScoreKey
const (
	highScoreProperty = "value"
	roundProperty     = "round"
)

// HighScoreStore 最高分持久化
//
// 以十进制文本保存在 gdata 对象 <key>/value 中（桌面为文件，浏览器为 localStorage），
// 创下该分数的回合 ID 保存在 <key>/round 中。
// gdataManager 为 nil 时进入降级模式：读取返回 0，写入静默忽略。
type HighScoreStore struct {
	gdataManager *gdata.Manager
	key          string
}

// NewHighScoreStore 创建最高分存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式）
//   - key: 存储键（默认 "snakeHighScore"）
func NewHighScoreStore(gdataManager *gdata.Manager, key string) *HighScoreStore {
	return &HighScoreStore{
		gdataManager: gdataManager,
		key:          key,
	}
}

// Load 读取最高分
// 不存在、读取失败或内容无法解析时返回 0
func (s *HighScoreStore) Load() int {
	if s.gdataManager == nil {
		return 0
	}

	if !s.gdataManager.ObjectPropExists(s.key, highScoreProperty) {
		return 0
	}

	data, err := s.gdataManager.LoadObjectProp(s.key, highScoreProperty)
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Failed to load high score: %v", err)
		return 0
	}

	score, ok := ParseHighScore(string(data))
	if !ok {
		log.Printf("[HighScoreStore] Warning: Ignoring corrupt high score %q", string(data))
		return 0
	}

	log.Printf("[HighScoreStore] Loaded high score: %d", score)
	return score
}

// Save 写入最高分和创下它的回合 ID
// round 为 uuid.Nil 时只写分数
func (s *HighScoreStore) Save(score int, round uuid.UUID) error {
	if s.gdataManager == nil {
		return nil
	}

	data := []byte(strconv.Itoa(score))
	if err := s.gdataManager.SaveObjectProp(s.key, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}

	if round != uuid.Nil {
		if err := s.gdataManager.SaveObjectProp(s.key, roundProperty, []byte(round.String())); err != nil {
			return fmt.Errorf("failed to save high score round: %w", err)
		}
	}

	log.Printf("[HighScoreStore] Saved high score: %d (round %s)", score, round)
	return nil
}

// LoadRound 读取创下最高分的回合 ID
// 未保存或内容无法解析时返回 false
func (s *HighScoreStore) LoadRound() (uuid.UUID, bool) {
	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(s.key, roundProperty) {
		return uuid.Nil, false
	}

	data, err := s.gdataManager.LoadObjectProp(s.key, roundProperty)
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Failed to load high score round: %v", err)
		return uuid.Nil, false
	}

	round, err := uuid.ParseBytes(data)
	if err != nil {
		log.Printf("[HighScoreStore] Warning: Ignoring corrupt round %q", string(data))
		return uuid.Nil, false
	}
	return round, true
}

// ParseHighScore 解析存储的最高分文本
// 只接受非负十进制整数（允许首尾空白）
func ParseHighScore(text string) (int, bool) {
	score, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || score < 0 {
		return 0, false
	}
	return score, true
}
