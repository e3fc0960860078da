// snake-term 在终端里玩贪吃蛇
//
// 与图形版共用游戏逻辑、配置和存档（同一个 gdata 应用名），
// 画面用 tcell 绘制，声音用 beep 播放。
//
// 用法：
//
//	go run ./cmd/snake-term
//	go run ./cmd/snake-term --nosound --log snake.log --verbose
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/decker502/snake/assets"
	"github.com/decker502/snake/internal/audio"
	"github.com/decker502/snake/internal/terminal"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/decker502/snake/pkg/game"
	"github.com/decker502/snake/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息（需配合 --log）")
	configPath = flag.String("config", "", "游戏配置文件（默认使用内嵌的 assets/config/game.yaml）")
	noSound    = flag.Bool("nosound", false, "禁用声音")
	logPath    = flag.String("log", "", "日志文件（终端被游戏画面占用，日志只能写文件）")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	embedded.Init(assets.FS)

	path := *configPath
	if path == "" {
		path = config.DefaultGameConfigPath
	}
	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		return fmt.Errorf("游戏配置加载失败: %w", err)
	}

	persistence := game.NewPersistence(game.OpenStorage(cfg.Storage.AppName), cfg)
	settings := persistence.Settings.GetSettings()

	var cues game.CuePlayer
	if !*noSound {
		player := audio.NewBeepPlayer(cfg.Audio.SampleRate, *settings)
		if err := setupAudio(player); err != nil {
			log.Printf("[main] Audio disabled: %v", err)
		} else {
			defer player.Cleanup()
			cues = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	highScore := persistence.Scores.Load()
	if round, ok := persistence.Scores.LoadRound(); ok {
		log.Printf("[main] High score %d was set in round %s", highScore, round)
	}

	g := terminal.NewGame(screen, terminal.Deps{
		Config:     cfg,
		Dispatcher: game.NewEffectDispatcher(cues, persistence.Scores, persistence.Settings),
		Scores:     persistence.Scores,
		Food:       systems.NewFoodSystem(uint64(time.Now().UnixNano()), cfg.Food.AvoidSnake),
		HighScore:  highScore,
		Muted:      settings.Muted,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := g.Run(ctx)
	if err := g.SaveOnExit(); err != nil {
		log.Printf("[main] Warning: failed to save on exit: %v", err)
	}
	if runErr != nil && runErr != context.Canceled {
		return runErr
	}
	return nil
}

// setupLogging 日志默认丢弃，指定 --log 时写入文件
func setupLogging() (func(), error) {
	if *logPath == "" || !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return func() {}, nil
	}

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func setupAudio(player *audio.BeepPlayer) error {
	rc, err := config.LoadResourceConfig(config.DefaultResourceConfigPath)
	if err != nil {
		return err
	}
	if err := player.LoadSounds(rc); err != nil {
		return err
	}
	return player.Initialize()
}
