package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/snake/assets"
	"github.com/decker502/snake/pkg/app"
	"github.com/decker502/snake/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件（默认使用内嵌的 assets/config/game.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在创建游戏之前）
	embedded.Init(assets.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭后保存最高分
	if !gameApp.SaveOnExit() {
		log.Printf("[main] Warning: failed to save on exit")
	}

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
