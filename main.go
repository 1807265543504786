package main

import (
	"flag"
	"log"

	"github.com/gonewx/towerdefense/pkg/app"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	scenePath = flag.String("config", "", "场景配置文件路径（默认使用内嵌配置）")
)

func main() {
	flag.Parse()

	// 初始化内嵌资源
	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		ScenePath: *scenePath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.DefaultTPS)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
