// towerdefense-term 在终端中运行塔防模拟
//
// 用法:
//
//	towerdefense-term [-config scene.yaml] [-tps 30] [-verbose] [-log td.log]
//
// ESC、Ctrl-C 或 q 退出，空格暂停。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/game"
	"github.com/gonewx/towerdefense/pkg/termview"
)

var (
	verbose   = flag.Bool("verbose", false, "写入详细调试日志")
	logPath   = flag.String("log", "towerdefense.log", "详细日志文件（终端被占用，日志不能写到 stderr）")
	scenePath = flag.String("config", "", "场景配置文件路径（默认使用内置配置）")
	tps       = flag.Int("tps", config.DefaultTPS, "每秒逻辑帧数")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "towerdefense-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig := config.DefaultSceneConfig()
	if *scenePath != "" {
		cfg, err := config.LoadSceneConfig(*scenePath)
		if err != nil {
			return err
		}
		sceneConfig = cfg
	}

	// 子弹精灵从磁盘读取，缺失时子弹不绘制，模拟照常运行
	resources := game.NewResourceManager(os.ReadFile)
	bulletAsset := resources.Load(sceneConfig.Bullet.Model)

	sim, err := game.NewSimulation(sceneConfig, bulletAsset)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := termview.NewHost(screen, sim, resources)
	if err := host.Run(ctx, *tps); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("[TermHost] %s", sim.Stats())
	return nil
}
