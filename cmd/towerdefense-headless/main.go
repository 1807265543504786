// towerdefense-headless 以固定步长无界面运行塔防模拟并输出统计
//
// 用法:
//
//	towerdefense-headless -frames 3600 -dt 0.0166667 [-config scene.yaml] [-verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/game"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	scenePath = flag.String("config", "", "场景配置文件路径（默认使用内置配置）")
	frames    = flag.Int("frames", 60*config.DefaultTPS, "运行帧数，<= 0 表示一直运行到 Ctrl-C")
	deltaTime = flag.Float64("dt", 1.0/float64(config.DefaultTPS), "每帧时间步长（秒）")
	every     = flag.Int("report", config.DefaultTPS, "每隔多少帧输出一次统计，0 表示只在结束时输出")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sceneConfig := config.DefaultSceneConfig()
	if *scenePath != "" {
		cfg, err := config.LoadSceneConfig(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "towerdefense-headless: %v\n", err)
			os.Exit(1)
		}
		sceneConfig = cfg
	}

	// 无界面运行不需要加载子弹精灵，0 为无效句柄
	sim, err := game.NewSimulation(sceneConfig, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "towerdefense-headless: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runReported(ctx, sim); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "towerdefense-headless: %v\n", err)
		os.Exit(1)
	}
	if *every <= 0 || ctx.Err() != nil {
		fmt.Println(sim.Stats())
	}
}

// runReported 分段运行，每段结束时输出一次统计
func runReported(ctx context.Context, sim *game.Simulation) error {
	if *every <= 0 {
		return sim.Run(ctx, *frames, *deltaTime)
	}
	for done := 0; *frames <= 0 || done < *frames; done += *every {
		chunk := *every
		if *frames > 0 && *frames-done < chunk {
			chunk = *frames - done
		}
		if err := sim.Run(ctx, chunk, *deltaTime); err != nil {
			return err
		}
		fmt.Println(sim.Stats())
	}
	return nil
}
