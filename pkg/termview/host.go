package termview

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/towerdefense/pkg/game"
)

// Host 终端宿主：固定步长推进模拟并刷新画面
type Host struct {
	screen     tcell.Screen
	simulation *game.Simulation
	renderer   *Renderer
	paused     bool
}

// NewHost 创建终端宿主，screen 必须已经 Init
func NewHost(screen tcell.Screen, sim *game.Simulation, resources *game.ResourceManager) *Host {
	return &Host{
		screen:     screen,
		simulation: sim,
		renderer:   NewRenderer(screen, resources),
	}
}

// Run 以 tps 帧每秒运行，直到用户退出（ESC、Ctrl-C、q）或 ctx 被取消
// 用户退出时返回 nil
func (h *Host) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	deltaTime := 1.0 / float64(tps)
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// 屏幕已 Fini
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.renderer.Draw(h.simulation)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				log.Printf("[TermHost] Quit requested after %d frames", h.simulation.Stats().Frames)
				return nil
			}

		case <-ticker.C:
			if !h.paused {
				h.simulation.Tick(deltaTime)
			}
			h.renderer.Draw(h.simulation)
		}
	}
}

// handleEvent 处理输入事件，返回 false 表示退出
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				h.paused = !h.paused
				log.Printf("[TermHost] Paused: %v", h.paused)
			}
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}
