package scenes

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// inspectorMaxRows 调试面板最多列出的实体数量
const inspectorMaxRows = 24

// drawDebugOverlay 绘制统计信息和实体列表（F1 切换）
// 只读取模拟状态
func (s *GameScene) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.debugText())
}

func (s *GameScene) debugText() string {
	var b strings.Builder
	b.WriteString(s.simulation.Stats().String())
	if s.paused {
		b.WriteString("  [paused]")
	}
	b.WriteString("\nF1: inspector  Space: pause  F11: fullscreen\n")

	if !s.showInspector {
		return b.String()
	}

	snapshots := s.simulation.Inspect()
	for i, snap := range snapshots {
		if i == inspectorMaxRows {
			fmt.Fprintf(&b, "... %d more\n", len(snapshots)-inspectorMaxRows)
			break
		}
		fmt.Fprintf(&b, "%4d %-15s %s", snap.ID, snap.Name, snap.Position)
		if snap.HasHealth {
			fmt.Fprintf(&b, " hp=%d", snap.Health)
		}
		b.WriteString("\n")
	}
	return b.String()
}
