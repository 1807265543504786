package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

var targetColor = color.RGBA{R: 77, G: 77, B: 77, A: 255}

// NewTarget 在指定位置排队生成一个目标
// 目标在下一次 Flush 后生效
//
// 参数:
//   - em: 实体管理器
//   - cfg: 目标配置（速度、生命值、存活时间）
//   - position: 世界坐标
//
// 返回:
//   - ecs.EntityID: 预留的目标实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewTarget(em *ecs.EntityManager, cfg config.TargetConfig, position utils.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Health < 1 {
		return 0, fmt.Errorf("target health must be at least 1, got %d", cfg.Health)
	}

	id := em.SpawnEntity(
		&components.TransformComponent{Translation: position},
		&components.TargetComponent{Speed: cfg.Speed},
		components.NewHealth(cfg.Health),
		components.NewLifetime(cfg.Lifetime),
		&components.ShapeComponent{Kind: components.ShapeCube, Size: cfg.Size, Color: targetColor},
		&components.NameComponent{Name: "Target"},
	)
	return id, nil
}
