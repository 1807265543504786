package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// unitTolerance 判定方向向量为单位向量的容差
const unitTolerance = 1e-6

// NewBullet 排队生成一颗挂在防御塔下的子弹
// 子弹的局部坐标为 offset（相对塔），在下一次 Flush 后生效
//
// 参数:
//   - em: 实体管理器
//   - tower: 发射子弹的防御塔（父实体）
//   - offset: 子弹生成点相对塔的局部偏移
//   - direction: 飞行方向，必须是单位向量
//   - cfg: 子弹配置（速度、存活时间）
//   - asset: 子弹视觉资源句柄（可以尚未加载完成）
//
// 返回:
//   - ecs.EntityID: 预留的子弹实体ID，失败返回 0
//   - error: 参数无效时返回错误
func NewBullet(em *ecs.EntityManager, tower ecs.EntityID, offset, direction utils.Vec3, cfg config.BulletConfig, asset components.AssetHandle) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if length := direction.Length(); math.IsNaN(length) || math.Abs(length-1) > unitTolerance {
		return 0, fmt.Errorf("bullet direction must be a unit vector, got %v (length %v)", direction, length)
	}

	id := em.SpawnChild(tower,
		&components.TransformComponent{Translation: offset},
		&components.BulletComponent{Direction: direction, Speed: cfg.Speed},
		components.NewLifetime(cfg.Lifetime),
		&components.SceneComponent{Handle: asset},
		&components.NameComponent{Name: "Bullet"},
	)
	return id, nil
}
