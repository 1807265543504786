package systems

import (
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
)

// BulletMovementSystem 让子弹沿自身方向匀速飞行
// 子弹挂在塔下，移动的是局部坐标
type BulletMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewBulletMovementSystem 创建子弹移动系统
func NewBulletMovementSystem(em *ecs.EntityManager) *BulletMovementSystem {
	return &BulletMovementSystem{entityManager: em}
}

// Update 每帧 translation += direction * speed * dt
func (s *BulletMovementSystem) Update(deltaTime float64) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.TransformComponent](s.entityManager)

	for _, id := range bullets {
		bullet, ok := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform.Translation = transform.Translation.Add(bullet.Direction.Scale(bullet.Speed * deltaTime))
	}
}
