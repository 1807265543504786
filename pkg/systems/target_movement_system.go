package systems

import (
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
)

// TargetMovementSystem 让所有目标沿 X 轴匀速移动
type TargetMovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewTargetMovementSystem 创建目标移动系统
func NewTargetMovementSystem(em *ecs.EntityManager) *TargetMovementSystem {
	return &TargetMovementSystem{entityManager: em}
}

// Update 每帧 x += speed * dt
func (s *TargetMovementSystem) Update(deltaTime float64) {
	targets := ecs.GetEntitiesWith2[*components.TargetComponent, *components.TransformComponent](s.entityManager)

	for _, id := range targets {
		target, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		transform.Translation.X += target.Speed * deltaTime
	}
}
