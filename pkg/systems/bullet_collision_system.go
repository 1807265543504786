package systems

import (
	"log"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// BulletCollisionSystem 子弹与目标的碰撞检测
//
// 对每一对（子弹，目标）做距离判定，没有空间划分：
//   - 距离 <= 命中半径时目标扣 1 点生命，子弹标记删除
//   - 一颗子弹每帧最多命中一个目标（内层循环命中即跳出）
//   - 同一目标在同一帧可以被多颗子弹命中（外层循环不跳出）
type BulletCollisionSystem struct {
	entityManager *ecs.EntityManager
	hitRadius     float64
	hitCount      int
}

// NewBulletCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - hitRadius: 命中半径（米）
func NewBulletCollisionSystem(em *ecs.EntityManager, hitRadius float64) *BulletCollisionSystem {
	return &BulletCollisionSystem{
		entityManager: em,
		hitRadius:     hitRadius,
	}
}

type collisionTarget struct {
	id       ecs.EntityID
	position utils.Vec3
	health   *components.HealthComponent
}

// Update 检测本帧所有命中
// deltaTime 本系统不使用
func (s *BulletCollisionSystem) Update(deltaTime float64) {
	bullets := ecs.GetEntitiesWith2[*components.BulletComponent, *components.TransformComponent](s.entityManager)
	if len(bullets) == 0 {
		return
	}

	targetIDs := ecs.GetEntitiesWith3[*components.TargetComponent, *components.HealthComponent, *components.TransformComponent](s.entityManager)
	if len(targetIDs) == 0 {
		return
	}

	targets := make([]collisionTarget, 0, len(targetIDs))
	for _, id := range targetIDs {
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := WorldTranslation(s.entityManager, id)
		targets = append(targets, collisionTarget{id: id, position: pos, health: health})
	}

	for _, bulletID := range bullets {
		bulletPos, ok := WorldTranslation(s.entityManager, bulletID)
		if !ok {
			continue
		}

		for _, target := range targets {
			// NaN 距离的比较结果为 false，不会误判命中
			if bulletPos.Distance(target.position) <= s.hitRadius {
				target.health.Damage(1)
				s.entityManager.DestroyEntity(bulletID)
				s.hitCount++
				log.Printf("[BulletCollisionSystem] Bullet %d hit target %d, health=%d", bulletID, target.id, target.health.CurrentHealth)
				break
			}
		}
	}
}

// HitCount 返回累计命中次数
func (s *BulletCollisionSystem) HitCount() int {
	return s.hitCount
}
