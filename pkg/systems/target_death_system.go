package systems

import (
	"log"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
)

// TargetDeathSystem 回收生命值耗尽的实体
// 与生命周期系统相互独立，不检查存活时间
type TargetDeathSystem struct {
	entityManager *ecs.EntityManager
	killCount     int
}

// NewTargetDeathSystem 创建死亡回收系统
func NewTargetDeathSystem(em *ecs.EntityManager) *TargetDeathSystem {
	return &TargetDeathSystem{entityManager: em}
}

// Update 将 CurrentHealth <= 0 的实体标记删除（连同子实体）
func (s *TargetDeathSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.HealthComponent](s.entityManager)

	for _, id := range entities {
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if !ok || !health.IsDead() {
			continue
		}
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		s.entityManager.DestroyEntity(id)
		s.killCount++
		log.Printf("[TargetDeathSystem] Entity %d died (health=%d)", id, health.CurrentHealth)
	}
}

// KillCount 返回累计击杀数量
func (s *TargetDeathSystem) KillCount() int {
	return s.killCount
}
