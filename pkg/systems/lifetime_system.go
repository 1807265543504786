package systems

import (
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 生命周期到期的实体无论类型（子弹或目标）都会被删除，不检查生命值
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	expiredCount  int
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	// 查询所有拥有 LifetimeComponent 的实体
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 只在刚好过期的那一帧标记删除
		if !lifetime.Advance(deltaTime) {
			continue
		}

		// 本帧已因其他原因标记删除的实体不计入过期数
		if !s.entityManager.IsMarkedForDestroy(id) {
			s.expiredCount++
		}
		s.entityManager.DestroyEntity(id)
	}
}

// ExpiredCount 返回累计因过期删除的实体数量
func (s *LifetimeSystem) ExpiredCount() int {
	return s.expiredCount
}
