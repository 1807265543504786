package systems

import (
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// newTestTarget 立即创建一个目标实体（跳过生成队列）
// 这是一个测试辅助函数，被多个测试文件共享使用
func newTestTarget(em *ecs.EntityManager, pos utils.Vec3, health int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Translation: pos})
	em.AddComponent(id, &components.TargetComponent{Speed: 0.5})
	em.AddComponent(id, components.NewHealth(health))
	em.AddComponent(id, components.NewLifetime(10))
	return id
}

// newTestBullet 立即创建一颗没有父实体的子弹
func newTestBullet(em *ecs.EntityManager, pos, dir utils.Vec3, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Translation: pos})
	em.AddComponent(id, &components.BulletComponent{Direction: dir, Speed: speed})
	em.AddComponent(id, components.NewLifetime(3))
	return id
}

// newTestTower 立即创建一座防御塔
func newTestTower(em *ecs.EntityManager, pos, offset utils.Vec3, interval float64) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Translation: pos})
	em.AddComponent(id, &components.TowerComponent{
		ShootingTimer: components.NewTimer("shooting", interval, components.TimerRepeating),
		BulletOffset:  offset,
	})
	return id
}

func testBulletConfig() config.BulletConfig {
	return config.DefaultSceneConfig().Bullet
}

func testTargetConfig() config.TargetConfig {
	return config.DefaultSceneConfig().Target
}
