package systems

import (
	"log"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/entities"
)

// TargetSpawnSystem 按生成点的重复计时器定时生成目标
// 每次计时器到点只生成一个目标，没有数量上限
type TargetSpawnSystem struct {
	entityManager *ecs.EntityManager
	targetConfig  config.TargetConfig
	spawnedCount  int
}

// NewTargetSpawnSystem 创建目标生成系统
func NewTargetSpawnSystem(em *ecs.EntityManager, cfg config.TargetConfig) *TargetSpawnSystem {
	return &TargetSpawnSystem{
		entityManager: em,
		targetConfig:  cfg,
	}
}

// Update 推进所有生成点的计时器
func (s *TargetSpawnSystem) Update(deltaTime float64) {
	spawners := ecs.GetEntitiesWith2[*components.TargetSpawnerComponent, *components.TransformComponent](s.entityManager)

	for _, id := range spawners {
		spawner, ok := ecs.GetComponent[*components.TargetSpawnerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if !spawner.SpawnTimer.Tick(deltaTime) {
			continue
		}

		position, _ := WorldTranslation(s.entityManager, id)
		targetID, err := entities.NewTarget(s.entityManager, s.targetConfig, position)
		if err != nil {
			log.Printf("[TargetSpawnSystem] WARNING: Failed to spawn target: %v", err)
			continue
		}
		s.spawnedCount++
		log.Printf("[TargetSpawnSystem] Spawner %d queued target %d at %v", id, targetID, position)
	}
}

// SpawnedCount 返回累计生成的目标数量
func (s *TargetSpawnSystem) SpawnedCount() int {
	return s.spawnedCount
}
