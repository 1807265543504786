package systems

import (
	"log"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/entities"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// TowerShootingSystem 防御塔索敌与射击
//
// 射击计时器到点时，从发射点（塔的世界坐标 + 子弹偏移）出发，
// 在所有目标中选出最近的一个，朝它发射一颗子弹。
// 没有目标时什么也不做，计时器照常进入下一周期。
type TowerShootingSystem struct {
	entityManager *ecs.EntityManager
	bulletConfig  config.BulletConfig
	bulletAsset   components.AssetHandle
	shotsFired    int
}

// NewTowerShootingSystem 创建防御塔射击系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 子弹配置
//   - bulletAsset: 子弹视觉资源句柄（只存入子弹组件，不要求已加载）
func NewTowerShootingSystem(em *ecs.EntityManager, cfg config.BulletConfig, bulletAsset components.AssetHandle) *TowerShootingSystem {
	return &TowerShootingSystem{
		entityManager: em,
		bulletConfig:  cfg,
		bulletAsset:   bulletAsset,
	}
}

// Update 推进射击计时器并在到点时开火
func (s *TowerShootingSystem) Update(deltaTime float64) {
	towers := ecs.GetEntitiesWith2[*components.TowerComponent, *components.TransformComponent](s.entityManager)
	if len(towers) == 0 {
		return
	}

	var targetPositions []utils.Vec3
	collected := false

	for _, towerID := range towers {
		tower, ok := ecs.GetComponent[*components.TowerComponent](s.entityManager, towerID)
		if !ok {
			continue
		}
		if !tower.ShootingTimer.Tick(deltaTime) {
			continue
		}

		// 目标位置在本系统内不变，只收集一次
		if !collected {
			targetPositions = s.collectTargetPositions()
			collected = true
		}

		towerPos, _ := WorldTranslation(s.entityManager, towerID)
		muzzle := towerPos.Add(tower.BulletOffset)

		_, displacement, found := FindNearestTarget(muzzle, targetPositions)
		if !found {
			continue
		}
		direction, ok := displacement.Normalize()
		if !ok {
			continue
		}

		bulletID, err := entities.NewBullet(s.entityManager, towerID, tower.BulletOffset, direction, s.bulletConfig, s.bulletAsset)
		if err != nil {
			log.Printf("[TowerShootingSystem] WARNING: Failed to spawn bullet: %v", err)
			continue
		}
		s.shotsFired++
		log.Printf("[TowerShootingSystem] Tower %d fired bullet %d, direction=%v", towerID, bulletID, direction)
	}
}

func (s *TowerShootingSystem) collectTargetPositions() []utils.Vec3 {
	targets := ecs.GetEntitiesWith2[*components.TargetComponent, *components.TransformComponent](s.entityManager)
	positions := make([]utils.Vec3, 0, len(targets))
	for _, id := range targets {
		pos, _ := WorldTranslation(s.entityManager, id)
		positions = append(positions, pos)
	}
	return positions
}

// ShotsFired 返回累计发射的子弹数量
func (s *TowerShootingSystem) ShotsFired() int {
	return s.shotsFired
}
