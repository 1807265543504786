package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
)

// SceneEntities 初始场景中创建的实体
type SceneEntities struct {
	Ground  ecs.EntityID
	Tower   ecs.EntityID
	Spawner ecs.EntityID
	Light   ecs.EntityID
}

var (
	groundColor = color.RGBA{R: 77, G: 128, B: 77, A: 255}
	towerColor  = color.RGBA{R: 77, G: 77, B: 77, A: 255}
	lightColor  = color.RGBA{R: 255, G: 240, B: 200, A: 255}
)

// SpawnBasicScene 创建初始场景：地面、防御塔、目标生成点和光源
// 这些实体在帧循环开始前立即生效
//
// 参数:
//   - em: 实体管理器
//   - cfg: 场景配置
//
// 返回:
//   - SceneEntities: 创建的实体ID
//   - error: 参数无效时返回错误
func SpawnBasicScene(em *ecs.EntityManager, cfg *config.SceneConfig) (SceneEntities, error) {
	if em == nil {
		return SceneEntities{}, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return SceneEntities{}, fmt.Errorf("scene config cannot be nil")
	}

	var scene SceneEntities

	scene.Ground = em.CreateEntity()
	em.AddComponent(scene.Ground, components.NewTransform(0, 0, 0))
	em.AddComponent(scene.Ground, &components.ShapeComponent{Kind: components.ShapePlane, Size: cfg.Ground.Size, Color: groundColor})
	em.AddComponent(scene.Ground, &components.NameComponent{Name: "Ground"})

	scene.Tower = em.CreateEntity()
	em.AddComponent(scene.Tower, &components.TransformComponent{Translation: cfg.Tower.Position})
	em.AddComponent(scene.Tower, &components.TowerComponent{
		ShootingTimer: components.NewTimer("shooting", cfg.Tower.ShootInterval, components.TimerRepeating),
		BulletOffset:  cfg.Tower.BulletOffset,
	})
	em.AddComponent(scene.Tower, &components.ShapeComponent{Kind: components.ShapeCube, Size: cfg.Tower.Size, Color: towerColor})
	em.AddComponent(scene.Tower, &components.NameComponent{Name: "Tower"})

	scene.Spawner = em.CreateEntity()
	em.AddComponent(scene.Spawner, &components.TransformComponent{Translation: cfg.Spawner.Position})
	em.AddComponent(scene.Spawner, &components.TargetSpawnerComponent{
		SpawnTimer: components.NewTimer("spawn", cfg.Spawner.SpawnInterval, components.TimerRepeating),
	})
	em.AddComponent(scene.Spawner, &components.NameComponent{Name: "Target Spawner"})

	scene.Light = em.CreateEntity()
	em.AddComponent(scene.Light, &components.TransformComponent{Translation: cfg.Light.Position})
	em.AddComponent(scene.Light, &components.ShapeComponent{Kind: components.ShapeLight, Size: 0.3, Color: lightColor})
	em.AddComponent(scene.Light, &components.NameComponent{Name: "Light"})

	log.Printf("[SceneFactory] Basic scene created: tower=%d spawner=%d", scene.Tower, scene.Spawner)
	return scene, nil
}
