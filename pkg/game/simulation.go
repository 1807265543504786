package game

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/entities"
	"github.com/gonewx/towerdefense/pkg/systems"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// System 每帧执行一次的逻辑单元
type System interface {
	Update(deltaTime float64)
}

// Stats 模拟运行统计
type Stats struct {
	Frames         uint64  // 已执行帧数
	Elapsed        float64 // 累计模拟时间（秒）
	TargetsSpawned int     // 累计生成目标数
	ShotsFired     int     // 累计发射子弹数
	Hits           int     // 累计命中次数
	Kills          int     // 因生命值耗尽回收的目标数
	Expirations    int     // 因生命周期到期回收的实体数
	LiveTargets    int     // 当前存活目标数
	LiveBullets    int     // 当前存活子弹数
}

// EntitySnapshot 调试面板使用的实体快照
type EntitySnapshot struct {
	ID        ecs.EntityID
	Name      string
	Position  utils.Vec3
	Health    int
	HasHealth bool
}

// Simulation 持有整个模拟世界：实体管理器、按固定顺序执行的系统和帧时钟
//
// 每一帧（Tick）按顺序运行：
//
//	TargetSpawn → TowerShooting → TargetMovement → BulletMovement
//	→ BulletCollision → TargetDeath → Lifetime
//
// 然后在帧边界执行 Flush，本帧排队的生成和删除在下一帧开始时全部可见。
// Simulation 不是并发安全的，只能在帧循环所在的 goroutine 中使用。
type Simulation struct {
	entityManager *ecs.EntityManager
	config        *config.SceneConfig
	scene         entities.SceneEntities
	bulletAsset   components.AssetHandle

	targetSpawnSystem    *systems.TargetSpawnSystem
	towerShootingSystem  *systems.TowerShootingSystem
	targetMovementSystem *systems.TargetMovementSystem
	bulletMovementSystem *systems.BulletMovementSystem
	collisionSystem      *systems.BulletCollisionSystem
	targetDeathSystem    *systems.TargetDeathSystem
	lifetimeSystem       *systems.LifetimeSystem
	systems              []System

	frames  uint64
	elapsed float64
}

// NewSimulation 创建模拟并构建初始场景
//
// 参数:
//   - cfg: 场景配置，nil 时使用默认配置
//   - bulletAsset: 子弹视觉资源句柄，只被写入子弹的 SceneComponent
//
// 返回:
//   - *Simulation: 已完成初始场景构建的模拟
//   - error: 配置无效或场景构建失败时返回错误
func NewSimulation(cfg *config.SceneConfig, bulletAsset components.AssetHandle) (*Simulation, error) {
	if cfg == nil {
		cfg = config.DefaultSceneConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	em := ecs.NewEntityManager()
	scene, err := entities.SpawnBasicScene(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	s := &Simulation{
		entityManager: em,
		config:        cfg,
		scene:         scene,
		bulletAsset:   bulletAsset,
	}

	s.targetSpawnSystem = systems.NewTargetSpawnSystem(em, cfg.Target)
	s.towerShootingSystem = systems.NewTowerShootingSystem(em, cfg.Bullet, bulletAsset)
	s.targetMovementSystem = systems.NewTargetMovementSystem(em)
	s.bulletMovementSystem = systems.NewBulletMovementSystem(em)
	s.collisionSystem = systems.NewBulletCollisionSystem(em, cfg.Bullet.HitRadius)
	s.targetDeathSystem = systems.NewTargetDeathSystem(em)
	s.lifetimeSystem = systems.NewLifetimeSystem(em)

	// 执行顺序即为列表顺序
	s.systems = []System{
		s.targetSpawnSystem,
		s.towerShootingSystem,
		s.targetMovementSystem,
		s.bulletMovementSystem,
		s.collisionSystem,
		s.targetDeathSystem,
		s.lifetimeSystem,
	}

	log.Printf("[Simulation] Initialized with %d systems, %d entities", len(s.systems), em.EntityCount())
	return s, nil
}

// Tick 推进一帧
// 负数、NaN 或无穷大的 deltaTime 按 0 处理
func (s *Simulation) Tick(deltaTime float64) {
	if math.IsNaN(deltaTime) || math.IsInf(deltaTime, 0) || deltaTime < 0 {
		log.Printf("[Simulation] WARNING: Invalid delta time %v, using 0", deltaTime)
		deltaTime = 0
	}

	for _, system := range s.systems {
		system.Update(deltaTime)
	}

	spawned, removed := s.entityManager.Flush()
	s.frames++
	s.elapsed += deltaTime

	if spawned > 0 || removed > 0 {
		log.Printf("[Simulation] Frame %d: spawned=%d removed=%d live=%d", s.frames, spawned, removed, s.entityManager.EntityCount())
	}
}

// Run 以固定步长连续推进 frames 帧
// frames <= 0 表示一直运行到 ctx 被取消
//
// 返回:
//   - error: ctx 被取消时返回 ctx.Err()，正常跑完返回 nil
func (s *Simulation) Run(ctx context.Context, frames int, deltaTime float64) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Tick(deltaTime)
	}
	return nil
}

// Stats 返回当前统计
func (s *Simulation) Stats() Stats {
	return Stats{
		Frames:         s.frames,
		Elapsed:        s.elapsed,
		TargetsSpawned: s.targetSpawnSystem.SpawnedCount(),
		ShotsFired:     s.towerShootingSystem.ShotsFired(),
		Hits:           s.collisionSystem.HitCount(),
		Kills:          s.targetDeathSystem.KillCount(),
		Expirations:    s.lifetimeSystem.ExpiredCount(),
		LiveTargets:    len(ecs.GetEntitiesWith1[*components.TargetComponent](s.entityManager)),
		LiveBullets:    len(ecs.GetEntitiesWith1[*components.BulletComponent](s.entityManager)),
	}
}

// String 单行统计文本，用于调试输出
func (st Stats) String() string {
	return fmt.Sprintf("frame=%d t=%.2fs targets=%d bullets=%d spawned=%d shots=%d hits=%d kills=%d expired=%d",
		st.Frames, st.Elapsed, st.LiveTargets, st.LiveBullets, st.TargetsSpawned, st.ShotsFired, st.Hits, st.Kills, st.Expirations)
}

// Inspect 返回所有带名称实体的快照，按创建顺序排列
func (s *Simulation) Inspect() []EntitySnapshot {
	ids := ecs.GetEntitiesWith1[*components.NameComponent](s.entityManager)
	snapshots := make([]EntitySnapshot, 0, len(ids))
	for _, id := range ids {
		name, _ := ecs.GetComponent[*components.NameComponent](s.entityManager, id)
		snap := EntitySnapshot{ID: id, Name: name.Name}
		snap.Position, _ = systems.WorldTranslation(s.entityManager, id)
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
			snap.Health = health.CurrentHealth
			snap.HasHealth = true
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots
}

// EntityManager 返回底层实体管理器（宿主渲染时只读使用）
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Scene 返回初始场景中的实体ID
func (s *Simulation) Scene() entities.SceneEntities {
	return s.scene
}

// Config 返回场景配置
func (s *Simulation) Config() *config.SceneConfig {
	return s.config
}

// BulletAsset 返回子弹视觉资源句柄
func (s *Simulation) BulletAsset() components.AssetHandle {
	return s.bulletAsset
}
