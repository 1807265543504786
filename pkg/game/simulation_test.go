package game

import (
	"context"
	"math"
	"testing"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDelta = 1.0 / 60.0

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	sim, err := NewSimulation(config.DefaultSceneConfig(), 1)
	require.NoError(t, err)
	return sim
}

func TestNewSimulationBuildsScene(t *testing.T) {
	sim := newTestSimulation(t)
	em := sim.EntityManager()

	towers := ecs.GetEntitiesWith1[*components.TowerComponent](em)
	require.Len(t, towers, 1)
	assert.Equal(t, sim.Scene().Tower, towers[0])

	tower, _ := ecs.GetComponent[*components.TowerComponent](em, towers[0])
	assert.Equal(t, 1.0, tower.ShootingTimer.TargetTime)
	assert.Equal(t, utils.NewVec3(0, 0, 0.6), tower.BulletOffset)

	spawners := ecs.GetEntitiesWith1[*components.TargetSpawnerComponent](em)
	require.Len(t, spawners, 1)
	spawner, _ := ecs.GetComponent[*components.TargetSpawnerComponent](em, spawners[0])
	assert.Equal(t, 3.0, spawner.SpawnTimer.TargetTime)

	var names []string
	for _, snap := range sim.Inspect() {
		names = append(names, snap.Name)
	}
	assert.Equal(t, []string{"Ground", "Tower", "Target Spawner", "Light"}, names)
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Tower.ShootInterval = 0

	_, err := NewSimulation(cfg, 1)
	assert.Error(t, err)
}

func TestNewSimulationNilConfigUsesDefaults(t *testing.T) {
	sim, err := NewSimulation(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSceneConfig(), sim.Config())
}

// TestSimulationSpawnCadence 默认配置下每 3 秒恰好生成一个目标
func TestSimulationSpawnCadence(t *testing.T) {
	sim := newTestSimulation(t)

	for frame := 1; frame <= 61*60; frame++ {
		sim.Tick(frameDelta)
		// 目标第一次出现在 3 秒附近
		if frame == 170 {
			assert.Equal(t, 0, sim.Stats().TargetsSpawned)
		}
	}

	stats := sim.Stats()
	assert.Equal(t, 20, stats.TargetsSpawned)
	assert.Equal(t, uint64(61*60), stats.Frames)
	assert.InDelta(t, 61.0, stats.Elapsed, 1e-6)
}

// TestSimulationInvariants 长时间运行检查不变量：
// 生命值只减不增，子弹方向为单位向量，带生命周期的实体都会按时回收
func TestSimulationInvariants(t *testing.T) {
	sim := newTestSimulation(t)
	em := sim.EntityManager()
	lastHealth := make(map[ecs.EntityID]int)

	for frame := 0; frame < 90*60; frame++ {
		sim.Tick(frameDelta)

		for _, id := range ecs.GetEntitiesWith1[*components.HealthComponent](em) {
			health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			if prev, seen := lastHealth[id]; seen {
				require.LessOrEqual(t, health.CurrentHealth, prev, "health of %d increased", id)
			}
			lastHealth[id] = health.CurrentHealth
			require.Greater(t, health.CurrentHealth, 0, "dead entity %d survived the frame boundary", id)
		}

		for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
			bullet, _ := ecs.GetComponent[*components.BulletComponent](em, id)
			require.InDelta(t, 1.0, bullet.Direction.Length(), 1e-9)
		}

		for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](em) {
			lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
			require.False(t, lifetime.IsExpired, "expired entity %d survived the frame boundary", id)
		}
	}

	stats := sim.Stats()
	assert.Greater(t, stats.ShotsFired, 0)
	assert.LessOrEqual(t, stats.Kills*5, stats.Hits)
	assert.Equal(t, stats.TargetsSpawned, stats.LiveTargets+stats.Kills+targetExpirations(stats))
}

// targetExpirations 过期数中扣除子弹部分（每颗发射的子弹要么命中要么过期要么仍存活）
func targetExpirations(st Stats) int {
	bulletExpirations := st.ShotsFired - st.Hits - st.LiveBullets
	return st.Expirations - bulletExpirations
}

func TestSimulationInvalidDelta(t *testing.T) {
	sim := newTestSimulation(t)

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		sim.Tick(dt)
	}

	stats := sim.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	assert.Equal(t, 0.0, stats.Elapsed)
	assert.Equal(t, 0, stats.TargetsSpawned)
}

func TestSimulationRun(t *testing.T) {
	sim := newTestSimulation(t)

	err := sim.Run(context.Background(), 120, frameDelta)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), sim.Stats().Frames)
}

func TestSimulationRunCancelled(t *testing.T) {
	sim := newTestSimulation(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Run(ctx, 0, frameDelta)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), sim.Stats().Frames)
}

// TestSimulationBulletsCarryAsset 子弹只保存资源句柄
func TestSimulationBulletsCarryAsset(t *testing.T) {
	sim, err := NewSimulation(config.DefaultSceneConfig(), 42)
	require.NoError(t, err)

	// 第 3 秒生成目标，第 4 秒塔第一次有目标可打
	require.NoError(t, sim.Run(context.Background(), 4*60+5, frameDelta))

	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](sim.EntityManager())
	require.NotEmpty(t, bullets)
	for _, id := range bullets {
		scene, ok := ecs.GetComponent[*components.SceneComponent](sim.EntityManager(), id)
		require.True(t, ok)
		assert.Equal(t, components.AssetHandle(42), scene.Handle)

		parent, ok := sim.EntityManager().Parent(id)
		require.True(t, ok)
		assert.Equal(t, sim.Scene().Tower, parent)
	}
}

func TestStatsString(t *testing.T) {
	st := Stats{Frames: 10, Elapsed: 0.5, LiveTargets: 2}
	assert.Contains(t, st.String(), "frame=10")
	assert.Contains(t, st.String(), "targets=2")
}
