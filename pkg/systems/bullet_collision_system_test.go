package systems

import (
	"testing"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
	"github.com/stretchr/testify/assert"
)

const testHitRadius = 0.25

func TestBulletCollisionRadius(t *testing.T) {
	tests := []struct {
		name       string
		offset     utils.Vec3
		wantHealth int
		wantHit    bool
	}{
		{"inside radius", utils.NewVec3(0.1, 0, 0), 4, true},
		{"exactly on radius", utils.NewVec3(0, 0.25, 0), 4, true},
		{"just outside radius", utils.NewVec3(0, 0, 0.2501), 5, false},
		{"far away", utils.NewVec3(3, 0, 0), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			target := newTestTarget(em, utils.Zero, 5)
			bullet := newTestBullet(em, tt.offset, utils.NewVec3(1, 0, 0), 5)

			system := NewBulletCollisionSystem(em, testHitRadius)
			system.Update(1.0 / 60.0)

			health, _ := ecs.GetComponent[*components.HealthComponent](em, target)
			assert.Equal(t, tt.wantHealth, health.CurrentHealth)
			assert.Equal(t, tt.wantHit, em.IsMarkedForDestroy(bullet))
		})
	}
}

// TestBulletCollisionMultiHit 同一帧内两颗子弹命中同一目标，生命值减 2
func TestBulletCollisionMultiHit(t *testing.T) {
	em := ecs.NewEntityManager()
	target := newTestTarget(em, utils.NewVec3(1, 0.5, 1), 5)
	b1 := newTestBullet(em, utils.NewVec3(1.1, 0.5, 1), utils.NewVec3(1, 0, 0), 5)
	b2 := newTestBullet(em, utils.NewVec3(1, 0.5, 0.85), utils.NewVec3(0, 0, 1), 5)

	system := NewBulletCollisionSystem(em, testHitRadius)
	system.Update(1.0 / 60.0)

	health, _ := ecs.GetComponent[*components.HealthComponent](em, target)
	assert.Equal(t, 3, health.CurrentHealth)
	assert.Equal(t, 2, system.HitCount())

	em.Flush()
	assert.False(t, em.IsAlive(b1))
	assert.False(t, em.IsAlive(b2))
	assert.True(t, em.IsAlive(target))
}

// TestBulletCollisionOneTargetPerBullet 子弹同时在两个目标的半径内时只命中先创建的目标
func TestBulletCollisionOneTargetPerBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	first := newTestTarget(em, utils.NewVec3(0, 0, 0), 5)
	second := newTestTarget(em, utils.NewVec3(0.2, 0, 0), 5)
	newTestBullet(em, utils.NewVec3(0.1, 0, 0), utils.NewVec3(1, 0, 0), 5)

	system := NewBulletCollisionSystem(em, testHitRadius)
	system.Update(1.0 / 60.0)

	h1, _ := ecs.GetComponent[*components.HealthComponent](em, first)
	h2, _ := ecs.GetComponent[*components.HealthComponent](em, second)
	assert.Equal(t, 4, h1.CurrentHealth)
	assert.Equal(t, 5, h2.CurrentHealth)
	assert.Equal(t, 1, system.HitCount())
}

// TestBulletCollisionUsesWorldPosition 子弹挂在塔下，按世界坐标判定
func TestBulletCollisionUsesWorldPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	tower := newTestTower(em, utils.NewVec3(0, 0.5, 1), utils.NewVec3(0, 0, 0.6), 1.0)
	target := newTestTarget(em, utils.NewVec3(0, 0.5, 1.7), 5)

	// 局部坐标 (0,0,0.6) 离原点很远，但世界坐标 (0,0.5,1.6) 在目标半径内
	em.SpawnChild(tower,
		&components.TransformComponent{Translation: utils.NewVec3(0, 0, 0.6)},
		&components.BulletComponent{Direction: utils.NewVec3(0, 0, 1), Speed: 5},
	)
	em.Flush()

	system := NewBulletCollisionSystem(em, testHitRadius)
	system.Update(1.0 / 60.0)

	health, _ := ecs.GetComponent[*components.HealthComponent](em, target)
	assert.Equal(t, 4, health.CurrentHealth)
}

func TestBulletCollisionNoTargets(t *testing.T) {
	em := ecs.NewEntityManager()
	bullet := newTestBullet(em, utils.Zero, utils.NewVec3(1, 0, 0), 5)

	system := NewBulletCollisionSystem(em, testHitRadius)
	system.Update(1.0 / 60.0)

	assert.False(t, em.IsMarkedForDestroy(bullet))
	assert.Equal(t, 0, system.HitCount())
}
