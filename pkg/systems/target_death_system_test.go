package systems

import (
	"testing"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

func TestTargetDeath(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		wantMarked bool
	}{
		{"alive", 1, false},
		{"zero health", 0, true},
		{"overkill", -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := newTestTarget(em, utils.Zero, 5)
			health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			health.CurrentHealth = tt.health

			system := NewTargetDeathSystem(em)
			system.Update(1.0 / 60.0)

			if got := em.IsMarkedForDestroy(id); got != tt.wantMarked {
				t.Errorf("IsMarkedForDestroy() = %v, want %v", got, tt.wantMarked)
			}
		})
	}
}

// TestTargetDeathIgnoresLifetime 生命值为正的目标即使存活时间已满也不由死亡系统回收
func TestTargetDeathIgnoresLifetime(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestTarget(em, utils.Zero, 5)
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	lifetime.CurrentLifetime = 100

	system := NewTargetDeathSystem(em)
	system.Update(1.0)

	if em.IsMarkedForDestroy(id) {
		t.Error("death system should not look at lifetime")
	}
}

// TestTargetDeathCountsOnce 死亡后到 Flush 之前重复运行不会重复计数
func TestTargetDeathCountsOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestTarget(em, utils.Zero, 1)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	health.Damage(1)

	system := NewTargetDeathSystem(em)
	system.Update(1.0 / 60.0)
	system.Update(1.0 / 60.0)
	_, removed := em.Flush()

	if system.KillCount() != 1 {
		t.Errorf("expected 1 kill, got %d", system.KillCount())
	}
	if removed != 1 {
		t.Errorf("expected 1 removal, got %d", removed)
	}
	if em.IsAlive(id) {
		t.Error("dead target should be removed after Flush")
	}
}
