package scenes

import (
	"strings"
	"testing"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSprite = `
name: tomato
radius: 0.08
color: {r: 220, g: 40, b: 30, a: 255}
`

func newTestScene(t *testing.T, files map[string]string) (*GameScene, *game.ResourceManager) {
	t.Helper()
	rm := game.NewResourceManager(func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, assert.AnError
		}
		return []byte(data), nil
	})
	handle := rm.Load("data/models/tomato.yaml")
	rm.Wait()

	sim, err := game.NewSimulation(config.DefaultSceneConfig(), handle)
	require.NoError(t, err)

	return NewGameScene(sim, rm, NewSceneManager()), rm
}

// TestGameSceneImplementsSceneInterface verifies that GameScene implements Scene.
func TestGameSceneImplementsSceneInterface(t *testing.T) {
	scene, _ := newTestScene(t, nil)
	var _ Scene = scene
}

func TestGameSceneUpdateAdvancesSimulation(t *testing.T) {
	scene, _ := newTestScene(t, nil)

	for i := 0; i < 10; i++ {
		scene.Update(1.0 / 60.0)
	}
	assert.Equal(t, uint64(10), scene.simulation.Stats().Frames)

	scene.paused = true
	scene.Update(1.0 / 60.0)
	assert.Equal(t, uint64(10), scene.simulation.Stats().Frames)
}

func TestCollectDrawablesStaticScene(t *testing.T) {
	scene, _ := newTestScene(t, nil)

	drawables := scene.collectDrawables()
	// 地面、塔、光源
	require.Len(t, drawables, 3)
	assert.Equal(t, components.ShapePlane, drawables[0].kind)
	assert.Equal(t, components.ShapeLight, drawables[len(drawables)-1].kind)

	for i := 1; i < len(drawables); i++ {
		assert.LessOrEqual(t, drawables[i-1].height, drawables[i].height)
	}
}

// TestCollectDrawablesSkipsUnloadedBullets 子弹资源未加载时不绘制，加载后绘制
func TestCollectDrawablesSkipsUnloadedBullets(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantBullets bool
	}{
		{"sprite missing", nil, false},
		{"sprite loaded", map[string]string{"data/models/tomato.yaml": testSprite}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, _ := newTestScene(t, tt.files)
			for i := 0; i < 4*60+5; i++ {
				scene.Update(1.0 / 60.0)
			}
			em := scene.simulation.EntityManager()
			require.NotEmpty(t, ecs.GetEntitiesWith1[*components.BulletComponent](em))

			circles := 0
			for _, d := range scene.collectDrawables() {
				if d.circle && d.kind != components.ShapeLight {
					circles++
				}
			}
			assert.Equal(t, tt.wantBullets, circles > 0)
		})
	}
}

func TestDebugText(t *testing.T) {
	scene, _ := newTestScene(t, nil)

	text := scene.debugText()
	assert.Contains(t, text, "frame=0")
	assert.Contains(t, text, "Tower")

	scene.showInspector = false
	assert.False(t, strings.Contains(scene.debugText(), "Target Spawner"))
}
