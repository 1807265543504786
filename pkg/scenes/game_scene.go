package scenes

import (
	"image/color"
	"log"
	"sort"

	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/config"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/game"
	"github.com/gonewx/towerdefense/pkg/systems"
	"github.com/gonewx/towerdefense/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameScene 塔防主场景
//
// Update 推进模拟一帧，Draw 以俯视投影绘制所有带形状或资源句柄的实体。
// 绘制只读取组件，不修改模拟状态。
type GameScene struct {
	simulation      *game.Simulation
	resourceManager *game.ResourceManager
	sceneManager    *SceneManager
	projection      utils.Projection

	paused        bool
	showInspector bool
}

// NewGameScene 创建主场景
//
// 参数:
//   - sim: 已初始化的模拟
//   - rm: 资源管理器，用于查询子弹精灵是否就绪
//   - sm: 场景管理器
func NewGameScene(sim *game.Simulation, rm *game.ResourceManager, sm *SceneManager) *GameScene {
	return &GameScene{
		simulation:      sim,
		resourceManager: rm,
		sceneManager:    sm,
		projection:      utils.NewProjection(config.GameWindowWidth, config.GameWindowHeight, config.PixelsPerMeter, config.PixelsPerMeter),
		showInspector:   true,
	}
}

// Update 处理调试按键并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.showInspector = !s.showInspector
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
		log.Printf("[GameScene] Paused: %v", s.paused)
	}

	if s.paused {
		return
	}
	s.simulation.Tick(deltaTime)
}

// drawable 一个待绘制的图元（屏幕坐标）
type drawable struct {
	id      ecs.EntityID
	kind    components.ShapeKind
	circle  bool
	x, y    float64
	size    float64 // 方形为边长，圆形为半径
	height  float64 // 世界 Y，用于排序
	fill    color.RGBA
	outline color.RGBA
}

// collectDrawables 收集所有可绘制实体
// 资源句柄尚未加载完成的实体被跳过；结果按高度升序排列，高处的实体后画
func (s *GameScene) collectDrawables() []drawable {
	em := s.simulation.EntityManager()
	var result []drawable

	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TransformComponent](em) {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
		pos, _ := systems.WorldTranslation(em, id)
		x, y := s.projection.WorldToScreen(pos)
		fill := shape.Color
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			fill = utils.DamageTint(fill, health.CurrentHealth, health.MaxHealth)
		}
		result = append(result, drawable{
			id:     id,
			kind:   shape.Kind,
			circle: shape.Kind == components.ShapeLight,
			x:      x,
			y:      y,
			size:   s.projection.MetersToScreen(shape.Size),
			height: pos.Y,
			fill:   fill,
		})
	}

	if s.resourceManager != nil {
		for _, id := range ecs.GetEntitiesWith2[*components.SceneComponent, *components.TransformComponent](em) {
			scene, _ := ecs.GetComponent[*components.SceneComponent](em, id)
			sprite, ok := s.resourceManager.Sprite(scene.Handle)
			if !ok {
				continue
			}
			pos, _ := systems.WorldTranslation(em, id)
			x, y := s.projection.WorldToScreen(pos)
			result = append(result, drawable{
				id:      id,
				circle:  true,
				x:       x,
				y:       y,
				size:    s.projection.MetersToScreen(sprite.Radius),
				height:  pos.Y,
				fill:    sprite.Color.ToColor(),
				outline: sprite.Outline.ToColor(),
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].height < result[j].height
	})
	return result
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: config.ClearColor[0], G: config.ClearColor[1], B: config.ClearColor[2], A: 255})

	for _, d := range s.collectDrawables() {
		if d.circle {
			vector.DrawFilledCircle(screen, float32(d.x), float32(d.y), float32(d.size), d.fill, true)
			if d.outline.A > 0 {
				vector.StrokeCircle(screen, float32(d.x), float32(d.y), float32(d.size), 1.5, d.outline, true)
			}
			continue
		}
		half := d.size / 2
		vector.DrawFilledRect(screen, float32(d.x-half), float32(d.y-half), float32(d.size), float32(d.size), d.fill, true)
		if d.kind == components.ShapeCube {
			vector.StrokeRect(screen, float32(d.x-half), float32(d.y-half), float32(d.size), float32(d.size), 1, color.Black, true)
		}
	}

	s.drawDebugOverlay(screen)
}
