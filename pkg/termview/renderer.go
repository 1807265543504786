// Package termview 在终端中以俯视字符画渲染模拟
//
// 渲染只读取组件状态，不推进模拟。第 0 行为状态栏，其余行为场景。
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/game"
	"github.com/gonewx/towerdefense/pkg/systems"
	"github.com/gonewx/towerdefense/pkg/utils"
)

const (
	statusRows = 1

	// viewMarginMeters 地面四周额外显示的范围
	viewMarginMeters = 1.0

	glyphGround  = '.'
	glyphTower   = 'T'
	glyphSpawner = 'S'
	glyphLight   = 'L'
)

var (
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleGround  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(77, 128, 77))
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleSpawner = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLight   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 240, 200))
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer 终端渲染器
type Renderer struct {
	screen    tcell.Screen
	resources *game.ResourceManager
}

// NewRenderer 创建渲染器
// resources 可以为 nil，此时子弹不绘制
func NewRenderer(screen tcell.Screen, resources *game.ResourceManager) *Renderer {
	return &Renderer{screen: screen, resources: resources}
}

// Projection 返回适配当前终端尺寸的俯视投影
// 字符格高宽比约为 2:1，垂直比例取水平比例的一半
func (r *Renderer) Projection(groundSize float64) utils.Projection {
	width, height := r.screen.Size()
	rows := height - statusRows
	view := groundSize + 2*viewMarginMeters
	if view <= 0 {
		view = 1
	}

	scaleX := math.Min(float64(width)/view, 2*float64(rows)/view)
	if scaleX < 1 {
		scaleX = 1
	}
	p := utils.NewProjection(width, rows, scaleX, scaleX/2)
	p.OriginY += statusRows
	return p
}

// Draw 绘制一帧并刷新屏幕
func (r *Renderer) Draw(sim *game.Simulation) {
	r.screen.Clear()

	em := sim.EntityManager()
	proj := r.Projection(sim.Config().Ground.Size)

	r.drawGround(em, proj)

	if light := sim.Scene().Light; em.IsAlive(light) {
		r.drawEntity(em, proj, light, glyphLight, styleLight)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TargetSpawnerComponent](em) {
		r.drawEntity(em, proj, id, glyphSpawner, styleSpawner)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TowerComponent](em) {
		r.drawEntity(em, proj, id, glyphTower, styleTower)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.TargetComponent, *components.HealthComponent](em) {
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		r.drawEntity(em, proj, id, healthGlyph(health.CurrentHealth), styleTarget)
	}
	r.drawBullets(em, proj)

	r.drawText(0, 0, sim.Stats().String(), styleStatus)
	r.screen.Show()
}

// healthGlyph 目标用剩余生命值表示，超过 9 显示 '+'
func healthGlyph(health int) rune {
	switch {
	case health <= 0:
		return 'x'
	case health > 9:
		return '+'
	default:
		return rune('0' + health)
	}
}

func (r *Renderer) drawGround(em *ecs.EntityManager, proj utils.Projection) {
	for _, id := range ecs.GetEntitiesWith2[*components.ShapeComponent, *components.TransformComponent](em) {
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
		if shape.Kind != components.ShapePlane {
			continue
		}
		center, _ := systems.WorldTranslation(em, id)
		half := shape.Size / 2
		x0, y0 := proj.WorldToScreen(center.Add(utils.NewVec3(-half, 0, -half)))
		x1, y1 := proj.WorldToScreen(center.Add(utils.NewVec3(half, 0, half)))
		for y := int(math.Round(y0)); y <= int(math.Round(y1)); y++ {
			for x := int(math.Round(x0)); x <= int(math.Round(x1)); x++ {
				r.setCell(x, y, glyphGround, styleGround)
			}
		}
	}
}

func (r *Renderer) drawBullets(em *ecs.EntityManager, proj utils.Projection) {
	if r.resources == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.SceneComponent, *components.BulletComponent](em) {
		scene, _ := ecs.GetComponent[*components.SceneComponent](em, id)
		sprite, ok := r.resources.Sprite(scene.Handle)
		if !ok {
			continue
		}
		glyph := '*'
		if runes := []rune(sprite.Glyph); len(runes) > 0 {
			glyph = runes[0]
		}
		c := sprite.Color
		r.drawEntity(em, proj, id, glyph, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
}

func (r *Renderer) drawEntity(em *ecs.EntityManager, proj utils.Projection, id ecs.EntityID, glyph rune, style tcell.Style) {
	pos, ok := systems.WorldTranslation(em, id)
	if !ok {
		return
	}
	x, y := proj.WorldToScreen(pos)
	r.setCell(int(math.Round(x)), int(math.Round(y)), glyph, style)
}

// setCell 写入一个字符，状态栏和屏幕外的位置被忽略
func (r *Renderer) setCell(x, y int, glyph rune, style tcell.Style) {
	width, height := r.screen.Size()
	if x < 0 || x >= width || y < statusRows || y >= height {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
