package systems

import (
	"github.com/gonewx/towerdefense/pkg/components"
	"github.com/gonewx/towerdefense/pkg/ecs"
	"github.com/gonewx/towerdefense/pkg/utils"
)

// maxHierarchyDepth 防止父子关系成环时无限循环
const maxHierarchyDepth = 32

// WorldTranslation 计算实体的世界坐标
// 变换层级只有平移：世界坐标 = 父实体世界坐标 + 局部平移。
// 没有 TransformComponent 的祖先视为单位变换。
//
// 返回:
//   - utils.Vec3: 世界坐标
//   - bool: 实体本身没有 TransformComponent 时返回 false
func WorldTranslation(em *ecs.EntityManager, id ecs.EntityID) (utils.Vec3, bool) {
	own, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return utils.Zero, false
	}

	world := own.Translation
	current := id
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		parent, ok := em.Parent(current)
		if !ok {
			break
		}
		if t, ok := ecs.GetComponent[*components.TransformComponent](em, parent); ok {
			world = world.Add(t.Translation)
		}
		current = parent
	}
	return world, true
}
