package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 是保留的无效实体ID
const InvalidEntity EntityID = 0

// pendingSpawn 是一条延迟生成命令
// ID 在入队时就已分配，组件在帧边界 Flush 时才挂到实体上
type pendingSpawn struct {
	id         EntityID
	parent     EntityID
	components []interface{}
}

// EntityManager 管理所有实体和组件
//
// 实体的创建和删除请求都通过命令队列延迟到帧边界执行：
//   - SpawnEntity / SpawnChild 只预留ID，实体在 Flush 之前对查询不可见
//   - DestroyEntity 只做标记，实体在 Flush 之前仍可被查询
//
// 查询结果按实体变为存活的先后顺序返回（稳定迭代顺序）。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体，按生效顺序排列
	order []EntityID
	// 父子关系（仅用于相对变换和递归删除）
	parents  map[EntityID]EntityID
	children map[EntityID][]EntityID
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	// 待生成的实体
	pendingSpawns []pendingSpawn
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		order:             make([]EntityID, 0),
		parents:           make(map[EntityID]EntityID),
		children:          make(map[EntityID][]EntityID),
		entitiesToDestroy: make([]EntityID, 0),
		pendingSpawns:     make([]pendingSpawn, 0),
	}
}

func (em *EntityManager) reserveID() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

func (em *EntityManager) makeAlive(id EntityID) {
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
}

// CreateEntity 立即创建新实体并返回唯一ID
// 只应在初始化阶段（帧循环之外）使用，帧内请使用 SpawnEntity
func (em *EntityManager) CreateEntity() EntityID {
	id := em.reserveID()
	em.makeAlive(id)
	return id
}

// SpawnEntity 延迟创建带有给定组件的实体
// 返回预留的ID；实体在下一次 Flush 后才存在
func (em *EntityManager) SpawnEntity(components ...interface{}) EntityID {
	return em.SpawnChild(InvalidEntity, components...)
}

// SpawnChild 延迟创建一个挂在 parent 下的子实体
// 如果 Flush 时父实体已不存在，子实体作为根实体生成
func (em *EntityManager) SpawnChild(parent EntityID, components ...interface{}) EntityID {
	id := em.reserveID()
	em.pendingSpawns = append(em.pendingSpawns, pendingSpawn{
		id:         id,
		parent:     parent,
		components: components,
	})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 删除是递归的：子实体会随父实体一起删除。重复标记是安全的。
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarkedForDestroy 检查实体是否已在本帧被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	for _, marked := range em.entitiesToDestroy {
		if marked == id {
			return true
		}
	}
	return false
}

// IsAlive 检查实体当前是否存活（已生效且未被清理）
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// SetParent 立即建立父子关系（初始化阶段使用）
func (em *EntityManager) SetParent(child, parent EntityID) {
	if !em.IsAlive(child) || !em.IsAlive(parent) || child == parent {
		return
	}
	em.detach(child)
	em.parents[child] = parent
	em.children[parent] = append(em.children[parent], child)
}

// Parent 返回实体的父实体
func (em *EntityManager) Parent(id EntityID) (EntityID, bool) {
	parent, ok := em.parents[id]
	return parent, ok
}

// Children 返回实体的子实体列表（副本）
func (em *EntityManager) Children(id EntityID) []EntityID {
	kids := em.children[id]
	result := make([]EntityID, len(kids))
	copy(result, kids)
	return result
}

func (em *EntityManager) detach(child EntityID) {
	parent, ok := em.parents[child]
	if !ok {
		return
	}
	delete(em.parents, child)
	kids := em.children[parent]
	for i, kid := range kids {
		if kid == child {
			em.children[parent] = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	if len(em.children[parent]) == 0 {
		delete(em.children, parent)
	}
}

// ApplyPendingSpawns 让本帧排队的实体生效
func (em *EntityManager) ApplyPendingSpawns() int {
	spawned := len(em.pendingSpawns)
	for _, spawn := range em.pendingSpawns {
		em.makeAlive(spawn.id)
		for _, comp := range spawn.components {
			em.AddComponent(spawn.id, comp)
		}
		if spawn.parent != InvalidEntity {
			em.SetParent(spawn.id, spawn.parent)
		}
	}
	em.pendingSpawns = em.pendingSpawns[:0]
	return spawned
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回实际删除的实体数量（包括递归删除的子实体）
func (em *EntityManager) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	removed := make(map[EntityID]struct{})
	for _, id := range em.entitiesToDestroy {
		em.destroyRecursive(id, removed)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片

	if len(removed) > 0 {
		kept := em.order[:0]
		for _, id := range em.order {
			if _, gone := removed[id]; !gone {
				kept = append(kept, id)
			}
		}
		em.order = kept
	}
	return len(removed)
}

func (em *EntityManager) destroyRecursive(id EntityID, removed map[EntityID]struct{}) {
	if !em.IsAlive(id) {
		return
	}
	for _, child := range em.Children(id) {
		em.destroyRecursive(child, removed)
	}
	em.detach(id)
	delete(em.children, id)
	delete(em.components, id)
	removed[id] = struct{}{}
}

// Flush 在帧边界应用所有延迟命令
// 先生成后删除，这样本帧生成又被删除的实体也能被正确清理
func (em *EntityManager) Flush() (spawned, removed int) {
	spawned = em.ApplyPendingSpawns()
	removed = em.RemoveMarkedEntities()
	return spawned, removed
}

// PendingCount 返回尚未应用的生成和删除命令数量
func (em *EntityManager) PendingCount() (spawns, destroys int) {
	return len(em.pendingSpawns), len(em.entitiesToDestroy)
}

// EntityCount 返回存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// Entities 返回所有存活实体（按生效顺序）
func (em *EntityManager) Entities() []EntityID {
	result := make([]EntityID, len(em.order))
	copy(result, em.order)
	return result
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表，按生效顺序排列
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
