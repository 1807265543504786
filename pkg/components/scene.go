package components

// AssetHandle 资源句柄（不透明）
// 由 game.ResourceManager 分配，0 表示无效句柄
type AssetHandle uint32

// SceneComponent 引用预制视觉资源的组件（如子弹模型）
// 资源未加载完成时宿主跳过绘制，不影响模拟
type SceneComponent struct {
	Handle AssetHandle
}
