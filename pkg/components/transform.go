package components

import "github.com/gonewx/towerdefense/pkg/utils"

// TransformComponent 实体的局部变换
// 有父实体时 Translation 相对于父实体，否则即为世界坐标
type TransformComponent struct {
	Translation utils.Vec3
}

// NewTransform 创建位于指定位置的变换
func NewTransform(x, y, z float64) *TransformComponent {
	return &TransformComponent{Translation: utils.NewVec3(x, y, z)}
}
