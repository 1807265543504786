package components

import "github.com/gonewx/towerdefense/pkg/utils"

// BulletComponent 子弹
// Direction 在创建时为单位向量，因此 Speed 即为每秒移动的米数
type BulletComponent struct {
	Direction utils.Vec3
	Speed     float64
}
