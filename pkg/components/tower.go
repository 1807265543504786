package components

import "github.com/gonewx/towerdefense/pkg/utils"

// TowerComponent 防御塔
type TowerComponent struct {
	ShootingTimer TimerComponent // 重复射击计时器
	BulletOffset  utils.Vec3     // 子弹生成点相对塔的局部偏移
}
