package systems

import (
	"math"

	"github.com/gonewx/towerdefense/pkg/utils"
)

// FindNearestTarget 在候选位置中线性扫描，找出距离 origin 最近的一个
//
// 距离相同时取迭代顺序中的第一个。长度为 NaN 的候选（坐标含 NaN）和
// 长度为 0 的候选（与发射点重合，无法确定方向）被跳过。
// 候选数量小，不需要空间索引。
//
// 返回:
//   - index: 选中候选在 candidates 中的下标，没有可用候选时为 -1
//   - displacement: 从 origin 指向选中候选的位移向量
//   - ok: 是否找到可用候选
func FindNearestTarget(origin utils.Vec3, candidates []utils.Vec3) (index int, displacement utils.Vec3, ok bool) {
	index = -1
	best := math.Inf(1)

	for i, pos := range candidates {
		d := pos.Sub(origin)
		length := d.Length()
		if math.IsNaN(length) || length == 0 {
			continue
		}
		// 严格小于：相等时保留先出现的候选
		if index == -1 || length < best {
			index = i
			best = length
			displacement = d
		}
	}

	if index == -1 {
		return -1, utils.Zero, false
	}
	return index, displacement, true
}
