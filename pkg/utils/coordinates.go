// Package utils 提供模拟和渲染共用的数学工具
//
// coordinates.go 提供俯视投影的坐标转换，桌面宿主和终端宿主共用。
//
// # 坐标系统概述
//
//   - **世界坐标**：单位为米，Y 轴向上，地面为 XZ 平面
//   - **屏幕坐标**：相对于窗口（或终端）左上角，单位为像素（或字符格）
//
// # 核心转换公式
//
// 俯视投影丢弃 Y 分量，X 向右、Z 向下：
//
//	screenX = OriginX + world.X * ScaleX
//	screenY = OriginY + world.Z * ScaleY
//
// 终端字符格高宽比约为 2:1，因此终端宿主使用 ScaleY = ScaleX / 2。
package utils

// Projection 俯视正交投影
type Projection struct {
	OriginX float64 // 世界原点在屏幕上的 X 坐标
	OriginY float64 // 世界原点在屏幕上的 Y 坐标
	ScaleX  float64 // 每米对应的水平屏幕单位
	ScaleY  float64 // 每米对应的垂直屏幕单位
}

// NewProjection 创建以屏幕中心为世界原点的投影
//
// 参数:
//   - width, height: 屏幕尺寸
//   - scaleX, scaleY: 每米对应的屏幕单位
func NewProjection(width, height int, scaleX, scaleY float64) Projection {
	return Projection{
		OriginX: float64(width) / 2,
		OriginY: float64(height) / 2,
		ScaleX:  scaleX,
		ScaleY:  scaleY,
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (p Projection) WorldToScreen(world Vec3) (x, y float64) {
	return p.OriginX + world.X*p.ScaleX, p.OriginY + world.Z*p.ScaleY
}

// ScreenToWorld 将屏幕坐标转换回地面（Y=0）上的世界坐标
// 比例为 0 时返回原点
func (p Projection) ScreenToWorld(x, y float64) Vec3 {
	if p.ScaleX == 0 || p.ScaleY == 0 {
		return Zero
	}
	return Vec3{X: (x - p.OriginX) / p.ScaleX, Z: (y - p.OriginY) / p.ScaleY}
}

// MetersToScreen 将水平方向的长度（米）转换为屏幕单位
func (p Projection) MetersToScreen(meters float64) float64 {
	return meters * p.ScaleX
}
