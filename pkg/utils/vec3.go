package utils

import (
	"fmt"
	"math"
)

// Vec3 三维向量（世界坐标，单位：米）
//
// 坐标系约定：Y 轴向上，地面为 XZ 平面。
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Zero 零向量
var Zero = Vec3{}

// NewVec3 创建向量
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 数乘
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared 长度的平方
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length 欧几里得长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Distance 两点间欧几里得距离
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize 返回单位向量
// 零向量、无穷或 NaN 分量无法归一化，返回 (Zero, false)
func (v Vec3) Normalize() (Vec3, bool) {
	length := v.Length()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Zero, false
	}
	return v.Scale(1 / length), true
}

// IsNaN 任一分量为 NaN 时返回 true
func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// ApproxEqual 按分量比较，误差不超过 epsilon
func (v Vec3) ApproxEqual(o Vec3, epsilon float64) bool {
	return math.Abs(v.X-o.X) <= epsilon &&
		math.Abs(v.Y-o.Y) <= epsilon &&
		math.Abs(v.Z-o.Z) <= epsilon
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
