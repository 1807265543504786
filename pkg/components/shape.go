package components

import "image/color"

// ShapeKind 程序化几何体类型
type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapePlane
	ShapeLight
)

// ShapeComponent 由宿主渲染的简单几何体
// 模拟层不读取此组件
type ShapeComponent struct {
	Kind  ShapeKind
	Size  float64
	Color color.RGBA
}
