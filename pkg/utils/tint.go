package utils

import "image/color"

// damageColor 生命值耗尽时的颜色
var damageColor = color.RGBA{R: 230, G: 40, B: 30, A: 255}

// easeOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// LerpColor 在两种颜色之间线性插值，t 被限制在 [0, 1]
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: lerp(from.A, to.A),
	}
}

// DamageTint 按已损失生命值的比例把基础色染红
// 第一次受伤变化最明显，越接近死亡变化越小
func DamageTint(base color.RGBA, health, maxHealth int) color.RGBA {
	if maxHealth <= 0 || health >= maxHealth {
		return base
	}
	lost := float64(maxHealth-health) / float64(maxHealth)
	if lost > 1 {
		lost = 1
	}
	return LerpColor(base, damageColor, easeOutQuad(lost))
}
