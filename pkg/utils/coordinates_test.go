package utils

import (
	"testing"
)

// TestWorldToScreen 测试俯视投影
func TestWorldToScreen(t *testing.T) {
	p := NewProjection(1280, 720, 90, 90)

	tests := []struct {
		name  string
		world Vec3
		wantX float64
		wantY float64
	}{
		{"世界原点-屏幕中心", NewVec3(0, 0, 0), 640, 360},
		{"高度不影响投影", NewVec3(0, 8, 0), 640, 360},
		{"X 向右", NewVec3(1, 0, 0), 730, 360},
		{"Z 向下", NewVec3(0, 0.5, 1), 640, 450},
		{"生成点", NewVec3(-2.5, 0.5, 2.5), 415, 585},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := p.WorldToScreen(tt.world)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("WorldToScreen(%v) = (%v, %v), want (%v, %v)", tt.world, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestScreenToWorldRoundTrip 屏幕坐标转回地面坐标
func TestScreenToWorldRoundTrip(t *testing.T) {
	p := NewProjection(80, 24, 8, 4)
	world := NewVec3(1.5, 0, -2)

	x, y := p.WorldToScreen(world)
	back := p.ScreenToWorld(x, y)
	if !back.ApproxEqual(world, 1e-12) {
		t.Errorf("round trip = %v, want %v", back, world)
	}

	if got := (Projection{}).ScreenToWorld(10, 10); got != Zero {
		t.Errorf("zero-scale projection should map to origin, got %v", got)
	}
}

func TestMetersToScreen(t *testing.T) {
	p := NewProjection(1280, 720, 90, 90)
	if got := p.MetersToScreen(0.25); got != 22.5 {
		t.Errorf("MetersToScreen(0.25) = %v, want 22.5", got)
	}
}
