package components

import "math"

// TimerMode 计时器模式
type TimerMode int

const (
	// TimerOnce 一次性计时器：完成后停在终点，不再触发
	TimerOnce TimerMode = iota
	// TimerRepeating 重复计时器：完成后从余量继续计时
	TimerRepeating
)

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如射击间隔、生成周期）
type TimerComponent struct {
	Name        string    // 计时器名称，如 "shooting"
	TargetTime  float64   // 目标时间（秒）
	CurrentTime float64   // 当前已过时间（秒）
	Mode        TimerMode // 计时器模式
	IsReady     bool      // 一次性计时器是否已完成

	// JustFinished 仅在计时器到点的那一次 Tick 中为 true
	JustFinished bool
	// TimesFinished 最近一次 Tick 内跨过的周期数（重复计时器 dt 过大时可能大于 1）
	TimesFinished int
}

// NewTimer 创建计时器
func NewTimer(name string, seconds float64, mode TimerMode) TimerComponent {
	return TimerComponent{
		Name:       name,
		TargetTime: seconds,
		Mode:       mode,
	}
}

// Tick 推进计时器，返回本次是否刚好完成
//
// 重复计时器在一次 Tick 内跨过多个周期时也只报告一次 JustFinished，
// 跨过的周期数记录在 TimesFinished 中。
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.JustFinished = false
	t.TimesFinished = 0

	if t.Mode == TimerOnce && t.IsReady {
		return false
	}
	if deltaTime > 0 {
		t.CurrentTime += deltaTime
	}
	if t.CurrentTime < t.TargetTime {
		return false
	}

	t.JustFinished = true
	switch t.Mode {
	case TimerRepeating:
		if t.TargetTime > 0 {
			t.TimesFinished = int(t.CurrentTime / t.TargetTime)
			t.CurrentTime = math.Mod(t.CurrentTime, t.TargetTime)
		} else {
			t.TimesFinished = 1
			t.CurrentTime = 0
		}
	default:
		t.TimesFinished = 1
		t.CurrentTime = t.TargetTime
		t.IsReady = true
	}
	return true
}

// Reset 重置计时器
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
	t.JustFinished = false
	t.TimesFinished = 0
}

// Remaining 距离下次完成的剩余时间（秒）
func (t *TimerComponent) Remaining() float64 {
	if r := t.TargetTime - t.CurrentTime; r > 0 {
		return r
	}
	return 0
}
