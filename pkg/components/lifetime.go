package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如目标、子弹)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}

// NewLifetime 创建生命周期组件
func NewLifetime(seconds float64) *LifetimeComponent {
	return &LifetimeComponent{MaxLifetime: seconds}
}

// Advance 推进生命周期，仅在刚好过期的那一次返回 true
func (l *LifetimeComponent) Advance(deltaTime float64) bool {
	if l.IsExpired {
		return false
	}
	if deltaTime > 0 {
		l.CurrentLifetime += deltaTime
	}
	if l.CurrentLifetime >= l.MaxLifetime {
		l.IsExpired = true
		return true
	}
	return false
}
