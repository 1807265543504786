package components

// HealthComponent 存储实体的生命值信息
// 生命值只减不增，降到 0 及以下时实体由死亡系统回收
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 初始生命值
}

// NewHealth 创建满血的生命值组件
func NewHealth(value int) *HealthComponent {
	return &HealthComponent{CurrentHealth: value, MaxHealth: value}
}

// Damage 扣除生命值，非正数伤害被忽略
func (h *HealthComponent) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.CurrentHealth -= amount
}

// IsDead 生命值是否已耗尽
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
