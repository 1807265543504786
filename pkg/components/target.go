package components

// TargetComponent 敌方目标，沿 X 轴匀速移动
type TargetComponent struct {
	Speed float64 // 移动速度（米/秒）
}

// TargetSpawnerComponent 目标生成点
type TargetSpawnerComponent struct {
	SpawnTimer TimerComponent // 重复生成计时器
}
