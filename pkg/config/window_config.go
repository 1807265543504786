package config

// 窗口与渲染相关常量

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Tower Defence"

	// PixelsPerMeter 俯视投影下每米对应的像素数
	PixelsPerMeter = 90.0

	// DefaultTPS 固定逻辑帧率
	DefaultTPS = 60
)

// ClearColor 背景色 (0.2, 0.2, 0.2)
var ClearColor = [3]uint8{51, 51, 51}
