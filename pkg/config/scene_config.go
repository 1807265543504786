package config

import (
	"fmt"
	"math"
	"os"

	"github.com/gonewx/towerdefense/pkg/embedded"
	"github.com/gonewx/towerdefense/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultSceneConfigPath 内嵌场景配置文件路径
const DefaultSceneConfigPath = "data/scene.yaml"

// TowerConfig 防御塔配置
type TowerConfig struct {
	Position      utils.Vec3 `yaml:"position"`      // 塔的世界坐标
	ShootInterval float64    `yaml:"shootInterval"` // 射击间隔（秒）
	BulletOffset  utils.Vec3 `yaml:"bulletOffset"`  // 子弹生成点相对塔的偏移
	Size          float64    `yaml:"size"`          // 立方体边长（仅渲染）
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Speed     float64 `yaml:"speed"`     // 飞行速度（米/秒）
	Lifetime  float64 `yaml:"lifetime"`  // 存活时间（秒）
	HitRadius float64 `yaml:"hitRadius"` // 命中半径（米）
	Model     string  `yaml:"model"`     // 子弹视觉资源路径
}

// SpawnerConfig 目标生成点配置
type SpawnerConfig struct {
	Position      utils.Vec3 `yaml:"position"`      // 生成点世界坐标
	SpawnInterval float64    `yaml:"spawnInterval"` // 生成间隔（秒）
}

// TargetConfig 目标配置
type TargetConfig struct {
	Speed    float64 `yaml:"speed"`    // 沿 X 轴移动速度（米/秒）
	Health   int     `yaml:"health"`   // 初始生命值
	Lifetime float64 `yaml:"lifetime"` // 存活时间（秒）
	Size     float64 `yaml:"size"`     // 立方体边长（仅渲染）
}

// GroundConfig 地面配置（仅渲染）
type GroundConfig struct {
	Size float64 `yaml:"size"`
}

// LightConfig 光源配置（仅渲染）
type LightConfig struct {
	Position utils.Vec3 `yaml:"position"`
}

// SceneConfig 场景配置文件结构
type SceneConfig struct {
	Tower   TowerConfig   `yaml:"tower"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Target  TargetConfig  `yaml:"target"`
	Ground  GroundConfig  `yaml:"ground"`
	Light   LightConfig   `yaml:"light"`
}

// DefaultSceneConfig 返回默认场景配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Tower: TowerConfig{
			Position:      utils.NewVec3(0, 0.5, 1),
			ShootInterval: 1.0,
			BulletOffset:  utils.NewVec3(0, 0, 0.6),
			Size:          1.0,
		},
		Bullet: BulletConfig{
			Speed:     5.0,
			Lifetime:  3.0,
			HitRadius: 0.25,
			Model:     "data/models/tomato.yaml",
		},
		Spawner: SpawnerConfig{
			Position:      utils.NewVec3(-2.5, 0.5, 2.5),
			SpawnInterval: 3.0,
		},
		Target: TargetConfig{
			Speed:    0.5,
			Health:   5,
			Lifetime: 10.0,
			Size:     0.2,
		},
		Ground: GroundConfig{Size: 5.0},
		Light:  LightConfig{Position: utils.NewVec3(4, 8, 4)},
	}
}

// ParseSceneConfig 解析 YAML 场景配置
// 未出现在 YAML 中的字段保留默认值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// LoadSceneConfig 从磁盘文件加载场景配置
//
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*SceneConfig - 解析后的配置对象
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadSceneConfig(filepath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", filepath, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// LoadEmbeddedSceneConfig 从内嵌资源加载场景配置
// 调用前必须先调用 embedded.Init()
func LoadEmbeddedSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded scene config %s: %w", path, err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置的合法性
func (c *SceneConfig) Validate() error {
	if err := requirePositive("tower.shootInterval", c.Tower.ShootInterval); err != nil {
		return err
	}
	if err := requirePositive("bullet.speed", c.Bullet.Speed); err != nil {
		return err
	}
	if err := requirePositive("bullet.lifetime", c.Bullet.Lifetime); err != nil {
		return err
	}
	if math.IsNaN(c.Bullet.HitRadius) || c.Bullet.HitRadius < 0 {
		return fmt.Errorf("bullet.hitRadius cannot be negative, got %v", c.Bullet.HitRadius)
	}
	if err := requirePositive("spawner.spawnInterval", c.Spawner.SpawnInterval); err != nil {
		return err
	}
	if math.IsNaN(c.Target.Speed) || math.IsInf(c.Target.Speed, 0) {
		return fmt.Errorf("target.speed must be finite, got %v", c.Target.Speed)
	}
	if c.Target.Health < 1 {
		return fmt.Errorf("target.health must be at least 1, got %d", c.Target.Health)
	}
	if err := requirePositive("target.lifetime", c.Target.Lifetime); err != nil {
		return err
	}

	for name, v := range map[string]utils.Vec3{
		"tower.position":     c.Tower.Position,
		"tower.bulletOffset": c.Tower.BulletOffset,
		"spawner.position":   c.Spawner.Position,
		"light.position":     c.Light.Position,
	} {
		if v.IsNaN() {
			return fmt.Errorf("%s contains NaN", name)
		}
	}
	return nil
}

func requirePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be a positive number, got %v", field, v)
	}
	return nil
}

// LoadSceneConfigOrDefault 宿主使用的统一入口
// path 为空时读取内嵌的默认场景配置，否则从磁盘读取
func LoadSceneConfigOrDefault(path string) (*SceneConfig, error) {
	if path == "" {
		return LoadEmbeddedSceneConfig(DefaultSceneConfigPath)
	}
	return LoadSceneConfig(path)
}
