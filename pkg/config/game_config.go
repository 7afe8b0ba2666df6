package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidWorldSize 世界尺寸非法（宽或高不为正数）
var ErrInvalidWorldSize = errors.New("world width and height must be positive")

// RetriggerPolicy 眩晕期间再次碰撞时的计时器策略
type RetriggerPolicy string

const (
	// RetriggerIndependent 每次碰撞各自调度两个延迟动作（玩家复位、解除滚动阻塞），互不取消
	RetriggerIndependent RetriggerPolicy = "independent"

	// RetriggerRestart 同一时刻只保留一个眩晕计时器，新的碰撞取消旧计时器并重新计时
	RetriggerRestart RetriggerPolicy = "restart"
)

// GameConfig 游戏核心配置
//
// 包含世界尺寸、玩家物理、障碍物池、眩晕、视差背景和阴影的全部可调参数。
// 默认值与 DefaultGameConfig() 一致，配置文件中缺省的字段保留默认值。
//
// 配置文件位置: data/game.yaml（也接受 .toml）
type GameConfig struct {
	World     WorldConfig    `yaml:"world" toml:"world"`
	Player    PlayerConfig   `yaml:"player" toml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles" toml:"obstacles"`
	Stun      StunConfig     `yaml:"stun" toml:"stun"`
	Parallax  ParallaxConfig `yaml:"parallax" toml:"parallax"`
	Shadow    ShadowConfig   `yaml:"shadow" toml:"shadow"`
	Input     InputConfig    `yaml:"input" toml:"input"`
}

// WorldConfig 世界尺寸
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Size 碰撞区域尺寸（像素）
type Size struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Range 闭区间整数随机范围 [Min, Max]
type Range struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	// AnchorRatio 水平锚点占世界宽度的比例，眩晕结束后玩家回到该位置
	AnchorRatio float64 `yaml:"anchorRatio" toml:"anchorRatio"`
	// StartYRatio 初始高度占世界高度的比例
	StartYRatio float64 `yaml:"startYRatio" toml:"startYRatio"`
	// Gravity 重力加速度（像素/秒²）
	Gravity float64 `yaml:"gravity" toml:"gravity"`
	// JumpVelocity 跳跃时设置的竖直速度（像素/秒，负值向上）
	JumpVelocity float64 `yaml:"jumpVelocity" toml:"jumpVelocity"`
	// KnockbackVelocity 碰撞击退时的水平速度（像素/秒）
	KnockbackVelocity float64 `yaml:"knockbackVelocity" toml:"knockbackVelocity"`
	// Hitbox 碰撞区域，小于精灵尺寸
	Hitbox Size `yaml:"hitbox" toml:"hitbox"`
}

// ObstacleConfig 障碍物池参数
type ObstacleConfig struct {
	// Count 池大小（固定，不会增减）
	Count int `yaml:"count" toml:"count"`
	// SpeedX 水平速度大小范围（像素/秒，始终为正，实际速度为 -SpeedX）
	SpeedX Range `yaml:"speedX" toml:"speedX"`
	// SpeedY 竖直速度范围（像素/秒）
	SpeedY Range `yaml:"speedY" toml:"speedY"`
	// SpawnOffsetX 出生点相对于世界右边缘的偏移范围
	SpawnOffsetX Range `yaml:"spawnOffsetX" toml:"spawnOffsetX"`
	// SpawnJitterY 出生点相对于世界垂直中线的偏移范围
	SpawnJitterY Range `yaml:"spawnJitterY" toml:"spawnJitterY"`
	// RecycleX 越过该 X 坐标（向左）后回收
	RecycleX float64 `yaml:"recycleX" toml:"recycleX"`
	// DriftChance 每个参考帧重新抽取竖直速度的概率
	DriftChance float64 `yaml:"driftChance" toml:"driftChance"`
	// Hitbox 碰撞区域
	Hitbox Size `yaml:"hitbox" toml:"hitbox"`
}

// StunConfig 眩晕参数
type StunConfig struct {
	// DelayMs 眩晕持续时间（毫秒）
	DelayMs int `yaml:"delayMs" toml:"delayMs"`
	// Retrigger 眩晕期间再次碰撞时的计时器策略
	Retrigger RetriggerPolicy `yaml:"retrigger" toml:"retrigger"`
	// TintColor 受击染色（0xRRGGBB）
	TintColor uint32 `yaml:"tintColor" toml:"tintColor"`
}

// ParallaxLayerConfig 单个背景层参数
type ParallaxLayerConfig struct {
	Name string `yaml:"name" toml:"name"`
	// ScrollSpeed 每个参考帧的滚动增量
	ScrollSpeed float64 `yaml:"scrollSpeed" toml:"scrollSpeed"`
	// BaselineOffset 基准竖直锚点相对于世界高度的偏移（负值向上）
	BaselineOffset float64 `yaml:"baselineOffset" toml:"baselineOffset"`
	// VerticalFactor 竖直视差系数
	VerticalFactor float64 `yaml:"verticalFactor" toml:"verticalFactor"`
	// Bias 固定竖直偏置
	Bias float64 `yaml:"bias" toml:"bias"`
	// TileHeight 平铺图高度（渲染用）
	TileHeight float64 `yaml:"tileHeight" toml:"tileHeight"`
}

// ParallaxConfig 视差背景参数
type ParallaxConfig struct {
	// Layers 从远到近排列
	Layers []ParallaxLayerConfig `yaml:"layers" toml:"layers"`
	// OffsetFactor 玩家偏离垂直中线的距离到 offset 的换算系数
	OffsetFactor float64 `yaml:"offsetFactor" toml:"offsetFactor"`
	// OffsetLimit offset 的绝对值上限
	OffsetLimit float64 `yaml:"offsetLimit" toml:"offsetLimit"`
}

// ShadowConfig 地面阴影参数
type ShadowConfig struct {
	BaseWidth    float64 `yaml:"baseWidth" toml:"baseWidth"`
	BaseHeight   float64 `yaml:"baseHeight" toml:"baseHeight"`
	GroundOffset float64 `yaml:"groundOffset" toml:"groundOffset"`
	ScaleXGain   float64 `yaml:"scaleXGain" toml:"scaleXGain"`
	ScaleYGain   float64 `yaml:"scaleYGain" toml:"scaleYGain"`
	AlphaMax     float64 `yaml:"alphaMax" toml:"alphaMax"`
	AlphaGain    float64 `yaml:"alphaGain" toml:"alphaGain"`
	// InitialAlpha 首次更新前的透明度
	InitialAlpha float64 `yaml:"initialAlpha" toml:"initialAlpha"`
}

// InputConfig 输入绑定
type InputConfig struct {
	// JumpKeys 跳跃按键名称（ebiten 按键名，如 "Space"）
	// 鼠标左键与触摸始终触发跳跃
	JumpKeys []string `yaml:"jumpKeys" toml:"jumpKeys"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Player: PlayerConfig{
			AnchorRatio:       0.25,
			StartYRatio:       0.5,
			Gravity:           1000,
			JumpVelocity:      -400,
			KnockbackVelocity: -200,
			Hitbox:            Size{Width: 100, Height: 100},
		},
		Obstacles: ObstacleConfig{
			Count:        3,
			SpeedX:       Range{Min: 200, Max: 300},
			SpeedY:       Range{Min: -60, Max: 60},
			SpawnOffsetX: Range{Min: 400, Max: 800},
			SpawnJitterY: Range{Min: -100, Max: 100},
			RecycleX:     -100,
			DriftChance:  0.05,
			Hitbox:       Size{Width: 100, Height: 100},
		},
		Stun: StunConfig{
			DelayMs:   500,
			Retrigger: RetriggerIndependent,
			TintColor: 0xff9999,
		},
		Parallax: ParallaxConfig{
			Layers: []ParallaxLayerConfig{
				{Name: "far", ScrollSpeed: 0.6, BaselineOffset: -230, VerticalFactor: 0.4, Bias: 0, TileHeight: 512},
				{Name: "mid", ScrollSpeed: 2.5, BaselineOffset: -20, VerticalFactor: 0.8, Bias: 0, TileHeight: 512},
				{Name: "near", ScrollSpeed: 3.0, BaselineOffset: 0, VerticalFactor: 1.0, Bias: 100, TileHeight: 256},
			},
			OffsetFactor: 0.25,
			OffsetLimit:  100,
		},
		Shadow: ShadowConfig{
			BaseWidth:    80,
			BaseHeight:   10,
			GroundOffset: 10,
			ScaleXGain:   0.8,
			ScaleYGain:   0.5,
			AlphaMax:     0.6,
			AlphaGain:    0.4,
			InitialAlpha: 0.3,
		},
		Input: InputConfig{
			JumpKeys: []string{"Space"},
		},
	}
}

// LoadGameConfig 加载游戏配置
//
// 根据扩展名选择解析器：.toml 使用 TOML，其余按 YAML 处理。
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}

	return ParseGameConfig(data, format)
}

// ParseGameConfig 从内存数据解析游戏配置
//
// 解析前先填入默认值，因此配置文件只需覆盖需要修改的字段。
//
// 参数:
//   - data: 配置文件内容
//   - format: "yaml" 或 "toml"
func ParseGameConfig(data []byte, format string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse game config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 世界宽高必须为正数（返回 ErrInvalidWorldSize）
//   - 所有随机范围 Min <= Max，水平速度下限为正
//   - 概率位于 [0, 1]，延迟为正，池大小为正
//   - 恰好三个背景层
func (c *GameConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: got %.1fx%.1f", ErrInvalidWorldSize, c.World.Width, c.World.Height)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"obstacles.speedX", c.Obstacles.SpeedX},
		{"obstacles.speedY", c.Obstacles.SpeedY},
		{"obstacles.spawnOffsetX", c.Obstacles.SpawnOffsetX},
		{"obstacles.spawnJitterY", c.Obstacles.SpawnJitterY},
	}
	for _, item := range ranges {
		if item.r.Min > item.r.Max {
			return fmt.Errorf("%s range invalid: min(%d) > max(%d)", item.name, item.r.Min, item.r.Max)
		}
	}

	if c.Obstacles.SpeedX.Min <= 0 {
		return fmt.Errorf("obstacles.speedX min must be positive, got %d", c.Obstacles.SpeedX.Min)
	}
	if c.Obstacles.Count <= 0 {
		return fmt.Errorf("obstacles.count must be positive, got %d", c.Obstacles.Count)
	}
	if c.Obstacles.DriftChance < 0 || c.Obstacles.DriftChance > 1 {
		return fmt.Errorf("obstacles.driftChance must be within [0, 1], got %.3f", c.Obstacles.DriftChance)
	}
	if c.Stun.DelayMs <= 0 {
		return fmt.Errorf("stun.delayMs must be positive, got %d", c.Stun.DelayMs)
	}

	switch c.Stun.Retrigger {
	case RetriggerIndependent, RetriggerRestart:
	default:
		return fmt.Errorf("unknown stun.retrigger policy: %q", c.Stun.Retrigger)
	}

	if c.Player.AnchorRatio < 0 || c.Player.AnchorRatio > 1 {
		return fmt.Errorf("player.anchorRatio must be within [0, 1], got %.3f", c.Player.AnchorRatio)
	}
	if c.Player.Hitbox.Width <= 0 || c.Player.Hitbox.Height <= 0 {
		return fmt.Errorf("player.hitbox must be positive, got %.1fx%.1f", c.Player.Hitbox.Width, c.Player.Hitbox.Height)
	}
	if c.Obstacles.Hitbox.Width <= 0 || c.Obstacles.Hitbox.Height <= 0 {
		return fmt.Errorf("obstacles.hitbox must be positive, got %.1fx%.1f", c.Obstacles.Hitbox.Width, c.Obstacles.Hitbox.Height)
	}

	if len(c.Parallax.Layers) != 3 {
		return fmt.Errorf("parallax requires exactly 3 layers (far, mid, near), got %d", len(c.Parallax.Layers))
	}
	// YAML 中的 layers 列表整体替换默认值，缺字段的层会得到零值
	for i, layer := range c.Parallax.Layers {
		if layer.Name == "" {
			return fmt.Errorf("parallax.layers[%d].name must not be empty", i)
		}
		if layer.ScrollSpeed < 0 {
			return fmt.Errorf("parallax.layers[%d] (%s) scrollSpeed must not be negative, got %.2f", i, layer.Name, layer.ScrollSpeed)
		}
		if layer.TileHeight <= 0 {
			return fmt.Errorf("parallax.layers[%d] (%s) tileHeight must be positive, got %.1f", i, layer.Name, layer.TileHeight)
		}
	}
	if c.Parallax.OffsetLimit < 0 {
		return fmt.Errorf("parallax.offsetLimit must not be negative, got %.1f", c.Parallax.OffsetLimit)
	}

	return nil
}

// AnchorX 玩家水平锚点（世界坐标）
func (c *GameConfig) AnchorX() float64 {
	return c.World.Width * c.Player.AnchorRatio
}

// StunDelaySeconds 眩晕持续时间（秒）
func (c *GameConfig) StunDelaySeconds() float64 {
	return float64(c.Stun.DelayMs) / 1000.0
}
