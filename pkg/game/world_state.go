package game

import (
	"log"

	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/utils"
)

// WorldState 场景级共享状态
//
// 背景滚动阻塞标志是显式字段而不是全局变量：
// 只有碰撞处理（StunSystem 及其延迟动作）写入，只有 ParallaxSystem 读取。
type WorldState struct {
	// Width / Height 世界逻辑尺寸（构造后不变）
	Width  float64
	Height float64

	// Config 当前生效的游戏配置
	Config *config.GameConfig

	// Rand 场景共享的随机数来源
	Rand utils.RandomSource

	// FrameCount 已执行的逻辑帧数
	FrameCount uint64

	// ElapsedTime 已流逝的逻辑时间（秒）
	ElapsedTime float64

	scrollBlocked bool
}

// NewWorldState 创建场景状态
//
// 参数:
//   - cfg: 游戏配置（必须通过 Validate）
//   - rng: 随机数来源
//
// 返回:
//   - error: 世界尺寸非法时返回 config.ErrInvalidWorldSize
func NewWorldState(cfg *config.GameConfig, rng utils.RandomSource) (*WorldState, error) {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewRandomSource(0)
	}

	return &WorldState{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		Config: cfg,
		Rand:   rng,
	}, nil
}

// ScrollBlocked 背景滚动是否被阻塞
func (ws *WorldState) ScrollBlocked() bool {
	return ws.scrollBlocked
}

// SetScrollBlocked 设置背景滚动阻塞标志
func (ws *WorldState) SetScrollBlocked(blocked bool) {
	if ws.scrollBlocked != blocked {
		log.Printf("[WorldState] 背景滚动阻塞: %v (frame %d)", blocked, ws.FrameCount)
	}
	ws.scrollBlocked = blocked
}

// Advance 推进逻辑时钟
func (ws *WorldState) Advance(deltaTime float64) {
	ws.FrameCount++
	ws.ElapsedTime += deltaTime
}
