package systems

import (
	"github.com/decker502/pigeonrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 把指针和按键输入折叠成单一的跳跃事件
type InputSystem struct {
	keys   []ebiten.Key
	onJump func()

	// triggered 检测本帧是否产生跳跃事件，测试中可替换
	triggered func(keys []ebiten.Key) bool
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - keys: 跳跃按键；为空时使用 utils.DefaultJumpKeys
//   - onJump: 跳跃回调
func NewInputSystem(keys []ebiten.Key, onJump func()) *InputSystem {
	if len(keys) == 0 {
		keys = utils.DefaultJumpKeys
	}
	return &InputSystem{
		keys:      keys,
		onJump:    onJump,
		triggered: utils.IsJumpTriggered,
	}
}

// SetTrigger 替换输入检测函数（用于回放或测试）
func (s *InputSystem) SetTrigger(triggered func(keys []ebiten.Key) bool) {
	if triggered == nil {
		triggered = utils.IsJumpTriggered
	}
	s.triggered = triggered
}

// Update 检测跳跃输入，每帧最多触发一次回调
func (s *InputSystem) Update(deltaTime float64) {
	if s.onJump == nil {
		return
	}
	if s.triggered(s.keys) {
		s.onJump()
	}
}
