package systems

import (
	"log"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
)

// 延迟动作名称
const (
	TimerStunPlayerReset  = "stun_player_reset"
	TimerStunScrollUnlock = "stun_scroll_unblock"
)

// StunTimer 一次眩晕对应的两个延迟动作
// 仅在 restart 策略下被跟踪，用于新碰撞到来时取消旧的恢复动作
type StunTimer struct {
	ResetID   ecs.EntityID
	UnblockID ecs.EntityID
}

// StunSystem 碰撞响应与眩晕状态机
//
// 玩家与障碍物重叠时：
//   - 玩家被击退（vx = 击退速度）、着色、进入眩晕
//   - 障碍物恢复原有水平速度
//   - 背景滚动被阻塞
//   - 延迟 Stun.DelayMs 后恢复玩家（取消着色、vx 清零、X 回到锚点）并解除滚动阻塞
//
// 不修改玩家的 Y 和 vy，也不做物体分离。
type StunSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState
	timers        *TimerSystem

	delay  float64
	policy config.RetriggerPolicy

	active *StunTimer
}

// NewStunSystem 创建眩晕系统
func NewStunSystem(em *ecs.EntityManager, state *game.WorldState, timers *TimerSystem) *StunSystem {
	return &StunSystem{
		entityManager: em,
		state:         state,
		timers:        timers,
		delay:         state.Config.StunDelaySeconds(),
		policy:        state.Config.Stun.Retrigger,
	}
}

// OnCollision 处理一次玩家与障碍物的重叠
// 可作为 CollisionSystem 的回调
func (s *StunSystem) OnCollision(playerID, obstacleID ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID); ok {
		vel.VX = s.state.Config.Player.KnockbackVelocity
	}
	if tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, playerID); ok {
		tint.IsActive = true
	}
	player.Stunned = true
	player.StunCount++

	s.restoreObstacleSpeed(obstacleID)
	s.state.SetScrollBlocked(true)

	log.Printf("[StunSystem] 玩家 %d 撞上障碍物 %d (第 %d 次, 策略 %s)",
		playerID, obstacleID, player.StunCount, s.policy)

	if s.policy == config.RetriggerRestart && s.active != nil {
		s.timers.Cancel(s.active.ResetID)
		s.timers.Cancel(s.active.UnblockID)
		s.active = nil
	}

	timer := &StunTimer{}
	timer.ResetID = s.timers.After(s.delay, TimerStunPlayerReset, func() {
		s.resetPlayer(playerID)
		if s.active == timer {
			s.active = nil
		}
	})
	timer.UnblockID = s.timers.After(s.delay, TimerStunScrollUnlock, func() {
		s.state.SetScrollBlocked(false)
	})

	if s.policy == config.RetriggerRestart {
		s.active = timer
	}
}

// ActiveTimer 返回当前被跟踪的眩晕计时（仅 restart 策略）
func (s *StunSystem) ActiveTimer() *StunTimer {
	return s.active
}

// IsStunned 玩家是否处于眩晕状态
func (s *StunSystem) IsStunned(playerID ecs.EntityID) bool {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	return ok && player.Stunned
}

// restoreObstacleSpeed 障碍物的水平速度恢复为 -SpeedX
func (s *StunSystem) restoreObstacleSpeed(obstacleID ecs.EntityID) {
	obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, obstacleID)
	if !ok {
		return
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, obstacleID); ok {
		vel.VX = -obstacle.SpeedX
	}
}

// resetPlayer 解除眩晕：取消着色、水平速度清零、X 回到锚点
func (s *StunSystem) resetPlayer(playerID ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	if tint, ok := ecs.GetComponent[*components.TintComponent](s.entityManager, playerID); ok {
		tint.IsActive = false
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID); ok {
		vel.VX = 0
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID); ok {
		pos.X = player.AnchorX
	}
	player.Stunned = false

	log.Printf("[StunSystem] 玩家 %d 眩晕结束", playerID)
}
