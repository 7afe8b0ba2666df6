package systems

import (
	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
)

// PlayerPhysicsSystem 运动学刚体积分
//
// 每帧对拥有 BodyComponent 的实体：
//  1. 积分重力: vy += g*dt
//  2. 积分位置: pos += v*dt
//  3. 世界边界约束: Y 钳制到 [0, 世界高度]，触界时 vy 清零（不反弹）
type PlayerPhysicsSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState
}

// NewPlayerPhysicsSystem 创建运动学刚体系统
func NewPlayerPhysicsSystem(em *ecs.EntityManager, state *game.WorldState) *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 积分所有刚体
func (s *PlayerPhysicsSystem) Update(deltaTime float64) {
	bodies := ecs.GetEntitiesWith3[
		*components.BodyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range bodies {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		vel.VY += body.Gravity * deltaTime
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		body.BlockedUp = false
		body.BlockedDown = false
		if !body.CollideWorldBounds {
			continue
		}

		if pos.Y < 0 {
			pos.Y = 0
			vel.VY = 0
			body.BlockedUp = true
		} else if pos.Y > s.state.Height {
			pos.Y = s.state.Height
			vel.VY = 0
			body.BlockedDown = true
		}
	}
}

// Jump 将玩家竖直速度设为跳跃速度
//
// 不做落地检测：空中、眩晕期间都可以连续跳跃。
// 实体不存在或不是玩家时什么也不做。
func (s *PlayerPhysicsSystem) Jump(playerID ecs.EntityID) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	vel.VY = player.JumpVelocity
}
