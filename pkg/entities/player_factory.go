package entities

import (
	"fmt"
	"log"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
)

// NewPlayerEntity 创建玩家实体
//
// 玩家出生在 (AnchorX, Height*StartYRatio)，速度为零，
// 受重力影响并被约束在世界边界内。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数非法时返回错误
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	anchorX := cfg.AnchorX()
	startY := cfg.World.Height * cfg.Player.StartYRatio

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: anchorX, Y: startY})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.BodyComponent{
		Gravity:            cfg.Player.Gravity,
		CollideWorldBounds: true,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		AnchorX:      anchorX,
		JumpVelocity: cfg.Player.JumpVelocity,
	})
	ecs.AddComponent(em, id, &components.TintComponent{
		Color: cfg.Stun.TintColor,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Player.Hitbox.Width,
		Height: cfg.Player.Hitbox.Height,
		Layer:  components.CollisionLayerPlayer,
	})

	log.Printf("[PlayerFactory] 创建玩家实体 %d 于 (%.1f, %.1f)", id, anchorX, startY)
	return id, nil
}
