package entities

import (
	"fmt"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
)

// NewShadowEntity 创建玩家的地面阴影
// 阴影固定在地面线上方 GroundOffset 处，X 初始为玩家锚点
func NewShadowEntity(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ShadowComponent{
		Width:  cfg.Shadow.BaseWidth,
		Height: cfg.Shadow.BaseHeight,
		ScaleX: 1,
		ScaleY: 1,
		Alpha:  cfg.Shadow.InitialAlpha,
		X:      cfg.AnchorX(),
		Y:      cfg.World.Height - cfg.Shadow.GroundOffset,
	})

	return id, nil
}
