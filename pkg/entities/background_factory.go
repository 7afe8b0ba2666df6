package entities

import (
	"fmt"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
)

// NewBackgroundLayerEntities 按远、中、近顺序创建三个视差背景层
//
// 初始竖直锚点等于基准锚点加固定偏置（offset = 0 时的位置）。
//
// 返回:
//   - []ecs.EntityID: 背景层实体ID，顺序与配置一致
//   - error: 参数非法时返回错误
func NewBackgroundLayerEntities(em *ecs.EntityManager, cfg *config.GameConfig) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}

	depths := []int{config.DepthBackgroundFar, config.DepthBackgroundMid, config.DepthBackgroundNear}

	ids := make([]ecs.EntityID, 0, len(cfg.Parallax.Layers))
	for i, layerCfg := range cfg.Parallax.Layers {
		depth := config.DepthBackgroundNear
		if i < len(depths) {
			depth = depths[i]
		}

		baseline := cfg.World.Height + layerCfg.BaselineOffset

		// 初始 Y 取竖直偏移为 0 时的位置，玩家出生在半高处，首帧更新后位置不跳变

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.BackgroundLayerComponent{
			Name:           layerCfg.Name,
			Depth:          depth,
			ScrollSpeed:    layerCfg.ScrollSpeed,
			BaselineY:      baseline,
			VerticalFactor: layerCfg.VerticalFactor,
			Bias:           layerCfg.Bias,
			Y:              baseline + layerCfg.Bias,
			Width:          cfg.World.Width,
			TileHeight:     layerCfg.TileHeight,
		})
		ids = append(ids, id)
	}

	return ids, nil
}
