package systems

import (
	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/utils"
)

// ParallaxSystem 三层视差背景
//
// 水平方向：未被阻塞时每层纹理偏移按 ScrollSpeed（参考帧增量）累加。
// 竖直方向：各层随玩家高度反向偏移，近层偏移更大。
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState

	offset float64
}

// NewParallaxSystem 创建视差背景系统
func NewParallaxSystem(em *ecs.EntityManager, state *game.WorldState) *ParallaxSystem {
	return &ParallaxSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 推进纹理偏移并根据玩家高度重新计算各层 Y
func (s *ParallaxSystem) Update(deltaTime float64) {
	if playerY, ok := s.playerY(); ok {
		s.offset = VerticalOffset(playerY, s.state.Height, s.state.Config.Parallax)
	}

	scale := config.FrameScale(deltaTime)
	blocked := s.state.ScrollBlocked()

	for _, id := range ecs.GetEntitiesWith1[*components.BackgroundLayerComponent](s.entityManager) {
		layer, _ := ecs.GetComponent[*components.BackgroundLayerComponent](s.entityManager, id)
		if !blocked {
			layer.TilePositionX += layer.ScrollSpeed * scale
		}
		layer.Y = layer.BaselineY + s.offset*layer.VerticalFactor + layer.Bias
	}
}

// Offset 最近一次计算的竖直视差偏移
func (s *ParallaxSystem) Offset() float64 {
	return s.offset
}

func (s *ParallaxSystem) playerY() (float64, bool) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return 0, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])
	return pos.Y, true
}

// VerticalOffset 计算竖直视差偏移
//
// 玩家位于屏幕中线时为 0；玩家越高偏移越大（背景下沉），
// 结果钳制到 [-OffsetLimit, OffsetLimit]。
func VerticalOffset(playerY, worldHeight float64, cfg config.ParallaxConfig) float64 {
	raw := (worldHeight/2 - playerY) * cfg.OffsetFactor
	return utils.Clamp(raw, -cfg.OffsetLimit, cfg.OffsetLimit)
}
