package scenes

import (
	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
)

// View 生成当前帧的渲染快照
func (s *GameScene) View() game.RenderView {
	em := s.entityManager
	view := game.RenderView{
		Width:         s.state.Width,
		Height:        s.state.Height,
		ScrollBlocked: s.state.ScrollBlocked(),
		FrameCount:    s.state.FrameCount,
	}

	for _, id := range s.layerIDs {
		layer, ok := ecs.GetComponent[*components.BackgroundLayerComponent](em, id)
		if !ok {
			continue
		}
		view.Layers = append(view.Layers, game.LayerView{
			Name:          layer.Name,
			Depth:         layer.Depth,
			TilePositionX: layer.TilePositionX,
			Y:             layer.Y,
			Width:         layer.Width,
			TileHeight:    layer.TileHeight,
		})
	}

	if shadow, ok := ecs.GetComponent[*components.ShadowComponent](em, s.shadowID); ok {
		view.Shadow = game.ShadowView{
			X:      shadow.X,
			Y:      shadow.Y,
			Width:  shadow.Width,
			Height: shadow.Height,
			ScaleX: shadow.ScaleX,
			ScaleY: shadow.ScaleY,
			Alpha:  shadow.Alpha,
		}
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.playerID); ok {
		view.Player.X, view.Player.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, s.playerID); ok {
		view.Player.Width, view.Player.Height = col.Width, col.Height
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, s.playerID); ok {
		view.Player.Stunned = player.Stunned
	}
	if tint, ok := ecs.GetComponent[*components.TintComponent](em, s.playerID); ok {
		view.Player.TintActive = tint.IsActive
		view.Player.TintColor = tint.Color
	}

	for _, id := range s.obstacleIDs {
		obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		view.Obstacles = append(view.Obstacles, game.ObstacleView{
			Slot:        obstacle.Slot,
			X:           pos.X,
			Y:           pos.Y,
			Width:       col.Width,
			Height:      col.Height,
			Overlapping: s.collisionSystem.IsOverlapping(s.playerID, id),
		})
	}

	return view
}
