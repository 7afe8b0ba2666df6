package systems

import (
	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/utils"
)

// ShadowSystem 玩家地面阴影
// 阴影 X 跟随玩家；玩家越高，阴影越大越淡
type ShadowSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState
}

// NewShadowSystem 创建阴影系统
func NewShadowSystem(em *ecs.EntityManager, state *game.WorldState) *ShadowSystem {
	return &ShadowSystem{
		entityManager: em,
		state:         state,
	}
}

// Update 按玩家当前位置刷新阴影
func (s *ShadowSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	if len(players) == 0 {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, players[0])

	ratio := HeightRatio(pos.Y, s.state.Height)
	cfg := s.state.Config.Shadow

	for _, id := range ecs.GetEntitiesWith1[*components.ShadowComponent](s.entityManager) {
		shadow, _ := ecs.GetComponent[*components.ShadowComponent](s.entityManager, id)
		shadow.X = pos.X
		shadow.ScaleX, shadow.ScaleY, shadow.Alpha = ShadowAppearance(ratio, cfg)
	}
}

// HeightRatio 玩家离地高度占世界高度的比例，钳制到 [0, 1]
// 0 表示在地面，1 表示在顶端
func HeightRatio(playerY, worldHeight float64) float64 {
	return utils.Clamp((worldHeight-playerY)/worldHeight, 0, 1)
}

// ShadowAppearance 根据高度比例计算阴影缩放与透明度
func ShadowAppearance(ratio float64, cfg config.ShadowConfig) (scaleX, scaleY, alpha float64) {
	scaleX = 1 + ratio*cfg.ScaleXGain
	scaleY = 1 + ratio*cfg.ScaleYGain
	alpha = cfg.AlphaMax - ratio*cfg.AlphaGain
	return scaleX, scaleY, alpha
}
