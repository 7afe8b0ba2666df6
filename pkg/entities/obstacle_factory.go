package entities

import (
	"fmt"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
)

// NewObstacleEntity 创建障碍物池中的一个槽位
//
// 障碍物的位置和速度由 ObstaclePoolSystem 决定，这里只负责组装组件。
// 速度设为 (-speedX, speedY)。
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（用于碰撞盒尺寸）
//   - slot: 槽位索引
//   - x, y: 初始位置
//   - speedX: 水平速度大小（必须为正）
//   - speedY: 竖直速度
func NewObstacleEntity(
	em *ecs.EntityManager,
	cfg *config.GameConfig,
	slot int,
	x, y, speedX, speedY float64,
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if speedX <= 0 {
		return 0, fmt.Errorf("obstacle speedX must be positive, got %.1f", speedX)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: -speedX, VY: speedY})
	ecs.AddComponent(em, id, &components.ObstacleComponent{
		Slot:   slot,
		SpeedX: speedX,
		SpeedY: speedY,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Obstacles.Hitbox.Width,
		Height: cfg.Obstacles.Hitbox.Height,
		Layer:  components.CollisionLayerObstacle,
	})

	return id, nil
}
