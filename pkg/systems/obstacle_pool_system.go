package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/entities"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/utils"
)

// ObstaclePoolSystem 固定大小的障碍物池
//
// 障碍物从右向左飞行；越过回收线（RecycleX）后被重新放置到屏幕右侧外，
// 并重新随机速度。池的大小在整个场景生命周期内不变。
type ObstaclePoolSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState
	cfg           config.ObstacleConfig

	slots []ecs.EntityID
}

// NewObstaclePoolSystem 创建障碍物池系统
func NewObstaclePoolSystem(em *ecs.EntityManager, state *game.WorldState) *ObstaclePoolSystem {
	return &ObstaclePoolSystem{
		entityManager: em,
		state:         state,
		cfg:           state.Config.Obstacles,
	}
}

// SpawnInitial 创建池中全部障碍物
//
// 第 i 个障碍物的 X = 世界宽度 + i * 随机间距，
// Y = 世界高度/2 + 随机抖动。重复调用返回错误。
//
// 返回:
//   - []ecs.EntityID: 按槽位顺序排列的障碍物实体ID
func (s *ObstaclePoolSystem) SpawnInitial() ([]ecs.EntityID, error) {
	if len(s.slots) > 0 {
		return nil, fmt.Errorf("obstacle pool already spawned (%d slots)", len(s.slots))
	}

	rng := s.state.Rand
	for i := 0; i < s.cfg.Count; i++ {
		speedX := float64(utils.Between(rng, s.cfg.SpeedX.Min, s.cfg.SpeedX.Max))
		speedY := float64(utils.Between(rng, s.cfg.SpeedY.Min, s.cfg.SpeedY.Max))
		spacing := float64(utils.Between(rng, s.cfg.SpawnOffsetX.Min, s.cfg.SpawnOffsetX.Max))
		jitter := float64(utils.Between(rng, s.cfg.SpawnJitterY.Min, s.cfg.SpawnJitterY.Max))

		x := s.state.Width + float64(i)*spacing
		y := s.state.Height/2 + jitter

		id, err := entities.NewObstacleEntity(s.entityManager, s.state.Config, i, x, y, speedX, speedY)
		if err != nil {
			return nil, fmt.Errorf("failed to spawn obstacle %d: %w", i, err)
		}
		s.slots = append(s.slots, id)
	}

	log.Printf("[ObstaclePoolSystem] 生成 %d 个障碍物", len(s.slots))
	return append([]ecs.EntityID(nil), s.slots...), nil
}

// Slots 返回池中障碍物实体ID（按槽位顺序）
func (s *ObstaclePoolSystem) Slots() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.slots...)
}

// Update 移动障碍物，回收越界者，并以一定概率扰动竖直速度
//
// 本帧结束时所有障碍物都满足 X >= RecycleX。
func (s *ObstaclePoolSystem) Update(deltaTime float64) {
	driftChance := s.DriftChance(deltaTime)

	for _, id := range s.slots {
		obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if pos.X < s.cfg.RecycleX {
			s.recycle(obstacle, pos, vel)
		}

		if utils.Chance(s.state.Rand, driftChance) {
			obstacle.SpeedY = float64(utils.Between(s.state.Rand, s.cfg.SpeedY.Min, s.cfg.SpeedY.Max))
			vel.VY = obstacle.SpeedY
		}
	}
}

// DriftChance 本帧的竖直扰动概率
// 配置值是每个参考帧的概率，按帧间隔换算为 1-(1-p)^n
func (s *ObstaclePoolSystem) DriftChance(deltaTime float64) float64 {
	p := s.cfg.DriftChance
	if p <= 0 || p >= 1 {
		return p
	}
	return 1 - math.Pow(1-p, config.FrameScale(deltaTime))
}

// recycle 将障碍物重新放置到屏幕右侧外并重新随机速度
func (s *ObstaclePoolSystem) recycle(
	obstacle *components.ObstacleComponent,
	pos *components.PositionComponent,
	vel *components.VelocityComponent,
) {
	rng := s.state.Rand

	pos.X = s.state.Width + float64(utils.Between(rng, s.cfg.SpawnOffsetX.Min, s.cfg.SpawnOffsetX.Max))
	pos.Y = s.state.Height/2 + float64(utils.Between(rng, s.cfg.SpawnJitterY.Min, s.cfg.SpawnJitterY.Max))

	obstacle.SpeedX = float64(utils.Between(rng, s.cfg.SpeedX.Min, s.cfg.SpeedX.Max))
	obstacle.SpeedY = float64(utils.Between(rng, s.cfg.SpeedY.Min, s.cfg.SpeedY.Max))
	obstacle.Generation++

	vel.VX = -obstacle.SpeedX
	vel.VY = obstacle.SpeedY
}
