package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/systems"
	"github.com/decker502/pigeonrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 主玩法场景（帧驱动器）
//
// 持有一个实体管理器和全部系统，每个逻辑帧按固定顺序推进：
//
//	输入 → 延迟动作 → 玩家积分 → 碰撞检测与响应 → 视差背景 → 阴影 → 障碍物池
//
// 碰撞响应可能在同一帧内阻塞背景滚动，所以视差必须排在碰撞之后；
// 视差和阴影都读取积分后的玩家位置。
type GameScene struct {
	entityManager *ecs.EntityManager
	state         *game.WorldState

	playerID    ecs.EntityID
	shadowID    ecs.EntityID
	layerIDs    []ecs.EntityID
	obstacleIDs []ecs.EntityID

	inputSystem         *systems.InputSystem
	timerSystem         *systems.TimerSystem
	playerPhysicsSystem *systems.PlayerPhysicsSystem
	collisionSystem     *systems.CollisionSystem
	stunSystem          *systems.StunSystem
	parallaxSystem      *systems.ParallaxSystem
	shadowSystem        *systems.ShadowSystem
	obstaclePoolSystem  *systems.ObstaclePoolSystem
	renderSystem        *systems.RenderSystem

	initialized bool
}

// NewGameScene 创建主玩法场景
//
// 参数:
//   - cfg: 游戏配置，nil 时使用默认配置
//   - rng: 随机数来源，nil 时使用按时间播种的来源
//
// 返回:
//   - error: 配置非法（包括世界尺寸不为正，见 config.ErrInvalidWorldSize）时返回错误
func NewGameScene(cfg *config.GameConfig, rng utils.RandomSource) (*GameScene, error) {
	state, err := game.NewWorldState(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	em := ecs.NewEntityManager()
	timerSystem := systems.NewTimerSystem(em)

	s := &GameScene{
		entityManager:       em,
		state:               state,
		timerSystem:         timerSystem,
		playerPhysicsSystem: systems.NewPlayerPhysicsSystem(em, state),
		collisionSystem:     systems.NewCollisionSystem(em, state),
		stunSystem:          systems.NewStunSystem(em, state, timerSystem),
		parallaxSystem:      systems.NewParallaxSystem(em, state),
		shadowSystem:        systems.NewShadowSystem(em, state),
		obstaclePoolSystem:  systems.NewObstaclePoolSystem(em, state),
		renderSystem:        systems.NewRenderSystem(false),
	}
	s.collisionSystem.SetHandler(s.stunSystem.OnCollision)

	return s, nil
}

// EnableInput 开启设备输入，按下指针或任一按键即触发跳跃
func (s *GameScene) EnableInput(keys []ebiten.Key) {
	s.inputSystem = systems.NewInputSystem(keys, s.Jump)
}

// SetDebug 开关碰撞盒绘制
func (s *GameScene) SetDebug(debug bool) {
	s.renderSystem.SetDebug(debug)
}

// Jump 玩家跳跃：竖直速度立即设为跳跃速度
// 没有落地检测，可在空中或眩晕期间连续触发
func (s *GameScene) Jump() {
	if !s.initialized {
		return
	}
	s.playerPhysicsSystem.Jump(s.playerID)
}

// Update 实现 game.Scene
func (s *GameScene) Update(deltaTime float64) {
	s.OnUpdate(deltaTime)
}

// OnUpdate 推进一个逻辑帧
//
// 参数:
//   - deltaTime: 帧间隔（秒）；非正值时只处理输入，世界不推进
func (s *GameScene) OnUpdate(deltaTime float64) {
	if !s.initialized {
		log.Printf("[GameScene] 警告: 场景尚未初始化，忽略 Update")
		return
	}

	// “刚按下”只在一个 tick 内有效，零步长的 tick 也要消费
	if s.inputSystem != nil {
		s.inputSystem.Update(deltaTime)
	}
	if deltaTime <= 0 {
		return
	}

	s.timerSystem.Update(deltaTime)

	s.playerPhysicsSystem.Update(deltaTime)
	s.collisionSystem.Update(deltaTime)
	s.parallaxSystem.Update(deltaTime)
	s.shadowSystem.Update(deltaTime)
	s.obstaclePoolSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
	s.state.Advance(deltaTime)
}

// Draw 实现 game.Scene
func (s *GameScene) Draw(screen *ebiten.Image) {
	if !s.initialized {
		return
	}
	s.renderSystem.Draw(screen, s.View())
}

// State 场景共享状态（只读使用）
func (s *GameScene) State() *game.WorldState {
	return s.state
}

// PlayerID 玩家实体ID
func (s *GameScene) PlayerID() ecs.EntityID {
	return s.playerID
}

// ObstacleIDs 障碍物实体ID（按槽位顺序）
func (s *GameScene) ObstacleIDs() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.obstacleIDs...)
}

// EntityManager 场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
