package systems

import (
	"log"
	"math"
	"slices"

	"github.com/decker502/pigeonrun/pkg/components"
	"github.com/decker502/pigeonrun/pkg/ecs"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/solarlune/resolv"
)

// collisionCellSize 空间划分网格边长（像素）
const collisionCellSize = 32

var (
	tagPlayer   = resolv.NewTag("player")
	tagObstacle = resolv.NewTag("obstacle")
)

// CollisionHandler 玩家与障碍物重叠时的回调
type CollisionHandler func(playerID, obstacleID ecs.EntityID)

// CollisionSystem 玩家与障碍物的重叠检测
//
// 每个拥有 CollisionComponent 的实体在 resolv 空间中对应一个矩形。
// Update 先把矩形同步到实体当前位置，再对每个玩家查询重叠的障碍物；
// 每一对 (玩家, 障碍物) 在一帧内最多回调一次。
//
// 只报告重叠，不做分离：碰撞响应完全交给回调。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	space         *resolv.Space
	// margin 世界坐标到空间坐标的平移量，空间四周各留出这么宽的边
	margin float64

	shapes map[ecs.EntityID]resolv.IShape
	owners map[resolv.IShape]ecs.EntityID

	handler CollisionHandler
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - state: 场景状态
//
// 玩家中心被钳制在 [0, H] 内，但碰撞盒会伸出世界边缘半个盒高。
// 空间在世界四周各加宽 margin，保证玩家碰撞盒覆盖的区域始终有网格，
// 贴着地面或天花板的重叠也能被查询到。
func NewCollisionSystem(em *ecs.EntityManager, state *game.WorldState) *CollisionSystem {
	margin := collisionMargin(state)
	cellsX := int(math.Ceil((state.Width+2*margin)/collisionCellSize)) + 1
	cellsY := int(math.Ceil((state.Height+2*margin)/collisionCellSize)) + 1

	return &CollisionSystem{
		entityManager: em,
		space:         resolv.NewSpace(cellsX*collisionCellSize, cellsY*collisionCellSize, collisionCellSize, collisionCellSize),
		margin:        margin,
		shapes:        make(map[ecs.EntityID]resolv.IShape),
		owners:        make(map[resolv.IShape]ecs.EntityID),
	}
}

// collisionMargin 空间边距：最大碰撞盒边长加一格，向上取整到网格边长
func collisionMargin(state *game.WorldState) float64 {
	cfg := state.Config
	size := max(cfg.Player.Hitbox.Width, cfg.Player.Hitbox.Height,
		cfg.Obstacles.Hitbox.Width, cfg.Obstacles.Hitbox.Height)
	cells := math.Ceil(size/collisionCellSize) + 1
	return cells * collisionCellSize
}

// SetHandler 设置碰撞回调
func (s *CollisionSystem) SetHandler(handler CollisionHandler) {
	s.handler = handler
}

// Update 同步碰撞形状并派发本帧的重叠事件
func (s *CollisionSystem) Update(deltaTime float64) {
	s.syncShapes()

	for _, pair := range s.Overlaps() {
		if s.handler != nil {
			s.handler(pair[0], pair[1])
		}
	}
}

// Overlaps 返回当前所有重叠的 (玩家, 障碍物) 实体对
// 结果按玩家ID、障碍物ID升序排列
func (s *CollisionSystem) Overlaps() [][2]ecs.EntityID {
	var pairs [][2]ecs.EntityID

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.CollisionComponent](s.entityManager)
	for _, playerID := range players {
		shape, ok := s.shapes[playerID]
		if !ok {
			continue
		}

		var hits []ecs.EntityID
		shape.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: shape.SelectTouchingCells(0).FilterShapes().ByTags(tagObstacle),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if id, ok := s.owners[set.OtherShape]; ok && !slices.Contains(hits, id) {
					hits = append(hits, id)
				}
				return true
			},
		})

		slices.Sort(hits)
		for _, obstacleID := range hits {
			pairs = append(pairs, [2]ecs.EntityID{playerID, obstacleID})
		}
	}

	return pairs
}

// syncShapes 为新实体创建形状、移除已销毁实体的形状，并同步位置
func (s *CollisionSystem) syncShapes() {
	entities := ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, id := range entities {
		alive[id] = true

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		centerX := pos.X + col.OffsetX + s.margin
		centerY := pos.Y + col.OffsetY + s.margin

		shape, ok := s.shapes[id]
		if !ok {
			shape = resolv.NewRectangle(centerX, centerY, col.Width, col.Height)
			switch col.Layer {
			case components.CollisionLayerPlayer:
				shape.Tags().Set(tagPlayer)
			case components.CollisionLayerObstacle:
				shape.Tags().Set(tagObstacle)
			}
			s.space.Add(shape)
			s.shapes[id] = shape
			s.owners[shape] = id
			log.Printf("[CollisionSystem] 注册碰撞形状: 实体 %d (%.0fx%.0f)", id, col.Width, col.Height)
			continue
		}

		shape.SetPosition(centerX, centerY)
	}

	for id, shape := range s.shapes {
		if alive[id] {
			continue
		}
		s.space.Remove(shape)
		delete(s.owners, shape)
		delete(s.shapes, id)
	}
}

// IsOverlapping 按当前组件数据判断两个实体的碰撞盒是否重叠
// 不依赖 resolv 空间的同步状态，供调试绘制使用
func (s *CollisionSystem) IsOverlapping(a, b ecs.EntityID) bool {
	pos1, ok1 := ecs.GetComponent[*components.PositionComponent](s.entityManager, a)
	col1, ok2 := ecs.GetComponent[*components.CollisionComponent](s.entityManager, a)
	pos2, ok3 := ecs.GetComponent[*components.PositionComponent](s.entityManager, b)
	col2, ok4 := ecs.GetComponent[*components.CollisionComponent](s.entityManager, b)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return checkAABBCollision(pos1, col1, pos2, col2)
}

// checkAABBCollision 检查两个中心对齐的碰撞盒是否重叠（含偏移量）
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	x1, y1 := pos1.X+col1.OffsetX, pos1.Y+col1.OffsetY
	x2, y2 := pos2.X+col2.OffsetX, pos2.Y+col2.OffsetY

	return x1+col1.Width/2 > x2-col2.Width/2 &&
		x1-col1.Width/2 < x2+col2.Width/2 &&
		y1+col1.Height/2 > y2-col2.Height/2 &&
		y1-col1.Height/2 < y2+col2.Height/2
}
