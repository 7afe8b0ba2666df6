package components

// CollisionLayer 碰撞分层
type CollisionLayer int

const (
	// CollisionLayerPlayer 玩家
	CollisionLayerPlayer CollisionLayer = iota
	// CollisionLayerObstacle 障碍物
	CollisionLayerObstacle
)

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒比精灵尺寸小，中心对齐实体位置后再加上偏移
type CollisionComponent struct {
	Width   float64        // 碰撞盒宽度（像素）
	Height  float64        // 碰撞盒高度（像素）
	OffsetX float64        // 碰撞盒中心相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64        // 碰撞盒中心相对于实体位置的Y偏移量（像素），正值向下偏移
	Layer   CollisionLayer // 所属碰撞层
}
