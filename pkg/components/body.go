package components

// BodyComponent 运动学刚体参数
// 拥有此组件的实体会被 PlayerPhysicsSystem 积分重力并约束在世界边界内
type BodyComponent struct {
	// Gravity 竖直重力加速度（像素/秒²）
	Gravity float64

	// CollideWorldBounds 是否将 Y 钳制在 [0, 世界高度]
	// 触界时竖直速度清零（不反弹）
	CollideWorldBounds bool

	// Blocked 本帧是否触碰了上/下边界（渲染与调试用）
	BlockedUp   bool
	BlockedDown bool
}
