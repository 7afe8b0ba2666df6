package components

// PlayerComponent 标识实体为玩家（飞行角色）
//
// 玩家只能通过跳跃改变竖直速度，水平方向固定在锚点上，
// 只有碰撞击退会暂时改变水平速度。
type PlayerComponent struct {
	// AnchorX 水平锚点（世界坐标），眩晕结束后玩家回到此处
	AnchorX float64

	// JumpVelocity 跳跃时设置的竖直速度（像素/秒，负值向上）
	JumpVelocity float64

	// Stunned 是否处于眩晕状态
	Stunned bool

	// StunCount 累计被击中次数（调试用）
	StunCount int
}
