package components

// ObstacleComponent 标识实体为障碍物池中的一个槽位
//
// 障碍物从不销毁：越过左侧回收线后重新定位到右侧屏幕外，
// 并重新抽取速度，形成源源不断的障碍流。
type ObstacleComponent struct {
	// Slot 池中的槽位索引（0 ~ Count-1）
	Slot int

	// SpeedX 水平速度大小（始终为正），实际水平速度为 -SpeedX
	// 碰撞后用于恢复障碍物的名义速度
	SpeedX float64

	// SpeedY 当前竖直速度
	SpeedY float64

	// Generation 被回收的次数
	Generation int
}
