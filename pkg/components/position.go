package components

// PositionComponent 实体中心点的世界坐标（像素）
// 坐标原点在左上角，Y 向下递增
type PositionComponent struct {
	X float64
	Y float64
}
