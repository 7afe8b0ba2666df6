package components

// VelocityComponent 实体速度（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
