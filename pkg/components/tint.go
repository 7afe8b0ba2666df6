package components

// TintComponent 染色效果组件
// 玩家受击后整体染成指定颜色，眩晕结束时清除
type TintComponent struct {
	// Color 染色颜色（0xRRGGBB）
	Color uint32

	// IsActive 是否激活
	IsActive bool
}
