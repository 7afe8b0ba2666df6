package components

// ShadowComponent 阴影组件
// 玩家在地面上的投影，没有独立的物理状态，每帧由玩家高度推导
// 用于表现高度感：玩家越高，阴影越宽越淡
type ShadowComponent struct {
	// Width 阴影基础宽度 (像素)，ScaleX = 1 时的椭圆宽度
	Width float64

	// Height 阴影基础高度 (像素)
	Height float64

	// ScaleX / ScaleY 非均匀缩放（上升时横向扩展多于纵向）
	ScaleX float64
	ScaleY float64

	// Alpha 阴影透明度 (0.0-1.0)
	Alpha float64

	// X 阴影中心 X，跟随玩家
	X float64

	// Y 阴影中心 Y，固定在地面线附近
	Y float64
}
