package game

// RenderView 一帧的只读渲染快照
//
// 模拟层每帧产出该快照，渲染层只读取它，不直接访问实体组件。
// 背景层按远到近排列，障碍物按槽位排列。
type RenderView struct {
	Width  float64
	Height float64

	Layers    []LayerView
	Shadow    ShadowView
	Player    PlayerView
	Obstacles []ObstacleView

	ScrollBlocked bool
	FrameCount    uint64
}

// LayerView 视差背景层
type LayerView struct {
	Name          string
	Depth         int
	TilePositionX float64
	Y             float64 // 底边锚点
	Width         float64
	TileHeight    float64
}

// ShadowView 地面阴影
type ShadowView struct {
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Alpha         float64
}

// PlayerView 玩家
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	Stunned       bool
	TintActive    bool
	TintColor     uint32
}

// ObstacleView 障碍物
type ObstacleView struct {
	Slot          int
	X, Y          float64
	Width, Height float64
	Overlapping   bool
}
