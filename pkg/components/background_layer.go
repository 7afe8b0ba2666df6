package components

// BackgroundLayerComponent 视差背景层
//
// 每层只保存滚动累加值，竖直锚点每帧根据玩家高度重新计算。
type BackgroundLayerComponent struct {
	// Name 层名称（far / mid / near）
	Name string

	// Depth 渲染层级
	Depth int

	// TilePositionX 平铺纹理的水平滚动累加值（只增不减）
	TilePositionX float64

	// ScrollSpeed 每个参考帧的滚动增量
	ScrollSpeed float64

	// BaselineY 基准竖直锚点（层底边）
	BaselineY float64

	// VerticalFactor 竖直视差系数
	VerticalFactor float64

	// Bias 固定竖直偏置
	Bias float64

	// Y 当前竖直锚点（层底边，= BaselineY + offset*VerticalFactor + Bias）
	Y float64

	// Width, TileHeight 平铺区域尺寸（渲染用）
	Width      float64
	TileHeight float64
}
