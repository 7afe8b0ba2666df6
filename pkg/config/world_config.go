package config

// 世界与窗口配置常量
// 本文件定义游戏逻辑坐标系的默认尺寸和参考帧率

const (
	// GameWindowWidth 游戏逻辑宽度（像素）
	// 坐标原点在左上角，X 向右递增
	GameWindowWidth = 1280

	// GameWindowHeight 游戏逻辑高度（像素）
	// Y 向下递增，地面线位于 Y = GameWindowHeight
	GameWindowHeight = 720

	// ReferenceFPS 参考帧率
	// 所有“每帧”数值（背景滚动增量等）都是在该帧率下标定的，
	// 运行时按 deltaTime * ReferenceFPS 归一化，保证帧率波动不影响实际速度
	ReferenceFPS = 60.0

	// ReferenceDeltaTime 参考帧间隔（秒）
	ReferenceDeltaTime = 1.0 / ReferenceFPS
)

// 渲染层级（数值越大越靠前）
const (
	DepthBackgroundFar  = 0
	DepthBackgroundMid  = 1
	DepthBackgroundNear = 2
	DepthShadow         = 3
	DepthActors         = 4
)

// FrameScale 将实际帧间隔换算为参考帧数
//
// 例如 deltaTime = 1/30 秒时返回 2.0，即本帧相当于两个参考帧。
func FrameScale(deltaTime float64) float64 {
	return deltaTime * ReferenceFPS
}
