package components

// DeferredActionComponent 延迟动作组件
// 用于在一段时间后执行一次回调（如眩晕结束后的玩家复位、解除背景滚动阻塞）
//
// 每个延迟动作是一个独立实体，执行后由 TimerSystem 销毁。
type DeferredActionComponent struct {
	Name        string  // 动作名称，如 "stun_player_reset"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsFired     bool    // 是否已执行（保证只执行一次）
	Action      func()  // 到期时执行的回调
}
