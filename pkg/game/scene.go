package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Tickable 是场景的帧回调契约
//
// 场景不继承任何引擎基类，只需实现两个回调：
//   - OnInit: 场景激活前调用一次，创建实体、注册碰撞、初始化状态
//   - OnUpdate: 每个逻辑帧调用一次，按固定顺序驱动各系统
//
// SceneManager 在 SwitchTo 时检测场景是否实现了 Tickable，并调用 OnInit。
type Tickable interface {
	OnInit() error
	OnUpdate(deltaTime float64)
}
