// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/pigeonrun/pkg/config"
	"github.com/decker502/pigeonrun/pkg/embedded"
	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/decker502/pigeonrun/pkg/scenes"
	"github.com/decker502/pigeonrun/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 嵌入的默认游戏配置
const DefaultConfigPath = "data/game.yaml"

// maxDeltaTime 按实际时间推进时的单帧最大步长（秒）
// 窗口拖动或断点调试后的长时间停顿按该值推进，避免玩家穿过障碍物
const maxDeltaTime = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出，并绘制碰撞盒
	Verbose bool
	// ConfigPath 游戏配置文件路径（.yaml / .toml），为空则使用嵌入的默认配置
	ConfigPath string
	// Seed 随机种子，0 表示按当前时间播种
	Seed int64
	// MeasuredStep 为 true 时按实际经过时间推进，否则每个 tick 固定推进参考帧间隔
	// Ebitengine 以固定 TPS 调用 Update，追帧时会连续调用，实际间隔可能接近 0
	MeasuredStep bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gameConfig   *config.GameConfig
	verbose      bool
	measuredStep bool

	lastUpdate time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 配置来源优先级：cfg.ConfigPath 指定的文件 → 嵌入的 data/game.yaml → 内置默认值。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	jumpKeys, err := utils.ParseKeys(gameConfig.Input.JumpKeys)
	if err != nil {
		return nil, fmt.Errorf("跳跃按键配置无效: %w", err)
	}

	gameScene, err := scenes.NewGameScene(gameConfig, utils.NewRandomSource(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	gameScene.EnableInput(jumpKeys)
	gameScene.SetDebug(cfg.Verbose)

	sceneManager := game.NewSceneManager()
	if err := sceneManager.SwitchTo(gameScene); err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}

	log.Printf("[App] 启动完成: seed=%d measuredStep=%v", cfg.Seed, cfg.MeasuredStep)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
		measuredStep: cfg.MeasuredStep,
	}, nil
}

// loadGameConfig 按优先级加载游戏配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载游戏配置: %s", path)
		return cfg, nil
	}

	if embedded.IsInitialized() && embedded.Exists(DefaultConfigPath) {
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
		}
		cfg, err := config.ParseGameConfig(data, "yaml")
		if err != nil {
			return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
		}
		log.Printf("[Config] 加载嵌入配置: %s", DefaultConfigPath)
		return cfg, nil
	}

	log.Printf("[Config] 使用内置默认配置")
	return config.DefaultGameConfig(), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.nextDeltaTime(time.Now()))
	return nil
}

// nextDeltaTime 计算本帧的时间步长
func (a *App) nextDeltaTime(now time.Time) float64 {
	if !a.measuredStep || a.lastUpdate.IsZero() {
		a.lastUpdate = now
		return config.ReferenceDeltaTime
	}

	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	return utils.Clamp(dt, 0, maxDeltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即世界尺寸）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.gameConfig.World.Width), int(a.gameConfig.World.Height)
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
