package systems

import (
	"image/color"
	"math"

	"github.com/decker502/pigeonrun/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 资源加载不在模拟核心内，所有图形用矢量图元绘制
var (
	skyColor        = color.RGBA{R: 135, G: 196, B: 235, A: 255}
	playerColor     = color.RGBA{R: 236, G: 236, B: 236, A: 255}
	obstacleColor   = color.RGBA{R: 70, G: 60, B: 80, A: 255}
	hitboxColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	overlapBoxColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	layerColors = []color.RGBA{
		{R: 150, G: 170, B: 200, A: 255}, // 远景山
		{R: 90, G: 140, B: 100, A: 255},  // 中景丘陵
		{R: 60, G: 100, B: 60, A: 255},   // 近景地面
	}
)

// layerStripePeriod 背景条纹的水平周期（像素），用于表现滚动
const layerStripePeriod = 128.0

// shadowTextureSize 阴影椭圆纹理的边长
const shadowTextureSize = 64

// RenderSystem 将 RenderView 绘制到屏幕
// 绘制顺序：天空 → 背景层（远到近）→ 阴影 → 玩家和障碍物
type RenderSystem struct {
	debug bool

	shadowImage *ebiten.Image
}

// NewRenderSystem 创建渲染系统
// debug 为 true 时额外绘制碰撞盒
func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{debug: debug}
}

// SetDebug 开关碰撞盒绘制
func (s *RenderSystem) SetDebug(debug bool) {
	s.debug = debug
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image, view game.RenderView) {
	screen.Fill(skyColor)

	for i, layer := range view.Layers {
		s.drawLayer(screen, layer, layerColors[i%len(layerColors)])
	}

	s.drawShadow(screen, view.Shadow)

	p := view.Player
	fill := color.Color(playerColor)
	if p.TintActive {
		fill = multiplyTint(playerColor, p.TintColor)
	}
	vector.DrawFilledRect(screen,
		float32(p.X-p.Width/2), float32(p.Y-p.Height/2),
		float32(p.Width), float32(p.Height), fill, false)

	for _, o := range view.Obstacles {
		radius := math.Min(o.Width, o.Height) / 2
		vector.DrawFilledCircle(screen, float32(o.X), float32(o.Y), float32(radius), obstacleColor, true)
	}

	if s.debug {
		s.drawHitboxes(screen, view)
	}
}

// drawLayer 以 Y 为底边绘制一条背景带，条纹随 TilePositionX 左移
func (s *RenderSystem) drawLayer(screen *ebiten.Image, layer game.LayerView, clr color.RGBA) {
	top := layer.Y - layer.TileHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(layer.Width), float32(layer.TileHeight), clr, false)

	stripe := color.RGBA{R: clr.R / 2, G: clr.G / 2, B: clr.B / 2, A: 255}
	shift := math.Mod(layer.TilePositionX, layerStripePeriod)
	for x := -shift; x < layer.Width; x += layerStripePeriod {
		vector.DrawFilledRect(screen, float32(x), float32(top), 8, float32(layer.TileHeight), stripe, false)
	}
}

// drawShadow 用缩放的圆形纹理绘制椭圆阴影
func (s *RenderSystem) drawShadow(screen *ebiten.Image, shadow game.ShadowView) {
	if s.shadowImage == nil {
		s.shadowImage = ebiten.NewImage(shadowTextureSize, shadowTextureSize)
		half := float32(shadowTextureSize) / 2
		vector.DrawFilledCircle(s.shadowImage, half, half, half, color.Black, true)
	}

	w := shadow.Width * shadow.ScaleX
	h := shadow.Height * shadow.ScaleY

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/shadowTextureSize, h/shadowTextureSize)
	op.GeoM.Translate(shadow.X-w/2, shadow.Y-h/2)
	op.ColorScale.ScaleAlpha(float32(shadow.Alpha))
	screen.DrawImage(s.shadowImage, op)
}

func (s *RenderSystem) drawHitboxes(screen *ebiten.Image, view game.RenderView) {
	p := view.Player
	vector.StrokeRect(screen,
		float32(p.X-p.Width/2), float32(p.Y-p.Height/2),
		float32(p.Width), float32(p.Height), 1, hitboxColor, false)

	for _, o := range view.Obstacles {
		clr := hitboxColor
		if o.Overlapping {
			clr = overlapBoxColor
		}
		vector.StrokeRect(screen,
			float32(o.X-o.Width/2), float32(o.Y-o.Height/2),
			float32(o.Width), float32(o.Height), 1, clr, false)
	}
}

// multiplyTint 按 0xRRGGBB 着色值对颜色做乘法混合
func multiplyTint(base color.RGBA, tint uint32) color.RGBA {
	tr := uint8(tint >> 16)
	tg := uint8(tint >> 8)
	tb := uint8(tint)
	return color.RGBA{
		R: uint8(uint16(base.R) * uint16(tr) / 255),
		G: uint8(uint16(base.G) * uint16(tg) / 255),
		B: uint8(uint16(base.B) * uint16(tb) / 255),
		A: base.A,
	}
}
