package systems

import (
	"image/color"
	"testing"
)

func TestMultiplyTint(t *testing.T) {
	tests := []struct {
		name string
		base color.RGBA
		tint uint32
		want color.RGBA
	}{
		{"白色着色", color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0xff9999, color.RGBA{R: 255, G: 153, B: 153, A: 255}},
		{"无着色", color.RGBA{R: 100, G: 150, B: 200, A: 255}, 0xffffff, color.RGBA{R: 100, G: 150, B: 200, A: 255}},
		{"黑色着色", color.RGBA{R: 100, G: 150, B: 200, A: 128}, 0x000000, color.RGBA{A: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := multiplyTint(tt.base, tt.tint); got != tt.want {
				t.Errorf("multiplyTint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderSystem_SetDebug(t *testing.T) {
	rs := NewRenderSystem(false)
	rs.SetDebug(true)
	if !rs.debug {
		t.Error("debug should be enabled")
	}
}
