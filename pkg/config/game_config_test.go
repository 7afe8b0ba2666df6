package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfig_Valid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultGameConfig() should be valid, got %v", err)
	}

	if cfg.AnchorX() != 320 {
		t.Errorf("AnchorX() = %v, want 320", cfg.AnchorX())
	}
	if cfg.StunDelaySeconds() != 0.5 {
		t.Errorf("StunDelaySeconds() = %v, want 0.5", cfg.StunDelaySeconds())
	}
	if len(cfg.Parallax.Layers) != 3 {
		t.Fatalf("len(Parallax.Layers) = %d, want 3", len(cfg.Parallax.Layers))
	}

	wantSpeeds := []float64{0.6, 2.5, 3.0}
	for i, layer := range cfg.Parallax.Layers {
		if layer.ScrollSpeed != wantSpeeds[i] {
			t.Errorf("Layers[%d].ScrollSpeed = %v, want %v", i, layer.ScrollSpeed, wantSpeeds[i])
		}
	}
}

func TestValidate_InvalidWorldSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"宽度为零", 0, 720},
		{"高度为零", 1280, 0},
		{"宽度为负", -1, 720},
		{"高度为负", 1280, -720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			cfg.World.Width = tt.width
			cfg.World.Height = tt.height

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidWorldSize) {
				t.Errorf("Validate() error = %v, want ErrInvalidWorldSize", err)
			}
		})
	}
}

func TestValidate_InvalidRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"speedX 反向", func(c *GameConfig) { c.Obstacles.SpeedX = Range{Min: 300, Max: 200} }},
		{"speedX 非正", func(c *GameConfig) { c.Obstacles.SpeedX = Range{Min: 0, Max: 200} }},
		{"speedY 反向", func(c *GameConfig) { c.Obstacles.SpeedY = Range{Min: 60, Max: -60} }},
		{"spawnOffsetX 反向", func(c *GameConfig) { c.Obstacles.SpawnOffsetX = Range{Min: 800, Max: 400} }},
		{"池大小为零", func(c *GameConfig) { c.Obstacles.Count = 0 }},
		{"漂移概率超过1", func(c *GameConfig) { c.Obstacles.DriftChance = 1.5 }},
		{"眩晕时长为零", func(c *GameConfig) { c.Stun.DelayMs = 0 }},
		{"未知重触发策略", func(c *GameConfig) { c.Stun.Retrigger = "stack" }},
		{"背景层数量错误", func(c *GameConfig) { c.Parallax.Layers = c.Parallax.Layers[:2] }},
		{"玩家碰撞盒为零", func(c *GameConfig) { c.Player.Hitbox.Width = 0 }},
		{"背景层滚动速度为负", func(c *GameConfig) { c.Parallax.Layers[1].ScrollSpeed = -1 }},
		{"背景层名称为空", func(c *GameConfig) { c.Parallax.Layers[0].Name = "" }},
		{"背景层平铺高度为零", func(c *GameConfig) { c.Parallax.Layers[2].TileHeight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestParseGameConfig_YAMLOverridesDefaults(t *testing.T) {
	data := []byte(`
world:
  width: 800
  height: 600
stun:
  delayMs: 750
  retrigger: restart
  tintColor: 0xff0000
obstacles:
  count: 5
`)

	cfg, err := ParseGameConfig(data, "yaml")
	if err != nil {
		t.Fatalf("ParseGameConfig() error = %v", err)
	}

	if cfg.World.Width != 800 || cfg.World.Height != 600 {
		t.Errorf("World = %vx%v, want 800x600", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Stun.DelayMs != 750 {
		t.Errorf("Stun.DelayMs = %d, want 750", cfg.Stun.DelayMs)
	}
	if cfg.Stun.Retrigger != RetriggerRestart {
		t.Errorf("Stun.Retrigger = %q, want %q", cfg.Stun.Retrigger, RetriggerRestart)
	}
	if cfg.Stun.TintColor != 0xff0000 {
		t.Errorf("Stun.TintColor = %#x, want 0xff0000", cfg.Stun.TintColor)
	}
	if cfg.Obstacles.Count != 5 {
		t.Errorf("Obstacles.Count = %d, want 5", cfg.Obstacles.Count)
	}

	// 未覆盖的字段保留默认值
	if cfg.Player.Gravity != 1000 {
		t.Errorf("Player.Gravity = %v, want default 1000", cfg.Player.Gravity)
	}
	if cfg.Obstacles.SpeedX != (Range{Min: 200, Max: 300}) {
		t.Errorf("Obstacles.SpeedX = %+v, want default [200,300]", cfg.Obstacles.SpeedX)
	}
}

func TestParseGameConfig_TOML(t *testing.T) {
	data := []byte(`
[player]
gravity = 1200.0
jumpVelocity = -450.0

[obstacles]
recycleX = -150.0
`)

	cfg, err := ParseGameConfig(data, "toml")
	if err != nil {
		t.Fatalf("ParseGameConfig() error = %v", err)
	}

	if cfg.Player.Gravity != 1200 {
		t.Errorf("Player.Gravity = %v, want 1200", cfg.Player.Gravity)
	}
	if cfg.Player.JumpVelocity != -450 {
		t.Errorf("Player.JumpVelocity = %v, want -450", cfg.Player.JumpVelocity)
	}
	if cfg.Obstacles.RecycleX != -150 {
		t.Errorf("Obstacles.RecycleX = %v, want -150", cfg.Obstacles.RecycleX)
	}
	if cfg.World.Width != GameWindowWidth {
		t.Errorf("World.Width = %v, want default %d", cfg.World.Width, GameWindowWidth)
	}
}

func TestParseGameConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{"非法YAML", "world: [", "yaml"},
		{"非法TOML", "[world", "toml"},
		{"未知格式", "world: {}", "json"},
		{"世界尺寸非法", "world:\n  width: -5\n", "yaml"},
		{"背景层只写了部分字段", "parallax:\n  layers:\n    - scrollSpeed: 1\n    - scrollSpeed: 2\n    - scrollSpeed: 3\n", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGameConfig([]byte(tt.data), tt.format); err == nil {
				t.Error("ParseGameConfig() should fail")
			}
		})
	}
}

func TestLoadGameConfig_FromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(yamlPath, []byte("player:\n  anchorRatio: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGameConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig(yaml) error = %v", err)
	}
	if cfg.Player.AnchorRatio != 0.3 {
		t.Errorf("Player.AnchorRatio = %v, want 0.3", cfg.Player.AnchorRatio)
	}

	tomlPath := filepath.Join(dir, "game.toml")
	if err := os.WriteFile(tomlPath, []byte("[stun]\ndelayMs = 250\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadGameConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig(toml) error = %v", err)
	}
	if cfg.Stun.DelayMs != 250 {
		t.Errorf("Stun.DelayMs = %d, want 250", cfg.Stun.DelayMs)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGameConfig() should fail for a missing file")
	}
}

func TestFrameScale(t *testing.T) {
	if got := FrameScale(ReferenceDeltaTime); got < 0.999999 || got > 1.000001 {
		t.Errorf("FrameScale(ReferenceDeltaTime) = %v, want 1", got)
	}
	if got := FrameScale(1.0 / 30.0); got < 1.999999 || got > 2.000001 {
		t.Errorf("FrameScale(1/30) = %v, want 2", got)
	}
}
