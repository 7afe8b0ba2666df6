// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultJumpKeys 默认跳跃按键
var DefaultJumpKeys = []ebiten.Key{ebiten.KeySpace}

// ParseKeys 将按键名称（如 "Space", "ArrowUp"）解析为 ebiten.Key
//
// 返回:
//   - []ebiten.Key: 解析后的按键列表
//   - error: 存在无法识别的按键名称时返回错误
func ParseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("unknown key name %q: %w", name, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置
func IsPointerJustPressed() (bool, int, int) {
	// 检查触摸按下
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsAnyKeyJustPressed 检查给定按键中是否有任意一个在本帧刚被按下
func IsAnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// IsJumpTriggered 本帧是否产生了跳跃事件
// 指针按下（鼠标左键、触摸）或任一跳跃键按下都视为一次跳跃，同一帧内最多一次
func IsJumpTriggered(keys []ebiten.Key) bool {
	if pressed, _, _ := IsPointerJustPressed(); pressed {
		return true
	}
	return IsAnyKeyJustPressed(keys)
}
