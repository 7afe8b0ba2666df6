package utils

// Clamp 将 v 限制在 [min, max] 区间内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
